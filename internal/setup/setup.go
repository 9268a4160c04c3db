package setup

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/sechive-dev/sechive-web/internal/apiclient"
	"github.com/sechive-dev/sechive-web/internal/config"
	"github.com/sechive-dev/sechive-web/internal/handler"
	"github.com/sechive-dev/sechive-web/internal/jwt"
	"github.com/sechive-dev/sechive-web/internal/markdown"
	"github.com/sechive-dev/sechive-web/internal/media"
	"github.com/sechive-dev/sechive-web/internal/middleware"
	"github.com/sechive-dev/sechive-web/internal/sessioncache"
)

const (
	baseTemplate           = "base.html"
	tmplPath               = "templates"
	templateReloadInterval = 5 * time.Second
)

type Dependencies struct {
	Handler      *handler.Handler
	Auth         *middleware.Auth
	Public       config.Public
	SessionCache *sessioncache.DB
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	cache, err := sessioncache.Open(cfg.Public.FeedCachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session cache: %w", err)
	}

	templates := mustLoadTemplates(tmplPath)
	textProcessor := markdown.New()
	apiClient := apiclient.New(cfg.Public.APIBaseURL, cfg.Public.APIRequestsPerSecond, cfg.Public.APIRequestsBurst)
	mediaResolver := media.NewResolver(cfg.Public.MediaBaseURL)

	h := handler.New(templates, cfg.Public, textProcessor, apiClient, mediaResolver, cache)
	startTemplateReloader(h, tmplPath)

	jwtSvc := jwt.New(cfg.JwtKey())
	auth := middleware.NewAuth(jwtSvc, cfg.Public.SecureCookies)

	return &Dependencies{
		Handler:      h,
		Auth:         auth,
		Public:       cfg.Public,
		SessionCache: cache,
	}, nil
}

func sub(a, b int) int { return a - b }
func add(a, b int) int { return a + b }

func dict(values ...any) (map[string]interface{}, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

func mustLoadTemplates(tmplPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate && f.Name() != "partials.html" {
			templates[f.Name()] = template.Must(template.New(baseTemplate).Funcs(
				template.FuncMap{
					"sub":  sub,
					"add":  add,
					"dict": dict,
				},
			).ParseFiles(
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
				path.Join(tmplPath, "partials.html"),
			),
			)
		}
	}
	return templates
}

func startTemplateReloader(h *handler.Handler, tmplPath string) {
	if os.Getenv("ENV") == "development" {
		ticker := time.NewTicker(templateReloadInterval)
		go func() {
			for range ticker.C {
				h.Templates = mustLoadTemplates(tmplPath)
			}
		}()
	}
}
