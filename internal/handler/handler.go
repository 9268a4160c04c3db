package handler

import (
	"html/template"
	"net/http"

	"github.com/sechive-dev/sechive-web/internal/apiclient"
	"github.com/sechive-dev/sechive-web/internal/config"
	"github.com/sechive-dev/sechive-web/internal/markdown"
	"github.com/sechive-dev/sechive-web/internal/media"
	"github.com/sechive-dev/sechive-web/internal/sessioncache"
)

type Handler struct {
	Templates     map[string]*template.Template
	Public        config.Public
	TextProcessor *markdown.TextProcessor
	APIClient     *apiclient.APIClient
	Media         *media.Resolver
	SessionCache  *sessioncache.DB
}

func New(templates map[string]*template.Template, publicCfg config.Public, textProcessor *markdown.TextProcessor,
	apiClient *apiclient.APIClient, mediaResolver *media.Resolver, sessionCache *sessioncache.DB) *Handler {
	return &Handler{
		Templates:     templates,
		Public:        publicCfg,
		TextProcessor: textProcessor,
		APIClient:     apiClient,
		Media:         mediaResolver,
		SessionCache:  sessionCache,
	}
}

func (h *Handler) getTemplate(name string) (*template.Template, bool) {
	tmpl, ok := h.Templates[name]
	return tmpl, ok
}

func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/favicon.ico")
}
