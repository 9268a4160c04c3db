package router

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sechive-dev/sechive-web/internal/handler"
	mw "github.com/sechive-dev/sechive-web/internal/middleware"
	"github.com/sechive-dev/sechive-web/internal/ratelimiter"
	"github.com/sechive-dev/sechive-web/internal/setup"
)

const identityExpiration = 15 * time.Minute

// browser pages need inline styles off and scripts from self only
const csp = "default-src 'self'; img-src 'self' data: https:; style-src 'self'"

func SetupRouter(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	r.Use(mw.RequestLogger)
	r.Use(mw.Metrics)
	r.Use(mw.SecurityHeadersWithCSP(deps.Public.SecureCookies, csp))
	r.Use(handlers.CompressHandler)
	r.Use(mw.GenerateCSRFToken(mw.CSRFConfig{SecureCookies: deps.Public.SecureCookies}))
	r.Use(mw.ValidateCSRFToken())

	// Public routes
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/favicon.ico", handler.FaviconHandler)
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("static"))),
	)

	// Pages readable without a session; user context is attached when present.
	browse := r.NewRoute().Subrouter()
	browse.Use(deps.Auth.OptionalAuth())
	browse.HandleFunc("/login", deps.Handler.LoginGetHandler).Methods("GET")
	browse.HandleFunc("/login", deps.Handler.LoginHandler).Methods("POST")
	browse.HandleFunc("/register", deps.Handler.RegisterGetHandler).Methods("GET")
	browse.HandleFunc("/register", deps.Handler.RegisterHandler).Methods("POST")

	browse.HandleFunc("/", deps.Handler.FeedGetHandler).Methods("GET")
	browse.HandleFunc("/feed/position", deps.Handler.FeedPositionHandler).Methods("POST")
	browse.HandleFunc("/search", deps.Handler.SearchHandler).Methods("GET")
	browse.HandleFunc("/groups", deps.Handler.GroupsGetHandler).Methods("GET")
	browse.HandleFunc("/groups/{slug}", deps.Handler.GroupGetHandler).Methods("GET")
	browse.HandleFunc("/users/{handle}", deps.Handler.ProfileGetHandler).Methods("GET")
	browse.HandleFunc("/posts/{postId:[0-9]+}", deps.Handler.PostGetHandler).Methods("GET")
	browse.HandleFunc("/posts/{postId:[0-9]+}/thread", deps.Handler.ThreadFragmentHandler).Methods("GET")

	// Actions that need a session
	authed := r.NewRoute().Subrouter()
	authed.Use(deps.Auth.NeedAuth())
	authed.HandleFunc("/logout", deps.Handler.LogoutHandler).Methods("POST")
	authed.HandleFunc("/posts/new", deps.Handler.PostCreateGetHandler).Methods("GET")
	authed.HandleFunc("/groups/{slug}/join", deps.Handler.GroupJoinHandler).Methods("POST")
	authed.HandleFunc("/groups/{slug}/leave", deps.Handler.GroupLeaveHandler).Methods("POST")
	authed.HandleFunc("/users/{handle}/follow", deps.Handler.FollowHandler).Methods("POST")
	authed.HandleFunc("/users/{handle}/unfollow", deps.Handler.UnfollowHandler).Methods("POST")
	authed.HandleFunc("/posts/{postId:[0-9]+}/vote", deps.Handler.VoteHandler).Methods("POST")

	// Content creation gets a tighter per-user budget.
	writeLimiter := ratelimiter.New(1, 3, identityExpiration)
	writes := r.NewRoute().Subrouter()
	writes.Use(deps.Auth.NeedAuth())
	writes.Use(mw.RateLimit(writeLimiter, mw.GetUserIdentity))
	writes.HandleFunc("/posts/new", deps.Handler.PostCreateHandler).Methods("POST")
	writes.HandleFunc("/posts/{postId:[0-9]+}/comments", deps.Handler.CommentCreateHandler).Methods("POST")
	writes.HandleFunc("/comments/{commentId:[0-9]+}/edit", deps.Handler.CommentUpdateHandler).Methods("POST")
	writes.HandleFunc("/comments/{commentId:[0-9]+}/delete", deps.Handler.CommentDeleteHandler).Methods("POST")

	// Moderation console
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(deps.Auth.AdminOnly())
	admin.HandleFunc("", deps.Handler.AdminGetHandler).Methods("GET")
	admin.HandleFunc("/posts/{postId:[0-9]+}/remove", deps.Handler.AdminRemovePostHandler).Methods("POST")
	admin.HandleFunc("/comments/{commentId:[0-9]+}/remove", deps.Handler.AdminRemoveCommentHandler).Methods("POST")
	admin.HandleFunc("/users/{userId:[0-9]+}/suspend", deps.Handler.AdminSuspendUserHandler).Methods("POST")
	admin.HandleFunc("/users/{userId:[0-9]+}/unsuspend", deps.Handler.AdminUnsuspendUserHandler).Methods("POST")

	return r
}
