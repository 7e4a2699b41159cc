// Package router assembles the HTTP API.
package router

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/service"
	"github.com/sumanthd032/smartblog/internal/transport/http/handlers"
	"github.com/sumanthd032/smartblog/internal/transport/http/middleware"
)

type Deps struct {
	Logger     zerolog.Logger
	Resolver   *auth.Resolver
	Auth       *service.AuthService
	Users      *service.UserService
	Posts      *service.PostService
	Comments   *service.CommentService
	Assistant  *service.AssistantService
	CORSOrigin string
}

func New(d Deps) http.Handler {
	authHandler := handlers.NewAuthHandler(d.Auth)
	userHandler := handlers.NewUserHandler(d.Users)
	postHandler := handlers.NewPostHandler(d.Posts)
	commentHandler := handlers.NewCommentHandler(d.Comments)
	aiHandler := handlers.NewAIHandler(d.Assistant)

	protected := middleware.Auth(d.Resolver)
	optional := middleware.OptionalAuth(d.Resolver)

	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("POST /api/token", authHandler.Login)
	mux.HandleFunc("POST /api/users/{$}", authHandler.Register)
	mux.HandleFunc("POST /api/users", authHandler.Register)

	// Users
	mux.Handle("GET /api/users/me", protected(http.HandlerFunc(userHandler.Me)))
	mux.Handle("PUT /api/users/me/profile", protected(http.HandlerFunc(userHandler.UpdateProfile)))
	mux.Handle("GET /api/users/{username}", optional(http.HandlerFunc(userHandler.Get)))

	// Posts
	mux.HandleFunc("GET /api/posts/{$}", postHandler.List)
	mux.HandleFunc("GET /api/posts", postHandler.List)
	mux.HandleFunc("GET /api/posts/{id}", postHandler.Get)
	mux.Handle("POST /api/posts/{$}", protected(http.HandlerFunc(postHandler.Create)))
	mux.Handle("POST /api/posts", protected(http.HandlerFunc(postHandler.Create)))
	mux.Handle("PUT /api/posts/{id}", protected(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /api/posts/{id}", protected(http.HandlerFunc(postHandler.Delete)))

	// Comments
	mux.HandleFunc("GET /api/posts/{id}/comments", commentHandler.List)
	mux.Handle("POST /api/posts/{id}/comments", protected(http.HandlerFunc(commentHandler.Create)))
	mux.Handle("DELETE /api/comments/{id}", protected(http.HandlerFunc(commentHandler.Delete)))

	// AI assistant
	mux.Handle("POST /api/ai/generate-title", protected(http.HandlerFunc(aiHandler.GenerateTitle)))
	mux.Handle("POST /api/ai/generate-summary", protected(http.HandlerFunc(aiHandler.GenerateSummary)))

	origin := d.CORSOrigin
	if origin == "" {
		origin = "*"
	}

	var h http.Handler = middleware.CORS(origin)(mux)
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(h)
	h = hlog.RequestIDHandler("req_id", "X-Request-Id")(h)
	h = hlog.NewHandler(d.Logger)(h)

	return h
}
