package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pokercds/pokercds/docs"
	authhandlers "github.com/pokercds/pokercds/internal/handlers/auth"
	gameshandlers "github.com/pokercds/pokercds/internal/handlers/games"
	membershandlers "github.com/pokercds/pokercds/internal/handlers/members"
	sessionshandlers "github.com/pokercds/pokercds/internal/handlers/sessions"
	"github.com/pokercds/pokercds/internal/service"
	"github.com/pokercds/pokercds/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetEnabled(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	AddPlayer(w http.ResponseWriter, r *http.Request)
	RemovePlayer(w http.ResponseWriter, r *http.Request)
	IncrementCreditBuyin(w http.ResponseWriter, r *http.Request)
	DecrementCreditBuyin(w http.ResponseWriter, r *http.Request)
	IncrementCashBuyin(w http.ResponseWriter, r *http.Request)
	DecrementCashBuyin(w http.ResponseWriter, r *http.Request)
	SetField(w http.ResponseWriter, r *http.Request)
	BeginEdit(w http.ResponseWriter, r *http.Request)
	CancelEdit(w http.ResponseWriter, r *http.Request)
	CommitEdit(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	MemberHandler  MemberHandler
	GameHandler    GameHandler
	SessionHandler SessionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		MemberHandler:  membershandlers.New(s.MemberService),
		GameHandler:    gameshandlers.New(s.GameService),
		SessionHandler: sessionshandlers.New(s.SessionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Post("/auth/password", h.AuthHandler.ChangePassword)

			r.Route("/members", func(r chi.Router) {
				r.Get("/", h.MemberHandler.List)
				r.Get("/{memberID}", h.MemberHandler.Get)
				r.Put("/{memberID}", h.MemberHandler.Update)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/", h.MemberHandler.Register)
					r.Put("/{memberID}/enabled", h.MemberHandler.SetEnabled)
				})
			})

			r.Route("/games", func(r chi.Router) {
				r.Get("/", h.GameHandler.List)
				r.Get("/{gameID}", h.GameHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/", h.GameHandler.Create)
					r.Put("/{gameID}", h.GameHandler.Update)
					r.Delete("/{gameID}", h.GameHandler.Delete)
				})

				r.Route("/{gameID}/players", func(r chi.Router) {
					r.Post("/", h.SessionHandler.AddPlayer)
					r.Delete("/{memberID}", h.SessionHandler.RemovePlayer)
				})
				r.Delete("/{gameID}/edit", h.SessionHandler.CancelEdit)
				r.Route("/{gameID}/sessions", func(r chi.Router) {
					r.Get("/", h.SessionHandler.Get)
					r.Route("/{memberID}", func(r chi.Router) {
						r.Post("/credit-buyin/increment", h.SessionHandler.IncrementCreditBuyin)
						r.Post("/credit-buyin/decrement", h.SessionHandler.DecrementCreditBuyin)
						r.Post("/cash-buyin/increment", h.SessionHandler.IncrementCashBuyin)
						r.Post("/cash-buyin/decrement", h.SessionHandler.DecrementCashBuyin)
						r.Put("/fields/{field}", h.SessionHandler.SetField)
						r.Post("/edit", h.SessionHandler.BeginEdit)
						r.Post("/edit/commit", h.SessionHandler.CommitEdit)
					})
				})
			})
		})
	})

	return r
}
