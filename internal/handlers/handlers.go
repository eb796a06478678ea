package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/festeros/docs"
	authhandlers "github.com/GlebRadaev/festeros/internal/handlers/auth"
	lotteryhandlers "github.com/GlebRadaev/festeros/internal/handlers/lottery"
	membershandlers "github.com/GlebRadaev/festeros/internal/handlers/members"
	"github.com/GlebRadaev/festeros/internal/service"
	"github.com/GlebRadaev/festeros/pkg/auth"
)

//go:generate mockgen -destination=mock_handlers.go -package=handlers github.com/GlebRadaev/festeros/internal/handlers AuthHandler,MembersHandler,LotteryHandler

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type MembersHandler interface {
	ListMembers(w http.ResponseWriter, r *http.Request)
	CreateMember(w http.ResponseWriter, r *http.Request)
	GetMember(w http.ResponseWriter, r *http.Request)
	UpdateMember(w http.ResponseWriter, r *http.Request)
	DeleteMember(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
	UpdateAccountRole(w http.ResponseWriter, r *http.Request)
	GetMyMember(w http.ResponseWriter, r *http.Request)
}

type LotteryHandler interface {
	ListDraws(w http.ResponseWriter, r *http.Request)
	CreateDraw(w http.ResponseWriter, r *http.Request)
	GetDraw(w http.ResponseWriter, r *http.Request)
	UpdateDraw(w http.ResponseWriter, r *http.Request)
	DeleteDraw(w http.ResponseWriter, r *http.Request)
	GetDrawAssignments(w http.ResponseWriter, r *http.Request)
	GetDrawSummary(w http.ResponseWriter, r *http.Request)
	BulkAssign(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	GetMemberAssignments(w http.ResponseWriter, r *http.Request)
	GetMyAssignments(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	MembersHandler MembersHandler
	LotteryHandler LotteryHandler
	Authenticate   func(http.Handler) http.Handler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		MembersHandler: membershandlers.New(s.RosterService),
		LotteryHandler: lotteryhandlers.New(s.LotteryService),
		Authenticate:   auth.Middleware(s.Tokens, s.CallerResolver),
	}
}

// InitRoutes mounts the API. Admin-only endpoints sit behind the same
// authentication as member ones; the role is enforced by each operation.
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
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)

			r.Route("/me", func(r chi.Router) {
				r.Get("/member", h.MembersHandler.GetMyMember)
				r.Get("/lottery", h.LotteryHandler.GetMyAssignments)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Route("/members", func(r chi.Router) {
					r.Get("/", h.MembersHandler.ListMembers)
					r.Post("/", h.MembersHandler.CreateMember)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.MembersHandler.GetMember)
						r.Put("/", h.MembersHandler.UpdateMember)
						r.Delete("/", h.MembersHandler.DeleteMember)
						r.Get("/lottery", h.LotteryHandler.GetMemberAssignments)
					})
				})
				r.Get("/accounts", h.MembersHandler.ListAccounts)
				r.Put("/accounts/{id}/role", h.MembersHandler.UpdateAccountRole)
			})

			r.Route("/lottery/draws", func(r chi.Router) {
				r.Get("/", h.LotteryHandler.ListDraws)
				r.Post("/", h.LotteryHandler.CreateDraw)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.LotteryHandler.GetDraw)
					r.Patch("/", h.LotteryHandler.UpdateDraw)
					r.Delete("/", h.LotteryHandler.DeleteDraw)
					r.Get("/summary", h.LotteryHandler.GetDrawSummary)
					r.Route("/assignments", func(r chi.Router) {
						r.Get("/", h.LotteryHandler.GetDrawAssignments)
						r.Post("/bulk", h.LotteryHandler.BulkAssign)
						r.Put("/{memberID}", h.LotteryHandler.UpdateAssignment)
						r.Put("/{memberID}/payment", h.LotteryHandler.RecordPayment)
					})
				})
			})
		})
	})

	return r
}
