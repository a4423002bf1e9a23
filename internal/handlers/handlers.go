package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/coopportal/docs"
	"github.com/GlebRadaev/coopportal/internal/domain"
	authhandlers "github.com/GlebRadaev/coopportal/internal/handlers/auth"
	calculatorhandlers "github.com/GlebRadaev/coopportal/internal/handlers/calculator"
	healthhandlers "github.com/GlebRadaev/coopportal/internal/handlers/health"
	ledgerhandlers "github.com/GlebRadaev/coopportal/internal/handlers/ledger"
	loanshandlers "github.com/GlebRadaev/coopportal/internal/handlers/loans"
	membershandlers "github.com/GlebRadaev/coopportal/internal/handlers/members"
	membershiphandlers "github.com/GlebRadaev/coopportal/internal/handlers/membership"
	paymentshandlers "github.com/GlebRadaev/coopportal/internal/handlers/payments"
	usershandlers "github.com/GlebRadaev/coopportal/internal/handlers/users"
	"github.com/GlebRadaev/coopportal/internal/service"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/GlebRadaev/coopportal/pkg/upload"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type MembershipHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	Accounts(w http.ResponseWriter, r *http.Request)
	Loans(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
}

type CalculatorHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

// Options carries the non-service dependencies of the router.
type Options struct {
	Uploader    *upload.Store
	JWT         auth.JWTServiceInterface
	DB          healthhandlers.Pinger
	AnnualRate  float64
	CORSOrigins []string
}

type Handlers struct {
	AuthHandler       AuthHandler
	MembershipHandler MembershipHandler
	LoanHandler       LoanHandler
	UserHandler       UserHandler
	MemberHandler     MemberHandler
	PaymentHandler    PaymentHandler
	LedgerHandler     LedgerHandler
	CalculatorHandler CalculatorHandler
	HealthHandler     HealthHandler

	authenticate func(http.Handler) http.Handler
	corsOrigins  []string
	uploadDir    string
}

func New(s *service.Services, opts Options) *Handlers {
	authMiddleware := auth.NewMiddleware(opts.JWT)
	if s.Principals != nil {
		authMiddleware.WithResolver(s.Principals)
	}
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		MembershipHandler: membershiphandlers.New(s.MembershipService, opts.Uploader),
		LoanHandler:       loanshandlers.New(s.LoanService, opts.Uploader),
		UserHandler:       usershandlers.New(s.UserService),
		MemberHandler:     membershandlers.New(s.MemberService),
		PaymentHandler:    paymentshandlers.New(s.PaymentService, opts.Uploader),
		LedgerHandler:     ledgerhandlers.New(s.LedgerService),
		CalculatorHandler: calculatorhandlers.New(opts.AnnualRate),
		HealthHandler:     healthhandlers.New(opts.DB),

		authenticate: authMiddleware.Authenticate,
		corsOrigins:  opts.CORSOrigins,
		uploadDir:    opts.Uploader.Dir(),
	}
}

var (
	reviewers    = roles(domain.RoleAdmin, domain.RoleManager, domain.RoleLoanOfficer, domain.RoleCreditInvestigator)
	userAdmins   = roles(domain.RoleAdmin, domain.RoleITAdmin)
	memberAdmins = roles(domain.RoleAdmin, domain.RoleITAdmin, domain.RoleManager)
	cashiers     = roles(domain.RoleCashier, domain.RoleManager, domain.RoleAdmin)
)

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger,
		recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Authorization", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health", h.HealthHandler.Check)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.uploadDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir))))
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)
		r.With(h.authenticate).Get("/me", h.AuthHandler.Me)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/membership-application", h.MembershipHandler.Submit)
		r.Get("/loan-calculator", h.CalculatorHandler.Calculate)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireMember)
				r.Post("/loan-application/submit", h.LoanHandler.Submit)
				r.Post("/payments/reference", h.PaymentHandler.Submit)
				r.Route("/member", func(r chi.Router) {
					r.Get("/accounts", h.LedgerHandler.Accounts)
					r.Get("/loans", h.LedgerHandler.Loans)
					r.Get("/transactions", h.LedgerHandler.Transactions)
					r.Get("/loan-applications", h.LoanHandler.ListOwn)
					r.Get("/payments", h.PaymentHandler.ListOwn)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireStaff(reviewers...))
				r.Route("/membership-applications", func(r chi.Router) {
					r.Get("/", h.MembershipHandler.List)
					r.Get("/{id}", h.MembershipHandler.Get)
					r.Put("/{id}/status", h.MembershipHandler.UpdateStatus)
				})
				r.Get("/loan-application/list", h.LoanHandler.List)
				r.Put("/loan-application/update-status", h.LoanHandler.UpdateStatus)
			})

			// members see their own applications, staff see any
			r.Get("/loan-application/{id}", h.LoanHandler.Get)

			r.Route("/users", func(r chi.Router) {
				r.Use(auth.RequireStaff(userAdmins...))
				r.Get("/", h.UserHandler.List)
				r.Post("/", h.UserHandler.Create)
				r.Put("/{id}/deactivate", h.UserHandler.Deactivate)
				r.Delete("/{id}", h.UserHandler.Delete)
			})

			r.Route("/members", func(r chi.Router) {
				r.With(auth.RequireStaff()).Get("/", h.MemberHandler.List)
				r.Group(func(r chi.Router) {
					r.Use(auth.RequireStaff(memberAdmins...))
					r.Post("/", h.MemberHandler.Create)
					r.Put("/{id}/deactivate", h.MemberHandler.Deactivate)
				})
			})

			r.Route("/payments/references", func(r chi.Router) {
				r.Use(auth.RequireStaff(cashiers...))
				r.Get("/", h.PaymentHandler.List)
				r.Put("/{id}/status", h.PaymentHandler.Review)
			})
		})
	})

	return r
}

func roles(rs ...domain.Role) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
