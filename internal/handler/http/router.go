package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/rota-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         AuthHandler
	Staff        StaffHandler
	Rota         RotaHandler
	Availability AvailabilityHandler
	Holiday      HolidayHandler
	Report       ReportHandler
	Home         HomeHandler
	Notification NotificationHandler
	Data         DataHandler
}

type RouterOptions struct {
	AppName        string
	Version        string
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
}

// NewLogger builds the JSON logger shared by the request logger and the
// rest of the app.
func NewLogger(opts RouterOptions) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.AppName),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)
}

func NewRouter(logger *slog.Logger, opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		// Verifier only parses the bearer token; AuthRequired rejects.
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))

		r.Post("/auth/login", h.Auth.Login)
		r.Get("/events", h.Notification.Stream)
		r.With(middleware.OptionalAuth(JWTService)).Get("/users", h.Staff.List)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/session", h.Auth.Session)
			r.Post("/auth/sse-token", h.Auth.SSEToken)

			r.Patch("/users/me/pin", h.Staff.ChangeOwnPIN)

			// Owner only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireCapability(staff.CapabilityStaffManage))
				r.Post("/users", h.Staff.Create)
				r.Put("/users/{id}", h.Staff.Update)
				r.Delete("/users/{id}", h.Staff.Delete)
				r.Patch("/users/{id}/pin", h.Staff.ResetPIN)
			})

			r.Route("/rota", func(r chi.Router) {
				r.Get("/", h.Rota.Get)
				r.Get("/calendar", h.Rota.Calendar)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(staff.CapabilityRotaEdit))
					r.Put("/{dayKey}/shifts", h.Rota.Assign)
					r.Delete("/{dayKey}/shifts/{staffId}", h.Rota.Unassign)
				})
			})

			r.Route("/availability", func(r chi.Router) {
				r.Get("/me", h.Availability.Mine)
				r.Put("/me/{dayKey}", h.Availability.SetMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(staff.CapabilityAvailabilityView))
					r.Get("/staff/{staffId}", h.Availability.ForStaff)
					r.Get("/day/{dayKey}", h.Availability.OnDay)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Post("/", h.Holiday.Submit)
				r.Get("/me", h.Holiday.Mine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(staff.CapabilityHolidayDecide))
					r.Get("/pending", h.Holiday.Pending)
					r.Patch("/{id}", h.Holiday.Decide)
				})
			})

			r.With(middleware.RequireCapability(staff.CapabilityWagesView)).
				Get("/reports/wages", h.Report.Wages)

			r.Get("/home/widgets", h.Home.Widgets)

			r.Get("/notifications", h.Notification.List)
			r.Patch("/notifications/{id}/read", h.Notification.MarkAsRead)

			r.With(middleware.RequireCapability(staff.CapabilityDataWipe)).
				Delete("/data/wipe", h.Data.Wipe)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
