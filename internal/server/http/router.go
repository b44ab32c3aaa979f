// Package http exposes the application over HTTP. Routes and status codes
// mirror the public contract the frontend already depends on.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/coursepilot/coursepilot/internal/server/filestore"
	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/internal/server/store"
	"github.com/coursepilot/coursepilot/pkg/httpx"
	"github.com/coursepilot/coursepilot/pkg/metricsx"
	"github.com/coursepilot/coursepilot/pkg/slogx"

	_ "github.com/coursepilot/coursepilot/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookieSecure bool

	store   store.Store
	files   *filestore.Store
	metrics *metricsx.Metrics

	AuthService    *service.AuthService
	SessionService *service.SessionService
	ResultService  *service.ResultService
	PaymentService *service.PaymentService
	ProfileService *service.ProfileService
	AdminService   *service.AdminService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	files *filestore.Store,
	metrics *metricsx.Metrics,
	cookieSecure bool,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		cookieSecure: cookieSecure,
		store:        st,
		files:        files,
		metrics:      metrics,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metrics.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSessions()
	r.registerResults()
	r.registerPayments()
	r.registerProfile()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("GET /uploads/",
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.files.Dir()))))
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			CoursePilot API
//	@version		0.1.0
//	@description	Session-authenticated backend for assessments, course suggestions and payment review.
//	@description
//	@description	Authentication uses an opaque session cookie issued by POST /login.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{
		AuthService:    r.AuthService,
		SessionService: r.SessionService,
		CookieSecure:   r.cookieSecure,
	}
	// Brute-force protection. The body is JSON so there is no form field
	// to key on; the client IP is the only usable grouping.
	r.Mux.Handle("POST /login",
		httpx.Chain(login, httpx.RateLimitByIP(httpx.StrictLimit)))

	register := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /register",
		httpx.Chain(register, httpx.RateLimitByIP(httpx.ModerateLimit)))

	change := &ChangePasswordHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/change-password", r.gated(change))
}

func (r *Router) registerSessions() {
	r.Mux.Handle("POST /get-session", &GetSessionHandler{SessionService: r.SessionService})
	r.Mux.Handle("POST /component/logout", &LogoutHandler{
		SessionService: r.SessionService,
		CookieSecure:   r.cookieSecure,
	})
	r.Mux.Handle("POST /component/sidebar", r.gated(http.HandlerFunc(SidebarHandler)))
}

func (r *Router) registerResults() {
	r.Mux.Handle("POST /component/Dashboard",
		r.gated(&SubmitResultHandler{ResultService: r.ResultService}))
	r.Mux.Handle("POST /component/suggestion",
		r.gated(&SuggestionHandler{ResultService: r.ResultService}))
	r.Mux.Handle("POST /component/Progress",
		r.gated(&ProgressHandler{ResultService: r.ResultService}))
}

func (r *Router) registerPayments() {
	r.Mux.Handle("POST /component/submitPayment",
		r.gated(&SubmitPaymentHandler{PaymentService: r.PaymentService}))
	r.Mux.Handle("POST /component/billing",
		r.gated(&BillingHandler{PaymentService: r.PaymentService}))
	r.Mux.Handle("POST /component/Purchased",
		r.gated(&PurchasedHandler{PaymentService: r.PaymentService}))
}

func (r *Router) registerProfile() {
	r.Mux.Handle("POST /component/setting",
		r.gated(&UpdateProfileHandler{ProfileService: r.ProfileService}))
	r.Mux.Handle("POST /component/Updating_user",
		r.gated(&GetProfileHandler{ProfileService: r.ProfileService}))
}

func (r *Router) registerAdmin() {
	admin := func(h http.Handler) http.Handler {
		return r.gated(RequireAdmin(h))
	}

	r.Mux.Handle("POST /AdminComponent/UpdatePaymentStatus",
		admin(&UpdatePaymentStatusHandler{PaymentService: r.PaymentService}))
	r.Mux.Handle("POST /AdminComponent/CourseManagment",
		admin(&CourseManagementHandler{AdminService: r.AdminService}))
	r.Mux.Handle("POST /AdminComponent/BillingPayment",
		admin(&AdminBillingHandler{PaymentService: r.PaymentService}))
	r.Mux.Handle("POST /AdminComponent/totalUsers",
		admin(&TotalUsersHandler{AdminService: r.AdminService}))
	r.Mux.Handle("POST /AdminComponent/totalamount",
		admin(&TotalAmountHandler{AdminService: r.AdminService}))
	r.Mux.Handle("POST /AdminComponent/totalcourses",
		admin(&TotalCoursesHandler{AdminService: r.AdminService}))
	r.Mux.Handle("POST /AdminComponent/UserManagment",
		admin(&UserManagementHandler{AdminService: r.AdminService}))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.store))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}

// gated wraps a handler with the session gate.
func (r *Router) gated(h http.Handler) http.Handler {
	return RequireSession(r.SessionService)(h)
}
