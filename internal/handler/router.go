package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resort-booking/internal/domain/user"
	"resort-booking/internal/handler/api"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth          *api.AuthHandler
	Accommodation *api.AccommodationHandler
	BlockedRange  *api.BlockedRangeHandler
	Rate          *api.RateHandler
	Quote         *api.QuoteHandler
	Reservation   *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})

			adminOnly := auth.Group("/staff")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Auth.CreateStaff},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Auth.DeactivateStaff},
			})
		}

		// The booking form runs unauthenticated; quotes and catalog reads are public.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Quote.Resolve},
			{Method: http.MethodGet, Path: "/accommodation-types", Handler: h.Accommodation.ListTypes},
			{Method: http.MethodGet, Path: "/accommodations", Handler: h.Accommodation.List},
			{Method: http.MethodGet, Path: "/accommodations/:id", Handler: h.Accommodation.Get},
			{Method: http.MethodGet, Path: "/rates", Handler: h.Rate.Current},
		})

		managerRequired := []gin.HandlerFunc{
			authMiddleware.RequireAuth(),
			authMiddleware.RequireRoleAtLeast(user.RoleManager),
		}
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/accommodation-types", Handler: h.Accommodation.CreateType, Mw: managerRequired},
			{Method: http.MethodPost, Path: "/accommodations", Handler: h.Accommodation.Create, Mw: managerRequired},
			{Method: http.MethodPatch, Path: "/accommodations/:id", Handler: h.Accommodation.Update, Mw: managerRequired},
			{Method: http.MethodDelete, Path: "/accommodations/:id", Handler: h.Accommodation.Archive, Mw: managerRequired},
			{Method: http.MethodPut, Path: "/rates", Handler: h.Rate.Update, Mw: managerRequired},
			{Method: http.MethodPost, Path: "/blocked-ranges", Handler: h.BlockedRange.Create, Mw: managerRequired},
			{Method: http.MethodDelete, Path: "/blocked-ranges/:id", Handler: h.BlockedRange.Delete, Mw: managerRequired},
		})

		blocked := apiGroup.Group("/blocked-ranges")
		blocked.Use(authMiddleware.RequireAuth())
		addRoutes(blocked, []route{
			{Method: http.MethodGet, Path: "", Handler: h.BlockedRange.List},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.Confirm},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Reservation.CheckIn},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/no-show", Handler: h.Reservation.NoShow},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: h.Reservation.Reschedule},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
