package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"legalbook/internal/handler/api"
	"legalbook/internal/handler/middleware"
	"legalbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	appointmentHandler *api.AppointmentHandler,
	cartHandler *api.CartHandler,
	orderHandler *api.OrderHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, appointmentHandler, cartHandler, orderHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	appointmentHandler *api.AppointmentHandler,
	cartHandler *api.CartHandler,
	orderHandler *api.OrderHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		consultations := apiGroup.Group("/consultations")
		{
			addRoutes(consultations, []route{
				{Method: http.MethodGet, Path: "/categories", Handler: catalogHandler.ListCategories},
				{Method: http.MethodGet, Path: "/categories/:id/availability", Handler: catalogHandler.GetAvailability},
				{Method: http.MethodGet, Path: "/categories/:id/slot-check", Handler: catalogHandler.CheckSlot},
			})

			authRequired := consultations.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/appointments", Handler: appointmentHandler.Book},
				{Method: http.MethodGet, Path: "/appointments", Handler: appointmentHandler.List},
				{Method: http.MethodDelete, Path: "/appointments/:id", Handler: appointmentHandler.Cancel},
				{Method: http.MethodGet, Path: "/cart", Handler: cartHandler.Get},
				{Method: http.MethodDelete, Path: "/cart", Handler: cartHandler.Clear},
				{Method: http.MethodPost, Path: "/cart/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPatch, Path: "/cart/items/:id", Handler: cartHandler.UpdateItem},
				{Method: http.MethodDelete, Path: "/cart/items/:id", Handler: cartHandler.RemoveItem},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "/checkout", Handler: orderHandler.Checkout},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.Get},
			})
		}

		// Authenticated by signature, not by bearer token.
		webhooks := apiGroup.Group("/webhooks")
		{
			addRoutes(webhooks, []route{
				{Method: http.MethodPost, Path: "/stripe", Handler: webhookHandler.HandleStripe},
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
