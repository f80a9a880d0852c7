package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental-core/internal/handler/api"
	"car-rental-core/internal/handler/middleware"
	"car-rental-core/internal/pkg/config"
	"car-rental-core/internal/usecase/queries"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Offers  *api.OfferHandler
	Rentals *api.RentalHandler
	Worker  *api.WorkerHandler
}

func NewHandlers(offers *api.OfferHandler, rentals *api.RentalHandler, worker *api.WorkerHandler) Handlers {
	return Handlers{Offers: offers, Rentals: rentals, Worker: worker}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customerOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRole(queries.RoleCustomer)}

	apiGroup := engine.Group("/api")
	{
		offers := apiGroup.Group("/offers")
		offers.Use(customerOnly...)
		{
			addRoutes(offers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Offers.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Offers.Get},
			})
		}

		rentals := apiGroup.Group("/rentals")
		{
			// the link in the e-mail is opened before the customer signs in
			addRoutes(rentals, []route{
				{Method: http.MethodGet, Path: "/validate-token", Handler: h.Rentals.ValidateToken},
			})

			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "/send-confirmation", Handler: h.Rentals.SendConfirmation, Mw: customerOnly},
				{Method: http.MethodPost, Path: "/confirm", Handler: h.Rentals.Confirm, Mw: customerOnly},
				{Method: http.MethodGet, Path: "", Handler: h.Rentals.List, Mw: customerOnly},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Rentals.Get, Mw: customerOnly},
				{Method: http.MethodPost, Path: "/:id/return", Handler: h.Rentals.InitReturn, Mw: customerOnly},
			})
		}

		worker := apiGroup.Group("/worker")
		worker.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(queries.RoleEmployee))
		{
			addRoutes(worker, []route{
				{Method: http.MethodGet, Path: "/rentals", Handler: h.Worker.List},
				{Method: http.MethodPost, Path: "/rentals/:id/accept-return", Handler: h.Worker.AcceptReturn},
				{Method: http.MethodGet, Path: "/rentals/:id/return", Handler: h.Worker.GetReturn},
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
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
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
