package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"appointment-assistant/internal/handler/api"
	"appointment-assistant/internal/handler/middleware"
	"appointment-assistant/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Chat  *api.ChatHandler
	Staff *api.StaffHandler
}

func NewHandlers(chat *api.ChatHandler, staff *api.StaffHandler) Handlers {
	return Handlers{Chat: chat, Staff: staff}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, staffMiddleware *middleware.StaffMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, staffMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	// Session before logging so request logs carry the session id
	engine.Use(middleware.SessionMiddleware(cfg))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, staffMiddleware *middleware.StaffMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/chat", Handler: h.Chat.Chat},
		{Method: http.MethodPost, Path: "/reset", Handler: h.Chat.Reset},
		{Method: http.MethodGet, Path: "/session", Handler: h.Chat.Session},
	})

	staff := engine.Group("/staff")
	{
		addRoutes(staff, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Staff.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Staff.Logout},
		})

		addRoutes(staff, []route{
			{Method: http.MethodGet, Path: "/appointments", Handler: h.Staff.Appointments, Mw: []gin.HandlerFunc{staffMiddleware.RequireStaff()}},
			{Method: http.MethodPost, Path: "/appointments/cancel", Handler: h.Staff.Cancel, Mw: []gin.HandlerFunc{staffMiddleware.RequireStaff()}},
			{Method: http.MethodGet, Path: "/income", Handler: h.Staff.Income, Mw: []gin.HandlerFunc{staffMiddleware.RequireStaff()}},
		})
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
