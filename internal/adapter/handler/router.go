package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/johnquangdev/smart-voice-assistant/docs"
	"github.com/johnquangdev/smart-voice-assistant/pkg/config"
)

// legacyPrefix is the path prefix the mobile client calls
const legacyPrefix = "/nlp"

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	assistantHandler *Assistant
	metricsHandler   http.Handler
}

// NewRouter creates a new router with all handlers. metricsHandler may be nil.
func NewRouter(cfg *config.Config, assistantHandler *Assistant, metricsHandler http.Handler) *Router {
	return &Router{
		cfg:              cfg,
		assistantHandler: assistantHandler,
		metricsHandler:   metricsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	rt.setupAssistantRoutes(e.Group(""))
	rt.setupAssistantRoutes(e.Group(legacyPrefix))

	if rt.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(rt.metricsHandler))
	}

	if rt.cfg == nil || !rt.cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
}

// setupAssistantRoutes configures the extraction and record routes
func (rt *Router) setupAssistantRoutes(g *echo.Group) {
	h := rt.assistantHandler

	g.GET("/", h.Home)
	g.GET("/health", h.Health)
	g.GET("/process/", h.ProcessText)
	// non-POST verbs are answered with "Invalid request method"
	g.Any("/voice-process/", h.ProcessVoice)

	g.GET("/calendar-events/", h.ListCalendarEvents)
	g.GET("/tasks/", h.ListTasks)
	g.GET("/summaries/", h.ListSummaries)
}
