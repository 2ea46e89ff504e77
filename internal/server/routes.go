package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/reagent/reagent/internal/agent"
	"github.com/reagent/reagent/internal/config"
	"github.com/reagent/reagent/internal/handler"
	"github.com/reagent/reagent/internal/llm"
	"github.com/reagent/reagent/internal/middleware"
	"github.com/reagent/reagent/internal/service"
	"github.com/reagent/reagent/internal/tools"
)

// BuildAgent wires services, registry and completion client into one agent.
// The result is immutable after construction and shared by every request.
func BuildAgent(cfg *config.Config) (*agent.Agent, *tools.Registry) {
	hc := &http.Client{Timeout: config.DefaultToolTimeout}

	registry := tools.NewRegistry(
		tools.CalculatorTool(),
		tools.WeatherTool(service.NewOpenMeteoService(hc, "", "")),
		tools.EarthquakeTool(service.NewUSGSService(hc, "")),
		tools.PapersTool(service.NewArxivService(hc, "")),
		tools.CurrencyTool(service.NewFrankfurterService(hc, "")),
	)

	client := llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.Model, cfg.AnthropicBaseURL, config.DefaultLLMTimeout)
	a := agent.New(client, registry, cfg.MaxIterations, llm.Options{
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
	})
	return a, registry
}

func (s *Server) setupRoutes() (http.Handler, error) {
	cfg := s.cfg

	reactAgent, registry := BuildAgent(cfg)

	log.Info().
		Str("model", cfg.Model).
		Int("max_iterations", cfg.MaxIterations).
		Strs("tools", registry.Names()).
		Bool("auth_enabled", cfg.EnableAuth && len(cfg.APIKeys) > 0).
		Msg("service configuration")

	if cfg.EnableAuth && len(cfg.APIKeys) == 0 {
		log.Warn().Msg("WARNING: auth enabled but no API keys configured - all API requests will be rejected")
	}

	healthH := handler.NewHealthHandler(cfg.Model)
	chatH := handler.NewChatHandler(reactAgent, cfg.AgentTimeout)
	toolsH := handler.NewToolsHandler(registry)

	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))
	r.Use(chiMiddleware.RealIP)

	// Public routes
	r.Get("/health", healthH.Health)
	r.Get("/", healthH.Health)

	// Auth + rate limiting for API routes
	apiMiddleware := []func(http.Handler) http.Handler{
		middleware.RateLimit(cfg.RateLimitPerMinute),
	}
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		apiMiddleware = append(apiMiddleware, middleware.Auth(cfg.APIKeys, cfg.APIKeyHeader))
	}

	r.Group(func(r chi.Router) {
		for _, m := range apiMiddleware {
			r.Use(m)
		}

		r.Route(cfg.APIPrefix, func(r chi.Router) {
			r.Post("/chat", chatH.Chat)
			r.Get("/tools", toolsH.ListTools)
		})
	})

	return r, nil
}
