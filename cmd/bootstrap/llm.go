package bootstrap

import (
	"context"
	"log/slog"

	"appointment-assistant/internal/infra/llm"
	"appointment-assistant/internal/pkg/config"
	"appointment-assistant/internal/usecase/shared"

	"go.uber.org/fx"
)

var ResponderModule = fx.Module("responder",
	fx.Provide(
		NewResponder,
	),
)

// NewResponder falls back to canned replies when no Gemini key is configured.
func NewResponder(lc fx.Lifecycle, cfg config.Config) (shared.Responder, error) {
	if cfg.Gemini.APIKey == "" {
		slog.Info("GEMINI_API_KEY not set, using template replies")
		return llm.NewTemplateResponder(), nil
	}

	g, err := llm.NewGeminiResponder(context.Background(), cfg.Gemini)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return g.Close()
		},
	})
	slog.Info("Using Gemini responder", "model", cfg.Gemini.Model)
	return g, nil
}
