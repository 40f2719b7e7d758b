package llm

import (
	"context"
	"strings"
	"time"

	"appointment-assistant/internal/pkg/config"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/usecase/shared"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errs.New("gemini returned no text")

type GeminiResponder struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiResponder(ctx context.Context, cfg config.GeminiConfig) (*GeminiResponder, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create gemini client")
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))

	return &GeminiResponder{
		client:  client,
		model:   model,
		timeout: cfg.Timeout,
	}, nil
}

func (g *GeminiResponder) Respond(ctx context.Context, p shared.Prompt) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(p)))
	if err != nil {
		return "", errs.Wrap(err, "gemini generate failed")
	}

	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (g *GeminiResponder) Close() error {
	return g.client.Close()
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return strings.TrimSpace(sb.String())
}
