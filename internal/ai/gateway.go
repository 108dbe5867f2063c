// Package ai isolates every call to the generative-AI service behind narrow,
// typed operations. Each operation has a deterministic fallback: remote
// failures are logged and converted to synthetic data, never surfaced to the
// caller. The product stays usable with degraded intelligence rather than
// failing.
package ai

import (
	"context"
	"strings"
	"time"

	"github.com/talentflow/talentflow/internal/ai/gemini"
	"go.uber.org/zap"
)

// placeholderKey is the sample value people leave in their env files;
// treat it the same as no credential.
const placeholderKey = "your_gemini_api_key_here"

// Origin tags a gateway result so callers can distinguish model output from
// synthetic fallback data. Most callers don't care and ignore it.
type Origin int

const (
	OriginModel Origin = iota
	OriginFallback
)

func (o Origin) String() string {
	if o == OriginModel {
		return "model"
	}
	return "fallback"
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Config is the explicit gateway configuration. Mock mode and missing
// credentials both route every operation to fallback data.
type Config struct {
	APIKey   string
	Model    string
	MockMode bool
	// Question generation retries on transient failure with exponential
	// backoff: RetryBaseDelay, x2 per attempt, QuestionRetries attempts.
	QuestionRetries int
	RetryBaseDelay  time.Duration
}

func (c Config) hasCredential() bool {
	key := strings.TrimSpace(c.APIKey)
	return key != "" && key != placeholderKey
}

type Gateway struct {
	cfg    Config
	gen    contentGenerator
	logger *zap.Logger
}

// New builds a gateway over an existing generator. A nil generator forces
// fallback mode for every operation.
func New(cfg Config, gen contentGenerator, logger *zap.Logger) *Gateway {
	if cfg.QuestionRetries <= 0 {
		cfg.QuestionRetries = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 30 * time.Second
	}
	return &Gateway{cfg: cfg, gen: gen, logger: logger}
}

// NewWithGemini wires the gateway to the Gemini API when a usable credential
// is configured and mock mode is off; otherwise the gateway runs on
// fallbacks only.
func NewWithGemini(ctx context.Context, cfg Config, logger *zap.Logger) (*Gateway, error) {
	if cfg.MockMode || !cfg.hasCredential() {
		logger.Info("ai gateway running in fallback mode",
			zap.Bool("mock_mode", cfg.MockMode),
			zap.Bool("has_credential", cfg.hasCredential()),
		)
		return New(cfg, nil, logger), nil
	}

	gen, err := gemini.NewGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, err
	}
	return New(cfg, gen, logger), nil
}

func (g *Gateway) live() bool {
	return !g.cfg.MockMode && g.gen != nil
}

// generateJSON runs one JSON-mode call, logging any failure. The caller
// decides whether to fall back or retry.
func (g *Gateway) generateJSON(ctx context.Context, op, prompt string) (string, error) {
	raw, err := g.gen.GenerateJSON(ctx, prompt)
	if err != nil {
		g.logger.Warn("ai call failed", zap.String("op", op), zap.Error(err))
		return "", err
	}
	return raw, nil
}
