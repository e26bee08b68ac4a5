package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/lezzetly/lezzetly-backend/config"
)

// ChatOptions control a single structured-generation request.
type ChatOptions struct {
	// Temperature passed to the provider. Zero means the provider default.
	Temperature float64
	// ForceJSON asks the provider for a structured (JSON) reply.
	ForceJSON bool
	// MaxRetries bounds rate-limit retries against the primary provider.
	// Zero means defaultMaxRetries.
	MaxRetries int
}

const defaultMaxRetries = 3

// ChatMessage is one message in a provider chat request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []ChatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	Temperature    float64           `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// rateLimitPatterns are matched against provider error bodies when the
// status code alone does not say "rate limited".
var rateLimitPatterns = []string{"rate limit", "rate_limit", "too many requests", "quota exceeded"}

// providerClient talks to one OpenAI-compatible chat-completions endpoint.
type providerClient struct {
	name   string
	model  string
	client *resty.Client
}

func newProviderClient(cfg config.ProviderSettings) *providerClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &providerClient{
		name:   cfg.Name,
		model:  cfg.Model,
		client: client,
	}
}

func (p *providerClient) chat(ctx context.Context, systemPrompt, userPrompt string, opts ChatOptions) (string, error) {
	req := chatRequest{
		Model: p.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: opts.Temperature,
	}
	if opts.ForceJSON {
		req.ResponseFormat = map[string]string{"type": "json_object"}
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("provider %s: %w", p.name, err)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return "", &RateLimitError{Provider: p.name, RetryAfter: retryAfterHint(resp)}
	}
	if resp.StatusCode() != http.StatusOK {
		body := resp.String()
		lower := strings.ToLower(body)
		for _, pattern := range rateLimitPatterns {
			if strings.Contains(lower, pattern) {
				return "", &RateLimitError{Provider: p.name, RetryAfter: retryAfterHint(resp)}
			}
		}
		return "", fmt.Errorf("provider %s returned status %d: %s", p.name, resp.StatusCode(), body)
	}

	var result chatResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("provider %s: failed to parse response: %w", p.name, err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("provider %s: no choices in response", p.name)
	}
	return result.Choices[0].Message.Content, nil
}

func retryAfterHint(resp *resty.Response) time.Duration {
	if v := resp.Header().Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 0
}

// LLMService is the generation orchestrator: it drives the primary provider
// with bounded rate-limit retries and falls back to the secondary provider
// exactly once, with identical parameters, when the primary stays rate
// limited. Any non-rate-limit failure propagates without fallback.
type LLMService struct {
	primary         *providerClient
	fallback        *providerClient
	fallbackEnabled bool
	logger          *zap.Logger

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewLLMService creates the orchestrator from configuration.
func NewLLMService(cfg *config.Config, logger *zap.Logger) (*LLMService, error) {
	if cfg.AI.Primary.APIKey == "" {
		return nil, fmt.Errorf("primary AI provider API key must be set")
	}

	svc := &LLMService{
		primary:         newProviderClient(cfg.AI.Primary),
		fallbackEnabled: cfg.AI.FallbackEnabled,
		logger:          logger,
		sleep:           time.Sleep,
	}
	if cfg.AI.FallbackEnabled {
		if cfg.AI.Fallback.APIKey == "" {
			return nil, fmt.Errorf("fallback is enabled but the fallback provider API key is not set")
		}
		svc.fallback = newProviderClient(cfg.AI.Fallback)
	}
	return svc, nil
}

// Chat runs one generation request through the provider state machine:
// Attempt Primary -> [rate limited?] -> Attempt Secondary -> Success/Fail.
func (s *LLMService) Chat(ctx context.Context, systemPrompt, userPrompt string, opts ChatOptions) (string, error) {
	attempts := opts.MaxRetries
	if attempts <= 0 {
		attempts = defaultMaxRetries
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		reply, err := s.primary.chat(ctx, systemPrompt, userPrompt, opts)
		if err == nil {
			return reply, nil
		}
		if !IsRateLimited(err) {
			return "", err
		}
		lastErr = err
		s.logger.Warn("primary provider rate limited",
			zap.String("provider", s.primary.name),
			zap.Int("attempt", attempt))
		if attempt < attempts {
			s.sleep(time.Duration(200*attempt) * time.Millisecond)
		}
	}

	if !s.fallbackEnabled || s.fallback == nil {
		return "", lastErr
	}

	s.logger.Info("falling back to secondary provider",
		zap.String("provider", s.fallback.name))
	reply, err := s.fallback.chat(ctx, systemPrompt, userPrompt, opts)
	if err != nil {
		return "", err
	}
	return reply, nil
}
