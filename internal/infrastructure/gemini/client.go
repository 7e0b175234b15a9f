package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/cookeasy/backend/internal/domain"
)

const extractionPrompt = `Analyze this recipe image. Extract all visible ingredients or ingredients inferred from the dish name.
Return a JSON object with a key "ingredients" containing an array of objects with "name" and optional "quantity" fields.`

// generator is the part of the genai models API the client uses
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config holds configuration for the Gemini client
type Config struct {
	APIKey            string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute float64
	Burst             int
}

// Client extracts ingredients from recipe photos with the Gemini API
type Client struct {
	models      generator
	model       string
	timeout     time.Duration
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewClient creates a Gemini API client
func NewClient(ctx context.Context, config Config, logger zerolog.Logger) (*Client, error) {
	if config.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newClient(genaiClient.Models, config, logger), nil
}

func newClient(models generator, config Config, logger zerolog.Logger) *Client {
	if config.Model == "" {
		config.Model = "gemini-2.5-flash"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = 30
	}
	if config.Burst <= 0 {
		config.Burst = 5
	}

	return &Client{
		models:      models,
		model:       config.Model,
		timeout:     config.Timeout,
		rateLimiter: rate.NewLimiter(rate.Limit(config.RequestsPerMinute/60), config.Burst),
		logger:      logger.With().Str("component", "gemini").Logger(),
	}
}

type extractionResponse struct {
	Ingredients []domain.Ingredient `json:"ingredients"`
}

// ExtractIngredients sends the photo and the extraction prompt in one request.
// Errors and malformed replies are not retried.
func (c *Client) ExtractIngredients(ctx context.Context, image []byte, mimeType string) ([]domain.Ingredient, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("rate limiter wait failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(extractionPrompt),
		}, genai.RoleUser),
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		c.logger.Error().Err(err).Str("model", c.model).Msg("generate content failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}

	ingredients, err := parseIngredients(resp.Text())
	if err != nil {
		c.logger.Error().Err(err).Str("model", c.model).Msg("malformed analysis response")
		return nil, err
	}

	c.logger.Info().
		Str("model", c.model).
		Int("ingredients", len(ingredients)).
		Dur("took", time.Since(start)).
		Msg("ingredients extracted")
	return ingredients, nil
}

// parseIngredients decodes the model reply. An empty reply means no ingredients.
func parseIngredients(text string) ([]domain.Ingredient, error) {
	text = stripCodeFence(text)
	if text == "" {
		text = "{}"
	}

	var parsed extractionResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrAnalysisFailed, err)
	}

	ingredients := make([]domain.Ingredient, 0, len(parsed.Ingredients))
	for _, ing := range parsed.Ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		if ing.Name == "" {
			continue
		}
		ing.Quantity = strings.TrimSpace(ing.Quantity)
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Unavailable is used when no API key is configured; every call fails
type Unavailable struct{}

func (Unavailable) ExtractIngredients(ctx context.Context, image []byte, mimeType string) ([]domain.Ingredient, error) {
	return nil, fmt.Errorf("%w: image analysis is not configured", domain.ErrAnalysisFailed)
}
