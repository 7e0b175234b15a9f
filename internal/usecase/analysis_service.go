package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cookeasy/backend/internal/domain"
)

// AnalysisServiceConfig holds configuration for the analysis service
type AnalysisServiceConfig struct {
	CacheTTL time.Duration
}

// AnalysisResult is the outcome of analysing one photo
type AnalysisResult struct {
	Ingredients []domain.Ingredient `json:"ingredients"`
	Session     *domain.Session     `json:"session"`
	Cached      bool                `json:"cached"`
}

// AnalysisService extracts ingredients from a photo and builds the review list
type AnalysisService struct {
	cache     domain.CacheRepository
	extractor domain.IngredientExtractor
	review    *ReviewService
	cacheTTL  time.Duration
	logger    zerolog.Logger
}

// NewAnalysisService creates a new analysis service with dependencies
func NewAnalysisService(
	cache domain.CacheRepository,
	extractor domain.IngredientExtractor,
	review *ReviewService,
	config AnalysisServiceConfig,
	logger zerolog.Logger,
) *AnalysisService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &AnalysisService{
		cache:     cache,
		extractor: extractor,
		review:    review,
		cacheTTL:  cacheTTL,
		logger:    logger.With().Str("component", "analysis").Logger(),
	}
}

// Analyze extracts ingredients from image and replaces the caller's review list.
// Flow: check cache -> call extractor -> cache -> resolve -> Upload -> Review.
// Identical photos are served from the cache.
func (s *AnalysisService) Analyze(ctx context.Context, user domain.User, image []byte, mimeType string) (*AnalysisResult, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: image is required", domain.ErrInvalidRequest)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: unsupported content type %q", domain.ErrInvalidRequest, mimeType)
	}

	key := analysisCacheKey(image)
	ingredients, err := s.getFromCache(ctx, key)
	cached := err == nil
	if !cached {
		ingredients, err = s.extractor.ExtractIngredients(ctx, image, mimeType)
		if err != nil {
			s.logger.Error().Err(err).Str("user", user.ID).Msg("ingredient extraction failed")
			return nil, err
		}
		if err := s.cache.Set(ctx, key, ingredients, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to cache analysis")
		}
	}

	session, err := s.review.Build(ctx, user, ingredients)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user", user.ID).Int("ingredients", len(ingredients)).Bool("cached", cached).Msg("photo analysed")
	return &AnalysisResult{Ingredients: ingredients, Session: session, Cached: cached}, nil
}

// analysisCacheKey keys results by image content. Format: "analysis:{sha256}"
func analysisCacheKey(image []byte) string {
	sum := sha256.Sum256(image)
	return "analysis:" + hex.EncodeToString(sum[:])
}

// getFromCache reads a cached ingredient list. Values come back as decoded JSON
// from either backend, so they are re-encoded into the typed slice.
func (s *AnalysisService) getFromCache(ctx context.Context, key string) ([]domain.Ingredient, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, err
	}

	if ingredients, ok := value.([]domain.Ingredient); ok {
		return ingredients, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}
	var ingredients []domain.Ingredient
	if err := json.Unmarshal(data, &ingredients); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return ingredients, nil
}
