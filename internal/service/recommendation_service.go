package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"bookstore-be/internal/constant"
	"bookstore-be/internal/dto"
	"bookstore-be/internal/entity"
	"bookstore-be/internal/pkg/logger"
	"bookstore-be/internal/repository/contract"
	"bookstore-be/internal/repository/specification"
	"bookstore-be/internal/repository/unitofwork"
	"bookstore-be/pkg/embedding"
	"bookstore-be/pkg/recommend"

	"github.com/google/uuid"
)

const (
	recommendationCacheTTL = 1 * time.Hour

	defaultUserTopK  = 3
	defaultTitleTopK = 5
	defaultQueryTopK = 5
)

// IRecommendationService never returns an error: every outcome, including
// internal failures, is a human-readable string the storefront renders
// directly.
type IRecommendationService interface {
	ByUser(ctx context.Context, req *dto.RecommendByUserRequest) string
	ByTitle(ctx context.Context, req *dto.RecommendByTitleRequest) string
	ByQuery(ctx context.Context, req *dto.RecommendByQueryRequest) string
}

type recommendationService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	generator         *recommend.Generator
	cache             contract.RecommendationCache
	logger            logger.ILogger
}

func NewRecommendationService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	generator *recommend.Generator,
	cache contract.RecommendationCache,
	log logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		generator:         generator,
		cache:             cache,
		logger:            log,
	}
}

func (s *recommendationService) ByUser(ctx context.Context, req *dto.RecommendByUserRequest) string {
	topK := req.TopK
	if topK <= 0 {
		topK = defaultUserTopK
	}

	cacheKey := fmt.Sprintf("recommendations:user:%s:%d", req.UserId, topK)
	if cached, hit := s.cache.Get(ctx, cacheKey); hit {
		s.logger.Info("recommendation", "cache hit for user recommendations", map[string]interface{}{
			"user_id": req.UserId.String(),
		})
		return cached
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	exists, err := uow.UserRepository().Exists(ctx, req.UserId)
	if err != nil {
		return s.unavailable("user lookup failed", err)
	}
	if !exists {
		return constant.RecommendationInvalidUser
	}

	pastBookIDs, err := uow.PurchaseRepository().BookIDsByUser(ctx, req.UserId)
	if err != nil {
		return s.unavailable("purchase lookup failed", err)
	}
	if len(pastBookIDs) == 0 {
		return constant.RecommendationNoPurchases
	}

	embedded, err := uow.BookRepository().FindAll(ctx,
		specification.ByIDs{IDs: pastBookIDs},
		specification.HasEmbedding{},
	)
	if err != nil {
		return s.unavailable("embedding lookup failed", err)
	}
	if len(embedded) == 0 {
		return constant.RecommendationNoEmbeddings
	}

	centroid := meanEmbedding(embedded)

	similar, err := uow.BookRepository().SearchSimilar(ctx, centroid, topK, pastBookIDs)
	if err != nil {
		return s.unavailable("similarity search failed", err)
	}
	if len(similar) == 0 {
		return constant.RecommendationNoSimilarForUser
	}

	items := toItems(similar)
	prompt := fmt.Sprintf(constant.RecommendationUserPrompt, recommend.ContextBlock(items))
	narrative, generated := s.generator.Generate(ctx, prompt, items, constant.RecommendationUserFallbackLead)
	if generated {
		s.cache.Set(ctx, cacheKey, narrative, recommendationCacheTTL)
	}
	return narrative
}

func (s *recommendationService) ByTitle(ctx context.Context, req *dto.RecommendByTitleRequest) string {
	topK := req.TopK
	if topK <= 0 {
		topK = defaultTitleTopK
	}

	cacheKey := fmt.Sprintf("recommendations:title:%s:%d", strings.ToLower(req.Title), topK)
	if cached, hit := s.cache.Get(ctx, cacheKey); hit {
		s.logger.Info("recommendation", "cache hit for title recommendations", map[string]interface{}{
			"title": req.Title,
		})
		return cached
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// First on multiple matches, the way the storefront resolves titles.
	reference, err := uow.BookRepository().FindOne(ctx, specification.TitleIEq{Title: req.Title})
	if err != nil {
		return s.unavailable("title lookup failed", err)
	}
	if reference == nil {
		return fmt.Sprintf(constant.RecommendationTitleNotFound, req.Title)
	}
	if reference.Embedding == nil {
		return fmt.Sprintf(constant.RecommendationTitleNoEmbedding, req.Title)
	}

	similar, err := uow.BookRepository().SearchSimilar(ctx, reference.Embedding, topK, []uuid.UUID{reference.Id})
	if err != nil {
		return s.unavailable("similarity search failed", err)
	}
	if len(similar) == 0 {
		return constant.RecommendationNoSimilarForTitle
	}

	items := toItems(similar)
	prompt := fmt.Sprintf(constant.RecommendationTitlePrompt, req.Title, recommend.ContextBlock(items))
	narrative, generated := s.generator.Generate(ctx, prompt, items, constant.RecommendationTitleFallbackLead)
	if generated {
		s.cache.Set(ctx, cacheKey, narrative, recommendationCacheTTL)
	}
	return narrative
}

func (s *recommendationService) ByQuery(ctx context.Context, req *dto.RecommendByQueryRequest) string {
	topK := req.TopK
	if topK <= 0 {
		topK = defaultQueryTopK
	}

	cacheKey := fmt.Sprintf("recommendations:query:%x:%d", sha256.Sum256([]byte(req.Query)), topK)
	if cached, hit := s.cache.Get(ctx, cacheKey); hit {
		s.logger.Info("recommendation", "cache hit for query recommendations", map[string]interface{}{
			"query": truncate(req.Query, 50),
		})
		return cached
	}

	// Queries are embedded by the same provider that embeds catalog rows,
	// so both sides live in the same 384-dim space.
	queryEmbedding, err := s.embeddingProvider.Generate(ctx, req.Query)
	if err != nil {
		return s.unavailable("query embedding failed", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	similar, err := uow.BookRepository().SearchSimilar(ctx, queryEmbedding, topK, nil)
	if err != nil {
		return s.unavailable("similarity search failed", err)
	}
	if len(similar) == 0 {
		return constant.RecommendationNoSimilarForQuery
	}

	items := toItems(similar)
	prompt := fmt.Sprintf(constant.RecommendationQueryPrompt, req.Query, recommend.ContextBlock(items))
	narrative, generated := s.generator.Generate(ctx, prompt, items, constant.RecommendationQueryFallbackLead)
	if generated {
		s.cache.Set(ctx, cacheKey, narrative, recommendationCacheTTL)
	}
	return narrative
}

func (s *recommendationService) unavailable(reason string, err error) string {
	s.logger.Error("recommendation", reason, map[string]interface{}{
		"error": err.Error(),
	})
	return constant.RecommendationUnavailable
}

// meanEmbedding is the arithmetic mean of the books' embeddings, the
// user's taste centroid. Books without embeddings must be filtered out
// before calling.
func meanEmbedding(books []*entity.Book) []float32 {
	if len(books) == 0 {
		return nil
	}
	dims := len(books[0].Embedding)
	sums := make([]float64, dims)
	for _, b := range books {
		for i, v := range b.Embedding {
			if i < dims {
				sums[i] += float64(v)
			}
		}
	}
	mean := make([]float32, dims)
	n := float64(len(books))
	for i, sum := range sums {
		mean[i] = float32(sum / n)
	}
	return mean
}

func toItems(books []*entity.Book) []recommend.Item {
	items := make([]recommend.Item, len(books))
	for i, b := range books {
		items[i] = recommend.Item{
			Title:       b.Title,
			Author:      b.Author,
			Description: b.Description,
		}
	}
	return items
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
