package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"testing"
	"time"

	"bookstore-be/internal/constant"
	"bookstore-be/internal/dto"
	"bookstore-be/internal/entity"
	"bookstore-be/internal/repository/contract"
	"bookstore-be/internal/repository/specification"
	"bookstore-be/internal/repository/unitofwork"
	"bookstore-be/pkg/llm"
	"bookstore-be/pkg/recommend"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type fakeCache struct {
	data map[string]string
	sets map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string), sets: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := c.data[key]
	return v, ok
}

func (c *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) {
	c.sets[key] = value
	c.data[key] = value
}

type fakeUserRepo struct {
	exists bool
	err    error
}

func (r *fakeUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (r *fakeUserRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return r.exists, r.err
}

type fakePurchaseRepo struct {
	bookIDs []uuid.UUID
	err     error
}

func (r *fakePurchaseRepo) Create(_ context.Context, _ *entity.Purchase) error { return nil }
func (r *fakePurchaseRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Purchase, error) {
	return nil, nil
}
func (r *fakePurchaseRepo) BookIDsByUser(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return r.bookIDs, r.err
}

type fakeBookRepo struct {
	findAllResult []*entity.Book
	findOneResult *entity.Book
	similarResult []*entity.Book
	similarErr    error

	searchVector  []float32
	searchLimit   int
	searchExclude []uuid.UUID
}

func (r *fakeBookRepo) Create(_ context.Context, _ *entity.Book) error { return nil }
func (r *fakeBookRepo) Update(_ context.Context, _ *entity.Book) error { return nil }
func (r *fakeBookRepo) Delete(_ context.Context, _ uuid.UUID) error    { return nil }
func (r *fakeBookRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.Book, error) {
	return r.findOneResult, nil
}
func (r *fakeBookRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Book, error) {
	return r.findAllResult, nil
}
func (r *fakeBookRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.findAllResult)), nil
}
func (r *fakeBookRepo) UpdateEmbedding(_ context.Context, _ uuid.UUID, _ []float32) error {
	return nil
}
func (r *fakeBookRepo) SearchSimilar(_ context.Context, embedding []float32, limit int, excludeIDs []uuid.UUID) ([]*entity.Book, error) {
	r.searchVector = embedding
	r.searchLimit = limit
	r.searchExclude = excludeIDs
	return r.similarResult, r.similarErr
}

type fakeUnitOfWork struct {
	users     contract.UserRepository
	purchases contract.PurchaseRepository
	books     contract.BookRepository
	profiles  contract.ProfileRepository
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                 { return nil }
func (u *fakeUnitOfWork) Rollback() error               { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository         { return u.users }
func (u *fakeUnitOfWork) ProfileRepository() contract.ProfileRepository   { return u.profiles }
func (u *fakeUnitOfWork) BookRepository() contract.BookRepository         { return u.books }
func (u *fakeUnitOfWork) CategoryRepository() contract.CategoryRepository { return nil }
func (u *fakeUnitOfWork) PurchaseRepository() contract.PurchaseRepository { return u.purchases }
func (u *fakeUnitOfWork) OrderRepository() contract.OrderRepository       { return nil }
func (u *fakeUnitOfWork) OrderItemRepository() contract.OrderItemRepository {
	return nil
}
func (u *fakeUnitOfWork) ShippingAddressRepository() contract.ShippingAddressRepository {
	return nil
}

type fakeFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork { return f.uow }

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return s.response, s.err
}

type stubEmbedder struct {
	vector []float32
	err    error
}

func (s *stubEmbedder) Generate(_ context.Context, _ string) ([]float32, error) {
	return s.vector, s.err
}

type recommendationFixture struct {
	users    *fakeUserRepo
	purchase *fakePurchaseRepo
	books    *fakeBookRepo
	cache    *fakeCache
	embedder *stubEmbedder
	llm      *stubLLM
}

func newRecommendationFixture() *recommendationFixture {
	return &recommendationFixture{
		users:    &fakeUserRepo{exists: true},
		purchase: &fakePurchaseRepo{},
		books:    &fakeBookRepo{},
		cache:    newFakeCache(),
		embedder: &stubEmbedder{},
		llm:      &stubLLM{response: "<ul><li><strong>Dune</strong> by Frank Herbert - classic.</li></ul>"},
	}
}

func (f *recommendationFixture) service() IRecommendationService {
	uow := &fakeUnitOfWork{users: f.users, purchases: f.purchase, books: f.books}
	return NewRecommendationService(
		&fakeFactory{uow: uow},
		f.embedder,
		recommend.NewGenerator(f.llm),
		f.cache,
		noopLogger{},
	)
}

func bookWithEmbedding(title string, embedding []float32) *entity.Book {
	return &entity.Book{
		Id:          uuid.New(),
		Title:       title,
		Author:      "Some Author",
		Description: "Some description.",
		Embedding:   embedding,
	}
}

func TestByUserInvalidUser(t *testing.T) {
	f := newRecommendationFixture()
	f.users.exists = false

	got := f.service().ByUser(context.Background(), &dto.RecommendByUserRequest{UserId: uuid.New()})
	assert.Equal(t, constant.RecommendationInvalidUser, got)
}

func TestByUserNoPurchases(t *testing.T) {
	f := newRecommendationFixture()

	got := f.service().ByUser(context.Background(), &dto.RecommendByUserRequest{UserId: uuid.New()})
	assert.Equal(t, constant.RecommendationNoPurchases, got)
	assert.Empty(t, f.cache.sets)
}

func TestByUserNoEmbeddings(t *testing.T) {
	f := newRecommendationFixture()
	f.purchase.bookIDs = []uuid.UUID{uuid.New()}
	f.books.findAllResult = nil

	got := f.service().ByUser(context.Background(), &dto.RecommendByUserRequest{UserId: uuid.New()})
	assert.Equal(t, constant.RecommendationNoEmbeddings, got)
}

func TestByUserNoSimilarBooks(t *testing.T) {
	f := newRecommendationFixture()
	f.purchase.bookIDs = []uuid.UUID{uuid.New()}
	f.books.findAllResult = []*entity.Book{bookWithEmbedding("Dune", []float32{1, 0})}
	f.books.similarResult = nil

	got := f.service().ByUser(context.Background(), &dto.RecommendByUserRequest{UserId: uuid.New()})
	assert.Equal(t, constant.RecommendationNoSimilarForUser, got)
}

func TestByUserSearchesWithCentroidAndExclusions(t *testing.T) {
	f := newRecommendationFixture()
	past := []uuid.UUID{uuid.New(), uuid.New()}
	f.purchase.bookIDs = past
	f.books.findAllResult = []*entity.Book{
		bookWithEmbedding("A", []float32{1, 0}),
		bookWithEmbedding("B", []float32{0, 1}),
	}
	f.books.similarResult = []*entity.Book{bookWithEmbedding("C", []float32{0.5, 0.5})}

	userId := uuid.New()
	got := f.service().ByUser(context.Background(), &dto.RecommendByUserRequest{UserId: userId})

	assert.Equal(t, f.llm.response, got)
	assert.Equal(t, []float32{0.5, 0.5}, f.books.searchVector)
	assert.Equal(t, 3, f.books.searchLimit, "top_k defaults to 3 for the user mode")
	assert.Equal(t, past, f.books.searchExclude, "already purchased books must be excluded")

	cacheKey := fmt.Sprintf("recommendations:user:%s:%d", userId, 3)
	assert.Equal(t, f.llm.response, f.cache.sets[cacheKey])
}

func TestByUserFallbackIsNotCached(t *testing.T) {
	f := newRecommendationFixture()
	f.llm.err = errors.New("model offline")
	f.purchase.bookIDs = []uuid.UUID{uuid.New()}
	f.books.findAllResult = []*entity.Book{bookWithEmbedding("A", []float32{1, 0})}
	f.books.similarResult = []*entity.Book{bookWithEmbedding("Dune", []float32{0, 1})}

	got := f.service().ByUser(context.Background(), &dto.RecommendByUserRequest{UserId: uuid.New()})

	want := "<p>" + constant.RecommendationUserFallbackLead + "</p><ul><li><strong>Dune</strong> by Some Author</li></ul>"
	assert.Equal(t, want, got)
	assert.Empty(t, f.cache.sets, "fallback output must never be cached")
}

func TestByUserCacheHitSkipsRetrieval(t *testing.T) {
	f := newRecommendationFixture()
	f.users.err = errors.New("db down")

	userId := uuid.New()
	f.cache.data[fmt.Sprintf("recommendations:user:%s:%d", userId, 3)] = "cached narrative"

	got := f.service().ByUser(context.Background(), &dto.RecommendByUserRequest{UserId: userId})
	assert.Equal(t, "cached narrative", got)
}

func TestByUserRepositoryFailure(t *testing.T) {
	f := newRecommendationFixture()
	f.users.err = errors.New("db down")

	got := f.service().ByUser(context.Background(), &dto.RecommendByUserRequest{UserId: uuid.New()})
	assert.Equal(t, constant.RecommendationUnavailable, got)
}

func TestByTitleNotFound(t *testing.T) {
	f := newRecommendationFixture()
	f.books.findOneResult = nil

	got := f.service().ByTitle(context.Background(), &dto.RecommendByTitleRequest{Title: "Ghost Book"})
	assert.Equal(t, fmt.Sprintf(constant.RecommendationTitleNotFound, "Ghost Book"), got)
}

func TestByTitleMissingEmbedding(t *testing.T) {
	f := newRecommendationFixture()
	f.books.findOneResult = &entity.Book{Id: uuid.New(), Title: "Dune"}

	got := f.service().ByTitle(context.Background(), &dto.RecommendByTitleRequest{Title: "Dune"})
	assert.Equal(t, fmt.Sprintf(constant.RecommendationTitleNoEmbedding, "Dune"), got)
}

func TestByTitleSuccess(t *testing.T) {
	f := newRecommendationFixture()
	reference := bookWithEmbedding("Dune", []float32{1, 0})
	f.books.findOneResult = reference
	f.books.similarResult = []*entity.Book{bookWithEmbedding("Hyperion", []float32{0.9, 0.1})}

	got := f.service().ByTitle(context.Background(), &dto.RecommendByTitleRequest{Title: "DUNE"})

	assert.Equal(t, f.llm.response, got)
	assert.Equal(t, reference.Embedding, f.books.searchVector)
	assert.Equal(t, 5, f.books.searchLimit, "top_k defaults to 5 for the title mode")
	assert.Equal(t, []uuid.UUID{reference.Id}, f.books.searchExclude, "the reference book must not recommend itself")

	// Keys are case-insensitive on the title.
	assert.Equal(t, f.llm.response, f.cache.sets["recommendations:title:dune:5"])
}

func TestByTitleNoSimilarBooks(t *testing.T) {
	f := newRecommendationFixture()
	f.books.findOneResult = bookWithEmbedding("Dune", []float32{1, 0})
	f.books.similarResult = nil

	got := f.service().ByTitle(context.Background(), &dto.RecommendByTitleRequest{Title: "Dune"})
	assert.Equal(t, constant.RecommendationNoSimilarForTitle, got)
}

func TestByQueryEmbeddingFailure(t *testing.T) {
	f := newRecommendationFixture()
	f.embedder.err = errors.New("ollama unreachable")

	got := f.service().ByQuery(context.Background(), &dto.RecommendByQueryRequest{Query: "space opera"})
	assert.Equal(t, constant.RecommendationUnavailable, got)
}

func TestByQuerySuccess(t *testing.T) {
	f := newRecommendationFixture()
	f.embedder.vector = []float32{0.1, 0.2}
	f.books.similarResult = []*entity.Book{bookWithEmbedding("Hyperion", []float32{0.1, 0.2})}

	got := f.service().ByQuery(context.Background(), &dto.RecommendByQueryRequest{Query: "space opera", TopK: 2})

	assert.Equal(t, f.llm.response, got)
	assert.Equal(t, f.embedder.vector, f.books.searchVector)
	assert.Equal(t, 2, f.books.searchLimit)
	assert.Nil(t, f.books.searchExclude)

	cacheKey := fmt.Sprintf("recommendations:query:%x:%d", sha256.Sum256([]byte("space opera")), 2)
	assert.Equal(t, f.llm.response, f.cache.sets[cacheKey])
}

func TestByQueryNoSimilarBooks(t *testing.T) {
	f := newRecommendationFixture()
	f.embedder.vector = []float32{0.1, 0.2}
	f.books.similarResult = nil

	got := f.service().ByQuery(context.Background(), &dto.RecommendByQueryRequest{Query: "space opera"})
	assert.Equal(t, constant.RecommendationNoSimilarForQuery, got)
}

func TestMeanEmbedding(t *testing.T) {
	books := []*entity.Book{
		{Embedding: []float32{1, 0, 3}},
		{Embedding: []float32{0, 2, 3}},
	}

	assert.Equal(t, []float32{0.5, 1, 3}, meanEmbedding(books))
	assert.Nil(t, meanEmbedding(nil))
}
