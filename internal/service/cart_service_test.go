package service

import (
	"context"
	"testing"

	"bookstore-be/internal/dto"
	"bookstore-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSessionStore struct {
	data map[string][]byte
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{data: make(map[string][]byte)}
}

func (s *fakeSessionStore) Get(_ context.Context, sessionID string) ([]byte, bool, error) {
	data, ok := s.data[sessionID]
	return data, ok, nil
}

func (s *fakeSessionStore) Set(_ context.Context, sessionID string, data []byte) error {
	s.data[sessionID] = data
	return nil
}

func (s *fakeSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.data, sessionID)
	return nil
}

type fakeProfileRepo struct {
	profile   *entity.Profile
	snapshots map[uuid.UUID]string
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{snapshots: make(map[uuid.UUID]string)}
}

func (r *fakeProfileRepo) FindByUserId(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
	return r.profile, nil
}

func (r *fakeProfileRepo) Save(_ context.Context, _ *entity.Profile) error { return nil }

func (r *fakeProfileRepo) UpdateOldCart(_ context.Context, userId uuid.UUID, snapshot string) error {
	r.snapshots[userId] = snapshot
	return nil
}

type cartFixture struct {
	store    *fakeSessionStore
	books    *fakeBookRepo
	profiles *fakeProfileRepo
	svc      ICartService
}

func newCartFixture() *cartFixture {
	store := newFakeSessionStore()
	books := &fakeBookRepo{}
	profiles := newFakeProfileRepo()
	uow := &fakeUnitOfWork{books: books, profiles: profiles}
	return &cartFixture{
		store:    store,
		books:    books,
		profiles: profiles,
		svc:      NewCartService(store, &fakeFactory{uow: uow}, noopLogger{}),
	}
}

func catalogBook(price float64) *entity.Book {
	return &entity.Book{
		Id:     uuid.New(),
		Title:  "Dune",
		Author: "Frank Herbert",
		Price:  price,
	}
}

func TestCartSummaryMergesCatalogData(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	book := catalogBook(12.5)
	f.books.findAllResult = []*entity.Book{book}

	resp, err := f.svc.Add(ctx, "s1", nil, &dto.AddCartItemRequest{BookId: book.Id, Quantity: 2})
	assert.NoError(t, err)
	assert.True(t, resp.Added)

	assert.Equal(t, 1, resp.Cart.Count)
	assert.Equal(t, 25.0, resp.Cart.Total)

	item := resp.Cart.Items[0]
	assert.Equal(t, book.Id, item.BookId)
	assert.Equal(t, "Dune", item.Title)
	assert.Equal(t, 12.5, item.UnitPrice)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 25.0, item.LineTotal)
	assert.True(t, item.InCatalog)
}

func TestCartSummarySalePriceWins(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	book := catalogBook(20)
	book.IsSale = true
	book.SalePrice = 15
	f.books.findAllResult = []*entity.Book{book}

	resp, err := f.svc.Add(ctx, "s1", nil, &dto.AddCartItemRequest{BookId: book.Id, Quantity: 1})
	assert.NoError(t, err)
	assert.Equal(t, 15.0, resp.Cart.Items[0].UnitPrice)
	assert.Equal(t, 15.0, resp.Cart.Total)
}

func TestCartTotalMixedRegularAndSale(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()

	regular := catalogBook(10)
	sale := catalogBook(20)
	sale.IsSale = true
	sale.SalePrice = 15
	f.books.findAllResult = []*entity.Book{regular, sale}

	_, err := f.svc.Add(ctx, "s1", nil, &dto.AddCartItemRequest{BookId: regular.Id, Quantity: 2})
	assert.NoError(t, err)

	resp, err := f.svc.Add(ctx, "s1", nil, &dto.AddCartItemRequest{BookId: sale.Id, Quantity: 1})
	assert.NoError(t, err)

	// 10.00 * 2 + 15.00 * 1
	assert.Equal(t, 35.0, resp.Cart.Total)
}

func TestCartSummaryMissingBookGetsZeroPrice(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	f.books.findAllResult = nil // book left the catalog

	resp, err := f.svc.Add(ctx, "s1", nil, &dto.AddCartItemRequest{BookId: uuid.New(), Quantity: 3})
	assert.NoError(t, err)

	item := resp.Cart.Items[0]
	assert.False(t, item.InCatalog)
	assert.Equal(t, 0.0, item.UnitPrice)
	assert.Equal(t, 0.0, item.LineTotal)
	assert.Equal(t, 0.0, resp.Cart.Total)
	assert.Equal(t, 1, resp.Cart.Count, "uncatalogued entries still count")
}

func TestCartAddDuplicateKeepsQuantity(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	book := catalogBook(10)
	f.books.findAllResult = []*entity.Book{book}

	first, err := f.svc.Add(ctx, "s1", nil, &dto.AddCartItemRequest{BookId: book.Id, Quantity: 2})
	assert.NoError(t, err)
	assert.True(t, first.Added)

	second, err := f.svc.Add(ctx, "s1", nil, &dto.AddCartItemRequest{BookId: book.Id, Quantity: 9})
	assert.NoError(t, err)
	assert.False(t, second.Added)
	assert.Equal(t, 2, second.Cart.Items[0].Quantity)
}

func TestCartAddMirrorsToProfile(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	book := catalogBook(10)
	f.books.findAllResult = []*entity.Book{book}
	userId := uuid.New()

	_, err := f.svc.Add(ctx, "s1", &userId, &dto.AddCartItemRequest{BookId: book.Id, Quantity: 1})
	assert.NoError(t, err)

	assert.Contains(t, f.profiles.snapshots[userId], book.Id.String())
}

func TestCartUpdateAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()

	resp, err := f.svc.Update(ctx, "s1", nil, &dto.UpdateCartItemRequest{BookId: uuid.New(), Quantity: 5})
	assert.NoError(t, err)
	assert.False(t, resp.Changed)
	assert.Equal(t, 0, resp.Cart.Count)
}

func TestCartRemove(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	book := catalogBook(10)
	f.books.findAllResult = []*entity.Book{book}

	_, err := f.svc.Add(ctx, "s1", nil, &dto.AddCartItemRequest{BookId: book.Id, Quantity: 1})
	assert.NoError(t, err)

	resp, err := f.svc.Remove(ctx, "s1", nil, &dto.RemoveCartItemRequest{BookId: book.Id})
	assert.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Equal(t, 0, resp.Cart.Count)
}

func TestCartClear(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	book := catalogBook(10)
	f.books.findAllResult = []*entity.Book{book}

	_, err := f.svc.Add(ctx, "s1", nil, &dto.AddCartItemRequest{BookId: book.Id, Quantity: 1})
	assert.NoError(t, err)

	assert.NoError(t, f.svc.Clear(ctx, "s1"))

	summary, err := f.svc.Summary(ctx, "s1", nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
}

func TestCartRestoreFromProfileSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	book := catalogBook(10)
	f.books.findAllResult = []*entity.Book{book}
	userId := uuid.New()

	// Legacy snapshots stored a bare int per book id.
	f.profiles.profile = &entity.Profile{
		UserId:  userId,
		OldCart: `{"` + book.Id.String() + `": 4}`,
	}

	assert.NoError(t, f.svc.Restore(ctx, "s1", userId))

	summary, err := f.svc.Summary(ctx, "s1", nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 4, summary.Items[0].Quantity)
}

func TestCartRestoreWithoutSnapshotIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()

	assert.NoError(t, f.svc.Restore(ctx, "s1", uuid.New()))

	summary, err := f.svc.Summary(ctx, "s1", nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
}
