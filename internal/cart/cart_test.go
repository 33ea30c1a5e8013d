package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeStore keeps carts in a map and counts writes so tests can assert
// on persistence behavior.
type fakeStore struct {
	data    map[string][]byte
	setOps  int
	deleted int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) Get(_ context.Context, sessionID string) ([]byte, bool, error) {
	data, ok := s.data[sessionID]
	return data, ok, nil
}

func (s *fakeStore) Set(_ context.Context, sessionID string, data []byte) error {
	s.setOps++
	s.data[sessionID] = data
	return nil
}

func (s *fakeStore) Delete(_ context.Context, sessionID string) error {
	s.deleted++
	delete(s.data, sessionID)
	return nil
}

func TestLoadEmptySession(t *testing.T) {
	store := newFakeStore()
	c, err := Load(context.Background(), store, "s1")

	assert.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, store.setOps, "loading an empty session must not write")
}

func TestLoadMigratesLegacyIntEntries(t *testing.T) {
	store := newFakeStore()
	store.data["s1"] = []byte(`{"book-a": 3, "book-b": {"quantity": 2}}`)

	c, err := Load(context.Background(), store, "s1")
	assert.NoError(t, err)

	assert.Equal(t, map[string]int{"book-a": 3, "book-b": 2}, c.Quantities())
	assert.Equal(t, 1, store.setOps, "migration must re-save exactly once")

	// The persisted form is fully upgraded.
	var saved map[string]Line
	assert.NoError(t, json.Unmarshal(store.data["s1"], &saved))
	assert.Equal(t, map[string]Line{
		"book-a": {Quantity: 3},
		"book-b": {Quantity: 2},
	}, saved)

	// A second load sees no legacy entries and does not write again.
	c2, err := Load(context.Background(), store, "s1")
	assert.NoError(t, err)
	assert.Equal(t, c.Quantities(), c2.Quantities())
	assert.Equal(t, 1, store.setOps)
}

func TestLoadModernFormatNoRewrite(t *testing.T) {
	store := newFakeStore()
	store.data["s1"] = []byte(`{"book-a": {"quantity": 4}}`)

	c, err := Load(context.Background(), store, "s1")
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"book-a": 4}, c.Quantities())
	assert.Equal(t, 0, store.setOps)
}

func TestLoadCorruptPayload(t *testing.T) {
	store := newFakeStore()
	store.data["s1"] = []byte(`not json`)

	_, err := Load(context.Background(), store, "s1")
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, _ := Load(ctx, store, "s1")

	added, err := c.Add(ctx, "book-a", 2)
	assert.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, map[string]int{"book-a": 2}, c.Quantities())

	// Adding the same product again keeps the original quantity.
	added, err = c.Add(ctx, "book-a", 9)
	assert.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, map[string]int{"book-a": 2}, c.Quantities())

	// Both calls persist.
	assert.Equal(t, 2, store.setOps)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, _ := Load(ctx, store, "s1")
	_, _ = c.Add(ctx, "book-a", 1)

	changed, err := c.Update(ctx, "book-a", 5)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, map[string]int{"book-a": 5}, c.Quantities())

	// Updating an absent product must not create an entry.
	changed, err = c.Update(ctx, "book-b", 5)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, c.Len())
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, _ := Load(ctx, store, "s1")
	_, _ = c.Add(ctx, "book-a", 1)

	removed, err := c.Remove(ctx, "book-a")
	assert.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, c.Len())

	removed, err = c.Remove(ctx, "book-a")
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestClearDropsSessionKey(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, _ := Load(ctx, store, "s1")
	_, _ = c.Add(ctx, "book-a", 1)

	assert.NoError(t, c.Clear(ctx))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 1, store.deleted)
	_, found, _ := store.Get(ctx, "s1")
	assert.False(t, found)
}

func TestProductIDsStableOrder(t *testing.T) {
	ctx := context.Background()
	c, _ := Load(ctx, newFakeStore(), "s1")
	_, _ = c.Add(ctx, "zz", 1)
	_, _ = c.Add(ctx, "aa", 1)
	_, _ = c.Add(ctx, "mm", 1)

	assert.Equal(t, []string{"aa", "mm", "zz"}, c.ProductIDs())
}

func TestSnapshotAndReplace(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, _ := Load(ctx, store, "s1")
	_, _ = c.Add(ctx, "book-a", 2)
	_, _ = c.Add(ctx, "book-b", 1)

	snapshot, err := c.Snapshot()
	assert.NoError(t, err)

	other, _ := Load(ctx, store, "s2")
	assert.NoError(t, other.Replace(ctx, snapshot))
	assert.Equal(t, c.Quantities(), other.Quantities())

	reloaded, err := Load(ctx, store, "s2")
	assert.NoError(t, err)
	assert.Equal(t, c.Quantities(), reloaded.Quantities())
}

func TestReplaceFromLegacySnapshot(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, _ := Load(ctx, store, "s1")

	// Snapshots taken before the layout change still restore.
	assert.NoError(t, c.Replace(ctx, `{"book-a": 7}`))
	assert.Equal(t, map[string]int{"book-a": 7}, c.Quantities())
}

func TestReplaceEmptySnapshot(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, _ := Load(ctx, store, "s1")
	_, _ = c.Add(ctx, "book-a", 2)

	assert.NoError(t, c.Replace(ctx, ""))
	assert.Equal(t, 0, c.Len())
}
