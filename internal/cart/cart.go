package cart

import (
	"context"
	"encoding/json"
	"sort"
)

// Store persists serialized carts keyed by session id.
type Store interface {
	Get(ctx context.Context, sessionID string) ([]byte, bool, error)
	Set(ctx context.Context, sessionID string, data []byte) error
	Delete(ctx context.Context, sessionID string) error
}

// Line is one cart entry. Quantity is the only stored field; pricing is
// always resolved against the live catalog.
type Line struct {
	Quantity int `json:"quantity"`
}

// Cart is a per-session map of product id to Line. Loading upgrades the
// legacy layout where a bare integer quantity was stored per product key.
type Cart struct {
	store     Store
	sessionID string
	items     map[string]Line
}

// Load reads the session's cart from the store. Legacy entries stored as
// bare integers are normalized to {"quantity": n} and the session is
// re-saved once if any entry was migrated.
func Load(ctx context.Context, store Store, sessionID string) (*Cart, error) {
	c := &Cart{
		store:     store,
		sessionID: sessionID,
		items:     make(map[string]Line),
	}

	data, found, err := store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found || len(data) == 0 {
		return c, nil
	}

	items, migrated, err := decodeItems(data)
	if err != nil {
		return nil, err
	}
	c.items = items

	if migrated {
		if err := c.save(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// decodeItems parses stored cart JSON, upgrading legacy bare-int
// quantities to the Line layout. The second result reports whether any
// legacy entry was seen.
func decodeItems(data []byte) (map[string]Line, bool, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, err
	}

	items := make(map[string]Line, len(raw))
	migrated := false
	for id, value := range raw {
		var line Line
		if err := json.Unmarshal(value, &line); err == nil {
			items[id] = line
			continue
		}
		var legacyQty int
		if err := json.Unmarshal(value, &legacyQty); err != nil {
			return nil, false, err
		}
		items[id] = Line{Quantity: legacyQty}
		migrated = true
	}
	return items, migrated, nil
}

func (c *Cart) save(ctx context.Context) error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.sessionID, data)
}

// Add inserts the product with the given quantity and reports whether a
// new entry was created. Adding a product already in the cart leaves its
// quantity unchanged; the cart is persisted either way.
func (c *Cart) Add(ctx context.Context, productID string, quantity int) (bool, error) {
	_, present := c.items[productID]
	if !present {
		c.items[productID] = Line{Quantity: quantity}
	}
	if err := c.save(ctx); err != nil {
		return false, err
	}
	return !present, nil
}

// Update overwrites the quantity of an existing entry. Updating a product
// not in the cart is a no-op and does not create an entry.
func (c *Cart) Update(ctx context.Context, productID string, quantity int) (bool, error) {
	if _, present := c.items[productID]; !present {
		return false, nil
	}
	c.items[productID] = Line{Quantity: quantity}
	if err := c.save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the entry if present.
func (c *Cart) Remove(ctx context.Context, productID string) (bool, error) {
	if _, present := c.items[productID]; !present {
		return false, nil
	}
	delete(c.items, productID)
	if err := c.save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Clear drops the whole session key.
func (c *Cart) Clear(ctx context.Context) error {
	c.items = make(map[string]Line)
	return c.store.Delete(ctx, c.sessionID)
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Quantities returns a copy of the product id to quantity mapping.
func (c *Cart) Quantities() map[string]int {
	out := make(map[string]int, len(c.items))
	for id, line := range c.items {
		out[id] = line.Quantity
	}
	return out
}

// ProductIDs returns the cart's product ids in stable order.
func (c *Cart) ProductIDs() []string {
	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Snapshot serializes the cart for mirroring onto a profile.
func (c *Cart) Snapshot() (string, error) {
	data, err := json.Marshal(c.items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Replace overwrites the cart contents with a previously taken snapshot
// and persists the session. Used to restore a cart on login.
func (c *Cart) Replace(ctx context.Context, snapshot string) error {
	items := make(map[string]Line)
	if snapshot != "" {
		decoded, _, err := decodeItems([]byte(snapshot))
		if err != nil {
			return err
		}
		items = decoded
	}
	c.items = items
	return c.save(ctx)
}
