package store

import (
	"context"
	"log"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
	"github.com/shopspring/decimal"
)

// Cart is the ledger of line items. It owns its items; every mutation is
// written through to storage and then announced on the bus.
type Cart struct {
	items []models.CartItem
	kv    storage.Store
	bus   *Bus
}

func loadCart(ctx context.Context, kv storage.Store, bus *Bus) (*Cart, error) {
	c := &Cart{kv: kv, bus: bus, items: []models.CartItem{}}

	var items []models.CartItem
	ok, err := storage.LoadJSON(ctx, kv, storage.KeyCart, &items)
	if err != nil {
		return nil, err
	}
	if ok && validCartItems(items) && items != nil {
		c.items = items
	} else if ok {
		log.Printf("⚠️ [cart.load] persisted cart failed validation, starting empty")
	}
	return c, nil
}

func validCartItems(items []models.CartItem) bool {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" || it.Quantity < 1 || seen[it.ID] {
			return false
		}
		seen[it.ID] = true
	}
	return true
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// Count is the sum of quantities, the number shown on the cart badge.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Get returns the line item for id.
func (c *Cart) Get(id string) (models.CartItem, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	return models.CartItem{}, false
}

// Total is the sum of currentPrice*quantity. Summation is exact in
// decimal, so the result does not depend on item order.
func (c *Cart) Total() float64 {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(pricing.LineTotal(it.CurrentPrice, it.Quantity))
	}
	return sum.InexactFloat64()
}

// Add puts one unit of p in the cart. An existing line keeps the price
// it was first added at.
func (c *Cart) Add(ctx context.Context, p models.Product) error {
	if i := c.index(p.ID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, models.CartItem{
			Product:      p,
			Quantity:     1,
			CurrentPrice: pricing.Value(p.Price),
		})
	}
	return c.commit(ctx, ActionAdd, p.ID)
}

// Remove deletes the line for id. Removing an absent id is a no-op
// mutation: the ledger is still saved and observers still notified.
func (c *Cart) Remove(ctx context.Context, id string) error {
	if i := c.index(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	return c.commit(ctx, ActionRemove, id)
}

// UpdateQuantity sets the quantity of id's line. Values below zero are
// clamped to zero and zero removes the line. There is no upper bound. An
// id that is not in the cart is ignored without saving or notifying.
func (c *Cart) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	i := c.index(id)
	if i < 0 {
		return nil
	}
	if quantity <= 0 {
		return c.Remove(ctx, id)
	}
	c.items[i].Quantity = quantity
	return c.commit(ctx, ActionUpdate, id)
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	c.items = []models.CartItem{}
	return c.commit(ctx, ActionClear, "")
}

func (c *Cart) index(id string) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) commit(ctx context.Context, action Action, id string) error {
	if err := storage.SaveJSON(ctx, c.kv, storage.KeyCart, c.items); err != nil {
		return err
	}
	c.bus.publish(Event{Source: SourceCart, Action: action, ProductID: id})
	return nil
}
