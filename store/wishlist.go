package store

import (
	"context"
	"log"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
)

// Wishlist is the set of saved products, kept in insertion order.
type Wishlist struct {
	items []models.WishlistItem
	kv    storage.Store
	bus   *Bus
}

func loadWishlist(ctx context.Context, kv storage.Store, bus *Bus) (*Wishlist, error) {
	w := &Wishlist{kv: kv, bus: bus, items: []models.WishlistItem{}}

	var items []models.WishlistItem
	ok, err := storage.LoadJSON(ctx, kv, storage.KeyWishlist, &items)
	if err != nil {
		return nil, err
	}
	if ok && validWishlistItems(items) && items != nil {
		w.items = items
	} else if ok {
		log.Printf("⚠️ [wishlist.load] persisted wishlist failed validation, starting empty")
	}
	return w, nil
}

func validWishlistItems(items []models.WishlistItem) bool {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" || seen[it.ID] {
			return false
		}
		seen[it.ID] = true
	}
	return true
}

// Items returns a copy of the saved products, never nil.
func (w *Wishlist) Items() []models.WishlistItem {
	out := make([]models.WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Wishlist) Count() int {
	return len(w.items)
}

// Contains reports whether id is saved.
func (w *Wishlist) Contains(id string) bool {
	return w.index(id) >= 0
}

// Toggle removes p if it is saved and saves it otherwise. added reports
// which of the two happened.
func (w *Wishlist) Toggle(ctx context.Context, p models.Product) (added bool, err error) {
	action := ActionRemove
	if i := w.index(p.ID); i >= 0 {
		w.items = append(w.items[:i], w.items[i+1:]...)
	} else {
		w.items = append(w.items, p)
		action = ActionAdd
	}
	return action == ActionAdd, w.commit(ctx, action, p.ID)
}

// Remove deletes id if present; otherwise it only saves and notifies.
func (w *Wishlist) Remove(ctx context.Context, id string) error {
	if i := w.index(id); i >= 0 {
		w.items = append(w.items[:i], w.items[i+1:]...)
	}
	return w.commit(ctx, ActionRemove, id)
}

func (w *Wishlist) index(id string) int {
	for i, it := range w.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (w *Wishlist) commit(ctx context.Context, action Action, id string) error {
	if err := storage.SaveJSON(ctx, w.kv, storage.KeyWishlist, w.items); err != nil {
		return err
	}
	w.bus.publish(Event{Source: SourceWishlist, Action: action, ProductID: id})
	return nil
}
