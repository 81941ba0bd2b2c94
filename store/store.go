// Package store holds one browsing session's cart and wishlist state.
// A Store is opened once per session over an injected storage backend and
// handed by reference to every consumer.
package store

import (
	"context"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
)

type Store struct {
	Cart     *Cart
	Wishlist *Wishlist

	kv  storage.Store
	bus *Bus
}

// Open loads the cart and wishlist persisted in kv. Missing or malformed
// collections start empty.
func Open(ctx context.Context, kv storage.Store) (*Store, error) {
	bus := &Bus{}
	cart, err := loadCart(ctx, kv, bus)
	if err != nil {
		return nil, err
	}
	wishlist, err := loadWishlist(ctx, kv, bus)
	if err != nil {
		return nil, err
	}
	return &Store{Cart: cart, Wishlist: wishlist, kv: kv, bus: bus}, nil
}

// Subscribe registers an observer for cart and wishlist mutations.
func (s *Store) Subscribe(o Observer) (unsubscribe func()) {
	return s.bus.Subscribe(o)
}

// Storage is the session-scoped backend the store writes to.
func (s *Store) Storage() storage.Store {
	return s.kv
}

// Badges are the header counters for the current state.
func (s *Store) Badges() models.Badges {
	return models.Badges{
		CartCount:     s.Cart.Count(),
		WishlistCount: s.Wishlist.Count(),
	}
}

// MoveToCart adds a saved product to the cart and drops it from the
// wishlist. A product that is not saved is left alone.
func (s *Store) MoveToCart(ctx context.Context, id string) (bool, error) {
	i := s.Wishlist.index(id)
	if i < 0 {
		return false, nil
	}
	p := s.Wishlist.items[i]
	if err := s.Cart.Add(ctx, p); err != nil {
		return false, err
	}
	return true, s.Wishlist.Remove(ctx, id)
}
