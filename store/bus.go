package store

// Source names the collection an event came from.
type Source string

const (
	SourceCart     Source = "cart"
	SourceWishlist Source = "wishlist"
)

// Action names what a mutation did.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionUpdate Action = "update"
	ActionClear  Action = "clear"
)

// Event describes one committed mutation. Observers that re-render
// everything can ignore it; incremental ones use it to patch.
type Event struct {
	Source    Source
	Action    Action
	ProductID string
}

// Observer is notified synchronously after every persisted mutation.
type Observer func(Event)

// Bus is the explicit subscription list shared by a session's cart and
// wishlist.
type Bus struct {
	observers []Observer
}

// Subscribe registers o and returns a function that removes it.
func (b *Bus) Subscribe(o Observer) (unsubscribe func()) {
	b.observers = append(b.observers, o)
	idx := len(b.observers) - 1
	return func() {
		if idx < len(b.observers) {
			b.observers[idx] = nil
		}
	}
}

func (b *Bus) publish(e Event) {
	for _, o := range b.observers {
		if o != nil {
			o(e)
		}
	}
}
