// ════════════════════════════════════════════════════════════
// Path: services/checkout_service.go
// Checkout flow: email capture, payment widget handoff, settlement
// ════════════════════════════════════════════════════════════

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
	"github.com/Modeva-Ecommerce/modeva-storefront/storage"
	"github.com/Modeva-Ecommerce/modeva-storefront/store"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidTransition = errors.New("checkout step not allowed from current state")
	ErrReferenceMismatch = errors.New("payment reference does not match pending checkout")
	ErrOrderNotFound     = errors.New("order not found")
	ErrPaymentPending    = errors.New("cart is locked while a payment is pending")
	ErrAmountMismatch    = errors.New("order total does not match the amount charged")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

type CheckoutService struct {
	publicKey string
	currency  string

	now   func() time.Time
	newID func() string
}

func NewCheckoutService(publicKey, currency string) *CheckoutService {
	if currency == "" {
		currency = pricing.Currency
	}
	return &CheckoutService{
		publicKey: publicKey,
		currency:  currency,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// State returns the session's checkout progress; a session that never
// started checkout is idle.
func (s *CheckoutService) State(ctx context.Context, st *store.Store) (models.CheckoutSession, error) {
	sess := models.CheckoutSession{State: models.CheckoutIdle}
	if _, err := storage.LoadJSON(ctx, st.Storage(), storage.KeyCheckout, &sess); err != nil {
		return sess, err
	}
	switch sess.State {
	case models.CheckoutIdle, models.CheckoutAwaitingEmail, models.CheckoutAwaitingPayment, models.CheckoutSettled:
	default:
		log.Printf("⚠️ [checkout.state] unknown state %q, resetting to idle", sess.State)
		sess = models.CheckoutSession{State: models.CheckoutIdle}
	}
	return sess, nil
}

// Begin opens the email step. The remembered email, if any, is returned
// for prefill. Reopening an email step that is already open is allowed.
func (s *CheckoutService) Begin(ctx context.Context, st *store.Store) (models.CheckoutSession, error) {
	sess, err := s.State(ctx, st)
	if err != nil {
		return sess, err
	}
	if sess.State == models.CheckoutAwaitingPayment {
		return sess, ErrInvalidTransition
	}
	if st.Cart.Len() == 0 {
		return sess, ErrEmptyCart
	}

	var remembered string
	if _, err := storage.LoadJSON(ctx, st.Storage(), storage.KeyUserEmail, &remembered); err != nil {
		return sess, err
	}

	next := models.CheckoutSession{State: models.CheckoutAwaitingEmail, Email: remembered}
	if err := s.save(ctx, st, next); err != nil {
		return sess, err
	}
	return next, nil
}

// SubmitEmail validates the email, remembers it and builds the payment
// widget payload. An invalid email leaves the state unchanged.
func (s *CheckoutService) SubmitEmail(ctx context.Context, st *store.Store, email string) (models.CheckoutSession, error) {
	sess, err := s.State(ctx, st)
	if err != nil {
		return sess, err
	}
	if sess.State != models.CheckoutAwaitingEmail {
		return sess, ErrInvalidTransition
	}

	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return sess, ErrInvalidEmail
	}
	if st.Cart.Len() == 0 {
		return sess, ErrEmptyCart
	}

	if err := storage.SaveJSON(ctx, st.Storage(), storage.KeyUserEmail, email); err != nil {
		return sess, err
	}

	items := st.Cart.Items()
	total := st.Cart.Total()
	payment, err := s.paymentRequest(items, total, email)
	if err != nil {
		return sess, err
	}
	next := models.CheckoutSession{
		State:     models.CheckoutAwaitingPayment,
		Email:     email,
		Reference: payment.Reference,
		Payment:   payment,
		Items:     items,
		Total:     total,
	}
	if err := s.save(ctx, st, next); err != nil {
		return sess, err
	}
	log.Printf("[checkout.email] payment initialized ref=%s amount=%d", payment.Reference, payment.Amount)
	return next, nil
}

// Cancel abandons the email or payment step. The cart is kept.
func (s *CheckoutService) Cancel(ctx context.Context, st *store.Store) (models.CheckoutSession, error) {
	sess, err := s.State(ctx, st)
	if err != nil {
		return sess, err
	}
	if sess.State != models.CheckoutAwaitingEmail && sess.State != models.CheckoutAwaitingPayment {
		return sess, ErrInvalidTransition
	}

	next := models.CheckoutSession{State: models.CheckoutIdle, Email: sess.Email}
	if err := s.save(ctx, st, next); err != nil {
		return sess, err
	}
	log.Printf("[checkout.cancel] checkout canceled ref=%s", sess.Reference)
	return next, nil
}

// CartEditable reports ErrPaymentPending while the payment widget is open.
// The cart stays frozen until the payment settles or is canceled.
func (s *CheckoutService) CartEditable(ctx context.Context, st *store.Store) error {
	sess, err := s.State(ctx, st)
	if err != nil {
		return err
	}
	if sess.State == models.CheckoutAwaitingPayment {
		return ErrPaymentPending
	}
	return nil
}

// Complete settles a successful payment: the cart as priced for the widget
// is archived as a paid order and the cart is emptied. A callback replayed
// for an order that is already archived returns that order.
func (s *CheckoutService) Complete(ctx context.Context, st *store.Store, reference string, transaction json.RawMessage) (models.Order, error) {
	sess, err := s.State(ctx, st)
	if err != nil {
		return models.Order{}, err
	}

	archived, err := s.FindOrder(ctx, st.Storage(), reference)
	found := err == nil
	if err != nil && !errors.Is(err, ErrOrderNotFound) {
		return models.Order{}, err
	}
	if found && sess.State == models.CheckoutSettled {
		log.Printf("[checkout.complete] order %s already settled", reference)
		return archived, nil
	}

	if sess.State != models.CheckoutAwaitingPayment {
		return models.Order{}, ErrInvalidTransition
	}
	if reference != sess.Reference {
		return models.Order{}, ErrReferenceMismatch
	}
	if sess.Payment == nil || pricing.ToMinorUnits(sess.Total) != sess.Payment.Amount {
		return models.Order{}, ErrAmountMismatch
	}

	order := archived
	if !found {
		if len(transaction) == 0 {
			transaction = json.RawMessage("null")
		}
		order = models.Order{
			Reference:   reference,
			Items:       sess.Items,
			Total:       sess.Total,
			Status:      models.OrderStatusPaid,
			Date:        s.now().UTC().Format(time.RFC3339Nano),
			Transaction: transaction,
		}

		orders, err := s.Orders(ctx, st.Storage())
		if err != nil {
			return models.Order{}, err
		}
		orders = append(orders, order)
		if err := storage.SaveJSON(ctx, st.Storage(), storage.KeyOrders, orders); err != nil {
			return models.Order{}, err
		}
	}

	if err := st.Cart.Clear(ctx); err != nil {
		return models.Order{}, err
	}
	if err := s.save(ctx, st, models.CheckoutSession{State: models.CheckoutSettled, Email: sess.Email}); err != nil {
		return models.Order{}, err
	}

	log.Printf("✅ [checkout.complete] order %s settled, total=%s", reference, pricing.Format(order.Total))
	return order, nil
}

// Orders returns the session's append-only order log, oldest first.
func (s *CheckoutService) Orders(ctx context.Context, kv storage.Store) ([]models.Order, error) {
	orders := []models.Order{}
	if _, err := storage.LoadJSON(ctx, kv, storage.KeyOrders, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// FindOrder looks an archived order up by payment reference.
func (s *CheckoutService) FindOrder(ctx context.Context, kv storage.Store, reference string) (models.Order, error) {
	orders, err := s.Orders(ctx, kv)
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range orders {
		if o.Reference == reference {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (s *CheckoutService) paymentRequest(items []models.CartItem, total float64, email string) (*models.PaymentRequest, error) {
	lines := make([]models.PaymentCartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.PaymentCartLine{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.CurrentPrice,
		})
	}
	summary, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart summary: %w", err)
	}

	return &models.PaymentRequest{
		Key:       s.publicKey,
		Email:     email,
		Amount:    pricing.ToMinorUnits(total),
		Currency:  s.currency,
		Reference: fmt.Sprintf("ORDER_%s_%d", s.newID(), s.now().UnixMilli()),
		Metadata: models.PaymentMetadata{
			CustomFields: []models.PaymentCustomField{{
				DisplayName:  "Cart Items",
				VariableName: "cart_items",
				Value:        string(summary),
			}},
		},
	}, nil
}

func (s *CheckoutService) save(ctx context.Context, st *store.Store, sess models.CheckoutSession) error {
	return storage.SaveJSON(ctx, st.Storage(), storage.KeyCheckout, sess)
}
