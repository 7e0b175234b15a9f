package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cookeasy/backend/internal/domain"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

const orderIDAttempts = 5

// PaymentDetails is the payment form
type PaymentDetails struct {
	FullName   string `json:"fullName"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	Address    string `json:"address"`
}

// ValidatePayment returns a message per invalid field; an empty map means valid
func ValidatePayment(details PaymentDetails) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(details.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if !cardNumberPattern.MatchString(strings.Join(strings.Fields(details.CardNumber), "")) {
		errs["cardNumber"] = "Enter a valid 16-digit card number"
	}
	if !expiryPattern.MatchString(details.Expiry) {
		errs["expiryDate"] = "Valid MM/YY required"
	}
	if !cvvPattern.MatchString(details.CVV) {
		errs["cvv"] = "Invalid CVV"
	}
	if strings.TrimSpace(details.Address) == "" {
		errs["address"] = "Delivery address is required"
	}
	return errs
}

// CheckoutConfig holds configuration for the checkout service
type CheckoutConfig struct {
	PaymentDelay time.Duration
	Random       RandomSource
	Now          func() time.Time
}

// CheckoutService turns the cart into an order after a simulated payment
type CheckoutService struct {
	sessions     domain.SessionRepository
	orders       domain.OrderRepository
	nav          *Navigator
	paymentDelay time.Duration
	rng          RandomSource
	now          func() time.Time
	logger       zerolog.Logger
}

// NewCheckoutService creates a checkout service
func NewCheckoutService(
	sessions domain.SessionRepository,
	orders domain.OrderRepository,
	nav *Navigator,
	config CheckoutConfig,
	logger zerolog.Logger,
) *CheckoutService {
	if nav == nil {
		nav = NewNavigator()
	}
	rng := config.Random
	if rng == nil {
		rng = NewRandomSource(0)
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}
	delay := config.PaymentDelay
	if delay < 0 {
		delay = 0
	}

	return &CheckoutService{
		sessions:     sessions,
		orders:       orders,
		nav:          nav,
		paymentDelay: delay,
		rng:          rng,
		now:          now,
		logger:       logger.With().Str("component", "checkout").Logger(),
	}
}

// Checkout validates the form, waits out the simulated payment and places the
// order. On any failure the cart and order log are left untouched.
func (s *CheckoutService) Checkout(ctx context.Context, user domain.User, details PaymentDetails) (*domain.Order, error) {
	if user.IsGuest() {
		return nil, fmt.Errorf("%w: sign in to check out", domain.ErrUnauthorized)
	}

	session, err := s.sessions.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	if len(session.Cart) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if errs := ValidatePayment(details); len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}

	if err := s.simulatePayment(ctx); err != nil {
		return nil, err
	}

	var order domain.Order
	_, err = s.sessions.Update(ctx, user, func(session *domain.Session) error {
		if len(session.Cart) == 0 {
			return domain.ErrEmptyCart
		}

		state := &session.Navigation
		s.nav.OpenCart(state)
		if state.Shop == domain.ShopSuccess {
			if err := s.nav.Shop(state, domain.ShopCart); err != nil {
				return err
			}
		}
		if err := s.nav.Shop(state, domain.ShopCart, domain.ShopPayment, domain.ShopSuccess); err != nil {
			return err
		}

		totals := CalculateTotals(session.Cart)
		order = domain.Order{
			Date:         s.now().Format("Jan 2, 2006"),
			Total:        totals.Total,
			Status:       domain.OrderReceived,
			Items:        session.Cart,
			CustomerName: user.Name,
		}
		if err := s.placeOrder(ctx, &order); err != nil {
			return err
		}

		placed := order
		session.LastOrder = &placed
		session.Cart = []domain.ReviewItem{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order", order.ID).Str("customer", order.CustomerName).Float64("total", order.Total).Msg("order placed")
	return &order, nil
}

// simulatePayment stands in for a payment provider round trip
func (s *CheckoutService) simulatePayment(ctx context.Context) error {
	if s.paymentDelay == 0 {
		return nil
	}
	timer := time.NewTimer(s.paymentDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// placeOrder assigns an ORD-nnnn id and appends the order, retrying on id clashes
func (s *CheckoutService) placeOrder(ctx context.Context, order *domain.Order) error {
	var lastErr error
	for attempt := 0; attempt < orderIDAttempts; attempt++ {
		order.ID = fmt.Sprintf("ORD-%d", s.rng.IntN(10000)+1000)
		err := s.orders.Add(ctx, *order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrInvalidRequest) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("could not allocate order id: %w", lastErr)
}
