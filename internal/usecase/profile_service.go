package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/cookeasy/backend/internal/domain"
)

// Profile is the profile screen's data
type Profile struct {
	User      domain.User            `json:"user"`
	Addresses []domain.Address       `json:"addresses"`
	Cards     []domain.PaymentMethod `json:"cards"`
}

// NewAddress is the add-address form
type NewAddress struct {
	Label       string `json:"label" binding:"required"`
	FullAddress string `json:"fullAddress" binding:"required"`
	IsDefault   bool   `json:"isDefault"`
}

// NewCard is the add-card form. Only the last four digits are kept.
type NewCard struct {
	Type       string `json:"type" binding:"required"`
	CardNumber string `json:"cardNumber" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	IsDefault  bool   `json:"isDefault"`
}

// ProfileService manages saved addresses and cards and the user's order history
type ProfileService struct {
	sessions domain.SessionRepository
	orders   domain.OrderRepository
}

// NewProfileService creates a profile service
func NewProfileService(sessions domain.SessionRepository, orders domain.OrderRepository) *ProfileService {
	return &ProfileService{sessions: sessions, orders: orders}
}

// Get returns the user with saved addresses and cards
func (s *ProfileService) Get(ctx context.Context, user domain.User) (*Profile, error) {
	session, err := s.sessions.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	return newProfile(user, session), nil
}

// Orders lists orders placed under the user's name, newest first
func (s *ProfileService) Orders(ctx context.Context, user domain.User) ([]domain.Order, error) {
	return s.orders.ListByCustomer(ctx, user.Name)
}

// DefaultAddress returns the default address, or the first one when none is marked
func (s *ProfileService) DefaultAddress(ctx context.Context, user domain.User) (*domain.Address, error) {
	session, err := s.sessions.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	if len(session.Addresses) == 0 {
		return nil, fmt.Errorf("%w: no saved address", domain.ErrNotFound)
	}
	addr, ok := lo.Find(session.Addresses, func(a domain.Address) bool { return a.IsDefault })
	if !ok {
		addr = session.Addresses[0]
	}
	return &addr, nil
}

// AddAddress saves an address. The first address is always the default.
func (s *ProfileService) AddAddress(ctx context.Context, user domain.User, req NewAddress) (*Profile, error) {
	if strings.TrimSpace(req.Label) == "" || strings.TrimSpace(req.FullAddress) == "" {
		return nil, fmt.Errorf("%w: label and address are required", domain.ErrInvalidRequest)
	}
	return s.update(ctx, user, func(session *domain.Session) error {
		addr := domain.Address{
			ID:          "a-" + uuid.NewString(),
			Label:       req.Label,
			FullAddress: req.FullAddress,
			IsDefault:   req.IsDefault || len(session.Addresses) == 0,
		}
		session.Addresses = append(session.Addresses, addr)
		if addr.IsDefault {
			markDefaultAddress(session.Addresses, addr.ID)
		}
		return nil
	})
}

// SetDefaultAddress marks one address as the default and clears the rest
func (s *ProfileService) SetDefaultAddress(ctx context.Context, user domain.User, id string) (*Profile, error) {
	return s.update(ctx, user, func(session *domain.Session) error {
		if !lo.ContainsBy(session.Addresses, func(a domain.Address) bool { return a.ID == id }) {
			return fmt.Errorf("%w: address %s", domain.ErrNotFound, id)
		}
		markDefaultAddress(session.Addresses, id)
		return nil
	})
}

// DeleteAddress removes an address
func (s *ProfileService) DeleteAddress(ctx context.Context, user domain.User, id string) (*Profile, error) {
	return s.update(ctx, user, func(session *domain.Session) error {
		remaining := lo.Reject(session.Addresses, func(a domain.Address, _ int) bool { return a.ID == id })
		if len(remaining) == len(session.Addresses) {
			return fmt.Errorf("%w: address %s", domain.ErrNotFound, id)
		}
		session.Addresses = remaining
		return nil
	})
}

// AddCard saves a card
func (s *ProfileService) AddCard(ctx context.Context, user domain.User, req NewCard) (*Profile, error) {
	number := strings.Join(strings.Fields(req.CardNumber), "")
	if !cardNumberPattern.MatchString(number) {
		return nil, &domain.ValidationError{Fields: map[string]string{"cardNumber": "Enter a valid 16-digit card number"}}
	}
	if !expiryPattern.MatchString(req.Expiry) {
		return nil, &domain.ValidationError{Fields: map[string]string{"expiry": "Valid MM/YY required"}}
	}
	return s.update(ctx, user, func(session *domain.Session) error {
		card := domain.PaymentMethod{
			ID:        "p-" + uuid.NewString(),
			Type:      req.Type,
			Last4:     number[len(number)-4:],
			Expiry:    req.Expiry,
			IsDefault: req.IsDefault || len(session.Cards) == 0,
		}
		session.Cards = append(session.Cards, card)
		if card.IsDefault {
			markDefaultCard(session.Cards, card.ID)
		}
		return nil
	})
}

// SetDefaultCard marks one card as the default and clears the rest
func (s *ProfileService) SetDefaultCard(ctx context.Context, user domain.User, id string) (*Profile, error) {
	return s.update(ctx, user, func(session *domain.Session) error {
		if !lo.ContainsBy(session.Cards, func(c domain.PaymentMethod) bool { return c.ID == id }) {
			return fmt.Errorf("%w: card %s", domain.ErrNotFound, id)
		}
		markDefaultCard(session.Cards, id)
		return nil
	})
}

// DeleteCard removes a card
func (s *ProfileService) DeleteCard(ctx context.Context, user domain.User, id string) (*Profile, error) {
	return s.update(ctx, user, func(session *domain.Session) error {
		remaining := lo.Reject(session.Cards, func(c domain.PaymentMethod, _ int) bool { return c.ID == id })
		if len(remaining) == len(session.Cards) {
			return fmt.Errorf("%w: card %s", domain.ErrNotFound, id)
		}
		session.Cards = remaining
		return nil
	})
}

func (s *ProfileService) update(ctx context.Context, user domain.User, fn func(*domain.Session) error) (*Profile, error) {
	session, err := s.sessions.Update(ctx, user, fn)
	if err != nil {
		return nil, err
	}
	return newProfile(user, session), nil
}

func newProfile(user domain.User, session *domain.Session) *Profile {
	profile := &Profile{User: user, Addresses: session.Addresses, Cards: session.Cards}
	if profile.Addresses == nil {
		profile.Addresses = []domain.Address{}
	}
	if profile.Cards == nil {
		profile.Cards = []domain.PaymentMethod{}
	}
	return profile
}

func markDefaultAddress(addresses []domain.Address, id string) {
	for i := range addresses {
		addresses[i].IsDefault = addresses[i].ID == id
	}
}

func markDefaultCard(cards []domain.PaymentMethod, id string) {
	for i := range cards {
		cards[i].IsDefault = cards[i].ID == id
	}
}
