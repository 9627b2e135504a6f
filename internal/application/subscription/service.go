package subscription

import (
	"context"
	"time"

	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/mycofresh/backend/internal/domain/subscription"
)

// Service handles subscription customer operations. The clock and location
// are injected so delivery schedules are computed in business-local time and
// stay deterministic in tests.
type Service struct {
	repo     subscription.Repository
	counters inventory.CounterRepository
	clock    func() time.Time
	location *time.Location
}

// NewService creates a new subscription Service
func NewService(repo subscription.Repository, counters inventory.CounterRepository, clock func() time.Time, location *time.Location) *Service {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:     repo,
		counters: counters,
		clock:    clock,
		location: location,
	}
}

func (s *Service) now() time.Time {
	return s.clock().In(s.location)
}

func (s *Service) toResponse(sub subscription.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		Subscription:     sub,
		DeliverySchedule: subscription.ScheduleDeliveries(sub.PreferredDeliveryDay, sub.BoxesPerMonth, s.now()),
	}
}

// List returns all subscriptions with their upcoming delivery schedules
func (s *Service) List(ctx context.Context) ([]SubscriptionResponse, error) {
	subs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, s.toResponse(sub))
	}
	return responses, nil
}

// Get returns one subscription with its delivery schedule
func (s *Service) Get(ctx context.Context, id string) (*SubscriptionResponse, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(*sub)
	return &resp, nil
}

// Create creates a subscription and assigns it the next SUB invoice number
func (s *Service) Create(ctx context.Context, req CreateSubscriptionRequest) (*SubscriptionResponse, error) {
	number, err := s.counters.NextNumber(ctx, inventory.CounterSubscription)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = subscription.StatusActive
	}
	preferredDay := req.PreferredDeliveryDay
	if preferredDay == "" {
		preferredDay = "Any Day"
	}
	boxes := 1
	if req.BoxesPerMonth != nil {
		boxes = *req.BoxesPerMonth
	}

	sub := &subscription.Subscription{
		BaseEntity:           shared.NewBaseEntity("sub"),
		InvoiceNumber:        inventory.InvoiceCode(inventory.CounterSubscription, number),
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		Address:              req.Address,
		FlatNo:               req.FlatNo,
		Plan:                 req.Plan,
		Status:               status,
		StartDate:            req.StartDate,
		PreferredDeliveryDay: preferredDay,
		BoxesPerMonth:        boxes,
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, err
	}
	resp := s.toResponse(*sub)
	return &resp, nil
}

// Update merges the given fields into the subscription. The invoice number
// is fixed at creation and never changes.
func (s *Service) Update(ctx context.Context, id string, req UpdateSubscriptionRequest) (*SubscriptionResponse, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Email != nil {
		sub.Email = *req.Email
	}
	if req.Phone != nil {
		sub.Phone = *req.Phone
	}
	if req.Address != nil {
		sub.Address = *req.Address
	}
	if req.FlatNo != nil {
		sub.FlatNo = *req.FlatNo
	}
	if req.Plan != nil {
		sub.Plan = *req.Plan
	}
	if req.Status != nil {
		sub.Status = *req.Status
	}
	if req.StartDate != nil && *req.StartDate != "" {
		sub.StartDate = *req.StartDate
	}
	if req.PreferredDeliveryDay != nil {
		sub.PreferredDeliveryDay = *req.PreferredDeliveryDay
	}
	if req.BoxesPerMonth != nil {
		sub.BoxesPerMonth = *req.BoxesPerMonth
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, err
	}
	resp := s.toResponse(*sub)
	return &resp, nil
}

// Delete deletes a subscription
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
