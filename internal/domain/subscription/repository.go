package subscription

import "context"

// Repository defines persistence operations for subscriptions
type Repository interface {
	FindByID(ctx context.Context, id string) (*Subscription, error)
	FindAll(ctx context.Context) ([]Subscription, error)
	FindByStatus(ctx context.Context, status string) ([]Subscription, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Save(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, id string) error
}
