package subscription

import "github.com/mycofresh/backend/internal/domain/subscription"

// CreateSubscriptionRequest represents a request to create a subscription
type CreateSubscriptionRequest struct {
	Name                 string `json:"name" binding:"required,min=1,max=100"`
	Email                string `json:"email" binding:"omitempty,email,max=100"`
	Phone                string `json:"phone" binding:"max=20"`
	Address              string `json:"address" binding:"max=200"`
	FlatNo               string `json:"flatNo" binding:"max=50"`
	Plan                 string `json:"plan" binding:"required,min=1,max=100"`
	Status               string `json:"status" binding:"max=50"`
	StartDate            string `json:"startDate" binding:"required"`
	PreferredDeliveryDay string `json:"preferredDeliveryDay" binding:"omitempty,deliveryday"`
	BoxesPerMonth        *int   `json:"boxesPerMonth" binding:"omitempty,gt=0"`
}

// UpdateSubscriptionRequest represents a partial update of a subscription
type UpdateSubscriptionRequest struct {
	Name                 *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email                *string `json:"email" binding:"omitempty,email,max=100"`
	Phone                *string `json:"phone" binding:"omitempty,max=20"`
	Address              *string `json:"address" binding:"omitempty,max=200"`
	FlatNo               *string `json:"flatNo" binding:"omitempty,max=50"`
	Plan                 *string `json:"plan" binding:"omitempty,min=1,max=100"`
	Status               *string `json:"status" binding:"omitempty,max=50"`
	StartDate            *string `json:"startDate"`
	PreferredDeliveryDay *string `json:"preferredDeliveryDay" binding:"omitempty,deliveryday"`
	BoxesPerMonth        *int    `json:"boxesPerMonth" binding:"omitempty,gt=0"`
}

// SubscriptionResponse is a subscription with its upcoming delivery schedule
type SubscriptionResponse struct {
	subscription.Subscription
	DeliverySchedule []subscription.Delivery `json:"deliverySchedule"`
}
