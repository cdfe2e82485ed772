package concierge

import (
	"context"

	"concierge/models"
)

// Service turns a validated concierge request into a normalized itinerary.
type Service interface {
	PlanItinerary(ctx context.Context, req *models.ConciergeRequest) (models.ItineraryResult, error)
}

// Generator abstracts the hosted text-generation model.
type Generator interface {
	Generate(ctx context.Context, conv Conversation) (string, error)
}
