package concierge

import (
	"context"
	"encoding/json"
	"fmt"

	"concierge/database/auditlog"
	"concierge/middleware"
	"concierge/models"
	"concierge/services/livecontext"

	"go.uber.org/zap"
)

// DefaultService runs the planning pipeline: live context, prompt, model
// call, extraction, normalization, then a best-effort audit write.
type DefaultService struct {
	Fetcher   livecontext.Fetcher
	Generator Generator
	AuditRepo auditlog.Repository
	Logger    *zap.Logger
}

func NewDefaultService(fetcher livecontext.Fetcher, gen Generator, audit auditlog.Repository, logger *zap.Logger) *DefaultService {
	return &DefaultService{
		Fetcher:   fetcher,
		Generator: gen,
		AuditRepo: audit,
		Logger:    logger,
	}
}

func (s *DefaultService) PlanItinerary(ctx context.Context, req *models.ConciergeRequest) (models.ItineraryResult, error) {
	live := s.Fetcher.Fetch(ctx, req.Booking.Location, req.Booking.StartDate, req.Booking.EndDate)

	conv := BuildPrompt(req, live)
	raw, err := s.Generator.Generate(ctx, conv)
	if err != nil {
		return nil, fmt.Errorf("model invocation failed: %w", err)
	}

	data, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	result := Normalize(data)

	// Best-effort only: an audit failure must never reach the client.
	s.audit(ctx, req, result)

	return result, nil
}

func (s *DefaultService) audit(ctx context.Context, req *models.ConciergeRequest, result models.ItineraryResult) {
	if s.AuditRepo == nil {
		return
	}

	booking, err := json.Marshal(req.Booking)
	if err != nil {
		s.Logger.Warn("Failed to marshal booking for audit log", zap.Error(err))
		return
	}
	prefs, err := json.Marshal(req.Preferences)
	if err != nil {
		s.Logger.Warn("Failed to marshal preferences for audit log", zap.Error(err))
		return
	}
	response, err := json.Marshal(result)
	if err != nil {
		s.Logger.Warn("Failed to marshal response for audit log", zap.Error(err))
		return
	}

	entry := &auditlog.Entry{
		RequestID:   middleware.RequestIDFromContext(ctx),
		NLUQuery:    req.NLUQuery,
		Booking:     booking,
		Preferences: prefs,
		Response:    response,
	}
	if err := s.AuditRepo.Insert(ctx, entry); err != nil {
		s.Logger.Warn("Audit log write failed", zap.Error(err))
	}
}
