package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type QuoteService struct {
	quoteRepo   *repository.QuoteRepository
	creatorRepo *repository.CreatorRepository
}

func NewQuoteService(quoteRepo *repository.QuoteRepository, creatorRepo *repository.CreatorRepository) *QuoteService {
	return &QuoteService{
		quoteRepo:   quoteRepo,
		creatorRepo: creatorRepo,
	}
}

// CreateQuote opens a custom quote request from a brand to a creator. A
// private-event request must carry its event details.
func (s *QuoteService) CreateQuote(ctx context.Context, brandUserID string, req *models.CreateQuoteRequest) (*models.CustomQuoteRequest, error) {
	if brandUserID == "" {
		return nil, fmt.Errorf("brand user ID is required")
	}
	if req.CreatorUserID == "" {
		return nil, fmt.Errorf("validation failed: creatorUserId is required")
	}
	if req.Description == "" {
		return nil, fmt.Errorf("validation failed: description is required")
	}
	if req.IsPrivateEvent {
		if req.PrivateEvent == nil || req.PrivateEvent.EventType == "" {
			return nil, fmt.Errorf("validation failed: private event details are required")
		}
	} else if req.PrivateEvent != nil {
		// Details without the flag are ignored rather than stored.
		req.PrivateEvent = nil
	}

	creator, err := s.creatorRepo.FindByUserID(ctx, req.CreatorUserID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("creator not found")
		}
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}
	if !creator.PublishInfo.IsPublished {
		return nil, fmt.Errorf("creator is not accepting requests")
	}

	now := time.Now().Unix()
	quote := &models.CustomQuoteRequest{
		BrandUserID:    brandUserID,
		CreatorUserID:  req.CreatorUserID,
		Description:    req.Description,
		Budget:         req.Budget,
		Deadline:       req.Deadline,
		Status:         models.QuoteStatusPending,
		IsPrivateEvent: req.IsPrivateEvent,
		PrivateEvent:   req.PrivateEvent,
		Metadata: models.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.quoteRepo.New(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote request: %w", err)
	}

	return created, nil
}

// Respond lets the creator accept or reject a pending request, with an
// optional note back to the brand.
func (s *QuoteService) Respond(ctx context.Context, id, creatorUserID string, req *models.RespondQuoteRequest) (*models.CustomQuoteRequest, error) {
	if req.Status != models.QuoteStatusAccepted && req.Status != models.QuoteStatusRejected {
		return nil, fmt.Errorf("response status must be %s or %s", models.QuoteStatusAccepted, models.QuoteStatusRejected)
	}

	quote, err := s.findQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.CreatorUserID != creatorUserID {
		return nil, fmt.Errorf("quote request not found")
	}
	if quote.Status != models.QuoteStatusPending {
		return nil, fmt.Errorf("quote request is already %s", quote.Status)
	}

	updated, err := s.quoteRepo.UpdateStatus(ctx, quote.ID, req.Status, req.ResponseNote)
	if err != nil {
		return nil, fmt.Errorf("failed to respond to quote request: %w", err)
	}

	return updated, nil
}

// Complete marks an accepted request as done. Only the brand that opened it
// may complete it.
func (s *QuoteService) Complete(ctx context.Context, id, brandUserID string) (*models.CustomQuoteRequest, error) {
	quote, err := s.findQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.BrandUserID != brandUserID {
		return nil, fmt.Errorf("quote request not found")
	}
	if quote.Status != models.QuoteStatusAccepted {
		return nil, fmt.Errorf("only accepted quote requests can be completed")
	}

	updated, err := s.quoteRepo.UpdateStatus(ctx, quote.ID, models.QuoteStatusCompleted, "")
	if err != nil {
		return nil, fmt.Errorf("failed to complete quote request: %w", err)
	}

	return updated, nil
}

// ListForBrand returns all requests the brand has opened, newest first.
func (s *QuoteService) ListForBrand(ctx context.Context, brandUserID string) ([]*models.CustomQuoteRequest, error) {
	quotes, err := s.quoteRepo.FindByBrandUserID(ctx, brandUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote requests: %w", err)
	}
	return quotes, nil
}

// ListForCreator returns all requests addressed to the creator, newest
// first.
func (s *QuoteService) ListForCreator(ctx context.Context, creatorUserID string) ([]*models.CustomQuoteRequest, error) {
	quotes, err := s.quoteRepo.FindByCreatorUserID(ctx, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quote requests: %w", err)
	}
	return quotes, nil
}

func (s *QuoteService) findQuote(ctx context.Context, id string) (*models.CustomQuoteRequest, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid quote request ID format: %w", err)
	}

	quote, err := s.quoteRepo.FindByID(ctx, objectID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("quote request not found")
		}
		return nil, fmt.Errorf("failed to load quote request: %w", err)
	}

	return quote, nil
}
