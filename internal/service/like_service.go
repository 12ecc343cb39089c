package service

import (
	"context"
	"fmt"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type LikeService struct {
	likeRepo    *repository.LikeRepository
	creatorRepo *repository.CreatorRepository
}

func NewLikeService(likeRepo *repository.LikeRepository, creatorRepo *repository.CreatorRepository) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		creatorRepo: creatorRepo,
	}
}

// Like bookmarks a creator for a user. Liking an already-liked creator is a
// no-op, not an error.
func (s *LikeService) Like(ctx context.Context, userID, creatorID string) error {
	objectID, err := s.resolveCreator(ctx, creatorID)
	if err != nil {
		return err
	}
	if err := s.likeRepo.Add(ctx, userID, objectID); err != nil {
		return fmt.Errorf("failed to like creator: %w", err)
	}
	return nil
}

// Unlike removes the bookmark. Removing a like that does not exist is a
// no-op.
func (s *LikeService) Unlike(ctx context.Context, userID, creatorID string) error {
	objectID, err := bson.ObjectIDFromHex(creatorID)
	if err != nil {
		return fmt.Errorf("invalid creator ID format: %w", err)
	}
	if err := s.likeRepo.Remove(ctx, userID, objectID); err != nil {
		return fmt.Errorf("failed to unlike creator: %w", err)
	}
	return nil
}

// ListLiked returns the profiles a user has liked, skipping any that have
// since been unpublished.
func (s *LikeService) ListLiked(ctx context.Context, userID string) ([]*models.CreatorProfile, error) {
	ids, err := s.likeRepo.FindCreatorIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	if len(ids) == 0 {
		return []*models.CreatorProfile{}, nil
	}

	creators, err := s.creatorRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load liked creators: %w", err)
	}

	return creators, nil
}

func (s *LikeService) resolveCreator(ctx context.Context, creatorID string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(creatorID)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("invalid creator ID format: %w", err)
	}

	if _, err := s.creatorRepo.FindByID(ctx, objectID); err != nil {
		if err == mongo.ErrNoDocuments {
			return bson.ObjectID{}, fmt.Errorf("creator not found")
		}
		return bson.ObjectID{}, fmt.Errorf("failed to load creator: %w", err)
	}

	return objectID, nil
}
