// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/store"
	"github.com/MKhiriev/resto-reviews/models"
)

type commentService struct {
	comments    store.CommentRepository
	restaurants store.RestaurantRepository

	now    func() time.Time
	logger *logger.Logger
}

func NewCommentService(comments store.CommentRepository, restaurants store.RestaurantRepository, logger *logger.Logger) CommentService {
	return &commentService{
		comments:    comments,
		restaurants: restaurants,
		now:         time.Now,
		logger:      logger,
	}
}

// ListRestaurantComments returns the comments of a restaurant in creation
// order. An unknown restaurant simply has no comments.
func (s *commentService) ListRestaurantComments(ctx context.Context, restaurantID int64) ([]models.Comment, error) {
	comments, err := s.comments.ListComments(ctx, models.CommentFilter{RestaurantID: &restaurantID})
	if err != nil {
		return nil, fmt.Errorf("error listing comments of restaurant %d: %w", restaurantID, err)
	}
	return comments, nil
}

func (s *commentService) CreateComment(ctx context.Context, caller models.UserIdentity, restaurantID int64, request models.CommentRequest) (models.Comment, []models.Comment, error) {
	if _, err := s.restaurants.FindRestaurant(ctx, restaurantID); err != nil {
		return models.Comment{}, nil, fmt.Errorf("error finding restaurant %d: %w", restaurantID, err)
	}

	created, err := s.comments.CreateComment(ctx, models.Comment{
		RestaurantID: restaurantID,
		UserID:       caller.UserID,
		Username:     caller.Username,
		Text:         request.Text,
		Rating:       request.Rating,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return models.Comment{}, nil, fmt.Errorf("error creating comment: %w", err)
	}

	comments, err := s.ListRestaurantComments(ctx, restaurantID)
	if err != nil {
		return models.Comment{}, nil, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*commentService.CreateComment").
		Int64("comment_id", created.ID).
		Int64("restaurant_id", restaurantID).
		Msg("comment created")
	return created, comments, nil
}

// UpdateComment replaces the text of a comment written by caller. The rating
// given at creation is kept.
func (s *commentService) UpdateComment(ctx context.Context, caller models.UserIdentity, id int64, request models.CommentRequest) (models.Comment, error) {
	if err := s.authoredComment(ctx, caller, id); err != nil {
		return models.Comment{}, err
	}

	updated, err := s.comments.UpdateCommentText(ctx, id, request.Text)
	if err != nil {
		return models.Comment{}, fmt.Errorf("error updating comment %d: %w", id, err)
	}
	return updated, nil
}

func (s *commentService) DeleteComment(ctx context.Context, caller models.UserIdentity, id int64) error {
	if err := s.authoredComment(ctx, caller, id); err != nil {
		return err
	}

	if err := s.comments.DeleteComment(ctx, id); err != nil {
		return fmt.Errorf("error deleting comment %d: %w", id, err)
	}
	return nil
}

func (s *commentService) ListUserComments(ctx context.Context, caller models.UserIdentity, userID int64) ([]models.Comment, error) {
	if caller.UserID != userID {
		return nil, ErrForbidden
	}

	comments, err := s.comments.ListComments(ctx, models.CommentFilter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("error listing comments of user %d: %w", userID, err)
	}
	return comments, nil
}

func (s *commentService) authoredComment(ctx context.Context, caller models.UserIdentity, id int64) error {
	comment, err := s.comments.FindComment(ctx, id)
	if err != nil {
		return fmt.Errorf("error finding comment %d: %w", id, err)
	}

	if comment.UserID != caller.UserID {
		logger.FromContext(ctx).Warn().
			Str("func", "*commentService.authoredComment").
			Int64("comment_id", id).
			Int64("user_id", caller.UserID).
			Msg("user is not the author")
		return ErrForbidden
	}
	return nil
}
