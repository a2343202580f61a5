// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/store"
	"github.com/MKhiriev/resto-reviews/models"
)

type restaurantService struct {
	restaurants store.RestaurantRepository
	comments    store.CommentRepository

	logger *logger.Logger
}

func NewRestaurantService(restaurants store.RestaurantRepository, comments store.CommentRepository, logger *logger.Logger) RestaurantService {
	return &restaurantService{
		restaurants: restaurants,
		comments:    comments,
		logger:      logger,
	}
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]models.RestaurantView, error) {
	restaurants, err := s.restaurants.ListRestaurants(ctx, models.RestaurantFilter{})
	if err != nil {
		return nil, fmt.Errorf("error listing restaurants: %w", err)
	}

	stats, err := s.comments.RatingStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error aggregating ratings: %w", err)
	}

	views := make([]models.RestaurantView, 0, len(restaurants))
	for _, restaurant := range restaurants {
		views = append(views, models.NewRestaurantView(restaurant, stats[restaurant.ID]))
	}
	return views, nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, id int64) (models.RestaurantView, error) {
	restaurant, err := s.restaurants.FindRestaurant(ctx, id)
	if err != nil {
		return models.RestaurantView{}, fmt.Errorf("error finding restaurant %d: %w", id, err)
	}

	stats, err := s.comments.RatingStats(ctx, id)
	if err != nil {
		return models.RestaurantView{}, fmt.Errorf("error aggregating ratings: %w", err)
	}

	return models.NewRestaurantView(restaurant, stats[id]), nil
}

// CreateRestaurant stores a restaurant owned by caller. Omitted coordinates
// default to the centre of Madrid.
func (s *restaurantService) CreateRestaurant(ctx context.Context, caller models.UserIdentity, request models.RestaurantRequest) (models.Restaurant, error) {
	ownerID := caller.UserID
	restaurant := applyRestaurantRequest(models.Restaurant{
		OwnerID: &ownerID,
		Lat:     models.DefaultLat,
		Lng:     models.DefaultLng,
	}, request)

	created, err := s.restaurants.CreateRestaurant(ctx, restaurant)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("error creating restaurant: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*restaurantService.CreateRestaurant").
		Int64("restaurant_id", created.ID).
		Int64("owner_id", ownerID).
		Msg("restaurant created")
	return created, nil
}

// UpdateRestaurant merges request into the stored restaurant. Fields absent
// from request keep their value; id and owner never change.
func (s *restaurantService) UpdateRestaurant(ctx context.Context, caller models.UserIdentity, id int64, request models.RestaurantRequest) (models.Restaurant, error) {
	existing, err := s.ownedRestaurant(ctx, caller, id)
	if err != nil {
		return models.Restaurant{}, err
	}

	updated, err := s.restaurants.UpdateRestaurant(ctx, applyRestaurantRequest(existing, request))
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("error updating restaurant %d: %w", id, err)
	}
	return updated, nil
}

// DeleteRestaurant removes the restaurant and all of its comments.
func (s *restaurantService) DeleteRestaurant(ctx context.Context, caller models.UserIdentity, id int64) error {
	if _, err := s.ownedRestaurant(ctx, caller, id); err != nil {
		return err
	}

	if err := s.restaurants.DeleteRestaurant(ctx, id); err != nil {
		return fmt.Errorf("error deleting restaurant %d: %w", id, err)
	}
	if err := s.comments.DeleteCommentsByRestaurant(ctx, id); err != nil {
		return fmt.Errorf("error deleting comments of restaurant %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*restaurantService.DeleteRestaurant").
		Int64("restaurant_id", id).
		Msg("restaurant deleted")
	return nil
}

func (s *restaurantService) ListUserRestaurants(ctx context.Context, caller models.UserIdentity, userID int64) ([]models.Restaurant, error) {
	if caller.UserID != userID {
		return nil, ErrForbidden
	}

	restaurants, err := s.restaurants.ListRestaurants(ctx, models.RestaurantFilter{OwnerID: &userID})
	if err != nil {
		return nil, fmt.Errorf("error listing restaurants of user %d: %w", userID, err)
	}
	return restaurants, nil
}

func (s *restaurantService) ownedRestaurant(ctx context.Context, caller models.UserIdentity, id int64) (models.Restaurant, error) {
	restaurant, err := s.restaurants.FindRestaurant(ctx, id)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("error finding restaurant %d: %w", id, err)
	}

	if !restaurant.IsOwnedBy(caller.UserID) {
		logger.FromContext(ctx).Warn().
			Str("func", "*restaurantService.ownedRestaurant").
			Int64("restaurant_id", id).
			Int64("user_id", caller.UserID).
			Msg("user is not the owner")
		return models.Restaurant{}, ErrForbidden
	}
	return restaurant, nil
}

func applyRestaurantRequest(r models.Restaurant, request models.RestaurantRequest) models.Restaurant {
	r.Name = request.Name
	r.Address = request.Address
	setIfPresent(&r.Cuisine, request.Cuisine)
	setIfPresent(&r.Phone, request.Phone)
	setIfPresent(&r.Image, request.Image)
	setIfPresent(&r.OpeningHours, request.OpeningHours)
	setIfPresent(&r.Description, request.Description)
	setIfPresent(&r.Lat, request.Lat)
	setIfPresent(&r.Lng, request.Lng)
	return r
}

func setIfPresent[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}
