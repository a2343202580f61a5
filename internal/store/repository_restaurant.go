// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/models"
)

type restaurantRepository struct {
	db *DB
}

func NewRestaurantRepository(db *DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(restaurant.TableName()).
		Columns(restaurantColumns[1:]...).
		Values(
			nullableInt64(restaurant.OwnerID),
			restaurant.Name,
			restaurant.Cuisine,
			restaurant.Address,
			restaurant.Phone,
			restaurant.Image,
			restaurant.OpeningHours,
			restaurant.Description,
			restaurant.Lat,
			restaurant.Lng,
		).
		Suffix(returning(restaurantColumns)).
		ToSql()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanRestaurant(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.CreateRestaurant").Msg("error inserting restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *restaurantRepository) FindRestaurant(ctx context.Context, id int64) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(restaurantColumns...).
		From(models.Restaurant{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	restaurant, err := scanRestaurant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.FindRestaurant").Int64("id", id).Msg("error selecting restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return restaurant, nil
}

func (r *restaurantRepository) ListRestaurants(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(restaurantColumns...).
		From(models.Restaurant{}.TableName()).
		OrderBy("id")
	if filter.OwnerID != nil {
		builder = builder.Where(sq.Eq{"owner_id": *filter.OwnerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.ListRestaurants").Msg("error selecting restaurants")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	restaurants := make([]models.Restaurant, 0)
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return restaurants, nil
}

func (r *restaurantRepository) UpdateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(restaurant.TableName()).
		Set("name", restaurant.Name).
		Set("cuisine", restaurant.Cuisine).
		Set("address", restaurant.Address).
		Set("phone", restaurant.Phone).
		Set("image", restaurant.Image).
		Set("opening_hours", restaurant.OpeningHours).
		Set("description", restaurant.Description).
		Set("lat", restaurant.Lat).
		Set("lng", restaurant.Lng).
		Where(sq.Eq{"id": restaurant.ID}).
		Suffix(returning(restaurantColumns)).
		ToSql()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanRestaurant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.UpdateRestaurant").Int64("id", restaurant.ID).Msg("error updating restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *restaurantRepository) DeleteRestaurant(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Restaurant{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.DeleteRestaurant").Int64("id", id).Msg("error deleting restaurant")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}
