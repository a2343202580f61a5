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

type commentRepository struct {
	db *DB
}

func NewCommentRepository(db *DB) CommentRepository {
	return &commentRepository{db: db}
}

func (c *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.db.builder.
		Insert(comment.TableName()).
		Columns(commentColumns[1:]...).
		Values(
			comment.RestaurantID,
			comment.UserID,
			comment.Username,
			comment.Text,
			nullableInt(comment.Rating),
			comment.CreatedAt,
		).
		Suffix(returning(commentColumns)).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanComment(c.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error inserting comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (c *commentRepository) FindComment(ctx context.Context, id int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.db.builder.
		Select(commentColumns...).
		From(models.Comment{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	comment, err := scanComment(c.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.FindComment").Int64("id", id).Msg("error selecting comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return comment, nil
}

func (c *commentRepository) ListComments(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	builder := c.db.builder.
		Select(commentColumns...).
		From(models.Comment{}.TableName()).
		OrderBy("id")
	if filter.RestaurantID != nil {
		builder = builder.Where(sq.Eq{"restaurant_id": *filter.RestaurantID})
	}
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error selecting comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

func (c *commentRepository) UpdateCommentText(ctx context.Context, id int64, text string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.db.builder.
		Update(models.Comment{}.TableName()).
		Set("text", text).
		Where(sq.Eq{"id": id}).
		Suffix(returning(commentColumns)).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanComment(c.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateCommentText").Int64("id", id).Msg("error updating comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (c *commentRepository) DeleteComment(ctx context.Context, id int64) error {
	affected, err := c.delete(ctx, "*commentRepository.DeleteComment", sq.Eq{"id": id})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (c *commentRepository) DeleteCommentsByRestaurant(ctx context.Context, restaurantID int64) error {
	_, err := c.delete(ctx, "*commentRepository.DeleteCommentsByRestaurant", sq.Eq{"restaurant_id": restaurantID})
	return err
}

func (c *commentRepository) delete(ctx context.Context, funcName string, where sq.Eq) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.db.builder.
		Delete(models.Comment{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error deleting comments")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func (c *commentRepository) RatingStats(ctx context.Context, restaurantIDs ...int64) (map[int64]models.RatingStats, error) {
	log := logger.FromContext(ctx)

	builder := c.db.builder.
		Select("restaurant_id", "COUNT(*)", "COUNT(rating)", "COALESCE(SUM(rating), 0)").
		From(models.Comment{}.TableName()).
		GroupBy("restaurant_id")
	if len(restaurantIDs) > 0 {
		builder = builder.Where(sq.Eq{"restaurant_id": restaurantIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.RatingStats").Msg("error aggregating ratings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make(map[int64]models.RatingStats)
	for rows.Next() {
		var (
			restaurantID int64
			s            models.RatingStats
		)
		if err = rows.Scan(&restaurantID, &s.CommentCount, &s.RatedCount, &s.RatingSum); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stats[restaurantID] = s
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}
