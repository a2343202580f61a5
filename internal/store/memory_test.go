// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/resto-reviews/models"
)

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	first, err := repo.CreateUser(ctx, models.User{Username: "ana", Email: "ana@test.io"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := repo.CreateUser(ctx, models.User{Username: "bo", Email: "bo@test.io"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	_, err = repo.CreateUser(ctx, models.User{Username: "ana", Email: "other@test.io"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	_, err = repo.CreateUser(ctx, models.User{Username: "other", Email: "bo@test.io"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// username is checked before email
	_, err = repo.CreateUser(ctx, models.User{Username: "ana", Email: "bo@test.io"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	found, err := repo.FindUserByEmail(ctx, "bo@test.io")
	require.NoError(t, err)
	assert.Equal(t, second, found)

	found, err = repo.FindUserByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, found)

	_, err = repo.FindUserByEmail(ctx, "ghost@test.io")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.FindUserByID(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryRestaurantRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRestaurantRepository()
	owner, other := int64(1), int64(2)

	a, err := repo.CreateRestaurant(ctx, models.Restaurant{OwnerID: &owner, Name: "A"})
	require.NoError(t, err)
	b, err := repo.CreateRestaurant(ctx, models.Restaurant{OwnerID: &other, Name: "B"})
	require.NoError(t, err)
	_, err = repo.CreateRestaurant(ctx, models.Restaurant{Name: "Seeded"})
	require.NoError(t, err)

	all, err := repo.ListRestaurants(ctx, models.RestaurantFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.ListRestaurants(ctx, models.RestaurantFilter{OwnerID: &owner})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, a.ID, mine[0].ID)

	// the owner cannot be reassigned through an update
	updated, err := repo.UpdateRestaurant(ctx, models.Restaurant{ID: b.ID, OwnerID: &owner, Name: "B2"})
	require.NoError(t, err)
	assert.Equal(t, "B2", updated.Name)
	assert.True(t, updated.IsOwnedBy(other))

	require.NoError(t, repo.DeleteRestaurant(ctx, a.ID))
	assert.ErrorIs(t, repo.DeleteRestaurant(ctx, a.ID), ErrRestaurantNotFound)
	_, err = repo.FindRestaurant(ctx, a.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	_, err = repo.UpdateRestaurant(ctx, models.Restaurant{ID: a.ID})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	// ids are never reused
	d, err := repo.CreateRestaurant(ctx, models.Restaurant{Name: "D"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), d.ID)
}

func TestMemoryCommentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCommentRepository()
	four, five := 4, 5

	c1, err := repo.CreateComment(ctx, models.Comment{RestaurantID: 1, UserID: 1, Text: "a", Rating: &four})
	require.NoError(t, err)
	_, err = repo.CreateComment(ctx, models.Comment{RestaurantID: 1, UserID: 2, Text: "b", Rating: &five})
	require.NoError(t, err)
	_, err = repo.CreateComment(ctx, models.Comment{RestaurantID: 1, UserID: 2, Text: "c"})
	require.NoError(t, err)
	_, err = repo.CreateComment(ctx, models.Comment{RestaurantID: 2, UserID: 1, Text: "d"})
	require.NoError(t, err)

	restaurantID, userID := int64(1), int64(2)
	byRestaurant, err := repo.ListComments(ctx, models.CommentFilter{RestaurantID: &restaurantID})
	require.NoError(t, err)
	assert.Len(t, byRestaurant, 3)

	byBoth, err := repo.ListComments(ctx, models.CommentFilter{RestaurantID: &restaurantID, UserID: &userID})
	require.NoError(t, err)
	assert.Len(t, byBoth, 2)

	stats, err := repo.RatingStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RatingStats{CommentCount: 3, RatedCount: 2, RatingSum: 9}, stats[1])
	assert.Equal(t, models.RatingStats{CommentCount: 1}, stats[2])

	only2, err := repo.RatingStats(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, only2, 1)

	edited, err := repo.UpdateCommentText(ctx, c1.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", edited.Text)
	require.NotNil(t, edited.Rating)
	assert.Equal(t, 4, *edited.Rating)

	require.NoError(t, repo.DeleteComment(ctx, c1.ID))
	assert.ErrorIs(t, repo.DeleteComment(ctx, c1.ID), ErrCommentNotFound)
	_, err = repo.FindComment(ctx, c1.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	require.NoError(t, repo.DeleteCommentsByRestaurant(ctx, 1))
	require.NoError(t, repo.DeleteCommentsByRestaurant(ctx, 1))
	left, err := repo.ListComments(ctx, models.CommentFilter{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, int64(2), left[0].RestaurantID)
}

func TestMemoryLeadRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLeadRepository()

	empty, err := repo.ListLeads(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	_, err = repo.CreateLead(ctx, models.Lead{ID: "FF-old", Fecha: base})
	require.NoError(t, err)
	_, err = repo.CreateLead(ctx, models.Lead{ID: "FF-new", Fecha: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = repo.CreateLead(ctx, models.Lead{ID: "FF-same", Fecha: base.Add(time.Hour)})
	require.NoError(t, err)

	_, err = repo.CreateLead(ctx, models.Lead{ID: "FF-old", Fecha: base})
	assert.ErrorIs(t, err, ErrLeadAlreadyExists)

	leads, err := repo.ListLeads(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(leads))
	for _, l := range leads {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"FF-same", "FF-new", "FF-old"}, ids)
}

func TestMemoryRepositories_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryUserRepository()
	comments := NewMemoryCommentRepository()

	const workers = 50
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = users.CreateUser(ctx, models.User{Username: fmt.Sprintf("u%d", i), Email: fmt.Sprintf("u%d@test.io", i)})
			_, _ = comments.CreateComment(ctx, models.Comment{RestaurantID: 1, Text: "x"})
		}()
	}
	wg.Wait()

	list, err := comments.ListComments(ctx, models.CommentFilter{})
	require.NoError(t, err)
	assert.Len(t, list, workers)

	seen := make(map[int64]bool)
	for _, c := range list {
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}

	_, err = users.FindUserByID(ctx, workers)
	assert.NoError(t, err)
}
