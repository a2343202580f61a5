// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/resto-reviews/internal/config"
	handlerhttp "github.com/MKhiriev/resto-reviews/internal/handler/http"
	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/service"
	"github.com/MKhiriev/resto-reviews/internal/store"
	"github.com/MKhiriev/resto-reviews/models"
)

func ptr[T any](v T) *T { return &v }

// newTestServer runs the full HTTP stack over process memory.
func newTestServer(t *testing.T) string {
	t.Helper()

	services, err := service.NewServices(store.NewMemoryStorages(), config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "e2e-sign-key",
			TokenIssuer:      "resto-reviews-e2e",
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			Version:          "e2e",
			Admin:            config.Admin{Username: "admin", Password: "admin-pass"},
		},
	}, logger.Nop())
	require.NoError(t, err)

	h := handlerhttp.NewHandler(services, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv.URL
}

func registerClient(t *testing.T, baseURL, username string) (APIClient, models.PublicUser) {
	t.Helper()

	c, err := NewHTTPAPIClient(Config{BaseURL: baseURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	auth, err := c.Register(context.Background(), models.RegisterRequest{
		Username: username,
		Password: "secret-" + username,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, c.Token())
	return c, auth.User
}

func TestE2E_OwnershipAndDelete(t *testing.T) {
	ctx := context.Background()
	baseURL := newTestServer(t)

	ana, _ := registerClient(t, baseURL, "ana")
	bo, _ := registerClient(t, baseURL, "bo")

	created, err := ana.CreateRestaurant(ctx, models.RestaurantRequest{Name: "Casa Ana", Address: "Calle 1"})
	require.NoError(t, err)

	_, err = bo.UpdateRestaurant(ctx, created.ID, models.RestaurantRequest{Name: "Hijacked", Address: "Calle 1"})
	assert.ErrorIs(t, err, ErrForbidden)

	err = bo.DeleteRestaurant(ctx, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, ana.DeleteRestaurant(ctx, created.ID))

	_, err = ana.GetRestaurant(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "restaurant not found", apiErr.Message)
}

func TestE2E_RatingAggregates(t *testing.T) {
	ctx := context.Background()
	baseURL := newTestServer(t)

	owner, _ := registerClient(t, baseURL, "owner")
	restaurant, err := owner.CreateRestaurant(ctx, models.RestaurantRequest{Name: "Tasca", Address: "Plaza 2"})
	require.NoError(t, err)

	for i, rating := range []int{5, 3, 4} {
		reviewer, _ := registerClient(t, baseURL, "reviewer"+string(rune('a'+i)))
		_, err := reviewer.CreateComment(ctx, restaurant.ID, models.CommentRequest{Text: "ok", Rating: ptr(rating)})
		require.NoError(t, err)
	}

	view, err := owner.GetRestaurant(ctx, restaurant.ID)
	require.NoError(t, err)
	require.NotNil(t, view.AvgRating)
	assert.InDelta(t, 4.0, *view.AvgRating, 1e-9)
	assert.Equal(t, 3, view.CommentCount)

	comments, err := owner.ListComments(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 3)
}

func TestE2E_CommentLifecycle(t *testing.T) {
	ctx := context.Background()
	baseURL := newTestServer(t)

	author, user := registerClient(t, baseURL, "author")
	other, _ := registerClient(t, baseURL, "other")

	restaurant, err := author.CreateRestaurant(ctx, models.RestaurantRequest{Name: "Bar", Address: "Calle 3"})
	require.NoError(t, err)

	created, err := author.CreateComment(ctx, restaurant.ID, models.CommentRequest{Text: "first"})
	require.NoError(t, err)
	assert.Equal(t, "author", created.Created.Username)
	assert.Len(t, created.Comments, 1)

	_, err = other.UpdateComment(ctx, created.Created.ID, models.CommentRequest{Text: "edited"})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := author.UpdateComment(ctx, created.Created.ID, models.CommentRequest{Text: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	mine, err := author.ListUserComments(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	owned, err := author.ListUserRestaurants(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	require.NoError(t, author.DeleteComment(ctx, created.Created.ID))
	assert.ErrorIs(t, author.DeleteComment(ctx, created.Created.ID), ErrNotFound)
}

func TestE2E_Leads(t *testing.T) {
	ctx := context.Background()
	baseURL := newTestServer(t)

	c, err := NewHTTPAPIClient(Config{BaseURL: baseURL}, logger.Nop())
	require.NoError(t, err)

	lead, err := c.SubmitLead(ctx, models.LeadRequest{Nombre: "Lu", Email: "lu@example.com", Tipo: "demo"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(lead.ID, models.LeadIDPrefix))

	_, err = c.ListLeads(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	user, _ := registerClient(t, baseURL, "plain")
	_, err = user.ListLeads(ctx)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = c.AdminLogin(ctx, models.AdminLoginRequest{Username: "admin", Password: "admin-pass"})
	require.NoError(t, err)

	leads, err := c.ListLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, lead.ID, leads[0].ID)
}

func TestE2E_HealthAndVersion(t *testing.T) {
	ctx := context.Background()
	c, err := NewHTTPAPIClient(Config{BaseURL: newTestServer(t)}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, c.Health(ctx))

	version, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2e", version)
}

func TestE2E_CurrentUser(t *testing.T) {
	ctx := context.Background()
	baseURL := newTestServer(t)

	ana, registered := registerClient(t, baseURL, "ana")

	me, err := ana.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, registered, me)

	anonymous, err := NewHTTPAPIClient(Config{BaseURL: baseURL}, logger.Nop())
	require.NoError(t, err)
	_, err = anonymous.Me(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = anonymous.AdminLogin(ctx, models.AdminLoginRequest{Username: "admin", Password: "admin-pass"})
	require.NoError(t, err)
	_, err = anonymous.Me(ctx)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestE2E_ValidationAndAuth(t *testing.T) {
	ctx := context.Background()
	baseURL := newTestServer(t)

	c, err := NewHTTPAPIClient(Config{BaseURL: baseURL}, logger.Nop())
	require.NoError(t, err)

	_, err = c.CreateRestaurant(ctx, models.RestaurantRequest{Name: "x", Address: "y"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Register(ctx, models.RegisterRequest{Username: "ab", Password: "secret1", Email: "ab@example.com"})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, _ = registerClient(t, baseURL, "dupe")
	_, err = c.Register(ctx, models.RegisterRequest{Username: "dupe", Password: "secret1", Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = c.Login(ctx, models.LoginRequest{Email: "dupe@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestE2E_RegisterPasswordByteLimit(t *testing.T) {
	ctx := context.Background()
	c, err := NewHTTPAPIClient(Config{BaseURL: newTestServer(t)}, logger.Nop())
	require.NoError(t, err)

	_, err = c.Register(ctx, models.RegisterRequest{
		Username: "longpass",
		Password: strings.Repeat("a", 80),
		Email:    "longpass@example.com",
	})
	require.ErrorIs(t, err, ErrBadRequest)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "password must be at most 72 bytes", apiErr.Message)

	auth, err := c.Register(ctx, models.RegisterRequest{
		Username: "longpass",
		Password: strings.Repeat("a", 72),
		Email:    "longpass@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "longpass", auth.User.Username)
}
