// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resto-reviews/internal/service"
	"github.com/MKhiriev/resto-reviews/models"
)

func TestListUserComments(t *testing.T) {
	api := newTestAPI(t)
	api.comments.EXPECT().ListUserComments(gomock.Any(), ana, ana.UserID).Return([]models.Comment{{ID: 1}}, nil)
	api.comments.EXPECT().ListUserComments(gomock.Any(), ana, bo.UserID).Return(nil, service.ErrForbidden)

	rec := api.do(t, http.MethodGet, "/users/1/comments", "", anaToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Comment](t, rec), 1)

	rec = api.do(t, http.MethodGet, "/users/2/comments", "", anaToken)
	requireErrorEnvelope(t, rec, http.StatusForbidden, "forbidden")

	rec = api.do(t, http.MethodGet, "/users/abc/comments", "", anaToken)
	requireErrorEnvelope(t, rec, http.StatusBadRequest, "invalid id")

	rec = api.do(t, http.MethodGet, "/users/1/comments", "", "")
	requireErrorEnvelope(t, rec, http.StatusUnauthorized, "missing token")
}

func TestListUserRestaurants(t *testing.T) {
	api := newTestAPI(t)
	api.restaurants.EXPECT().ListUserRestaurants(gomock.Any(), bo, bo.UserID).Return([]models.Restaurant{}, nil)
	api.restaurants.EXPECT().ListUserRestaurants(gomock.Any(), bo, ana.UserID).Return(nil, service.ErrForbidden)

	rec := api.do(t, http.MethodGet, "/users/2/restaurants", "", boToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/users/1/restaurants", "", boToken)
	requireErrorEnvelope(t, rec, http.StatusForbidden, "forbidden")

	rec = api.do(t, http.MethodGet, "/users/x/restaurants", "", boToken)
	requireErrorEnvelope(t, rec, http.StatusBadRequest, "invalid id")
}
