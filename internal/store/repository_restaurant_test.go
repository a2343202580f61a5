// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/resto-reviews/models"
)

func restaurantRow(id int64, ownerID driver.Value) []driver.Value {
	return []driver.Value{id, ownerID, "Casa Pepe", "Spanish", "Calle Mayor 1", "", "", "", "", models.DefaultLat, models.DefaultLng}
}

func TestCreateRestaurant(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRestaurantRepository(db)

	owner := int64(5)
	restaurant := models.Restaurant{
		OwnerID: &owner,
		Name:    "Casa Pepe",
		Cuisine: "Spanish",
		Address: "Calle Mayor 1",
		Lat:     models.DefaultLat,
		Lng:     models.DefaultLng,
	}

	mock.ExpectQuery(`INSERT INTO restaurants \(owner_id,name,cuisine,address,phone,image,opening_hours,description,lat,lng\)`).
		WithArgs(owner, "Casa Pepe", "Spanish", "Calle Mayor 1", "", "", "", "", models.DefaultLat, models.DefaultLng).
		WillReturnRows(sqlmock.NewRows(restaurantColumns).AddRow(restaurantRow(1, owner)...))

	created, err := repo.CreateRestaurant(context.Background(), restaurant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if !created.IsOwnedBy(owner) {
		t.Errorf("expected owner %d, got %v", owner, created.OwnerID)
	}
}

func TestCreateRestaurant_WithoutOwner(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRestaurantRepository(db)

	mock.ExpectQuery("INSERT INTO restaurants").
		WithArgs(nil, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(restaurantColumns).AddRow(restaurantRow(2, nil)...))

	created, err := repo.CreateRestaurant(context.Background(), models.Restaurant{Name: "Casa Pepe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.OwnerID != nil {
		t.Errorf("expected nil owner, got %d", *created.OwnerID)
	}
}

func TestFindRestaurant_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRestaurantRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM restaurants WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindRestaurant(context.Background(), 42)
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestListRestaurants(t *testing.T) {
	tests := []struct {
		name   string
		filter models.RestaurantFilter
		query  string
	}{
		{
			name:   "all",
			filter: models.RestaurantFilter{},
			query:  `SELECT (.+) FROM restaurants ORDER BY id`,
		},
		{
			name:   "by owner",
			filter: models.RestaurantFilter{OwnerID: func() *int64 { id := int64(5); return &id }()},
			query:  `SELECT (.+) FROM restaurants WHERE owner_id = \$1 ORDER BY id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewRestaurantRepository(db)

			rows := sqlmock.NewRows(restaurantColumns).
				AddRow(restaurantRow(1, int64(5))...).
				AddRow(restaurantRow(2, int64(5))...)
			mock.ExpectQuery(tt.query).WillReturnRows(rows)

			restaurants, err := repo.ListRestaurants(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(restaurants) != 2 {
				t.Fatalf("expected 2 restaurants, got %d", len(restaurants))
			}
			if err = mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestListRestaurants_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRestaurantRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM restaurants").WillReturnRows(sqlmock.NewRows(restaurantColumns))

	restaurants, err := repo.ListRestaurants(context.Background(), models.RestaurantFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restaurants == nil || len(restaurants) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", restaurants)
	}
}

func TestUpdateRestaurant(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRestaurantRepository(db)

	mock.ExpectQuery(`UPDATE restaurants SET name = \$1, cuisine = \$2, address = \$3, phone = \$4, image = \$5, opening_hours = \$6, description = \$7, lat = \$8, lng = \$9 WHERE id = \$10 RETURNING`).
		WithArgs("Casa Pepe", "Spanish", "Calle Mayor 1", "", "", "", "", models.DefaultLat, models.DefaultLng, int64(1)).
		WillReturnRows(sqlmock.NewRows(restaurantColumns).AddRow(restaurantRow(1, int64(5))...))

	updated, err := repo.UpdateRestaurant(context.Background(), models.Restaurant{
		ID:      1,
		Name:    "Casa Pepe",
		Cuisine: "Spanish",
		Address: "Calle Mayor 1",
		Lat:     models.DefaultLat,
		Lng:     models.DefaultLng,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.IsOwnedBy(5) {
		t.Errorf("owner must be preserved, got %v", updated.OwnerID)
	}
}

func TestUpdateRestaurant_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRestaurantRepository(db)

	mock.ExpectQuery("UPDATE restaurants").WillReturnRows(sqlmock.NewRows(restaurantColumns))

	_, err := repo.UpdateRestaurant(context.Background(), models.Restaurant{ID: 9})
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestDeleteRestaurant(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     error
	}{
		{name: "deleted", affected: 1, want: nil},
		{name: "missing", affected: 0, want: ErrRestaurantNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewRestaurantRepository(db)

			mock.ExpectExec(`DELETE FROM restaurants WHERE id = \$1`).
				WithArgs(int64(1)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteRestaurant(context.Background(), 1)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDeleteRestaurant_DBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRestaurantRepository(db)

	mock.ExpectExec("DELETE FROM restaurants").WillReturnError(errors.New("boom"))

	err := repo.DeleteRestaurant(context.Background(), 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
