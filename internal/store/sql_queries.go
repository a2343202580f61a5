// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/resto-reviews/models"
)

var (
	userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

	restaurantColumns = []string{
		"id", "owner_id", "name", "cuisine", "address", "phone",
		"image", "opening_hours", "description", "lat", "lng",
	}

	commentColumns = []string{"id", "restaurant_id", "user_id", "username", "text", "rating", "created_at"}

	leadColumns = []string{"id", "nombre", "email", "telefono", "mensaje", "tipo", "codigo", "descuento", "fecha"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, timestamp{&user.CreatedAt})
	return user, err
}

func scanRestaurant(row rowScanner) (models.Restaurant, error) {
	var (
		restaurant models.Restaurant
		ownerID    sql.NullInt64
	)
	err := row.Scan(
		&restaurant.ID,
		&ownerID,
		&restaurant.Name,
		&restaurant.Cuisine,
		&restaurant.Address,
		&restaurant.Phone,
		&restaurant.Image,
		&restaurant.OpeningHours,
		&restaurant.Description,
		&restaurant.Lat,
		&restaurant.Lng,
	)
	if ownerID.Valid {
		restaurant.OwnerID = &ownerID.Int64
	}
	return restaurant, err
}

func scanComment(row rowScanner) (models.Comment, error) {
	var (
		comment models.Comment
		rating  sql.NullInt32
	)
	err := row.Scan(
		&comment.ID,
		&comment.RestaurantID,
		&comment.UserID,
		&comment.Username,
		&comment.Text,
		&rating,
		timestamp{&comment.CreatedAt},
	)
	if rating.Valid {
		r := int(rating.Int32)
		comment.Rating = &r
	}
	return comment, err
}

func scanLead(row rowScanner) (models.Lead, error) {
	var (
		lead      models.Lead
		codigo    sql.NullString
		descuento sql.NullString
	)
	err := row.Scan(
		&lead.ID,
		&lead.Nombre,
		&lead.Email,
		&lead.Telefono,
		&lead.Mensaje,
		&lead.Tipo,
		&codigo,
		&descuento,
		timestamp{&lead.Fecha},
	)
	if codigo.Valid {
		lead.Codigo = &codigo.String
	}
	if descuento.Valid {
		lead.Descuento = &descuento.String
	}
	return lead, err
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

// sqliteTimeLayouts are the text forms go-sqlite3 writes and CURRENT_TIMESTAMP yields.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// timestamp scans a time column. SQLite has no time type and may hand the
// value back as text, e.g. for RETURNING columns.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case nil:
		*ts.t = time.Time{}
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	}
	return fmt.Errorf("cannot scan %T into time", src)
}

func (ts timestamp) parse(s string) error {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time", s)
}
