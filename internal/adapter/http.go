// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/utils"
	"github.com/MKhiriev/resto-reviews/models"
)

// Config points the client at a running server.
type Config struct {
	// BaseURL is the server address. A missing scheme defaults to http.
	BaseURL string
	// RequestTimeout bounds each call. Zero disables the timeout.
	RequestTimeout time.Duration
}

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP implementation of [APIClient].
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPAPIClient(cfg Config, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "register", "/auth/register", req)
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "login", "/auth/login", req)
}

func (h *httpAPIClient) AdminLogin(ctx context.Context, req models.AdminLoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "admin login", "/auth/admin/login", req)
}

// authenticate posts credentials and stores the returned token.
func (h *httpAPIClient) authenticate(ctx context.Context, op, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpAPIClient) ListRestaurants(ctx context.Context) ([]models.RestaurantView, error) {
	var restaurants []models.RestaurantView
	err := h.do(ctx, "list restaurants", h.client.R().SetResult(&restaurants), resty.MethodGet, "/restaurants")
	return restaurants, err
}

func (h *httpAPIClient) GetRestaurant(ctx context.Context, id int64) (models.RestaurantView, error) {
	var restaurant models.RestaurantView
	err := h.do(ctx, "get restaurant", h.client.R().SetResult(&restaurant), resty.MethodGet, restaurantPath(id))
	return restaurant, err
}

func (h *httpAPIClient) CreateRestaurant(ctx context.Context, req models.RestaurantRequest) (models.Restaurant, error) {
	var created models.Restaurant
	err := h.do(ctx, "create restaurant", h.authed().SetBody(req).SetResult(&created), resty.MethodPost, "/restaurants")
	return created, err
}

func (h *httpAPIClient) UpdateRestaurant(ctx context.Context, id int64, req models.RestaurantRequest) (models.Restaurant, error) {
	var updated models.Restaurant
	err := h.do(ctx, "update restaurant", h.authed().SetBody(req).SetResult(&updated), resty.MethodPut, restaurantPath(id))
	return updated, err
}

func (h *httpAPIClient) DeleteRestaurant(ctx context.Context, id int64) error {
	var deleted models.DeletedResponse
	if err := h.do(ctx, "delete restaurant", h.authed().SetResult(&deleted), resty.MethodDelete, restaurantPath(id)); err != nil {
		return err
	}
	if !deleted.OK {
		return fmt.Errorf("delete restaurant %d: not acknowledged", id)
	}
	return nil
}

func (h *httpAPIClient) ListComments(ctx context.Context, restaurantID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := h.do(ctx, "list comments", h.client.R().SetResult(&comments), resty.MethodGet, restaurantPath(restaurantID)+"/comments")
	return comments, err
}

func (h *httpAPIClient) CreateComment(ctx context.Context, restaurantID int64, req models.CommentRequest) (models.CommentCreatedResponse, error) {
	var created models.CommentCreatedResponse
	err := h.do(ctx, "create comment", h.authed().SetBody(req).SetResult(&created), resty.MethodPost, restaurantPath(restaurantID)+"/comments")
	return created, err
}

func (h *httpAPIClient) UpdateComment(ctx context.Context, id int64, req models.CommentRequest) (models.Comment, error) {
	var updated models.Comment
	err := h.do(ctx, "update comment", h.authed().SetBody(req).SetResult(&updated), resty.MethodPut, commentPath(id))
	return updated, err
}

func (h *httpAPIClient) DeleteComment(ctx context.Context, id int64) error {
	return h.do(ctx, "delete comment", h.authed(), resty.MethodDelete, commentPath(id))
}

func (h *httpAPIClient) Me(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser
	err := h.do(ctx, "current user", h.authed().SetResult(&user), resty.MethodGet, "/auth/me")
	return user, err
}

func (h *httpAPIClient) ListUserComments(ctx context.Context, userID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := h.do(ctx, "list user comments", h.authed().SetResult(&comments), resty.MethodGet, userPath(userID)+"/comments")
	return comments, err
}

func (h *httpAPIClient) ListUserRestaurants(ctx context.Context, userID int64) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := h.do(ctx, "list user restaurants", h.authed().SetResult(&restaurants), resty.MethodGet, userPath(userID)+"/restaurants")
	return restaurants, err
}

func (h *httpAPIClient) SubmitLead(ctx context.Context, req models.LeadRequest) (models.Lead, error) {
	var created models.LeadCreatedResponse
	err := h.do(ctx, "submit lead", h.client.R().SetBody(req).SetResult(&created), resty.MethodPost, "/fanfan/leads")
	return created.Lead, err
}

func (h *httpAPIClient) ListLeads(ctx context.Context) ([]models.Lead, error) {
	var list models.LeadListResponse
	err := h.do(ctx, "list leads", h.authed().SetResult(&list), resty.MethodGet, "/fanfan/leads")
	return list.Leads, err
}

func (h *httpAPIClient) Health(ctx context.Context) error {
	var health models.HealthResponse
	if err := h.do(ctx, "health", h.client.R().SetResult(&health), resty.MethodGet, "/health"); err != nil {
		return err
	}
	if health.Status != "ok" {
		return fmt.Errorf("health: status %q", health.Status)
	}
	return nil
}

func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// do sends req and maps non-2xx responses to *APIError.
func (h *httpAPIClient) do(ctx context.Context, op string, req *resty.Request, method, path string) error {
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Msg("API call failed")
		return err
	}
	return nil
}

func (h *httpAPIClient) authed() *resty.Request {
	req := h.client.R()
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func restaurantPath(id int64) string {
	return "/restaurants/" + strconv.FormatInt(id, 10)
}

func commentPath(id int64) string {
	return "/comments/" + strconv.FormatInt(id, 10)
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10)
}
