package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mkarev/go-school-admin/internal/config"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/utils"
	"github.com/mkarev/go-school-admin/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.ServerAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// RegisterAdmin implements [ServerAdapter]. It POSTs the account fields to
// POST /api/auth/register-admin. On success the token from the response body
// is stored via SetToken. Returns an error if the request fails or the server
// returns a non-2xx status.
func (h *httpServerAdapter) RegisterAdmin(ctx context.Context, req models.CreateUserRequest) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&authResp).
		Post("/api/auth/register-admin")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register admin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the token from the response body is stored
// via SetToken. Returns an error if the request fails or the server returns a
// non-2xx status.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&authResp).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

// CreateSchoolAdmin implements [ServerAdapter].
func (h *httpServerAdapter) CreateSchoolAdmin(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error) {
	return h.createUser(ctx, "/api/users/create-school-admin", req)
}

// CreateTeacher implements [ServerAdapter].
func (h *httpServerAdapter) CreateTeacher(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error) {
	return h.createUser(ctx, "/api/users/create-teacher", req)
}

// CreateStudent implements [ServerAdapter].
func (h *httpServerAdapter) CreateStudent(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error) {
	return h.createUser(ctx, "/api/users/create-student", req)
}

func (h *httpServerAdapter) createUser(ctx context.Context, path string, req models.CreateUserRequest) (models.UserResponse, error) {
	var userResp models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&userResp).
		Post(path)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return userResp, nil
}

// ListUsers implements [ServerAdapter]. It GETs /api/users with the filter
// encoded as query parameters and decodes the response into a slice of
// [models.PublicUser]. Requires a valid bearer token.
func (h *httpServerAdapter) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error) {
	req := h.authedRequest(ctx)

	if filter.Role != "" {
		req.SetQueryParam("role", string(filter.Role))
	}
	if filter.SchoolID != nil {
		req.SetQueryParam("school_id", strconv.FormatInt(*filter.SchoolID, 10))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}
	if filter.Offset > 0 {
		req.SetQueryParam("offset", strconv.FormatUint(filter.Offset, 10))
	}

	resp, err := req.Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.PublicUser
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode list users response: %w", err)
	}

	return users, nil
}

// Me implements [ServerAdapter]. It GETs /api/users/me and decodes the
// caller's own account. Requires a valid bearer token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/users/me")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// CreateSchool implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) CreateSchool(ctx context.Context, req models.CreateSchoolRequest) (models.SchoolResponse, error) {
	var schoolResp models.SchoolResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&schoolResp).
		Post("/api/schools")
	if err != nil {
		return models.SchoolResponse{}, fmt.Errorf("create school request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SchoolResponse{}, err
	}

	return schoolResp, nil
}

// GetSchool implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) GetSchool(ctx context.Context, schoolID int64) (models.School, error) {
	var school models.School

	resp, err := h.authedRequest(ctx).
		SetResult(&school).
		Get("/api/schools/" + strconv.FormatInt(schoolID, 10))
	if err != nil {
		return models.School{}, fmt.Errorf("get school request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.School{}, err
	}

	return school, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
