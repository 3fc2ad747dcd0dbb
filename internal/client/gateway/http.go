package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/quickbites/quickbites-admin/internal/client/models"
)

// requestIDHeader carries a per-request correlation id so client-side logs
// can be matched against backend logs.
const requestIDHeader = "X-Request-Id"

// HTTPGateway is the HTTP/JSON implementation of Gateway. It is safe for
// concurrent use.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway constructs a gateway client for the backend at baseURL
// (no trailing slash), e.g. "https://quickbites-api.onrender.com".
func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// envelope is the common response wrapper used by every backend endpoint.
// Endpoints populate different subsets of the fields.
type envelope struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Token     string           `json:"token"`
	Operator  *models.Operator `json:"admin"`
	OrderData []models.Order   `json:"orderData"`
}

// do performs one JSON round trip. A nil body sends no payload. Error
// statuses come back as *RejectedError, transport and decode problems as
// wrapped ErrUnavailable. The success flag is not interpreted here because
// not every endpoint carries it; callers check the fields they need.
func (g *HTTPGateway) do(ctx context.Context, op, method, path string, body any) (*envelope, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// Malformed body on an error status is still just a rejection
		// without detail; on a success status it means the gateway is
		// not speaking our protocol.
		if resp.StatusCode >= 400 {
			return nil, &RejectedError{Op: op}
		}
		return nil, fmt.Errorf("%s: %w: decode response: %w", op, ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		return nil, &RejectedError{Op: op, Message: env.Message}
	}
	return &env, nil
}

// doAcknowledged is do plus a check of the success flag, for the endpoints
// whose contract includes one.
func (g *HTTPGateway) doAcknowledged(ctx context.Context, op, method, path string, body any) (*envelope, error) {
	env, err := g.do(ctx, op, method, path, body)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &RejectedError{Op: op, Message: env.Message}
	}
	return env, nil
}

func (g *HTTPGateway) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	env, err := g.doAcknowledged(ctx, "login", http.MethodPost, "/api/auth/admin/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	return loginResult(env, "login")
}

func (g *HTTPGateway) FederatedLogin(ctx context.Context, identityToken string) (*LoginResult, error) {
	env, err := g.doAcknowledged(ctx, "federated login", http.MethodPost, "/api/auth/admin/google", map[string]string{
		"credential": identityToken,
	})
	if err != nil {
		return nil, err
	}
	return loginResult(env, "federated login")
}

func loginResult(env *envelope, op string) (*LoginResult, error) {
	if env.Token == "" || env.Operator == nil {
		return nil, fmt.Errorf("%s: %w: incomplete login payload", op, ErrUnavailable)
	}
	return &LoginResult{Token: env.Token, Operator: *env.Operator}, nil
}

func (g *HTTPGateway) ForgotPassword(ctx context.Context, email string) error {
	_, err := g.doAcknowledged(ctx, "forgot password", http.MethodPost, "/api/auth/admin/forgot-password", map[string]string{
		"email": email,
	})
	return err
}

func (g *HTTPGateway) VerifyReset(ctx context.Context, identityToken, email string) error {
	_, err := g.doAcknowledged(ctx, "verify reset", http.MethodPost, "/api/auth/admin/verify-google-reset", map[string]string{
		"credential": identityToken,
		"email":      email,
	})
	return err
}

func (g *HTTPGateway) ResetPassword(ctx context.Context, email, newPassword, confirmPassword string) error {
	_, err := g.doAcknowledged(ctx, "reset password", http.MethodPost, "/api/auth/admin/reset-password", map[string]string{
		"email":           email,
		"newPassword":     newPassword,
		"confirmPassword": confirmPassword,
	})
	return err
}

func (g *HTTPGateway) GetProfile(ctx context.Context, operatorID string) (*models.Operator, error) {
	path := "/api/auth/admin/getadmin-profile?adminId=" + url.QueryEscape(operatorID)
	env, err := g.do(ctx, "get profile", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if env.Operator == nil {
		return nil, fmt.Errorf("get profile: %w: missing operator record", ErrUnavailable)
	}
	return env.Operator, nil
}

func (g *HTTPGateway) UpdateProfile(ctx context.Context, operatorID string, fields models.ProfileUpdate) (*models.Operator, error) {
	path := "/api/auth/admin/updateadmin-profile/" + url.PathEscape(operatorID)
	env, err := g.doAcknowledged(ctx, "update profile", http.MethodPut, path, fields)
	if err != nil {
		return nil, err
	}
	if env.Operator == nil {
		return nil, fmt.Errorf("update profile: %w: missing operator record", ErrUnavailable)
	}
	return env.Operator, nil
}

func (g *HTTPGateway) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	env, err := g.doAcknowledged(ctx, "get orders", http.MethodPost, "/api/order/get-all-orders", nil)
	if err != nil {
		return nil, err
	}
	return env.OrderData, nil
}
