package sdk

import (
	"context"
	"net/http"

	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// Principal represents the authenticated identity behind the current
// session.
type Principal struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Name   string   `json:"name,omitempty"`
	OrgID  string   `json:"orgId,omitempty"`
	Roles  []string `json:"roles,omitempty"`
}

// SessionsClient works with the caller's own session: logging in, logging
// out, and discovering who the session belongs to.
type SessionsClient interface {
	// Login establishes a session with an email and password. The session
	// itself rides in cookies; the CSRF token needed by every subsequent
	// state-changing call is captured as a side effect.
	Login(ctx context.Context, email, password string) (Principal, error)
	// Logout destroys the current session.
	Logout(ctx context.Context) error
	// Whoami returns the principal behind the current session.
	Whoami(ctx context.Context) (Principal, error)
}

type sessionsClient struct {
	restClient *restmachinery.Client
}

// NewSessionsClient returns a SessionsClient that routes through the given
// API client.
func NewSessionsClient(restClient *restmachinery.Client) SessionsClient {
	return &sessionsClient{restClient: restClient}
}

func (s *sessionsClient) Login(
	ctx context.Context,
	email string,
	password string,
) (Principal, error) {
	// Pre-warm the CSRF token so the login POST itself can be signed.
	if err := s.restClient.EnsureFreshCSRFToken(ctx, ""); err != nil {
		return Principal{}, err
	}
	principal := Principal{}
	return principal, s.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodPost,
			Path:   restmachinery.LoginPath,
			Body: struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}{
				Email:    email,
				Password: password,
			},
			RespObj: &principal,
		},
	)
}

func (s *sessionsClient) Logout(ctx context.Context) error {
	return s.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodPost,
			Path:   "/v1/auth/logout",
		},
	)
}

func (s *sessionsClient) Whoami(ctx context.Context) (Principal, error) {
	principal := Principal{}
	return principal, s.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    "/v1/auth/me",
			RespObj: &principal,
		},
	)
}
