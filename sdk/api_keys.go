package sdk

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cordonhq/cordon/sdk/meta"
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// APIKey represents a long-lived credential for non-interactive access.
type APIKey struct {
	meta.ObjectMeta `json:",inline"`
	Name            string     `json:"name"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	LastUsed        *time.Time `json:"lastUsed,omitempty"`
	// Token is only ever populated in the response to the call that created
	// the key. It cannot be retrieved again.
	Token string `json:"token,omitempty"`
}

// APIKeyList is a page of APIKeys.
type APIKeyList struct {
	Data  []APIKey `json:"data"`
	Total int64    `json:"total"`
}

// APIKeysClient manages API keys.
type APIKeysClient interface {
	List(ctx context.Context, opts meta.ListOptions) (APIKeyList, error)
	Get(ctx context.Context, id string) (APIKey, error)
	// Create mints a new key. The response carries the one-time token value.
	Create(ctx context.Context, apiKey APIKey) (APIKey, error)
	// Revoke permanently invalidates a key.
	Revoke(ctx context.Context, id string) error
}

type apiKeysClient struct {
	restClient *restmachinery.Client
}

// NewAPIKeysClient returns an APIKeysClient that routes through the given
// API client.
func NewAPIKeysClient(restClient *restmachinery.Client) APIKeysClient {
	return &apiKeysClient{restClient: restClient}
}

func (a *apiKeysClient) List(
	ctx context.Context,
	opts meta.ListOptions,
) (APIKeyList, error) {
	apiKeys := APIKeyList{}
	return apiKeys, a.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "/v1/admin/api-keys",
			QueryParams: listQueryParams(opts),
			RespObj:     &apiKeys,
		},
	)
}

func (a *apiKeysClient) Get(ctx context.Context, id string) (APIKey, error) {
	apiKey := APIKey{}
	return apiKey, a.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("/v1/admin/api-keys/%s", id),
			RespObj: &apiKey,
		},
	)
}

func (a *apiKeysClient) Create(
	ctx context.Context,
	apiKey APIKey,
) (APIKey, error) {
	created := APIKey{}
	return created, a.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPost,
			Path:    "/v1/admin/api-keys",
			Body:    apiKey,
			RespObj: &created,
		},
	)
}

func (a *apiKeysClient) Revoke(ctx context.Context, id string) error {
	return a.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/api-keys/%s", id),
		},
	)
}
