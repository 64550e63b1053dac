package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cordonhq/cordon/sdk/meta"
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// OAuth2Client represents a registered OAuth2 client application.
type OAuth2Client struct {
	meta.ObjectMeta `json:",inline"`
	Name            string   `json:"name"`
	RedirectURIs    []string `json:"redirectUris,omitempty"`
	GrantTypes      []string `json:"grantTypes,omitempty"`
	Scopes          []string `json:"scopes,omitempty"`
	// Secret is only ever populated in the response to the call that created
	// or regenerated it. It cannot be retrieved again.
	Secret string `json:"secret,omitempty"`
}

// OAuth2ClientList is a page of OAuth2Clients.
type OAuth2ClientList struct {
	Data  []OAuth2Client `json:"data"`
	Total int64          `json:"total"`
}

// OAuth2ClientsClient manages OAuth2 client registrations.
type OAuth2ClientsClient interface {
	List(ctx context.Context, opts meta.ListOptions) (OAuth2ClientList, error)
	Get(ctx context.Context, id string) (OAuth2Client, error)
	// Create registers a new client. The response carries the one-time
	// client secret.
	Create(ctx context.Context, oauth2Client OAuth2Client) (OAuth2Client, error)
	Update(ctx context.Context, oauth2Client OAuth2Client) (OAuth2Client, error)
	// RegenerateSecret replaces a client's secret. The response carries the
	// new one-time secret.
	RegenerateSecret(ctx context.Context, id string) (OAuth2Client, error)
	Delete(ctx context.Context, id string) error
}

type oauth2ClientsClient struct {
	restClient *restmachinery.Client
}

// NewOAuth2ClientsClient returns an OAuth2ClientsClient that routes through
// the given API client.
func NewOAuth2ClientsClient(
	restClient *restmachinery.Client,
) OAuth2ClientsClient {
	return &oauth2ClientsClient{restClient: restClient}
}

func (o *oauth2ClientsClient) List(
	ctx context.Context,
	opts meta.ListOptions,
) (OAuth2ClientList, error) {
	oauth2Clients := OAuth2ClientList{}
	return oauth2Clients, o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "/v1/admin/clients",
			QueryParams: listQueryParams(opts),
			RespObj:     &oauth2Clients,
		},
	)
}

func (o *oauth2ClientsClient) Get(
	ctx context.Context,
	id string,
) (OAuth2Client, error) {
	oauth2Client := OAuth2Client{}
	return oauth2Client, o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("/v1/admin/clients/%s", id),
			RespObj: &oauth2Client,
		},
	)
}

func (o *oauth2ClientsClient) Create(
	ctx context.Context,
	oauth2Client OAuth2Client,
) (OAuth2Client, error) {
	created := OAuth2Client{}
	return created, o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPost,
			Path:    "/v1/admin/clients",
			Body:    oauth2Client,
			RespObj: &created,
		},
	)
}

func (o *oauth2ClientsClient) Update(
	ctx context.Context,
	oauth2Client OAuth2Client,
) (OAuth2Client, error) {
	updated := OAuth2Client{}
	return updated, o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPut,
			Path:    fmt.Sprintf("/v1/admin/clients/%s", oauth2Client.ID),
			Body:    oauth2Client,
			RespObj: &updated,
		},
	)
}

func (o *oauth2ClientsClient) RegenerateSecret(
	ctx context.Context,
	id string,
) (OAuth2Client, error) {
	oauth2Client := OAuth2Client{}
	return oauth2Client, o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPost,
			Path:    fmt.Sprintf("/v1/admin/clients/%s/secret", id),
			RespObj: &oauth2Client,
		},
	)
}

func (o *oauth2ClientsClient) Delete(ctx context.Context, id string) error {
	return o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/clients/%s", id),
		},
	)
}
