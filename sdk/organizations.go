package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cordonhq/cordon/sdk/meta"
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// Organization represents a tenant. Every other resource in the admin API
// lives inside exactly one organization, selected by the org-scope header.
type Organization struct {
	meta.ObjectMeta `json:",inline"`
	Name            string `json:"name"`
	// Domain is the organization's verified email/SSO domain, if any.
	Domain string `json:"domain,omitempty"`
}

// OrganizationList is a page of Organizations.
type OrganizationList struct {
	Data  []Organization `json:"data"`
	Total int64          `json:"total"`
}

// OrganizationsClient manages organizations. Unlike the other sub-clients,
// its operations are not themselves org-scoped; Get and Delete accept an
// explicit organization ID instead.
type OrganizationsClient interface {
	List(ctx context.Context, opts meta.ListOptions) (OrganizationList, error)
	Get(ctx context.Context, id string) (Organization, error)
	Create(ctx context.Context, org Organization) (Organization, error)
	Update(ctx context.Context, org Organization) (Organization, error)
	Delete(ctx context.Context, id string) error
}

type organizationsClient struct {
	restClient *restmachinery.Client
}

// NewOrganizationsClient returns an OrganizationsClient that routes through
// the given API client.
func NewOrganizationsClient(
	restClient *restmachinery.Client,
) OrganizationsClient {
	return &organizationsClient{restClient: restClient}
}

func (o *organizationsClient) List(
	ctx context.Context,
	opts meta.ListOptions,
) (OrganizationList, error) {
	orgs := OrganizationList{}
	return orgs, o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "/v1/admin/orgs",
			QueryParams: listQueryParams(opts),
			RespObj:     &orgs,
		},
	)
}

func (o *organizationsClient) Get(
	ctx context.Context,
	id string,
) (Organization, error) {
	org := Organization{}
	return org, o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("/v1/admin/orgs/%s", id),
			RespObj: &org,
		},
	)
}

func (o *organizationsClient) Create(
	ctx context.Context,
	org Organization,
) (Organization, error) {
	created := Organization{}
	return created, o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPost,
			Path:    "/v1/admin/orgs",
			Body:    org,
			RespObj: &created,
		},
	)
}

func (o *organizationsClient) Update(
	ctx context.Context,
	org Organization,
) (Organization, error) {
	updated := Organization{}
	return updated, o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPut,
			Path:    fmt.Sprintf("/v1/admin/orgs/%s", org.ID),
			Body:    org,
			RespObj: &updated,
		},
	)
}

func (o *organizationsClient) Delete(ctx context.Context, id string) error {
	return o.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/orgs/%s", id),
		},
	)
}
