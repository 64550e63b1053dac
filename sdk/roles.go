package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cordonhq/cordon/sdk/meta"
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// Role represents a named bundle of permissions.
type Role struct {
	meta.ObjectMeta `json:",inline"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Permissions     []string `json:"permissions,omitempty"`
}

// RoleList is a page of Roles.
type RoleList struct {
	Data  []Role `json:"data"`
	Total int64  `json:"total"`
}

// RolesClient manages roles and their assignment to users.
type RolesClient interface {
	List(ctx context.Context, opts meta.ListOptions) (RoleList, error)
	Get(ctx context.Context, id string) (Role, error)
	Create(ctx context.Context, role Role) (Role, error)
	Update(ctx context.Context, role Role) (Role, error)
	Delete(ctx context.Context, id string) error
	// Grant assigns the role to a user.
	Grant(ctx context.Context, id string, userID string) error
	// Revoke removes the role from a user.
	Revoke(ctx context.Context, id string, userID string) error
}

type rolesClient struct {
	restClient *restmachinery.Client
}

// NewRolesClient returns a RolesClient that routes through the given API
// client.
func NewRolesClient(restClient *restmachinery.Client) RolesClient {
	return &rolesClient{restClient: restClient}
}

func (r *rolesClient) List(
	ctx context.Context,
	opts meta.ListOptions,
) (RoleList, error) {
	roles := RoleList{}
	return roles, r.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "/v1/admin/roles",
			QueryParams: listQueryParams(opts),
			RespObj:     &roles,
		},
	)
}

func (r *rolesClient) Get(ctx context.Context, id string) (Role, error) {
	role := Role{}
	return role, r.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("/v1/admin/roles/%s", id),
			RespObj: &role,
		},
	)
}

func (r *rolesClient) Create(ctx context.Context, role Role) (Role, error) {
	created := Role{}
	return created, r.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPost,
			Path:    "/v1/admin/roles",
			Body:    role,
			RespObj: &created,
		},
	)
}

func (r *rolesClient) Update(ctx context.Context, role Role) (Role, error) {
	updated := Role{}
	return updated, r.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPut,
			Path:    fmt.Sprintf("/v1/admin/roles/%s", role.ID),
			Body:    role,
			RespObj: &updated,
		},
	)
}

func (r *rolesClient) Delete(ctx context.Context, id string) error {
	return r.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/roles/%s", id),
		},
	)
}

func (r *rolesClient) Grant(
	ctx context.Context,
	id string,
	userID string,
) error {
	return r.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodPut,
			Path:   fmt.Sprintf("/v1/admin/roles/%s/users/%s", id, userID),
		},
	)
}

func (r *rolesClient) Revoke(
	ctx context.Context,
	id string,
	userID string,
) error {
	return r.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/roles/%s/users/%s", id, userID),
		},
	)
}
