package sdk

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cordonhq/cordon/sdk/meta"
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// User represents a human user of the system.
type User struct {
	meta.ObjectMeta `json:",inline"`
	Email           string     `json:"email"`
	Name            string     `json:"name,omitempty"`
	// Locked indicates when the user was locked out of the system. A nil
	// value means the user is not locked.
	Locked    *time.Time `json:"locked,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// UserList is a page of Users.
type UserList struct {
	Data  []User `json:"data"`
	Total int64  `json:"total"`
}

// UsersClient manages users.
type UsersClient interface {
	List(ctx context.Context, opts meta.ListOptions) (UserList, error)
	Get(ctx context.Context, id string) (User, error)
	// Update replaces a user's mutable profile fields.
	Update(ctx context.Context, user User) (User, error)
	// Lock revokes a user's access without deleting them.
	Lock(ctx context.Context, id string) error
	// Unlock restores a locked user's access.
	Unlock(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type usersClient struct {
	restClient *restmachinery.Client
}

// NewUsersClient returns a UsersClient that routes through the given API
// client.
func NewUsersClient(restClient *restmachinery.Client) UsersClient {
	return &usersClient{restClient: restClient}
}

func (u *usersClient) List(
	ctx context.Context,
	opts meta.ListOptions,
) (UserList, error) {
	users := UserList{}
	return users, u.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "/v1/admin/users",
			QueryParams: listQueryParams(opts),
			RespObj:     &users,
		},
	)
}

func (u *usersClient) Get(ctx context.Context, id string) (User, error) {
	user := User{}
	return user, u.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("/v1/admin/users/%s", id),
			RespObj: &user,
		},
	)
}

func (u *usersClient) Update(
	ctx context.Context,
	user User,
) (User, error) {
	updated := User{}
	return updated, u.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPut,
			Path:    fmt.Sprintf("/v1/admin/users/%s", user.ID),
			Body:    user,
			RespObj: &updated,
		},
	)
}

func (u *usersClient) Lock(ctx context.Context, id string) error {
	return u.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodPut,
			Path:   fmt.Sprintf("/v1/admin/users/%s/lock", id),
		},
	)
}

func (u *usersClient) Unlock(ctx context.Context, id string) error {
	return u.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/users/%s/lock", id),
		},
	)
}

func (u *usersClient) Delete(ctx context.Context, id string) error {
	return u.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/users/%s", id),
		},
	)
}
