package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cordonhq/cordon/sdk/meta"
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// Team represents a named group of users.
type Team struct {
	meta.ObjectMeta `json:",inline"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	MemberCount     int64  `json:"memberCount,omitempty"`
}

// TeamList is a page of Teams.
type TeamList struct {
	Data  []Team `json:"data"`
	Total int64  `json:"total"`
}

// TeamsClient manages teams and team membership.
type TeamsClient interface {
	List(ctx context.Context, opts meta.ListOptions) (TeamList, error)
	Get(ctx context.Context, id string) (Team, error)
	Create(ctx context.Context, team Team) (Team, error)
	Update(ctx context.Context, team Team) (Team, error)
	Delete(ctx context.Context, id string) error
	// Members lists the users on a team.
	Members(ctx context.Context, id string, opts meta.ListOptions) (UserList, error)
	AddMember(ctx context.Context, id string, userID string) error
	RemoveMember(ctx context.Context, id string, userID string) error
}

type teamsClient struct {
	restClient *restmachinery.Client
}

// NewTeamsClient returns a TeamsClient that routes through the given API
// client.
func NewTeamsClient(restClient *restmachinery.Client) TeamsClient {
	return &teamsClient{restClient: restClient}
}

func (t *teamsClient) List(
	ctx context.Context,
	opts meta.ListOptions,
) (TeamList, error) {
	teams := TeamList{}
	return teams, t.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "/v1/admin/teams",
			QueryParams: listQueryParams(opts),
			RespObj:     &teams,
		},
	)
}

func (t *teamsClient) Get(ctx context.Context, id string) (Team, error) {
	team := Team{}
	return team, t.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("/v1/admin/teams/%s", id),
			RespObj: &team,
		},
	)
}

func (t *teamsClient) Create(ctx context.Context, team Team) (Team, error) {
	created := Team{}
	return created, t.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPost,
			Path:    "/v1/admin/teams",
			Body:    team,
			RespObj: &created,
		},
	)
}

func (t *teamsClient) Update(ctx context.Context, team Team) (Team, error) {
	updated := Team{}
	return updated, t.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPut,
			Path:    fmt.Sprintf("/v1/admin/teams/%s", team.ID),
			Body:    team,
			RespObj: &updated,
		},
	)
}

func (t *teamsClient) Delete(ctx context.Context, id string) error {
	return t.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/teams/%s", id),
		},
	)
}

func (t *teamsClient) Members(
	ctx context.Context,
	id string,
	opts meta.ListOptions,
) (UserList, error) {
	members := UserList{}
	return members, t.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("/v1/admin/teams/%s/members", id),
			QueryParams: listQueryParams(opts),
			RespObj:     &members,
		},
	)
}

func (t *teamsClient) AddMember(
	ctx context.Context,
	id string,
	userID string,
) error {
	return t.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodPut,
			Path:   fmt.Sprintf("/v1/admin/teams/%s/members/%s", id, userID),
		},
	)
}

func (t *teamsClient) RemoveMember(
	ctx context.Context,
	id string,
	userID string,
) error {
	return t.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/teams/%s/members/%s", id, userID),
		},
	)
}
