package sdk

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cordonhq/cordon/sdk/meta"
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// InvitationStatus represents where an invitation is in its lifecycle.
type InvitationStatus string

const (
	// InvitationPending indicates the invitation has been sent but not yet
	// accepted.
	InvitationPending InvitationStatus = "PENDING"
	// InvitationAccepted indicates the invitee has joined.
	InvitationAccepted InvitationStatus = "ACCEPTED"
	// InvitationExpired indicates the invitation lapsed before it was
	// accepted.
	InvitationExpired InvitationStatus = "EXPIRED"
	// InvitationRevoked indicates an administrator withdrew the invitation.
	InvitationRevoked InvitationStatus = "REVOKED"
)

// Invitation represents an offer for a person to join an organization.
type Invitation struct {
	meta.ObjectMeta `json:",inline"`
	Email           string           `json:"email"`
	RoleIDs         []string         `json:"roleIds,omitempty"`
	Status          InvitationStatus `json:"status,omitempty"`
	ExpiresAt       *time.Time       `json:"expiresAt,omitempty"`
}

// InvitationList is a page of Invitations.
type InvitationList struct {
	Data  []Invitation `json:"data"`
	Total int64        `json:"total"`
}

// InvitationsClient manages invitations.
type InvitationsClient interface {
	List(ctx context.Context, opts meta.ListOptions) (InvitationList, error)
	Get(ctx context.Context, id string) (Invitation, error)
	Create(ctx context.Context, invitation Invitation) (Invitation, error)
	// Resend delivers the invitation email again and extends its expiry.
	Resend(ctx context.Context, id string) error
	// Revoke withdraws a pending invitation.
	Revoke(ctx context.Context, id string) error
}

type invitationsClient struct {
	restClient *restmachinery.Client
}

// NewInvitationsClient returns an InvitationsClient that routes through the
// given API client.
func NewInvitationsClient(
	restClient *restmachinery.Client,
) InvitationsClient {
	return &invitationsClient{restClient: restClient}
}

func (i *invitationsClient) List(
	ctx context.Context,
	opts meta.ListOptions,
) (InvitationList, error) {
	invitations := InvitationList{}
	return invitations, i.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "/v1/admin/invitations",
			QueryParams: listQueryParams(opts),
			RespObj:     &invitations,
		},
	)
}

func (i *invitationsClient) Get(
	ctx context.Context,
	id string,
) (Invitation, error) {
	invitation := Invitation{}
	return invitation, i.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("/v1/admin/invitations/%s", id),
			RespObj: &invitation,
		},
	)
}

func (i *invitationsClient) Create(
	ctx context.Context,
	invitation Invitation,
) (Invitation, error) {
	created := Invitation{}
	return created, i.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodPost,
			Path:    "/v1/admin/invitations",
			Body:    invitation,
			RespObj: &created,
		},
	)
}

func (i *invitationsClient) Resend(ctx context.Context, id string) error {
	return i.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/v1/admin/invitations/%s/resend", id),
		},
	)
}

func (i *invitationsClient) Revoke(ctx context.Context, id string) error {
	return i.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/invitations/%s", id),
		},
	)
}
