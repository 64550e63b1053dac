package sdk

import (
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// Client is the root of the Cordon admin SDK: one sub-client per admin
// feature, all routed through a single shared API client so CSRF token state
// is consistent across features.
type Client interface {
	// Sessions returns a client for working with the caller's own session.
	Sessions() SessionsClient
	// Users returns a client for managing users.
	Users() UsersClient
	// Roles returns a client for managing roles and role assignments.
	Roles() RolesClient
	// Teams returns a client for managing teams and team membership.
	Teams() TeamsClient
	// OAuth2Clients returns a client for managing OAuth2 client
	// registrations.
	OAuth2Clients() OAuth2ClientsClient
	// APIKeys returns a client for managing API keys.
	APIKeys() APIKeysClient
	// Webhooks returns a client for managing webhooks.
	Webhooks() WebhooksClient
	// Invitations returns a client for managing invitations.
	Invitations() InvitationsClient
	// Organizations returns a client for managing organizations.
	Organizations() OrganizationsClient
	// REST returns the underlying API client, for callers that need direct
	// access to cross-cutting operations such as CSRF token pre-warming.
	REST() *restmachinery.Client
}

// ClientOptions represents optional construction-time settings for a Client.
// The zero value is usable: cookies ride in an internal jar, the CSRF token
// is cached in memory only, and the default organization scope is whatever
// the environment provides.
type ClientOptions struct {
	// OrgID is the default organization scope for every request.
	OrgID string
	// CSRFToken pre-seeds the CSRF token cache.
	CSRFToken string
	// AllowInsecure permits TLS connections with unverifiable certificates.
	AllowInsecure bool
	// Transport overrides the HTTP transport. Intended for tests.
	Transport restmachinery.Doer
	// TokenStore persists the CSRF token across restarts.
	TokenStore restmachinery.TokenStore
	// OnCSRFToken is invoked whenever a fresh CSRF token is observed.
	OnCSRFToken func(token string)
}

type client struct {
	restClient          *restmachinery.Client
	sessionsClient      SessionsClient
	usersClient         UsersClient
	rolesClient         RolesClient
	teamsClient         TeamsClient
	oauth2ClientsClient OAuth2ClientsClient
	apiKeysClient       APIKeysClient
	webhooksClient      WebhooksClient
	invitationsClient   InvitationsClient
	organizationsClient OrganizationsClient
}

// NewClient returns a new Client that talks to the Cordon API at the given
// address. An empty address falls back to the environment-resolved default.
func NewClient(address string, opts ClientOptions) Client {
	restClient := restmachinery.NewClient(
		restmachinery.ClientConfig{
			Address:       address,
			OrgID:         opts.OrgID,
			CSRFToken:     opts.CSRFToken,
			Transport:     opts.Transport,
			TokenStore:    opts.TokenStore,
			OnCSRFToken:   opts.OnCSRFToken,
			AllowInsecure: opts.AllowInsecure,
		},
	)
	return &client{
		restClient:          restClient,
		sessionsClient:      NewSessionsClient(restClient),
		usersClient:         NewUsersClient(restClient),
		rolesClient:         NewRolesClient(restClient),
		teamsClient:         NewTeamsClient(restClient),
		oauth2ClientsClient: NewOAuth2ClientsClient(restClient),
		apiKeysClient:       NewAPIKeysClient(restClient),
		webhooksClient:      NewWebhooksClient(restClient),
		invitationsClient:   NewInvitationsClient(restClient),
		organizationsClient: NewOrganizationsClient(restClient),
	}
}

func (c *client) Sessions() SessionsClient {
	return c.sessionsClient
}

func (c *client) Users() UsersClient {
	return c.usersClient
}

func (c *client) Roles() RolesClient {
	return c.rolesClient
}

func (c *client) Teams() TeamsClient {
	return c.teamsClient
}

func (c *client) OAuth2Clients() OAuth2ClientsClient {
	return c.oauth2ClientsClient
}

func (c *client) APIKeys() APIKeysClient {
	return c.apiKeysClient
}

func (c *client) Webhooks() WebhooksClient {
	return c.webhooksClient
}

func (c *client) Invitations() InvitationsClient {
	return c.invitationsClient
}

func (c *client) Organizations() OrganizationsClient {
	return c.organizationsClient
}

func (c *client) REST() *restmachinery.Client {
	return c.restClient
}
