package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"

	"github.com/cordonhq/cordon/sdk/meta"
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// Webhook represents a subscription that delivers admin events to an
// external HTTP endpoint.
type Webhook struct {
	meta.ObjectMeta `json:",inline"`
	URL             string   `json:"url"`
	// Events names the event types the webhook subscribes to, e.g.
	// "user.created" or "role.deleted".
	Events []string `json:"events"`
	Active bool     `json:"active"`
	// Secret is used by the receiver to verify delivery signatures. It is
	// only ever populated in the response to the call that created it.
	Secret string `json:"secret,omitempty"`
}

// WebhookList is a page of Webhooks.
type WebhookList struct {
	Data  []Webhook `json:"data"`
	Total int64     `json:"total"`
}

// webhookSchemaBytes is the schema webhook definitions are validated against
// before they are ever sent to the server, so obviously malformed input fails
// fast with a useful message.
var webhookSchemaBytes = []byte(`
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Webhook",
	"type": "object",
	"required": ["url", "events"],
	"additionalProperties": false,
	"properties": {
		"id": { "type": "string" },
		"url": {
			"type": "string",
			"pattern": "^https?://"
		},
		"events": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "string",
				"pattern": "^[a-z0-9_-]+\\.[a-z0-9_-]+$"
			}
		},
		"active": { "type": "boolean" }
	}
}
`)

// ValidateWebhookBytes checks a JSON webhook definition against the webhook
// schema and returns a descriptive error for the first batch of violations.
func ValidateWebhookBytes(webhookBytes []byte) error {
	validationResult, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(webhookSchemaBytes),
		gojsonschema.NewBytesLoader(webhookBytes),
	)
	if err != nil {
		return errors.Wrap(err, "error validating webhook definition")
	}
	if !validationResult.Valid() {
		verrStrs := make([]string, len(validationResult.Errors()))
		for i, verr := range validationResult.Errors() {
			verrStrs[i] = verr.String()
		}
		return errors.Errorf(
			"webhook definition failed validation: %s",
			verrStrs,
		)
	}
	return nil
}

// WebhooksClient manages webhooks.
type WebhooksClient interface {
	List(ctx context.Context, opts meta.ListOptions) (WebhookList, error)
	Get(ctx context.Context, id string) (Webhook, error)
	// Create registers a webhook from a raw JSON definition, validating it
	// client-side first. The response carries the one-time signing secret.
	Create(ctx context.Context, webhookBytes []byte) (Webhook, error)
	// Update replaces a webhook from a raw JSON definition, validating it
	// client-side first.
	Update(ctx context.Context, id string, webhookBytes []byte) (Webhook, error)
	Delete(ctx context.Context, id string) error
	// Ping asks the server to deliver a test event to the webhook.
	Ping(ctx context.Context, id string) error
}

type webhooksClient struct {
	restClient *restmachinery.Client
}

// NewWebhooksClient returns a WebhooksClient that routes through the given
// API client.
func NewWebhooksClient(restClient *restmachinery.Client) WebhooksClient {
	return &webhooksClient{restClient: restClient}
}

func (w *webhooksClient) List(
	ctx context.Context,
	opts meta.ListOptions,
) (WebhookList, error) {
	webhooks := WebhookList{}
	return webhooks, w.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "/v1/admin/webhooks",
			QueryParams: listQueryParams(opts),
			RespObj:     &webhooks,
		},
	)
}

func (w *webhooksClient) Get(
	ctx context.Context,
	id string,
) (Webhook, error) {
	webhook := Webhook{}
	return webhook, w.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("/v1/admin/webhooks/%s", id),
			RespObj: &webhook,
		},
	)
}

func (w *webhooksClient) Create(
	ctx context.Context,
	webhookBytes []byte,
) (Webhook, error) {
	created := Webhook{}
	if err := ValidateWebhookBytes(webhookBytes); err != nil {
		return created, err
	}
	return created, w.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodPost,
			Path:   "/v1/admin/webhooks",
			Headers: http.Header{
				"Content-Type": []string{"application/json"},
			},
			Body:    webhookBytes,
			RespObj: &created,
		},
	)
}

func (w *webhooksClient) Update(
	ctx context.Context,
	id string,
	webhookBytes []byte,
) (Webhook, error) {
	updated := Webhook{}
	if err := ValidateWebhookBytes(webhookBytes); err != nil {
		return updated, err
	}
	return updated, w.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodPut,
			Path:   fmt.Sprintf("/v1/admin/webhooks/%s", id),
			Headers: http.Header{
				"Content-Type": []string{"application/json"},
			},
			Body:    webhookBytes,
			RespObj: &updated,
		},
	)
}

func (w *webhooksClient) Delete(ctx context.Context, id string) error {
	return w.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("/v1/admin/webhooks/%s", id),
		},
	)
}

func (w *webhooksClient) Ping(ctx context.Context, id string) error {
	return w.restClient.ExecuteRequest(
		ctx,
		restmachinery.OutboundRequest{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/v1/admin/webhooks/%s/ping", id),
		},
	)
}
