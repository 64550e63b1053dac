package sdk

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateWebhookBytes(t *testing.T) {
	testCases := []struct {
		name         string
		webhookBytes []byte
		valid        bool
	}{
		{
			name: "valid definition",
			webhookBytes: []byte(
				`{"url":"https://hooks.example.com/iam","events":["user.created"],"active":true}`, // nolint: lll
			),
			valid: true,
		},
		{
			name:         "missing url",
			webhookBytes: []byte(`{"events":["user.created"]}`),
			valid:        false,
		},
		{
			name: "empty events",
			webhookBytes: []byte(
				`{"url":"https://hooks.example.com/iam","events":[]}`,
			),
			valid: false,
		},
		{
			name: "malformed event type",
			webhookBytes: []byte(
				`{"url":"https://hooks.example.com/iam","events":["UserCreated"]}`,
			),
			valid: false,
		},
		{
			name: "non-http url",
			webhookBytes: []byte(
				`{"url":"ftp://hooks.example.com/iam","events":["user.created"]}`,
			),
			valid: false,
		},
		{
			name: "unknown field",
			webhookBytes: []byte(
				`{"url":"https://hooks.example.com/iam","events":["user.created"],"retries":5}`, // nolint: lll
			),
			valid: false,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := ValidateWebhookBytes(testCase.webhookBytes)
			if testCase.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), "validation")
			}
		})
	}
}

func TestWebhooksClientCreate(t *testing.T) {
	server, client := newServerAndClient(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/v1/admin/webhooks", r.URL.Path)
				require.Equal(
					t,
					"application/json",
					r.Header.Get("Content-Type"),
				)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(
					w,
					`{"id":"wh1","url":"https://hooks.example.com/iam","events":["user.created"],"secret":"whsec_abc"}`, // nolint: lll
				)
			},
		),
	)
	defer server.Close()
	webhook, err := client.Webhooks().Create(
		context.Background(),
		[]byte(
			`{"url":"https://hooks.example.com/iam","events":["user.created"]}`,
		),
	)
	require.NoError(t, err)
	require.Equal(t, "wh1", webhook.ID)
	require.Equal(t, "whsec_abc", webhook.Secret)
}

func TestWebhooksClientCreateRejectsInvalidDefinitionsLocally(t *testing.T) {
	server, client := newServerAndClient(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("an invalid definition should never reach the server")
			},
		),
	)
	defer server.Close()
	_, err := client.Webhooks().Create(
		context.Background(),
		[]byte(`{"events":["user.created"]}`),
	)
	require.Error(t, err)
}

func TestWebhooksClientPing(t *testing.T) {
	server, client := newServerAndClient(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/v1/admin/webhooks/wh1/ping", r.URL.Path)
				w.WriteHeader(http.StatusAccepted)
			},
		),
	)
	defer server.Close()
	require.NoError(t, client.Webhooks().Ping(context.Background(), "wh1"))
}
