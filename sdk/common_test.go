package sdk

import (
	"net/http"
	"net/http/httptest"

	"github.com/cordonhq/cordon/sdk/restmachinery"
)

const (
	testOrgID     = "org-stark-industries"
	testCSRFToken = "11235813213455"
	testUserID    = "tony@starkindustries.com"
)

// newServerAndClient pairs an httptest server with a Client whose CSRF token
// is pre-seeded, so tests exercising a single operation don't also have to
// script the token acquisition probe.
func newServerAndClient(
	handler http.Handler,
) (*httptest.Server, Client) {
	server := httptest.NewServer(handler)
	client := NewClient(
		server.URL,
		ClientOptions{
			OrgID:     testOrgID,
			CSRFToken: testCSRFToken,
		},
	)
	return server, client
}

func setCSRFHeader(w http.ResponseWriter, token string) {
	w.Header().Set(restmachinery.CSRFHeaderName, token)
}
