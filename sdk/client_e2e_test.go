package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/cordonhq/cordon/sdk/meta"
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

// fakeIAMServer is a minimal stateful stand-in for the Cordon API: it issues
// CSRF tokens, rotates them, and rejects state-changing requests signed with
// anything but the current token.
type fakeIAMServer struct {
	mu           sync.Mutex
	tokensIssued int
	currentToken string
	deleteCalls  int
	probeCalls   int
}

func (f *fakeIAMServer) issueToken(w http.ResponseWriter) string {
	f.tokensIssued++
	f.currentToken = fmt.Sprintf("token-%d", f.tokensIssued)
	w.Header().Set(restmachinery.CSRFHeaderName, f.currentToken)
	return f.currentToken
}

func TestClientEndToEnd(t *testing.T) {
	fake := &fakeIAMServer{}

	router := mux.NewRouter()
	router.HandleFunc(
		"/v1/auth/login",
		func(w http.ResponseWriter, r *http.Request) {
			fake.mu.Lock()
			defer fake.mu.Unlock()
			switch r.Method {
			case http.MethodOptions:
				fake.issueToken(w)
			case http.MethodPost:
				require.Equal(
					t,
					fake.currentToken,
					r.Header.Get(restmachinery.CSRFHeaderName),
				)
				fake.issueToken(w)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(
					w,
					`{"userId":"u1","email":"tony@starkindustries.com","roles":["admin"]}`, // nolint: lll
				)
			}
		},
	).Methods(http.MethodOptions, http.MethodPost)
	router.HandleFunc(
		"/v1/admin/users",
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(
				t,
				testOrgID,
				r.Header.Get(restmachinery.OrgHeaderName),
			)
			require.Equal(t, "50", r.URL.Query().Get("limit"))
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintln(
				w,
				`{"data":[{"id":"u1","email":"tony@starkindustries.com"},{"id":"u2","email":"pepper@starkindustries.com"}],"total":2}`, // nolint: lll
			)
		},
	).Methods(http.MethodGet)
	router.HandleFunc(
		"/v1/admin/users/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			fake.mu.Lock()
			defer fake.mu.Unlock()
			if r.Method == http.MethodOptions {
				fake.probeCalls++
				fake.issueToken(w)
				return
			}
			fake.deleteCalls++
			require.Equal(t, "u2", mux.Vars(r)["id"])
			if r.Header.Get(restmachinery.CSRFHeaderName) != fake.currentToken { // nolint: lll
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				fmt.Fprintln(
					w,
					`{"title":"Forbidden","status":403,"detail":"invalid csrf token"}`, // nolint: lll
				)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		},
	).Methods(http.MethodOptions, http.MethodDelete)

	server := httptest.NewServer(router)
	defer server.Close()

	client := NewClient(server.URL, ClientOptions{OrgID: testOrgID})
	ctx := context.Background()

	// Login probes for a token, then authenticates; the response rotates the
	// token and the client must keep up.
	principal, err := client.Sessions().Login(ctx, "tony@starkindustries.com", "ihaveaplan") // nolint: lll
	require.NoError(t, err)
	require.Equal(t, []string{"admin"}, principal.Roles)
	require.Equal(t, "token-2", client.REST().CSRFToken())

	users, err := client.Users().List(ctx, meta.ListOptions{Limit: 50})
	require.NoError(t, err)
	require.Equal(t, int64(2), users.Total)
	require.Len(t, users.Data, 2)

	// Expire the session token behind the client's back. The first DELETE is
	// rejected, the client probes for a fresh token, and the retried DELETE
	// succeeds.
	fake.mu.Lock()
	fake.currentToken = "rotated-away"
	fake.mu.Unlock()
	require.NoError(t, client.Users().Delete(ctx, "u2"))
	require.Equal(t, 2, fake.deleteCalls)
	require.Equal(t, 1, fake.probeCalls)
}
