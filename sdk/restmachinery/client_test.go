package restmachinery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/cordonhq/cordon/sdk/meta"
)

const (
	testAPIAddress = "https://cordon.example.com"
	testOrgID      = "org-stark-industries"
	testCSRFToken  = "11235813213455"
)

// recordedRequest captures what the client actually sent so tests can assert
// on call order, URLs, and headers.
type recordedRequest struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// fakeTransport is an injectable Doer that replays a scripted sequence of
// responses and records every request it sees.
type fakeTransport struct {
	requests  []recordedRequest
	responses []func(r *http.Request) (*http.Response, error)
}

func (f *fakeTransport) Do(r *http.Request) (*http.Response, error) {
	var body []byte
	if r.Body != nil {
		body, _ = io.ReadAll(r.Body)
	}
	f.requests = append(
		f.requests,
		recordedRequest{
			Method: r.Method,
			URL:    r.URL,
			Header: r.Header.Clone(),
			Body:   body,
		},
	)
	i := len(f.requests) - 1
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	return f.responses[i](r)
}

func respondWith(
	statusCode int,
	body string,
	header http.Header,
) func(r *http.Request) (*http.Response, error) {
	return func(*http.Request) (*http.Response, error) {
		if header == nil {
			header = http.Header{}
		}
		return &http.Response{
			StatusCode: statusCode,
			Header:     header,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func jsonHeader() http.Header {
	return http.Header{"Content-Type": []string{"application/json"}}
}

func newTestClient(transport Doer) *Client {
	return NewClient(
		ClientConfig{
			Address:   testAPIAddress,
			OrgID:     testOrgID,
			Transport: transport,
		},
	)
}

func TestExecuteRequestBuildsQueryParams(t *testing.T) {
	testCases := []struct {
		name          string
		queryParams   map[string]interface{}
		expectedQuery string
	}{
		{
			name: "scalars",
			queryParams: map[string]interface{}{
				"limit":  50,
				"offset": 0,
			},
			expectedQuery: "limit=50&offset=0",
		},
		{
			name: "nil values and empty slices are skipped",
			queryParams: map[string]interface{}{
				"limit":  50,
				"filter": nil,
				"ids":    []string{},
			},
			expectedQuery: "limit=50",
		},
		{
			name: "slices produce one entry per element in order",
			queryParams: map[string]interface{}{
				"role": []string{"admin", "viewer", "editor"},
			},
			expectedQuery: "role=admin&role=viewer&role=editor",
		},
		{
			name: "mixed scalar kinds",
			queryParams: map[string]interface{}{
				"active": true,
				"q":      "tony stark",
			},
			expectedQuery: "active=true&q=tony+stark",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			transport := &fakeTransport{
				responses: []func(*http.Request) (*http.Response, error){
					respondWith(http.StatusOK, "{}", jsonHeader()),
				},
			}
			client := newTestClient(transport)
			err := client.ExecuteRequest(
				context.Background(),
				OutboundRequest{
					Path:        "/v1/admin/users",
					QueryParams: testCase.queryParams,
				},
			)
			require.NoError(t, err)
			require.Len(t, transport.requests, 1)
			require.Equal(
				t,
				testCase.expectedQuery,
				transport.requests[0].URL.RawQuery,
			)
		})
	}
}

func TestExecuteRequestNormalizesRelativePaths(t *testing.T) {
	for _, path := range []string{"v1/admin/users", "/v1/admin/users"} {
		transport := &fakeTransport{
			responses: []func(*http.Request) (*http.Response, error){
				respondWith(http.StatusOK, "{}", jsonHeader()),
			},
		}
		client := newTestClient(transport)
		err := client.ExecuteRequest(
			context.Background(),
			OutboundRequest{Path: path},
		)
		require.NoError(t, err)
		require.Equal(
			t,
			testAPIAddress+"/v1/admin/users",
			transport.requests[0].URL.String(),
		)
	}
}

func TestExecuteRequestPassesAbsoluteURLsThrough(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, "{}", jsonHeader()),
		},
	}
	client := newTestClient(transport)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{Path: "https://elsewhere.example.com/v1/ping"},
	)
	require.NoError(t, err)
	require.Equal(
		t,
		"https://elsewhere.example.com/v1/ping",
		transport.requests[0].URL.String(),
	)
}

func TestExecuteRequestDecodesJSONSuccess(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(
				http.StatusOK,
				`{"data":[],"total":0}`,
				jsonHeader(),
			),
		},
	}
	client := newTestClient(transport)
	respObj := struct {
		Data  []json.RawMessage `json:"data"`
		Total int64             `json:"total"`
	}{}
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodGet,
			Path:   "/v1/admin/users",
			QueryParams: map[string]interface{}{
				"limit":  50,
				"offset": 0,
			},
			RespObj: &respObj,
		},
	)
	require.NoError(t, err)
	require.Empty(t, respObj.Data)
	require.Zero(t, respObj.Total)
	require.True(
		t,
		strings.HasSuffix(
			transport.requests[0].URL.String(),
			"?limit=50&offset=0",
		),
	)
}

func TestExecuteRequestYieldsRawTextForNonJSONSuccess(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(
				http.StatusOK,
				"pong",
				http.Header{"Content-Type": []string{"text/plain"}},
			),
		},
	}
	client := newTestClient(transport)
	var respText string
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{Path: "/v1/ping", RespObj: &respText},
	)
	require.NoError(t, err)
	require.Equal(t, "pong", respText)
}

func TestExecuteRequestTreatsNoContentAsSuccessWithNoValue(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, testCSRFToken, csrfHeader()),
			respondWith(http.StatusNoContent, "", nil),
		},
	}
	client := newTestClient(transport)
	respObj := map[string]interface{}{}
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:  http.MethodPost,
			Path:    "/v1/admin/invitations",
			Body:    map[string]string{"email": "pepper@starkindustries.com"},
			RespObj: &respObj,
		},
	)
	require.NoError(t, err)
	require.Empty(t, respObj)
}

func TestExecuteRequestDefaultsHeaders(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, "{}", jsonHeader()),
		},
	}
	client := newTestClient(transport)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{Path: "/v1/admin/users"},
	)
	require.NoError(t, err)
	header := transport.requests[0].Header
	require.Equal(t, "application/json", header.Get("Accept"))
	require.Equal(t, testOrgID, header.Get(OrgHeaderName))
	require.NotEmpty(t, header.Get("X-Request-Id"))
}

func TestExecuteRequestRespectsCallerHeaders(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, "{}", jsonHeader()),
		},
	}
	client := newTestClient(transport)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Path: "/v1/admin/users",
			Headers: http.Header{
				"Accept":      []string{"text/csv"},
				OrgHeaderName: []string{"org-preset"},
			},
			Cookie: "cordon_session=abc123",
		},
	)
	require.NoError(t, err)
	header := transport.requests[0].Header
	require.Equal(t, "text/csv", header.Get("Accept"))
	require.Equal(t, "org-preset", header.Get(OrgHeaderName))
	require.Equal(t, "cordon_session=abc123", header.Get("Cookie"))
}

func TestExecuteRequestOrgScopeOverride(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, "{}", jsonHeader()),
		},
	}
	client := newTestClient(transport)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Path:  "/v1/admin/users",
			OrgID: "org-override",
		},
	)
	require.NoError(t, err)
	require.Equal(
		t,
		"org-override",
		transport.requests[0].Header.Get(OrgHeaderName),
	)
}

func TestExecuteRequestBodyHandling(t *testing.T) {
	testCases := []struct {
		name                string
		body                interface{}
		expectedBody        string
		expectedContentType string
	}{
		{
			name:                "plain object is marshaled to JSON",
			body:                map[string]string{"name": "auditor"},
			expectedBody:        `{"name":"auditor"}`,
			expectedContentType: "application/json",
		},
		{
			name:                "raw bytes pass through untouched",
			body:                []byte("raw payload"),
			expectedBody:        "raw payload",
			expectedContentType: "",
		},
		{
			name:                "url values pass through with no forced content type",
			body:                url.Values{"grant_type": []string{"client_credentials"}},
			expectedBody:        "grant_type=client_credentials",
			expectedContentType: "",
		},
		{
			name:                "reader passes through untouched",
			body:                strings.NewReader("streamed"),
			expectedBody:        "streamed",
			expectedContentType: "",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			transport := &fakeTransport{
				responses: []func(*http.Request) (*http.Response, error){
					respondWith(http.StatusOK, "{}", jsonHeader()),
				},
			}
			client := NewClient(
				ClientConfig{
					Address:   testAPIAddress,
					Transport: transport,
					CSRFToken: testCSRFToken,
				},
			)
			err := client.ExecuteRequest(
				context.Background(),
				OutboundRequest{
					Method: http.MethodPost,
					Path:   "/v1/admin/roles",
					Body:   testCase.body,
				},
			)
			require.NoError(t, err)
			require.Len(t, transport.requests, 1)
			require.Equal(
				t,
				testCase.expectedBody,
				string(transport.requests[0].Body),
			)
			require.Equal(
				t,
				testCase.expectedContentType,
				transport.requests[0].Header.Get("Content-Type"),
			)
		})
	}
}

func csrfHeader() http.Header {
	header := http.Header{}
	header.Set(CSRFHeaderName, testCSRFToken)
	return header
}

func jsonAndCSRFHeader(token string) http.Header {
	header := jsonHeader()
	header.Set(CSRFHeaderName, token)
	return header
}

func TestExecuteRequestProbesBeforeStateChangingCall(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, "", csrfHeader()),
			respondWith(http.StatusOK, "{}", jsonHeader()),
		},
	}
	client := newTestClient(transport)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodPost,
			Path:   "/v1/admin/roles",
			Body:   map[string]string{"name": "auditor"},
		},
	)
	require.NoError(t, err)
	require.Len(t, transport.requests, 2)
	require.Equal(t, http.MethodOptions, transport.requests[0].Method)
	require.Empty(t, transport.requests[0].Header.Get(CSRFHeaderName))
	require.Empty(t, transport.requests[0].Header.Get("Content-Type"))
	require.Equal(t, http.MethodPost, transport.requests[1].Method)
	require.Equal(
		t,
		testCSRFToken,
		transport.requests[1].Header.Get(CSRFHeaderName),
	)
}

func TestExecuteRequestSkipsProbeWhenTokenCached(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, "{}", jsonHeader()),
		},
	}
	client := NewClient(
		ClientConfig{
			Address:   testAPIAddress,
			Transport: transport,
			CSRFToken: testCSRFToken,
		},
	)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodDelete,
			Path:   "/v1/admin/roles/auditor",
		},
	)
	require.NoError(t, err)
	require.Len(t, transport.requests, 1)
	require.Equal(
		t,
		testCSRFToken,
		transport.requests[0].Header.Get(CSRFHeaderName),
	)
}

func TestExecuteRequestRetriesOnceOnCSRFRejection(t *testing.T) {
	freshToken := "fresh-token-after-rotation"
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(
				http.StatusForbidden,
				`{"title":"Forbidden","status":403}`,
				jsonHeader(),
			),
			func(*http.Request) (*http.Response, error) {
				header := http.Header{}
				header.Set(CSRFHeaderName, freshToken)
				return &http.Response{
					StatusCode: http.StatusOK,
					Header:     header,
					Body:       io.NopCloser(strings.NewReader("")),
				}, nil
			},
			respondWith(http.StatusOK, "", nil),
		},
	}
	client := NewClient(
		ClientConfig{
			Address:   testAPIAddress,
			Transport: transport,
			CSRFToken: "stale-token",
		},
	)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodDelete,
			Path:   "/v1/admin/roles/auditor",
		},
	)
	require.NoError(t, err)
	require.Len(t, transport.requests, 3)
	require.Equal(t, http.MethodDelete, transport.requests[0].Method)
	require.Equal(t, http.MethodOptions, transport.requests[1].Method)
	require.Equal(t, http.MethodDelete, transport.requests[2].Method)
	// The retry carries the refreshed token, not the stale one.
	require.Equal(
		t,
		freshToken,
		transport.requests[2].Header.Get(CSRFHeaderName),
	)
	require.Equal(t, freshToken, client.CSRFToken())
}

func TestExecuteRequestReturnsOriginalProblemWhenProbeYieldsNoToken(
	t *testing.T,
) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(
				http.StatusForbidden,
				`{"title":"Forbidden","status":403,"detail":"nope"}`,
				jsonHeader(),
			),
			respondWith(http.StatusOK, "", nil), // OPTIONS probe, no token
			respondWith(http.StatusOK, "", nil), // GET probe, no token
		},
	}
	client := NewClient(
		ClientConfig{
			Address:   testAPIAddress,
			Transport: transport,
			CSRFToken: "stale-token",
		},
	)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodDelete,
			Path:   "/v1/admin/roles/auditor",
		},
	)
	require.Error(t, err)
	problem, ok := meta.AsProblem(err)
	require.True(t, ok)
	require.Equal(t, "Forbidden", problem.Title)
	require.Equal(t, http.StatusForbidden, problem.Status)
	require.Equal(t, "nope", problem.Detail)
	// DELETE, OPTIONS probe, GET probe-- and no second DELETE.
	require.Len(t, transport.requests, 3)
}

func TestExecuteRequestRetriesAtMostOnce(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(
				http.StatusForbidden,
				`{"title":"Forbidden","status":403}`,
				jsonHeader(),
			),
			respondWith(http.StatusOK, "", csrfHeader()),
			respondWith(
				http.StatusForbidden,
				`{"title":"Still forbidden","status":403}`,
				jsonHeader(),
			),
		},
	}
	client := NewClient(
		ClientConfig{
			Address:   testAPIAddress,
			Transport: transport,
			CSRFToken: "stale-token",
		},
	)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodDelete,
			Path:   "/v1/admin/roles/auditor",
		},
	)
	require.Error(t, err)
	problem, ok := meta.AsProblem(err)
	require.True(t, ok)
	require.Equal(t, "Still forbidden", problem.Title)
	// DELETE, probe, retried DELETE-- then the failure surfaces with no
	// further probing.
	require.Len(t, transport.requests, 3)
}

func TestExecuteRequestWrapsTransportFailures(t *testing.T) {
	transportErr := errors.New("connection refused")
	calls := 0
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			func(*http.Request) (*http.Response, error) {
				calls++
				return nil, transportErr
			},
		},
	}
	client := NewClient(
		ClientConfig{
			Address:   testAPIAddress,
			Transport: transport,
			CSRFToken: testCSRFToken,
		},
	)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodPost,
			Path:   "/v1/admin/roles",
			Body:   map[string]string{"name": "auditor"},
		},
	)
	require.Error(t, err)
	netErr, ok := meta.AsNetworkError(err)
	require.True(t, ok)
	require.ErrorIs(t, netErr, transportErr)
	problem := netErr.Problem()
	require.Equal(t, meta.NetworkErrorType, problem.Type)
	require.Zero(t, problem.Status)
	// Transport failures are never retried.
	require.Equal(t, 1, calls)
}

func TestExecuteRequestUpdatesTokenFromAnyResponse(t *testing.T) {
	rotatedToken := "rotated-token"
	var observed []string
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, "{}", jsonAndCSRFHeader(rotatedToken)),
			respondWith(http.StatusOK, "{}", jsonHeader()),
		},
	}
	client := NewClient(
		ClientConfig{
			Address:   testAPIAddress,
			Transport: transport,
			CSRFToken: testCSRFToken,
			OnCSRFToken: func(token string) {
				observed = append(observed, token)
			},
		},
	)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{Method: http.MethodPost, Path: "/v1/admin/roles"},
	)
	require.NoError(t, err)
	err = client.ExecuteRequest(
		context.Background(),
		OutboundRequest{Method: http.MethodPost, Path: "/v1/admin/roles"},
	)
	require.NoError(t, err)
	// The second call carries the token rotated by the first response.
	require.Equal(
		t,
		rotatedToken,
		transport.requests[1].Header.Get(CSRFHeaderName),
	)
	require.Equal(t, []string{rotatedToken}, observed)
}

func TestExecuteRequestPerCallCSRFTokenOverride(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, "{}", jsonHeader()),
		},
	}
	client := NewClient(
		ClientConfig{
			Address:   testAPIAddress,
			Transport: transport,
			CSRFToken: testCSRFToken,
		},
	)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:    http.MethodPost,
			Path:      "/v1/admin/roles",
			CSRFToken: "override-token",
		},
	)
	require.NoError(t, err)
	require.Equal(
		t,
		"override-token",
		transport.requests[0].Header.Get(CSRFHeaderName),
	)
}

func TestEnsureFreshCSRFToken(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, "", csrfHeader()),
		},
	}
	client := newTestClient(transport)
	err := client.EnsureFreshCSRFToken(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, transport.requests, 1)
	require.Equal(t, http.MethodOptions, transport.requests[0].Method)
	require.Equal(t, LoginPath, transport.requests[0].URL.Path)
	require.Equal(
		t,
		testOrgID,
		transport.requests[0].Header.Get(OrgHeaderName),
	)
	require.Equal(t, testCSRFToken, client.CSRFToken())
}

func TestEnsureFreshCSRFTokenFallsBackToGET(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusMethodNotAllowed, "", nil),
			respondWith(http.StatusOK, "", csrfHeader()),
		},
	}
	client := newTestClient(transport)
	err := client.EnsureFreshCSRFToken(context.Background(), "/v1/auth/csrf")
	require.NoError(t, err)
	require.Len(t, transport.requests, 2)
	require.Equal(t, http.MethodOptions, transport.requests[0].Method)
	require.Equal(t, http.MethodGet, transport.requests[1].Method)
	require.Equal(t, testCSRFToken, client.CSRFToken())
}

func TestExecuteRequestCancellationSurfacesAsNetworkError(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			func(r *http.Request) (*http.Response, error) {
				return nil, r.Context().Err()
			},
		},
	}
	client := NewClient(
		ClientConfig{
			Address:   testAPIAddress,
			Transport: transport,
			CSRFToken: testCSRFToken,
		},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := client.ExecuteRequest(
		ctx,
		OutboundRequest{Method: http.MethodPost, Path: "/v1/admin/roles"},
	)
	require.Error(t, err)
	_, ok := meta.AsNetworkError(err)
	require.True(t, ok)
}

func TestLooksLikeCSRFRejection(t *testing.T) {
	testCases := []struct {
		name     string
		method   string
		path     string
		problem  *meta.Problem
		expected bool
	}{
		{
			name:     "403",
			method:   http.MethodDelete,
			path:     "/v1/admin/users/tony",
			problem:  &meta.Problem{Title: "Forbidden", Status: 403},
			expected: true,
		},
		{
			name:     "419",
			method:   http.MethodPost,
			path:     "/v1/admin/users",
			problem:  &meta.Problem{Title: "Page Expired", Status: 419},
			expected: true,
		},
		{
			name:   "csrf mentioned in detail",
			method: http.MethodPost,
			path:   "/v1/admin/users",
			problem: &meta.Problem{
				Title:  "Bad Request",
				Status: 400,
				Detail: "missing CSRF token",
			},
			expected: true,
		},
		{
			name:   "500 on auth route with non-GET",
			method: http.MethodPost,
			path:   "/v1/auth/login",
			problem: &meta.Problem{
				Title:  "Internal Server Error",
				Status: 500,
			},
			expected: true,
		},
		{
			name:   "500 on auth route with GET",
			method: http.MethodGet,
			path:   "/v1/auth/me",
			problem: &meta.Problem{
				Title:  "Internal Server Error",
				Status: 500,
			},
			expected: false,
		},
		{
			name:   "500 off the auth routes",
			method: http.MethodPost,
			path:   "/v1/admin/users",
			problem: &meta.Problem{
				Title:  "Internal Server Error",
				Status: 500,
			},
			expected: false,
		},
		{
			name:     "ordinary validation failure",
			method:   http.MethodPost,
			path:     "/v1/admin/users",
			problem:  &meta.Problem{Title: "Bad Request", Status: 400},
			expected: false,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(
				t,
				testCase.expected,
				looksLikeCSRFRejection(
					testCase.method,
					testCase.path,
					testCase.problem,
				),
			)
		})
	}
}

func TestSetCSRFTokenMirrorsToStore(t *testing.T) {
	store := NewMemoryTokenStore()
	client := NewClient(
		ClientConfig{
			Address:    testAPIAddress,
			Transport:  &fakeTransport{},
			TokenStore: store,
		},
	)
	client.SetCSRFToken(testCSRFToken)
	stored, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, testCSRFToken, stored)

	client.SetCSRFToken("")
	stored, err = store.Load()
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestNewClientSeedsTokenFromStore(t *testing.T) {
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(testCSRFToken))
	client := NewClient(
		ClientConfig{
			Address:    testAPIAddress,
			Transport:  &fakeTransport{},
			TokenStore: store,
		},
	)
	require.Equal(t, testCSRFToken, client.CSRFToken())
}

type failingTokenStore struct{}

func (f *failingTokenStore) Load() (string, error) {
	return "", errors.New("storage disabled")
}

func (f *failingTokenStore) Save(string) error {
	return errors.New("storage quota exceeded")
}

func (f *failingTokenStore) Clear() error {
	return errors.New("storage disabled")
}

func TestStoreFailuresNeverAbortRequests(t *testing.T) {
	transport := &fakeTransport{
		responses: []func(*http.Request) (*http.Response, error){
			respondWith(http.StatusOK, "{}", jsonAndCSRFHeader(testCSRFToken)),
		},
	}
	client := NewClient(
		ClientConfig{
			Address:    testAPIAddress,
			Transport:  transport,
			TokenStore: &failingTokenStore{},
		},
	)
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{Path: "/v1/admin/users"},
	)
	require.NoError(t, err)
	require.Equal(t, testCSRFToken, client.CSRFToken())
}

func TestNewProblemFromResponseToleratesNonProblemBodies(t *testing.T) {
	problem := meta.NewProblemFromResponse(
		http.StatusBadGateway,
		[]byte("<html>upstream exploded</html>"),
	)
	require.Equal(t, http.StatusText(http.StatusBadGateway), problem.Title)
	require.Equal(t, http.StatusBadGateway, problem.Status)
	require.Contains(t, problem.Detail, "upstream exploded")
}

func TestExecuteRequestRejectsMalformedAbsoluteURLs(t *testing.T) {
	client := newTestClient(&fakeTransport{})
	err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{Path: "http://bad url://%zz"},
	)
	require.Error(t, err)
	_, isProblem := meta.AsProblem(err)
	_, isNetErr := meta.AsNetworkError(err)
	require.False(t, isProblem)
	require.False(t, isNetErr)
	require.Contains(t, fmt.Sprintf("%s", err), "error parsing url")
}
