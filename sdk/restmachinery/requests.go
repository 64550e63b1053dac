package restmachinery

import "net/http"

// OutboundRequest represents all the criteria for making a single call to the
// Cordon API. Only Path is required; the zero value of every other field
// selects a sensible default.
type OutboundRequest struct {
	// Method is the HTTP method. Defaults to GET.
	Method string
	// Path is an absolute URL or a site-relative path. Relative paths are
	// normalized to a single leading slash and joined to the client's base
	// address.
	Path string
	// QueryParams are appended to the request URL. Scalar values produce one
	// entry; slice values produce one entry per element, in order. Nil values
	// and empty slices are skipped entirely.
	QueryParams map[string]interface{}
	// RawQuery is a pre-built query parameter collection appended to the
	// request URL verbatim, ahead of QueryParams.
	RawQuery map[string][]string
	// Headers are additional request headers. Headers the client assembles
	// itself (Accept, Content-Type, org scope, CSRF) are only defaulted when
	// the caller has not already supplied them.
	Headers http.Header
	// Body is the request body. Most values are marshaled to JSON and sent
	// with a Content-Type of application/json; []byte, io.Reader, and
	// url.Values values pass through untouched with no forced Content-Type.
	Body interface{}
	// OrgID overrides the client's default organization scope for this call.
	OrgID string
	// CSRFToken overrides the client's cached CSRF token for this call.
	CSRFToken string
	// Cookie is an explicit Cookie header value for hosts with no ambient
	// cookie jar of their own.
	Cookie string
	// RespObj, if non-nil, receives the response body. JSON responses are
	// unmarshaled into it; for other content types it must be a *string or
	// *[]byte that receives the raw payload.
	RespObj interface{}
}
