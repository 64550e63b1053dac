package meta

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// NetworkErrorType is the sentinel error category carried by a NetworkError.
// It is the only value of the Problem Type field that clients themselves ever
// produce; all other values originate with the server.
const NetworkErrorType = "urn:cordon:error:network"

// Problem represents a structured error returned by the Cordon API for any
// non-2xx response. Its shape follows the "problem details" convention: a
// short Title and an HTTP-status-like Status are always present; everything
// else is optional. Fields this client does not know about are preserved
// verbatim in Additional so nothing the server said is lost.
type Problem struct {
	// Type is a stable, machine-readable error category.
	Type string `json:"type,omitempty"`
	// Title is a short, human-readable summary of the error.
	Title string `json:"title"`
	// Status is an HTTP-status-like numeric code. 0 is reserved for network
	// errors and never appears on a Problem parsed from a response.
	Status int `json:"status"`
	// Detail is a longer, human-readable explanation of the error.
	Detail string `json:"detail,omitempty"`
	// Instance identifies the specific occurrence of the error.
	Instance string `json:"instance,omitempty"`
	// Additional holds any further fields the server included, verbatim.
	Additional map[string]json.RawMessage `json:"-"`
}

func (p *Problem) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// knownProblemFields are the fields unmarshaled into named Problem fields and
// therefore excluded from Additional.
var knownProblemFields = map[string]bool{
	"type":     true,
	"title":    true,
	"status":   true,
	"detail":   true,
	"instance": true,
}

func (p *Problem) UnmarshalJSON(data []byte) error {
	type alias Problem
	a := alias{}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for field := range raw {
		if knownProblemFields[field] {
			delete(raw, field)
		}
	}
	if len(raw) > 0 {
		a.Additional = raw
	}
	*p = Problem(a)
	return nil
}

func (p Problem) MarshalJSON() ([]byte, error) {
	type alias Problem
	fields := map[string]json.RawMessage{}
	for k, v := range p.Additional {
		if !knownProblemFields[k] {
			fields[k] = v
		}
	}
	namedBytes, err := json.Marshal(alias(p))
	if err != nil {
		return nil, err
	}
	named := map[string]json.RawMessage{}
	if err := json.Unmarshal(namedBytes, &named); err != nil {
		return nil, err
	}
	for k, v := range named {
		fields[k] = v
	}
	return json.Marshal(fields)
}

// NewProblemFromResponse builds a Problem from a non-2xx response body. A body
// that is not a valid problem document still yields a usable Problem: the
// HTTP status supplies the title and the raw body, if any, becomes the detail.
func NewProblemFromResponse(statusCode int, body []byte) *Problem {
	problem := &Problem{}
	if err := json.Unmarshal(body, problem); err != nil || problem.Title == "" {
		problem = &Problem{
			Title:  http.StatusText(statusCode),
			Detail: string(body),
		}
	}
	if problem.Status == 0 {
		problem.Status = statusCode
	}
	return problem
}

// NetworkError represents a transport-level failure: the request never
// reached the server or no response was received (DNS failure, connection
// refused, cancellation). Its status is always 0 and it is never produced
// from a response the server actually sent.
type NetworkError struct {
	// Cause is the underlying transport error.
	Cause error
}

func (n *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s", n.Cause)
}

// Unwrap exposes the underlying transport error to errors.Is/As.
func (n *NetworkError) Unwrap() error {
	return n.Cause
}

// Problem renders the network error in the uniform problem shape, with the
// sentinel type and a status of 0.
func (n *NetworkError) Problem() *Problem {
	return &Problem{
		Type:   NetworkErrorType,
		Title:  "Network error",
		Status: 0,
		Detail: n.Cause.Error(),
	}
}

// AsProblem returns the Problem carried by err, if any.
func AsProblem(err error) (*Problem, bool) {
	problem := &Problem{}
	if errors.As(err, &problem) {
		return problem, true
	}
	return nil, false
}

// AsNetworkError returns the NetworkError carried by err, if any.
func AsNetworkError(err error) (*NetworkError, bool) {
	netErr := &NetworkError{}
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}
