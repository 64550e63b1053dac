package meta

import "time"

// ObjectMeta represents metadata common to most resources managed through the
// Cordon admin API.
type ObjectMeta struct {
	// ID is an immutable resource identifier.
	ID string `json:"id,omitempty"`
	// Created indicates the time at which the resource was created. This is
	// recorded by the server. Clients must leave the value of this field set
	// to nil when creating or updating resources.
	Created *time.Time `json:"created,omitempty"`
	// LastUpdated indicates the time at which the resource was last updated.
	// This is recorded by the server. Clients must leave the value of this
	// field set to nil when creating or updating resources.
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// ListOptions represents criteria for paging through large collections of
// resources. The zero value requests the server's default page.
type ListOptions struct {
	// Limit caps the number of items returned in a single page.
	Limit int64
	// Offset indicates how many items to skip before the first item returned.
	Offset int64
}
