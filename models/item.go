package models

import "time"

// Item is a resource of the demo third-party API.
type Item struct {
	// ID is assigned by the remote API on creation.
	ID int64 `json:"id"`

	// Name is the human-readable item title.
	Name string `json:"name"`

	// Price is the unit price in the account currency.
	Price float64 `json:"price"`

	// Status is the lifecycle state of the item.
	Status ItemStatus `json:"status"`

	// Tags are free-form labels attached to the item.
	Tags []string `json:"tags,omitempty"`

	// CreatedAt is set by the remote API.
	CreatedAt time.Time `json:"created_at"`
}

// ItemFilter holds the query parameters accepted by the list endpoint.
// Nil fields are omitted from the query string.
type ItemFilter struct {
	// Query is a full-text search string.
	Query string `url:"q,omitempty"`

	// Status restricts the result to a single lifecycle state.
	Status *ItemStatus `url:"status"`

	// CreatedAfter restricts the result to items created after the instant.
	CreatedAfter *time.Time `url:"createdAfter"`

	// Page selects the result window.
	Page *Page `url:"page"`
}

// Page describes a result window.
type Page struct {
	Number int `url:"number"`
	Size   int `url:"size"`
}

// ItemList is the envelope returned by the list endpoint.
type ItemList struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// ItemSearch is posted as a form-urlencoded body to the search endpoint.
type ItemSearch struct {
	Query  string      `json:"query"`
	Filter *ItemFilter `json:"filter,omitempty"`
	Limit  int         `json:"limit,omitempty"`
}

// AttachmentMeta is sent as the "data" sidecar of an attachment upload.
type AttachmentMeta struct {
	Description string `json:"description"`
	Public      bool   `json:"public"`
}

// Attachment is the remote API's view of an uploaded file.
type Attachment struct {
	ID       string `json:"id"`
	ItemID   int64  `json:"item_id"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
}
