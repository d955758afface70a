package models

// Header is a single name/value pair. It is used both for custom request
// headers and for plain string fields of a multipart upload, where the
// order of the pairs is significant.
type Header struct {
	// Name is the header (or form field) name.
	Name string `json:"name"`

	// Value is the raw value sent on the wire.
	Value string `json:"value"`
}

// NewHeaders builds an ordered header list from alternating name/value
// arguments. A trailing name without a value is dropped.
func NewHeaders(pairs ...string) []Header {
	headers := make([]Header, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		headers = append(headers, Header{Name: pairs[i], Value: pairs[i+1]})
	}
	return headers
}
