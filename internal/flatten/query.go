package flatten

import (
	"net/url"
	"strings"
)

// EscapeDataString escapes s as a URI component: every byte outside the
// RFC 3986 unreserved set is percent-encoded and spaces become %20.
func EscapeDataString(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Join renders entries as a query string, escaping both names and values
// with [EscapeDataString] and keeping the entry order.
func Join(entries []Entry) string {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(EscapeDataString(e.Path))
		sb.WriteByte('=')
		sb.WriteString(EscapeDataString(e.Value))
	}
	return sb.String()
}

// QueryString flattens v and joins the result with [Join].
func QueryString(v any) (string, error) {
	entries, err := Flatten(v, "")
	if err != nil {
		return "", err
	}
	return Join(entries), nil
}

// AppendQuery appends the query string of v to uri, using "&" when uri
// already carries a query and "?" otherwise. When v produces no entries uri
// is returned unchanged.
func AppendQuery(uri string, v any) (string, error) {
	qs, err := QueryString(v)
	if err != nil {
		return "", err
	}
	if qs == "" {
		return uri, nil
	}
	if strings.Contains(uri, "?") {
		return uri + "&" + qs, nil
	}
	return uri + "?" + qs, nil
}

// FormEncode renders entries as an application/x-www-form-urlencoded body
// in entry order. Unlike url.Values.Encode it does not sort the keys.
func FormEncode(entries []Entry) []byte {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(e.Path))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(e.Value))
	}
	return []byte(sb.String())
}
