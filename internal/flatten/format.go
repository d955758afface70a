package flatten

import (
	"encoding/base64"
	"reflect"
	"strconv"
	"time"
)

// TimeLayout is the ISO-8601 round-trip layout used for every date rendered
// into a query string or form body. It always carries nine fractional digits
// and a zone offset ("Z" for UTC), so parsing a formatted value yields the
// same instant.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTime renders t with [TimeLayout].
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a value produced by [FormatTime].
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// formatScalar renders basic kinds independently of any locale.
func formatScalar(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	case reflect.String:
		return v.String(), true
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return base64.StdEncoding.EncodeToString(v.Bytes()), true
		}
	}
	return "", false
}
