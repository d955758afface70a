package adapter

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-api-caller/models"
	"github.com/stretchr/testify/assert"
)

func TestApplyAuth_CustomHeadersReplaceOrAdd(t *testing.T) {
	h := http.Header{}
	h.Add("X-Key", "v1")
	h.Add("X-Key", "v1-extra")
	h.Set("X-Other", "keep")

	ApplyAuth(h, CustomHeaders(
		models.Header{Name: "X-Key", Value: "v2"},
		models.Header{Name: "X-New", Value: "n"},
	))

	assert.Equal(t, []string{"v2"}, h.Values("X-Key"))
	assert.Equal(t, []string{"n"}, h.Values("X-New"))
	assert.Equal(t, "keep", h.Get("X-Other"))
}

func TestApplyAuth_CustomHeadersLastPairWins(t *testing.T) {
	h := http.Header{}

	ApplyAuth(h, CustomHeaders(models.NewHeaders("X-Key", "a", "x-key", "b")...))

	assert.Equal(t, []string{"b"}, h.Values("X-Key"))
}

func TestApplyAuth_BearerOverwrites(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Basic old")

	ApplyAuth(h, Bearer("token-1"))

	assert.Equal(t, []string{"Bearer token-1"}, h.Values("Authorization"))
}

func TestApplyAuth_Authorization(t *testing.T) {
	tests := []struct {
		name string
		auth Auth
		want string
	}{
		{name: "custom scheme", auth: Authorization("Token", "abc"), want: "Token abc"},
		{name: "scheme trimmed", auth: Authorization(" Basic ", "dXNlcg=="), want: "Basic dXNlcg=="},
		{name: "no scheme", auth: Authorization("", "raw-value"), want: "raw-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			ApplyAuth(h, tt.auth)
			assert.Equal(t, tt.want, h.Get("Authorization"))
		})
	}
}

func TestApplyAuth_AmbientLeavesHeadersUntouched(t *testing.T) {
	for _, a := range []Auth{nil, Ambient()} {
		h := http.Header{}
		h.Set("X-Key", "v1")

		ApplyAuth(h, a)

		assert.Equal(t, http.Header{"X-Key": {"v1"}}, h)
	}
}

func TestCustomHeaders_CopiesInput(t *testing.T) {
	pairs := []models.Header{{Name: "X-Key", Value: "v1"}}
	a := CustomHeaders(pairs...)
	pairs[0].Value = "changed"

	h := http.Header{}
	ApplyAuth(h, a)

	assert.Equal(t, "v1", h.Get("X-Key"))
}

func TestAuthMode(t *testing.T) {
	assert.Equal(t, "ambient", authMode(nil))
	assert.Equal(t, "ambient", authMode(Ambient()))
	assert.Equal(t, "authorization", authMode(Bearer("t")))
	assert.Equal(t, "custom", authMode(CustomHeaders()))
}
