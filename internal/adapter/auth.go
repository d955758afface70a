package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-api-caller/models"
)

// Auth selects how a single call authenticates. Values are built with
// [Bearer], [Authorization], [CustomHeaders] or [Ambient]; a nil Auth is
// the same as [Ambient].
type Auth interface {
	apply(h http.Header)
	mode() string
}

type schemeAuth struct {
	scheme      string
	credentials string
}

type headerAuth struct {
	pairs []models.Header
}

type ambientAuth struct{}

// Bearer sends "Authorization: Bearer <token>".
func Bearer(token string) Auth {
	return Authorization("Bearer", token)
}

// Authorization sends "Authorization: <scheme> <credentials>". An empty
// scheme sends the credentials verbatim.
func Authorization(scheme, credentials string) Auth {
	return schemeAuth{scheme: strings.TrimSpace(scheme), credentials: credentials}
}

// CustomHeaders replaces or adds each header in order. After it is applied
// every listed name holds exactly one value.
func CustomHeaders(pairs ...models.Header) Auth {
	return headerAuth{pairs: append([]models.Header(nil), pairs...)}
}

// Ambient sends no explicit authentication header and relies on the
// transport identity.
func Ambient() Auth {
	return ambientAuth{}
}

// ApplyAuth writes the headers selected by a into h.
func ApplyAuth(h http.Header, a Auth) {
	if a == nil {
		return
	}
	a.apply(h)
}

func (a schemeAuth) apply(h http.Header) {
	if a.scheme == "" {
		h.Set("Authorization", a.credentials)
		return
	}
	h.Set("Authorization", a.scheme+" "+a.credentials)
}

func (a schemeAuth) mode() string { return "authorization" }

func (a headerAuth) apply(h http.Header) {
	for _, p := range a.pairs {
		h.Del(p.Name)
		h.Add(p.Name, p.Value)
	}
}

func (a headerAuth) mode() string { return "custom" }

func (ambientAuth) apply(http.Header) {}

func (ambientAuth) mode() string { return "ambient" }

func authMode(a Auth) string {
	if a == nil {
		return "ambient"
	}
	return a.mode()
}
