package domain

// Session is one saved classroom credential. The cookie is an opaque token
// captured from the site; it is never parsed, only replayed.
type Session struct {
	DisplayName string
	Cookie      string
}
