package domain

// Session is the client's only durable state: an opaque token issued by the
// backend plus a snapshot of the signed-in profile. Token presence alone
// decides whether the client is authenticated.
type Session struct {
	Token   string
	Profile Profile
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
