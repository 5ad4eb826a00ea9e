package proxy

// Authenticator checks request credentials against the shared secret.
type Authenticator struct {
	secret string
}

// NewAuthenticator returns an Authenticator for secret.
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: secret}
}

// Authenticate returns an Unauthorized error unless credential equals the
// configured secret. An empty credential or secret never matches.
func (a *Authenticator) Authenticate(credential string) error {
	if a == nil || a.secret == "" || credential != a.secret {
		return Unauthorized()
	}

	return nil
}
