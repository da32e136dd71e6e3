package ports

// Claims is the identity extracted from a validated session token.
type Claims struct {
	Subject string // the user's email
	Role    string
}

// TokenService is the sole authority for issuing and validating session
// tokens. No other component inspects raw token bytes.
type TokenService interface {
	Issue(subject, role string) (string, error)
	Validate(token string) (Claims, error)
}
