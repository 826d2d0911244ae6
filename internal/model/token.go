package model

// TokenManager signs and verifies self-contained access tokens. There is no
// revocation: expiry is the only bound on a token's validity.
type TokenManager interface {
	GenerateAccessToken(identity Identity) (string, error)
	ParseAccessToken(token string) (Identity, error)
}
