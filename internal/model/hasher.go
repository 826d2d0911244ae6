package model

// PasswordHasher hashes and verifies user passwords. Hash salts every call,
// so two hashes of the same password differ. Verify reports a mismatch as
// (false, nil); an undecodable stored hash surfaces as (false, error).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encodedHash, password string) (bool, error)
}
