// Package password provides the argon2id credential hashing primitive.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters (OWASP baseline).
const (
	argonTime      = 1
	argonMemoryKiB = 64 * 1024
	argonThreads   = 4
	argonSaltLen   = 16
	argonKeyLen    = 32
)

// ErrMalformedHash is returned when a stored hash cannot be decoded.
var ErrMalformedHash = errors.New("malformed password hash")

// Argon2Hasher implements model.PasswordHasher using argon2id.
type Argon2Hasher struct{}

// NewArgon2Hasher creates a new Argon2Hasher.
func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{}
}

// Hash derives an argon2id hash of the password with a fresh random salt
// and returns it in PHC string format:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemoryKiB, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemoryKiB,
		argonTime,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify recomputes the hash using the parameters and salt embedded in
// encodedHash and compares in constant time. A stored hash that cannot be
// decoded yields (false, ErrMalformedHash) rather than a panic, so callers
// can fail closed and keep the detail in logs.
func (h *Argon2Hasher) Verify(encodedHash, password string) (bool, error) {
	params, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.time, params.memoryKiB, params.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(candidate, key) == 1, nil
}

type argonParams struct {
	time      uint32
	memoryKiB uint32
	threads   uint8
}

func decodeHash(encodedHash string) (argonParams, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return argonParams{}, nil, nil, ErrMalformedHash
	}
	if parts[1] != "argon2id" {
		return argonParams{}, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return argonParams{}, nil, nil, fmt.Errorf("%w: bad version segment", ErrMalformedHash)
	}
	if version != argon2.Version {
		return argonParams{}, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	var params argonParams
	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memoryKiB, &params.time, &threads); err != nil {
		return argonParams{}, nil, nil, fmt.Errorf("%w: bad parameter segment", ErrMalformedHash)
	}
	if threads == 0 || threads > 255 {
		return argonParams{}, nil, nil, fmt.Errorf("%w: thread count %d out of range", ErrMalformedHash, threads)
	}
	params.threads = uint8(threads)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return argonParams{}, nil, nil, fmt.Errorf("%w: bad salt encoding", ErrMalformedHash)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return argonParams{}, nil, nil, fmt.Errorf("%w: bad key encoding", ErrMalformedHash)
	}
	if len(key) == 0 {
		return argonParams{}, nil, nil, fmt.Errorf("%w: empty key", ErrMalformedHash)
	}

	return params, salt, key, nil
}
