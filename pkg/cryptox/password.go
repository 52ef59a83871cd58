package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrUnsupportedHash  = errors.New("unsupported password hash")
)

const argon2Prefix = "$argon2id$"

// maxMemory caps the memory cost accepted from a stored hash (KiB).
const maxMemory = 256 * 1024

// currentParams is the parameter segment written into every new PHC string.
var currentParams = fmt.Sprintf("m=%d,t=%d,p=%d", memory, iterations, parallelism)

// HashPassword generates a PHC-format Argon2id hash string including salt and parameters.
func HashPassword(password string) (string, error) {
	pep, err := GetPepper()
	if err != nil {
		return "", err
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey(
		[]byte(password+pep),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)

	return fmt.Sprintf(
		"%sv=19$%s$%s$%s",
		argon2Prefix,
		currentParams,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword compares a plaintext password against a stored hash. New
// hashes are PHC Argon2id strings; accounts carried over from the previous
// backend hold bcrypt hashes, which are checked without the pepper.
func VerifyPassword(password, encodedHash string) error {
	switch {
	case strings.HasPrefix(encodedHash, argon2Prefix):
		return verifyArgon2id(password, encodedHash)
	case isBcrypt(encodedHash):
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	default:
		return ErrUnsupportedHash
	}
}

func verifyArgon2id(password, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return errors.New("invalid hash format: expected 6 parts")
	}
	if parts[2] != "v=19" {
		return errors.New("invalid hash format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}
	// argon2.IDKey panics on t=0 or p=0.
	if iters < 1 || par < 1 || mem < 8*uint32(par) || mem > maxMemory {
		return fmt.Errorf("invalid hash format: parameters out of range (m=%d,t=%d,p=%d)", mem, iters, par)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}
	if len(expectedHash) == 0 {
		return errors.New("invalid hash format: empty hash")
	}

	pep, err := GetPepper()
	if err != nil {
		return err
	}

	computed := argon2.IDKey(
		[]byte(password+pep),
		salt,
		iters,
		mem,
		par,
		uint32(len(expectedHash)), // #nosec G115 - bounded by the decoded hash length
	)

	if subtle.ConstantTimeCompare(computed, expectedHash) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}

// Hasher adapts the package functions to the boolean verify contract used by
// the account services.
type Hasher struct{}

func (Hasher) Hash(password string) (string, error) {
	return HashPassword(password)
}

// Verify reports whether password matches hash. Malformed or unknown hashes
// report false.
func (Hasher) Verify(password, hash string) bool {
	return VerifyPassword(password, hash) == nil
}

// NeedsUpgrade reports whether hash was produced by a legacy algorithm or
// with different Argon2id parameters than the current ones.
func (Hasher) NeedsUpgrade(hash string) bool {
	if !strings.HasPrefix(hash, argon2Prefix) {
		return true
	}
	parts := strings.Split(hash, "$")
	return len(parts) != 6 || parts[3] != currentParams
}
