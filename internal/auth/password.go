package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/argon2"

	"github.com/spec-kit/formula-api/internal/config"
	apperrors "github.com/spec-kit/formula-api/pkg/util"
)

const (
	argonThreads = 4
	argonSaltLen = 16
)

// ErrMalformedHash is returned when a stored hash cannot be decoded.
var ErrMalformedHash = errors.New("malformed password hash")

// PasswordPolicy hashes, verifies and scores passwords.
type PasswordPolicy struct {
	hashLength uint32
	timeCost   uint32
	memoryCost uint32
	minScore   int

	decoyOnce sync.Once
	decoy     string
}

// NewPasswordPolicy builds a policy from validated configuration.
func NewPasswordPolicy(cfg config.AuthConfig) *PasswordPolicy {
	return &PasswordPolicy{
		hashLength: cfg.Argon.HashLength,
		timeCost:   cfg.Argon.TimeCost,
		memoryCost: cfg.Argon.MemoryCost,
		minScore:   cfg.MinScore,
	}
}

// Hash produces an argon2id hash in PHC string format.
func (p *PasswordPolicy) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.timeCost, p.memoryCost, argonThreads, p.hashLength)

	// $argon2id$v=19$m=131072,t=6,p=4$<salt>$<hash>
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memoryCost, p.timeCost, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify returns (false, nil) for a wrong password and an ErrMalformedHash error
// when the stored hash is unreadable. Parameters are taken from the hash itself.
func (p *PasswordPolicy) Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return false, fmt.Errorf("%w: unexpected format", ErrMalformedHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version %q", ErrMalformedHash, parts[2])
	}

	var memory, time uint32
	var threads uint8
	if n, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil || n != 3 {
		return false, fmt.Errorf("%w: bad parameters %q", ErrMalformedHash, parts[3])
	}
	if memory == 0 || time == 0 || threads == 0 {
		return false, fmt.Errorf("%w: zero parameters", ErrMalformedHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return false, fmt.Errorf("%w: hash: %v", ErrMalformedHash, err)
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

// VerifyDecoy runs a verification against a hash no password matches, at the
// configured cost. Login calls it for unknown emails so both failure paths do
// the same argon2 work.
func (p *PasswordPolicy) VerifyDecoy(password string) {
	_, _ = p.Verify(password, p.decoyHash())
}

func (p *PasswordPolicy) decoyHash() string {
	p.decoyOnce.Do(func() {
		secret := make([]byte, 32)
		_, _ = rand.Read(secret)
		hash, err := p.Hash(base64.RawStdEncoding.EncodeToString(secret))
		if err != nil {
			// Still parseable, so Verify keeps doing the full argon2 work.
			hash = fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
				argon2.Version, p.memoryCost, p.timeCost, argonThreads,
				base64.RawStdEncoding.EncodeToString(make([]byte, argonSaltLen)),
				base64.RawStdEncoding.EncodeToString(make([]byte, p.hashLength)),
			)
		}
		p.decoy = hash
	})
	return p.decoy
}

// Score rates the password from 0 (guessable) to 4 (strong).
func (p *PasswordPolicy) Score(password string, userInputs ...string) int {
	return zxcvbn.PasswordStrength(password, userInputs).Score
}

// ValidateStrength fails with a validation error when the score is below the minimum.
func (p *PasswordPolicy) ValidateStrength(password string, userInputs ...string) error {
	if score := p.Score(password, userInputs...); score < p.minScore {
		return apperrors.NewValidationError("Password is too weak. Try making it stronger.", map[string]any{
			"password": map[string]any{"score": score, "minScore": p.minScore},
		})
	}
	return nil
}
