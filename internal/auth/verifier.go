package auth

import (
	"crypto/subtle"
	"errors"
	"os"

	"kaenpro_motors/internal/domain/entities"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Principal is the authenticated identity attached to every request. The
// username doubles as the tenant id (each workshop account owns its own
// record collections) and as the audit user on billing-history entries.

type Principal struct {
	Username string
	Role     entities.Role
}

// CredentialVerifier turns a username/password pair into a principal. The
// core only ever sees the pass/fail decision and the resulting identity;
// swapping in a directory- or token-backed verifier touches nothing else.

type CredentialVerifier interface {
	Verify(username, password string) (Principal, error)
}

// StaticVerifier checks against the single credential pair from the
// environment (AUTH_USERNAME / AUTH_PASSWORD / AUTH_ROLE).

type StaticVerifier struct {
	username string
	password string
	role     entities.Role
}

var _ CredentialVerifier = (*StaticVerifier)(nil)

func NewStaticVerifierFromEnv() *StaticVerifier {
	return &StaticVerifier{
		username: getenvDefault("AUTH_USERNAME", "Rafael"),
		password: getenvDefault("AUTH_PASSWORD", "enzo1234"),
		role:     entities.Role(getenvDefault("AUTH_ROLE", string(entities.RoleDono))),
	}
}

func (v *StaticVerifier) Verify(username, password string) (Principal, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	if !userOK || !passOK {
		return Principal{}, ErrInvalidCredentials
	}
	return Principal{Username: v.username, Role: v.role}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
