package auth

import "golang.org/x/crypto/bcrypt"

// CredentialStore holds the single statically configured credential pair.
//
// The plaintext password from configuration is hashed once at startup; only
// the bcrypt hash is kept. Immutable after construction.
type CredentialStore struct {
	username     string
	passwordHash []byte
}

// NewCredentialStore hashes the configured password and returns the store.
func NewCredentialStore(username, password string) (*CredentialStore, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &CredentialStore{
		username:     username,
		passwordHash: hash,
	}, nil
}

// Authenticate checks a username/password pair against the stored credential.
//
// Returns false on any mismatch without revealing which field failed.
// The bcrypt comparison always runs, even when the username does not match.
func (s *CredentialStore) Authenticate(username, password string) bool {
	match := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	return username == s.username && match
}
