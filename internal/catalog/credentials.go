package catalog

import "crypto/subtle"

// CredentialStore validates tenant API credentials. The tenant set is fixed
// at construction and never mutated.
type CredentialStore struct {
	secrets map[string]string
}

// NewCredentialStore builds a credential store from client ID to secret pairs.
func NewCredentialStore(tenants map[string]string) *CredentialStore {
	secrets := make(map[string]string, len(tenants))
	for id, secret := range tenants {
		secrets[id] = secret
	}
	return &CredentialStore{secrets: secrets}
}

// Validate reports whether clientID is a known tenant whose registered secret
// matches clientSecret. Unknown client IDs return false, never an error.
// The comparison is constant time to avoid leaking secret prefixes.
func (s *CredentialStore) Validate(clientID, clientSecret string) bool {
	registered, ok := s.secrets[clientID]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(registered), []byte(clientSecret)) == 1
}
