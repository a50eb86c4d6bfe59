package credential

// KeyToken is the key under which the auth token is stored.
const KeyToken = "token"

// Store is a small key/value store for client credentials.
// Get returns an empty string and no error for a missing key.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
