package core

// Store is synchronous key-value byte storage. The persistent implementation
// survives restarts; the session implementation lives and dies with the
// process.
type Store interface {
	// Get returns the value stored under key; ErrKeyNotFound if absent.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	// Clear removes every key. Irreversible.
	Clear() error
}
