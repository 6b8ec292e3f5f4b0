package envelope

import (
	"crypto/ed25519"
	"fmt"
	"sync"
)

// Keyring maps component ids to Ed25519 public keys. Private keys are
// never stored here; verification is the only supported operation.
type Keyring struct {
	mu   sync.RWMutex
	keys map[string]ed25519.PublicKey
}

// NewKeyring creates an empty keyring.
func NewKeyring() *Keyring {
	return &Keyring{keys: make(map[string]ed25519.PublicKey)}
}

// Register binds a component id to a public key. Re-registering an id
// replaces the previous key (the old buffer is zeroed).
func (k *Keyring) Register(componentID string, key ed25519.PublicKey) error {
	if len(key) != ed25519.PublicKeySize {
		return fmt.Errorf("component %s: invalid public key size %d", componentID, len(key))
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if old, ok := k.keys[componentID]; ok {
		zero(old)
	}
	owned := make(ed25519.PublicKey, len(key))
	copy(owned, key)
	k.keys[componentID] = owned
	return nil
}

// Remove unbinds a component id and zeroes the stored key buffer.
func (k *Keyring) Remove(componentID string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if key, ok := k.keys[componentID]; ok {
		zero(key)
		delete(k.keys, componentID)
	}
}

// Lookup returns the public key for a component id.
func (k *Keyring) Lookup(componentID string) (ed25519.PublicKey, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	key, ok := k.keys[componentID]
	return key, ok
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
