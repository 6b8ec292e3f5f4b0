// Package vault implements the password-derived secrets store. Values
// are AES-256-GCM encrypted at rest under an Argon2id-derived key and
// gated by a per-entry plugin ACL. Plaintext buffers are zeroed as soon
// as their owner is done with them.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/crypto/argon2"
)

// Vault errors.
var (
	ErrExists          = errors.New("vault already initialized")
	ErrNotInitialized  = errors.New("vault not initialized")
	ErrLocked          = errors.New("vault is locked")
	ErrInvalidPassword = errors.New("invalid vault password")
	ErrSecretNotFound  = errors.New("secret not found")
	ErrAccessDenied    = errors.New("secret access denied")
)

// Tier selects the Argon2id cost parameters.
type Tier string

// KDF tiers.
const (
	TierStandard Tier = "standard"
	TierLowPower Tier = "low-power"
)

const (
	fileVersion  = 1
	keyLength    = 32
	saltLength   = 16
	verifierText = "vault-key-verifier"
)

type kdfParams struct {
	memoryKiB uint32
	time      uint32
	threads   uint8
}

func (t Tier) params() (kdfParams, error) {
	switch t {
	case TierStandard:
		return kdfParams{memoryKiB: 64 * 1024, time: 3, threads: 1}, nil
	case TierLowPower:
		return kdfParams{memoryKiB: 19 * 1024, time: 2, threads: 1}, nil
	}
	return kdfParams{}, fmt.Errorf("unknown vault tier %q", t)
}

// cipherBlob is one AES-GCM encryption: nonce, payload, and the tag
// kept separately.
type cipherBlob struct {
	IV         string `json:"iv"`
	AuthTag    string `json:"authTag"`
	Ciphertext string `json:"ciphertext"`
}

// secretEntry is the on-disk form of one secret. Name, timestamps, and
// ACL stay cleartext for listing; only the value is encrypted.
type secretEntry struct {
	cipherBlob
	AllowedPlugins  []string   `json:"allowedPlugins"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastUsedAt      *time.Time `json:"lastUsedAt,omitempty"`
	RotateAfterDays int        `json:"rotateAfterDays,omitempty"`
}

type vaultFile struct {
	Version  int                    `json:"version"`
	Salt     string                 `json:"salt"`
	Tier     Tier                   `json:"tier"`
	Verifier cipherBlob             `json:"verifier"`
	Secrets  map[string]secretEntry `json:"secrets"`
}

// SecretInfo is the metadata-only view returned by List.
type SecretInfo struct {
	Name            string     `json:"name"`
	AllowedPlugins  []string   `json:"allowedPlugins"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastUsedAt      *time.Time `json:"lastUsedAt,omitempty"`
	RotateAfterDays int        `json:"rotateAfterDays,omitempty"`
}

// StoreOptions carries optional per-secret settings.
type StoreOptions struct {
	RotateAfterDays int
}

// Vault is the secrets store. All operations are serialized; the
// derived key lives in memory only while unlocked.
type Vault struct {
	path string

	mu   sync.Mutex
	key  []byte // nil while locked
	file *vaultFile
}

// New creates a vault handle over the given file path. The file need
// not exist yet.
func New(path string) *Vault {
	return &Vault{path: path}
}

// Initialize creates the vault file and leaves the vault unlocked. It
// fails if the file already exists. The password buffer is zeroed.
func (v *Vault) Initialize(password []byte, tier Tier) error {
	defer Zero(password)

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, err := os.Stat(v.path); err == nil {
		return ErrExists
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking vault file: %w", err)
	}

	params, err := tier.params()
	if err != nil {
		return err
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey(password, salt, params.time, params.memoryKiB, params.threads, keyLength)
	verifier, err := encrypt(key, []byte(verifierText))
	if err != nil {
		Zero(key)
		return err
	}

	v.file = &vaultFile{
		Version:  fileVersion,
		Salt:     base64.StdEncoding.EncodeToString(salt),
		Tier:     tier,
		Verifier: verifier,
		Secrets:  map[string]secretEntry{},
	}
	if err := v.persist(); err != nil {
		Zero(key)
		v.file = nil
		return err
	}
	v.key = key
	return nil
}

// Unlock derives the key from the password and checks it against the
// verifier block. The password buffer is zeroed.
func (v *Vault) Unlock(password []byte) error {
	defer Zero(password)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.load(); err != nil {
		return err
	}

	params, err := v.file.Tier.params()
	if err != nil {
		return err
	}
	salt, err := base64.StdEncoding.DecodeString(v.file.Salt)
	if err != nil {
		return fmt.Errorf("decoding vault salt: %w", err)
	}

	key := argon2.IDKey(password, salt, params.time, params.memoryKiB, params.threads, keyLength)
	plain, err := decrypt(key, v.file.Verifier)
	if err != nil || subtle.ConstantTimeCompare(plain, []byte(verifierText)) != 1 {
		Zero(key)
		Zero(plain)
		return ErrInvalidPassword
	}
	Zero(plain)

	Zero(v.key)
	v.key = key
	return nil
}

// Lock zeroes and drops the derived key. Stored ciphertext is
// unaffected.
func (v *Vault) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()
	Zero(v.key)
	v.key = nil
}

// Unlocked reports whether the derived key is in memory.
func (v *Vault) Unlocked() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.key != nil
}

// Store encrypts and persists a secret. The value buffer is zeroed
// after encryption. An existing entry with the same name is replaced.
func (v *Vault) Store(name string, value []byte, allowedPlugins []string, opts StoreOptions) error {
	defer Zero(value)

	if name == "" {
		return fmt.Errorf("secret name is required")
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.key == nil {
		return ErrLocked
	}

	blob, err := encrypt(v.key, value)
	if err != nil {
		return err
	}

	acl := make([]string, len(allowedPlugins))
	copy(acl, allowedPlugins)

	v.file.Secrets[name] = secretEntry{
		cipherBlob:      blob,
		AllowedPlugins:  acl,
		CreatedAt:       time.Now().UTC(),
		RotateAfterDays: opts.RotateAfterDays,
	}
	return v.persist()
}

// Retrieve decrypts a secret for a requesting plugin. The plugin must
// appear in the entry's ACL; an empty requestingPlugin denotes the host
// itself and bypasses the ACL. The returned buffer is freshly allocated
// and must be zeroed by the caller.
func (v *Vault) Retrieve(name, requestingPlugin string) ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.key == nil {
		return nil, ErrLocked
	}
	entry, ok := v.file.Secrets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSecretNotFound, name)
	}
	if requestingPlugin != "" && !contains(entry.AllowedPlugins, requestingPlugin) {
		return nil, fmt.Errorf("%w: %s", ErrAccessDenied, name)
	}

	plain, err := decrypt(v.key, entry.cipherBlob)
	if err != nil {
		return nil, fmt.Errorf("decrypting secret %s: %w", name, err)
	}

	now := time.Now().UTC()
	entry.LastUsedAt = &now
	v.file.Secrets[name] = entry
	if err := v.persist(); err != nil {
		Zero(plain)
		return nil, err
	}
	return plain, nil
}

// Delete removes a secret.
func (v *Vault) Delete(name string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.key == nil {
		return ErrLocked
	}
	if _, ok := v.file.Secrets[name]; !ok {
		return fmt.Errorf("%w: %s", ErrSecretNotFound, name)
	}
	delete(v.file.Secrets, name)
	return v.persist()
}

// List returns metadata for every stored secret, name-sorted by the
// caller if needed. Values are never included.
func (v *Vault) List() ([]SecretInfo, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.key == nil {
		return nil, ErrLocked
	}
	out := make([]SecretInfo, 0, len(v.file.Secrets))
	for name, entry := range v.file.Secrets {
		out = append(out, SecretInfo{
			Name:            name,
			AllowedPlugins:  entry.AllowedPlugins,
			CreatedAt:       entry.CreatedAt,
			LastUsedAt:      entry.LastUsedAt,
			RotateAfterDays: entry.RotateAfterDays,
		})
	}
	return out, nil
}

// RotationCheck returns the names of secrets older than their
// rotateAfterDays setting.
func (v *Vault) RotationCheck(now time.Time) ([]string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.key == nil {
		return nil, ErrLocked
	}
	var due []string
	for name, entry := range v.file.Secrets {
		if entry.RotateAfterDays <= 0 {
			continue
		}
		deadline := entry.CreatedAt.AddDate(0, 0, entry.RotateAfterDays)
		if now.After(deadline) {
			due = append(due, name)
		}
	}
	return due, nil
}

// load reads the vault file if not already cached.
func (v *Vault) load() error {
	if v.file != nil {
		return nil
	}
	raw, err := os.ReadFile(v.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotInitialized
	}
	if err != nil {
		return fmt.Errorf("reading vault file: %w", err)
	}
	var f vaultFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parsing vault file: %w", err)
	}
	if f.Secrets == nil {
		f.Secrets = map[string]secretEntry{}
	}
	v.file = &f
	return nil
}

// persist writes the vault file atomically with owner-only permissions.
func (v *Vault) persist() error {
	raw, err := json.MarshalIndent(v.file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding vault file: %w", err)
	}
	tmp := filepath.Join(filepath.Dir(v.path), fmt.Sprintf(".%s.tmp", filepath.Base(v.path)))
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("writing vault file: %w", err)
	}
	if err := os.Rename(tmp, v.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing vault file: %w", err)
	}
	return nil
}

func encrypt(key, plaintext []byte) (cipherBlob, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return cipherBlob{}, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return cipherBlob{}, fmt.Errorf("creating gcm: %w", err)
	}
	iv := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return cipherBlob{}, fmt.Errorf("generating nonce: %w", err)
	}
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	tagStart := len(sealed) - gcm.Overhead()
	return cipherBlob{
		IV:         base64.StdEncoding.EncodeToString(iv),
		AuthTag:    base64.StdEncoding.EncodeToString(sealed[tagStart:]),
		Ciphertext: base64.StdEncoding.EncodeToString(sealed[:tagStart]),
	}, nil
}

func decrypt(key []byte, blob cipherBlob) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating gcm: %w", err)
	}
	iv, err := base64.StdEncoding.DecodeString(blob.IV)
	if err != nil {
		return nil, fmt.Errorf("decoding nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(blob.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decoding ciphertext: %w", err)
	}
	tag, err := base64.StdEncoding.DecodeString(blob.AuthTag)
	if err != nil {
		return nil, fmt.Errorf("decoding auth tag: %w", err)
	}
	return gcm.Open(nil, iv, append(ciphertext, tag...), nil)
}

// Zero overwrites a buffer so plaintext does not linger in memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
