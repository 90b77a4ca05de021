package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Keyer derives cache keys.
type Keyer interface {
	// ProfileKey identifies the normalized profile of a GitHub user.
	ProfileKey(username string) string

	// HTTPKey identifies a raw upstream response.
	HTTPKey(namespace, key string) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ProfileKey hashes the lowercased username, since GitHub logins are case
// insensitive.
func (DefaultKeyer) ProfileKey(username string) string {
	return hashKey("profile", strings.ToLower(strings.TrimSpace(username)))
}

// HTTPKey joins namespace and key without hashing so entries stay readable.
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// ScopedKeyer prefixes every key, isolating deployments that share a
// backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with prefix. A nil inner uses [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ProfileKey(username string) string {
	return k.prefix + k.inner.ProfileKey(username)
}

func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// hashKey returns prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
