package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching recognized text. Identity
// documents never touch disk; the only implementation is in-memory.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the uploaded file bytes and the OCR
// language set. The same PDF recognized with different languages must
// not collide.
func Key(data []byte, languages string) string {
	h := sha256.New()
	h.Write(data)
	h.Write([]byte{0})
	h.Write([]byte(languages))
	return "identia:v1:" + hex.EncodeToString(h.Sum(nil))
}
