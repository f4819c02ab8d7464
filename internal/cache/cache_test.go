package cache

import (
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	data := []byte("%PDF-1.4 content")

	k1 := Key(data, "eng+guj")
	if k1 != Key(data, "eng+guj") {
		t.Error("key must be deterministic")
	}
	if k1 == Key(data, "eng") {
		t.Error("different language sets must not collide")
	}
	if k1 == Key([]byte("other"), "eng+guj") {
		t.Error("different content must not collide")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("empty cache must miss")
	}

	if err := c.Set("k", "recognized text", 0); err != nil {
		t.Fatal(err)
	}
	if got, found := c.Get("k"); !found || got != "recognized text" {
		t.Errorf("got %q, %v", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("k"); found {
		t.Error("deleted key must miss")
	}

	_ = c.Set("a", "1", 0)
	_ = c.Set("b", "2", 0)
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("a"); found {
		t.Error("cleared cache must miss")
	}
}

func TestMemoryCache_TTL(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("k", "v", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expired entry must miss")
	}
}
