package cache

import (
	"context"
	"testing"
	"time"
)

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	base := k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "svg", Scale: 8})

	tests := []struct {
		name string
		key  string
	}{
		{"different schedule", k.ArtifactKey("hash2", ArtifactKeyOpts{Format: "svg", Scale: 8})},
		{"different format", k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "json", Scale: 8})},
		{"different scale", k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "svg", Scale: 12})},
		{"collapse set", k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "svg", Scale: 8, Collapsed: []string{"03"}})},
		{"theme", k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "svg", Scale: 8, Theme: "t1"})},
	}
	for _, tt := range tests {
		if tt.key == base {
			t.Errorf("%s produced the same key as the base options", tt.name)
		}
	}

	// Identical options are stable.
	again := k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "svg", Scale: 8})
	if again != base {
		t.Errorf("identical options produced different keys: %q vs %q", again, base)
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "projectA:")

	opts := ArtifactKeyOpts{Format: "svg", Scale: 8}
	got := scoped.ArtifactKey("hash1", opts)
	want := "projectA:" + inner.ArtifactKey("hash1", opts)
	if got != want {
		t.Errorf("ArtifactKey = %q, want %q", got, want)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want miss", ok, err)
	}

	data := []byte("<svg/>")
	if err := c.Set(ctx, "key1", data, time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := c.Get(ctx, "key1")
	if err != nil || !ok {
		t.Fatalf("Get() = ok=%v err=%v, want hit", ok, err)
	}
	if string(got) != string(data) {
		t.Errorf("Get() = %q, want %q", got, data)
	}

	if err := c.Delete(ctx, "key1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key1"); ok {
		t.Error("Get() hit after Delete")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "key1"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "stale"); ok {
		t.Error("expired entry served as a hit")
	}

	// Zero TTL means no expiration.
	if err := c.Set(ctx, "forever", []byte("keep"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "forever"); !ok {
		t.Error("zero-TTL entry missed")
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Errorf("Get() = ok=%v err=%v, want miss", ok, err)
	}
}

func TestHashStable(t *testing.T) {
	a := Hash([]byte("content"))
	b := Hash([]byte("content"))
	if a != b {
		t.Errorf("Hash not stable: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("Hash length = %d, want 64", len(a))
	}
	if Hash([]byte("other")) == a {
		t.Error("distinct content hashed equal")
	}
}
