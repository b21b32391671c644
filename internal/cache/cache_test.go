package cache

import (
	"testing"
	"time"
)

func TestKey_ContentSensitive(t *testing.T) {
	a := Key("tree-of-souls", "some document text")
	b := Key("tree-of-souls", "some document text")
	if a != b {
		t.Error("identical inputs must produce identical keys")
	}

	if Key("tree-of-souls", "other text") == a {
		t.Error("different text must change the key")
	}
	if Key("legends-vol-1", "some document text") == a {
		t.Error("different work must change the key")
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	c := NewMemory(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, found := c.Get("k")
	if !found || string(v) != "v" {
		t.Errorf("got %q/%v, want v/true", v, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestDisk_RoundTrip(t *testing.T) {
	c := NewDisk(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("payload"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, found := c.Get("k")
	if !found || string(v) != "payload" {
		t.Errorf("got %q/%v, want payload/true", v, found)
	}
}

func TestDisk_Expiry(t *testing.T) {
	c := NewDisk(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayered_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayered(time.Minute, dir, time.Minute)

	// Write through another handle so only the disk tier has the entry
	if err := NewDisk(dir, time.Minute).Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	v, found := c.Get("k")
	if !found || string(v) != "v" {
		t.Fatalf("layered read through disk failed: %q/%v", v, found)
	}

	// Now present in memory as well
	if _, found := c.memory.Get("k"); !found {
		t.Error("disk hit was not promoted to memory")
	}
}
