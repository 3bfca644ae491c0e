package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T, maxBytes int64) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir(), "/uploads", maxBytes)
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	return store
}

func TestLocalStore_SaveAndRemove(t *testing.T) {
	store := newTestStore(t, 1024)

	url, err := store.Save("notes.PDF", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Errorf("url = %q, want /uploads/ prefix", url)
	}
	if !strings.HasSuffix(url, ".pdf") {
		t.Errorf("url = %q, want lowercased .pdf extension", url)
	}

	name := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("stored content = %q", data)
	}

	if err := store.Remove(url); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), name)); !os.IsNotExist(err) {
		t.Error("blob still present after Remove")
	}

	// Removing a missing blob is not an error
	if err := store.Remove(url); err != nil {
		t.Errorf("second Remove must be a no-op, got %v", err)
	}
}

func TestLocalStore_Save_RejectsOversized(t *testing.T) {
	store := newTestStore(t, 4)

	_, err := store.Save("big.bin", strings.NewReader("too large"))
	if err == nil {
		t.Fatal("expected error for oversized upload")
	}

	entries, readErr := os.ReadDir(store.Dir())
	if readErr != nil {
		t.Fatalf("ReadDir failed: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("partial file left behind: %v", entries)
	}
}

func TestLocalStore_Save_RandomizesNames(t *testing.T) {
	store := newTestStore(t, 1024)

	first, err := store.Save("same.txt", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := store.Save("same.txt", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first == second {
		t.Error("stored names must not collide for identical filenames")
	}
}

func TestLocalStore_Remove_RejectsForeignURLs(t *testing.T) {
	store := newTestStore(t, 1024)

	tests := []string{
		"/other/abc.pdf",
		"https://example.com/uploads/abc.pdf",
		"/uploads/",
	}
	for _, url := range tests {
		if err := store.Remove(url); err == nil {
			t.Errorf("Remove(%q) must be rejected", url)
		}
	}
}

func TestLocalStore_Remove_StripsPathTraversal(t *testing.T) {
	store := newTestStore(t, 1024)

	// Plant a file outside the store directory
	outside := filepath.Join(filepath.Dir(store.Dir()), "secret.txt")
	if err := os.WriteFile(outside, []byte("keep"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	// Base-name flattening means this resolves inside the store and
	// simply finds nothing to delete
	if err := store.Remove("/uploads/../secret.txt"); err != nil {
		t.Errorf("traversal removal errored: %v", err)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Error("file outside the store was deleted")
	}
}

func TestSanitizeExt(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".pdf", ".pdf"},
		{".PDF", ".pdf"},
		{"", ""},
		{".averylongextension", ""},
		{".a/b", ""},
	}

	for _, tt := range tests {
		if got := sanitizeExt(tt.ext); got != tt.want {
			t.Errorf("sanitizeExt(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}
