package media

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLabelFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "soft pop.mp3")
	if err := os.WriteFile(path, []byte("not an mp3"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := Label(path); got != "soft pop" {
		t.Fatalf("Label = %q, want %q", got, "soft pop")
	}
	if got := Label("/missing/click.wav"); got != "click" {
		t.Fatalf("Label = %q, want %q", got, "click")
	}
	if got := Label(""); got != "" {
		t.Fatalf("Label of empty path = %q", got)
	}
}
