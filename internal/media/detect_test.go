package media

import (
	"strings"
	"testing"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"pop.mp3", MP3},
		{"/tmp/Click.WAV", WAV},
		{"a.b.flac", FLAC},
		{"drop.ogg", OGG},
		{"drop.oga", OGG},
		{"song.m4a", Unknown},
		{"noext", Unknown},
	}
	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsSupportedExt(t *testing.T) {
	for _, ext := range []string{".mp3", ".WAV", ".flac", ".ogg"} {
		if !IsSupportedExt(ext) {
			t.Fatalf("expected %s to be supported", ext)
		}
	}
	for _, ext := range []string{".aac", ".m4a", ""} {
		if IsSupportedExt(ext) {
			t.Fatalf("expected %q to be unsupported", ext)
		}
	}
}

func TestSupportedExtsListMatchesDetection(t *testing.T) {
	for _, ext := range strings.Split(SupportedExtsList(), ", ") {
		if !IsSupportedExt(ext) {
			t.Fatalf("listed ext %s is not detected", ext)
		}
	}
}
