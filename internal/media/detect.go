// Package media identifies click sample files.
package media

import (
	"path/filepath"
	"strings"
)

// Format is a supported sample container.
type Format uint8

const (
	Unknown Format = iota
	MP3
	WAV
	FLAC
	OGG
)

func (f Format) String() string {
	switch f {
	case MP3:
		return "mp3"
	case WAV:
		return "wav"
	case FLAC:
		return "flac"
	case OGG:
		return "ogg"
	}
	return "unknown"
}

var soundExts = map[string]Format{
	".mp3":  MP3,
	".wav":  WAV,
	".flac": FLAC,
	".ogg":  OGG,
	".oga":  OGG,
}

// FormatOf returns the format implied by the file extension.
func FormatOf(path string) Format {
	return soundExts[strings.ToLower(filepath.Ext(path))]
}

// IsSupportedExt reports whether ext names a decodable sample format.
func IsSupportedExt(ext string) bool {
	return soundExts[strings.ToLower(ext)] != Unknown
}

// SupportedExtsList returns a human-readable list of sample formats.
func SupportedExtsList() string {
	return ".mp3, .wav, .flac, .ogg"
}
