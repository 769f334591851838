package media

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// Label returns a short display name for a sample: the ID3 title when the
// file carries one, otherwise the file name without extension.
func Label(path string) string {
	if path == "" {
		return ""
	}
	if FormatOf(path) == MP3 {
		tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
		if err == nil {
			defer tag.Close()
			if title := strings.TrimSpace(tag.Title()); title != "" {
				return title
			}
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
