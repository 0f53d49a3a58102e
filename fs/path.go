package fs

import (
	"path/filepath"
	"strings"
)

// URLToPath derives a relative file path from an article URL. The segments
// after the host become directories; the last segment, cut at its first ".",
// becomes the file name, or defaultName when it is empty. ext is appended.
//
// Example: https://example.com/news/world/story.html → news/world/story.txt
func URLToPath(rawURL, defaultName, ext string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		rawURL = rawURL[:i]
	}

	var segments []string
	if parts := strings.Split(rawURL, "/"); len(parts) > 3 {
		segments = parts[3:]
	}
	if len(segments) == 0 {
		segments = []string{""}
	}

	last := len(segments) - 1
	name, _, _ := strings.Cut(segments[last], ".")
	if name == "" {
		name = defaultName
	}
	segments[last] = name + "." + ext

	// Keep the path inside the output directory.
	clean := make([]string, 0, len(segments))
	for _, s := range segments {
		if s == "" || s == "." || s == ".." {
			continue
		}
		clean = append(clean, s)
	}
	return filepath.Join(clean...)
}
