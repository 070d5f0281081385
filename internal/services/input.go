package services

import (
	"io"
	"strings"
)

// FileUpload is a single multipart file handed down from a handler.
type FileUpload struct {
	Reader   io.Reader
	Filename string
}

// parseTechnologies splits a comma-separated form value into a trimmed
// list, dropping empty entries.
func parseTechnologies(raw string) []string {
	parts := strings.Split(raw, ",")
	techs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			techs = append(techs, p)
		}
	}
	return techs
}
