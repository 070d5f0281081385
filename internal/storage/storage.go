// Package storage abstracts the remote media host. Handlers and services
// talk to MediaStore; the Cloudinary implementation lives alongside it.
package storage

import (
	"context"
	"io"
	"strings"
)

// Resource kinds the media host distinguishes when deleting.
const (
	KindImage = "image"
	KindVideo = "video"
	KindRaw   = "raw"
)

// Asset describes a stored file: the URL to serve it from and the public
// id needed to delete it later.
type Asset struct {
	SecureURL string
	PublicID  string
}

// MediaStore uploads and deletes remote assets.
type MediaStore interface {
	// Upload stores the file under the given folder and returns its
	// asset handle.
	Upload(ctx context.Context, file io.Reader, filename, folder string) (*Asset, error)

	// Delete removes an asset by public id. kind is one of KindImage,
	// KindVideo or KindRaw.
	Delete(ctx context.Context, publicID, kind string) error
}

// ResourceKind maps a MIME content type to the media host's resource kind.
func ResourceKind(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return KindImage
	case strings.HasPrefix(contentType, "video/"):
		return KindVideo
	default:
		return KindRaw
	}
}
