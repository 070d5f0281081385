package storage

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"
)

// CloudinaryStore implements MediaStore against the Cloudinary upload API.
// The client is safe for concurrent use; one instance serves the process.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
	log zerolog.Logger
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string, log zerolog.Logger) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true

	return &CloudinaryStore{cld: cld, log: log}, nil
}

// Upload sends the file with resource type "auto" so Cloudinary detects
// images and videos itself.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, filename, folder string) (*Asset, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		s.log.Error().Err(err).Str("folder", folder).Str("file", filename).Msg("cloudinary upload failed")
		return nil, err
	}
	if resp.Error.Message != "" {
		err := errors.New(resp.Error.Message)
		s.log.Error().Err(err).Str("folder", folder).Str("file", filename).Msg("cloudinary upload rejected")
		return nil, err
	}

	return &Asset{SecureURL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// Delete destroys an asset by public id. Failures are logged and returned;
// callers decide whether they are fatal.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID, kind string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: kind,
	})
	if err != nil {
		s.log.Error().Err(err).Str("public_id", publicID).Str("kind", kind).Msg("cloudinary delete failed")
	}
	return err
}
