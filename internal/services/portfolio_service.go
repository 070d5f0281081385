package services

import (
	"context"
	"fmt"

	"github.com/corexify/backend/internal/models"
	"github.com/corexify/backend/internal/storage"
)

type PortfolioRepository interface {
	Create(ctx context.Context, item *models.PortfolioItem) (string, error)
	GetAll(ctx context.Context) ([]models.PortfolioItem, error)
	GetByID(ctx context.Context, id string) (*models.PortfolioItem, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// PortfolioService owns the asset-lifecycle protocol: uploads and remote
// deletions are sequenced around document writes so that no persisted item
// ever references an asset we never had a public id for. Ordering favors
// availability of the new asset over strict atomicity; a failure partway
// can leave an orphaned remote asset but never a dangling reference.
type PortfolioService struct {
	repo  PortfolioRepository
	media storage.MediaStore
}

func NewPortfolioService(repo PortfolioRepository, media storage.MediaStore) *PortfolioService {
	return &PortfolioService{repo: repo, media: media}
}

type CreatePortfolioInput struct {
	Title        string
	Description  string
	Technologies string // comma-separated, parsed here
	Category     string
	Status       string
	Thumbnail    FileUpload
	Video        FileUpload
}

// Create uploads the thumbnail, then the video, then persists the
// document. If either upload fails nothing is persisted; a thumbnail
// already uploaded before a video failure is not rolled back.
func (s *PortfolioService) Create(ctx context.Context, in CreatePortfolioInput) (string, error) {
	thumb, err := s.media.Upload(ctx, in.Thumbnail.Reader, in.Thumbnail.Filename, "portfolio_thumbnails")
	if err != nil {
		return "", fmt.Errorf("%w: thumbnail", ErrUpload)
	}

	video, err := s.media.Upload(ctx, in.Video.Reader, in.Video.Filename, "portfolio_videos")
	if err != nil {
		return "", fmt.Errorf("%w: video", ErrUpload)
	}

	item := &models.PortfolioItem{
		Title:             in.Title,
		Description:       in.Description,
		Technologies:      parseTechnologies(in.Technologies),
		Category:          in.Category,
		Status:            in.Status,
		ThumbnailURL:      thumb.SecureURL,
		ThumbnailPublicID: thumb.PublicID,
		VideoURL:          video.SecureURL,
		VideoPublicID:     video.PublicID,
	}

	return s.repo.Create(ctx, item)
}

func (s *PortfolioService) List(ctx context.Context) ([]models.PortfolioItem, error) {
	return s.repo.GetAll(ctx)
}

func (s *PortfolioService) Get(ctx context.Context, id string) (*models.PortfolioItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: portfolio item", ErrNotFound)
	}
	return item, nil
}

type UpdatePortfolioInput struct {
	// Fields holds the text fields present in the request, keyed by
	// their stored names. Technologies arrives raw and is re-parsed.
	Fields    map[string]string
	Thumbnail *FileUpload
	Video     *FileUpload
}

// Update replaces any subset of fields. A replacement file first deletes
// the old remote asset (when a public id was recorded), then uploads the
// new one; a failed re-upload after that deletion is surfaced as an
// upload error and leaves the item without a retrievable asset until
// retried.
func (s *PortfolioService) Update(ctx context.Context, id string, in UpdatePortfolioInput) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: portfolio item", ErrNotFound)
	}

	fields := map[string]interface{}{}
	for k, v := range in.Fields {
		if k == "technologies" {
			fields[k] = parseTechnologies(v)
			continue
		}
		fields[k] = v
	}

	if in.Thumbnail != nil {
		if item.ThumbnailPublicID != "" {
			// Best effort: the replacement proceeds even if the old
			// asset cannot be removed.
			_ = s.media.Delete(ctx, item.ThumbnailPublicID, storage.KindImage)
		}
		thumb, err := s.media.Upload(ctx, in.Thumbnail.Reader, in.Thumbnail.Filename, "portfolio_thumbnails")
		if err != nil {
			return fmt.Errorf("%w: new thumbnail", ErrUpload)
		}
		fields["thumbnailUrl"] = thumb.SecureURL
		fields["thumbnail_public_id"] = thumb.PublicID
	}

	if in.Video != nil {
		if item.VideoPublicID != "" {
			_ = s.media.Delete(ctx, item.VideoPublicID, storage.KindVideo)
		}
		video, err := s.media.Upload(ctx, in.Video.Reader, in.Video.Filename, "portfolio_videos")
		if err != nil {
			return fmt.Errorf("%w: new video", ErrUpload)
		}
		fields["videoUrl"] = video.SecureURL
		fields["video_public_id"] = video.PublicID
	}

	return s.repo.Update(ctx, id, fields)
}

// Delete attempts to remove both remote assets, tolerating either
// deletion failing, then always deletes the document.
func (s *PortfolioService) Delete(ctx context.Context, id string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: portfolio item", ErrNotFound)
	}

	if item.ThumbnailPublicID != "" {
		_ = s.media.Delete(ctx, item.ThumbnailPublicID, storage.KindImage)
	}
	if item.VideoPublicID != "" {
		_ = s.media.Delete(ctx, item.VideoPublicID, storage.KindVideo)
	}

	return s.repo.Delete(ctx, id)
}
