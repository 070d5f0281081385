package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/corexify/backend/internal/mailer"
	"github.com/corexify/backend/internal/models"
	"github.com/corexify/backend/internal/storage"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.ProjectInquiry) (string, error)
	GetAll(ctx context.Context, limit int64) ([]models.ProjectInquiry, error)
	GetByID(ctx context.Context, id string) (*models.ProjectInquiry, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type InquiryService struct {
	repo  InquiryRepository
	media storage.MediaStore
	mail  mailer.Mailer
}

func NewInquiryService(repo InquiryRepository, media storage.MediaStore, mail mailer.Mailer) *InquiryService {
	return &InquiryService{repo: repo, media: media, mail: mail}
}

// Submit uploads each attachment independently (a failed upload is
// skipped, not fatal), persists the inquiry with status "new" and
// notifies the admin.
func (s *InquiryService) Submit(ctx context.Context, inquiry *models.ProjectInquiry, files []FileUpload) (string, error) {
	urls := []string{}
	for _, f := range files {
		asset, err := s.media.Upload(ctx, f.Reader, f.Filename, "project_inquiries")
		if err != nil {
			continue
		}
		urls = append(urls, asset.SecureURL)
	}
	inquiry.AttachedFiles = urls

	id, err := s.repo.Create(ctx, inquiry)
	if err != nil {
		return "", err
	}

	subject := fmt.Sprintf("🚀 New Project Inquiry: %s from %s", inquiry.ProjectType, inquiry.Name)
	_ = s.mail.Send(ctx, subject, inquiryNotificationBody(inquiry), "")

	return id, nil
}

func (s *InquiryService) List(ctx context.Context) ([]models.ProjectInquiry, error) {
	return s.repo.GetAll(ctx, 0)
}

// UpdateStatus changes an inquiry's status and, for statuses that mean
// the project moved forward, emails the submitter.
func (s *InquiryService) UpdateStatus(ctx context.Context, id, status string) error {
	inquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inquiry == nil {
		return fmt.Errorf("%w: inquiry", ErrNotFound)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	switch status {
	case models.InquiryStatusContacted, models.InquiryStatusInProgress, models.InquiryStatusCompleted:
		body := fmt.Sprintf("Hello %s,\n\nThis is an update regarding your project inquiry. "+
			"The status has been updated to: %s.\n\nWe will be in touch shortly if any action is needed.\n\n"+
			"Best regards,\nThe Corexify Team", inquiry.Name, status)
		_ = s.mail.Send(ctx, "Update on your project inquiry with Corexify", body, inquiry.Email)
	}

	return nil
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	inquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inquiry == nil {
		return fmt.Errorf("%w: inquiry", ErrNotFound)
	}
	return s.repo.Delete(ctx, id)
}

func inquiryNotificationBody(inquiry *models.ProjectInquiry) string {
	fileLinks := "No files were attached."
	if len(inquiry.AttachedFiles) > 0 {
		var b strings.Builder
		for i, url := range inquiry.AttachedFiles {
			fmt.Fprintf(&b, "  - File %d: %s\n", i+1, url)
		}
		fileLinks = b.String()
	}

	orNA := func(v string) string {
		if v == "" {
			return "N/A"
		}
		return v
	}
	startDate := inquiry.StartDate
	if startDate == "" {
		startDate = "Not Specified"
	}

	return fmt.Sprintf(`You've received a new project inquiry!

--- Personal & Company Details ---
Name: %s
Email: %s
Phone: %s
Location: %s, %s, %s
Company: %s

--- Project Details ---
Client Type: %s
Domain: %s
Project Type: %s

--- Timeline & Budget ---
Expected Start Date: %s
Timeline: %s
Budget: %s

--- Project Description ---
%s

--- Attached Files ---
%s
---

You can view the full details of this inquiry in your admin dashboard.`,
		inquiry.Name, inquiry.Email, inquiry.Phone,
		orNA(inquiry.City), orNA(inquiry.State), inquiry.Country,
		orNA(inquiry.Company),
		inquiry.ClientType, inquiry.Domain, inquiry.ProjectType,
		startDate, inquiry.Timeline, inquiry.Budget,
		inquiry.Message, fileLinks)
}
