package services

import (
	"context"
	"fmt"

	"github.com/corexify/backend/internal/mailer"
	"github.com/corexify/backend/internal/models"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) (string, error)
	GetAll(ctx context.Context, limit int64) ([]models.Contact, error)
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	MarkAsRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type ContactService struct {
	repo ContactRepository
	mail mailer.Mailer
}

func NewContactService(repo ContactRepository, mail mailer.Mailer) *ContactService {
	return &ContactService{repo: repo, mail: mail}
}

// Submit persists the contact and fires an admin notification. Mail
// failures never affect the outcome.
func (s *ContactService) Submit(ctx context.Context, contact *models.Contact) (string, error) {
	id, err := s.repo.Create(ctx, contact)
	if err != nil {
		return "", err
	}

	subject := fmt.Sprintf("📬 New Contact Form Submission from %s", contact.Name)
	body := fmt.Sprintf(`You have a new contact form submission:

--- Contact Details ---
Name: %s
Email: %s

--- Message ---
%s

---
You can view this contact in your admin dashboard.`,
		contact.Name, contact.Email, contact.Message)

	_ = s.mail.Send(ctx, subject, body, "")

	return id, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.repo.GetAll(ctx, 0)
}

func (s *ContactService) MarkAsRead(ctx context.Context, id string) error {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return fmt.Errorf("%w: contact", ErrNotFound)
	}
	return s.repo.MarkAsRead(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return fmt.Errorf("%w: contact", ErrNotFound)
	}
	return s.repo.Delete(ctx, id)
}
