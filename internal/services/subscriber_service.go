package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/corexify/backend/internal/mailer"
	"github.com/corexify/backend/internal/models"
	"github.com/corexify/backend/internal/repositories"
)

type SubscriberRepository interface {
	Create(ctx context.Context, email string) (string, error)
	GetAll(ctx context.Context, limit int64) ([]models.Subscriber, error)
	GetByID(ctx context.Context, id string) (*models.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type SubscriberService struct {
	repo SubscriberRepository
	mail mailer.Mailer
}

func NewSubscriberService(repo SubscriberRepository, mail mailer.Mailer) *SubscriberService {
	return &SubscriberService{repo: repo, mail: mail}
}

// Subscribe is idempotent on the normalized email: a duplicate signup
// returns ErrAlreadySubscribed and sends no mail. A new subscriber gets a
// welcome email, and the admin a notification; neither can fail the call.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	id, err := s.repo.Create(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return "", ErrAlreadySubscribed
		}
		return "", err
	}

	_ = s.mail.Send(ctx, "🎉 Thanks for Subscribing to Corexify!",
		"Welcome to our newsletter! You'll now be the first to know about our latest projects, services, and offers.",
		email)

	adminBody := fmt.Sprintf(`A new user has subscribed to your newsletter.

--- Subscriber Details ---
Email: %s

You can manage all subscribers from your admin dashboard.`, email)
	_ = s.mail.Send(ctx, "📬 New Newsletter Subscriber", adminBody, "")

	return id, nil
}

func (s *SubscriberService) List(ctx context.Context) ([]models.Subscriber, error) {
	return s.repo.GetAll(ctx, 0)
}

func (s *SubscriberService) Delete(ctx context.Context, id string) error {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return fmt.Errorf("%w: subscriber", ErrNotFound)
	}
	return s.repo.Delete(ctx, id)
}
