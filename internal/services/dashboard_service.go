package services

import (
	"context"

	"github.com/corexify/backend/internal/models"
)

// DashboardStats summarizes collection sizes for the dashboard homepage.
// AdminsCount stays zero for callers without super-admin rights.
type DashboardStats struct {
	ContactsCount    int64 `json:"contactsCount"`
	InquiriesCount   int64 `json:"inquiriesCount"`
	PortfolioCount   int64 `json:"portfolioCount"`
	SubscribersCount int64 `json:"subscribersCount"`
	AdminsCount      int64 `json:"adminsCount"`
}

type DashboardService struct {
	contacts    ContactRepository
	inquiries   InquiryRepository
	portfolio   PortfolioRepository
	subscribers SubscriberRepository
	admins      AdminUserRepository
}

func NewDashboardService(
	contacts ContactRepository,
	inquiries InquiryRepository,
	portfolio PortfolioRepository,
	subscribers SubscriberRepository,
	admins AdminUserRepository,
) *DashboardService {
	return &DashboardService{
		contacts:    contacts,
		inquiries:   inquiries,
		portfolio:   portfolio,
		subscribers: subscribers,
		admins:      admins,
	}
}

func (s *DashboardService) Stats(ctx context.Context, caller *models.AdminUser) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.ContactsCount, err = s.contacts.Count(ctx); err != nil {
		return nil, err
	}
	if stats.InquiriesCount, err = s.inquiries.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PortfolioCount, err = s.portfolio.Count(ctx); err != nil {
		return nil, err
	}
	if stats.SubscribersCount, err = s.subscribers.Count(ctx); err != nil {
		return nil, err
	}

	if caller.IsSuperAdmin {
		if stats.AdminsCount, err = s.admins.Count(ctx); err != nil {
			return nil, err
		}
	}

	return stats, nil
}
