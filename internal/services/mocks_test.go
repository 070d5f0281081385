package services

import (
	"context"
	"io"

	"github.com/corexify/backend/internal/models"
	"github.com/corexify/backend/internal/storage"
)

// Function-field mocks. A nil field means the zero-value happy path, so
// each test only fills in the calls it cares about.

type mockAdminRepo struct {
	createFn     func(ctx context.Context, admin *models.AdminUser) (string, error)
	getAllFn     func(ctx context.Context) ([]models.AdminUser, error)
	getByIDFn    func(ctx context.Context, id string) (*models.AdminUser, error)
	getByEmailFn func(ctx context.Context, email string) (*models.AdminUser, error)
	deleteFn     func(ctx context.Context, id string) error
	countFn      func(ctx context.Context) (int64, error)

	deleted []string
}

func (m *mockAdminRepo) Create(ctx context.Context, admin *models.AdminUser) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, admin)
	}
	return "new-admin-id", nil
}

func (m *mockAdminRepo) GetAll(ctx context.Context) ([]models.AdminUser, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockAdminRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockAdminRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockContactRepo struct {
	createFn     func(ctx context.Context, contact *models.Contact) (string, error)
	getAllFn     func(ctx context.Context, limit int64) ([]models.Contact, error)
	getByIDFn    func(ctx context.Context, id string) (*models.Contact, error)
	markAsReadFn func(ctx context.Context, id string) error
	deleteFn     func(ctx context.Context, id string) error
	countFn      func(ctx context.Context) (int64, error)

	markedRead []string
	deleted    []string
}

func (m *mockContactRepo) Create(ctx context.Context, contact *models.Contact) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, contact)
	}
	return "new-contact-id", nil
}

func (m *mockContactRepo) GetAll(ctx context.Context, limit int64) ([]models.Contact, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockContactRepo) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockContactRepo) MarkAsRead(ctx context.Context, id string) error {
	m.markedRead = append(m.markedRead, id)
	if m.markAsReadFn != nil {
		return m.markAsReadFn(ctx, id)
	}
	return nil
}

func (m *mockContactRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockContactRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockInquiryRepo struct {
	createFn       func(ctx context.Context, inquiry *models.ProjectInquiry) (string, error)
	getAllFn       func(ctx context.Context, limit int64) ([]models.ProjectInquiry, error)
	getByIDFn      func(ctx context.Context, id string) (*models.ProjectInquiry, error)
	updateStatusFn func(ctx context.Context, id, status string) error
	deleteFn       func(ctx context.Context, id string) error
	countFn        func(ctx context.Context) (int64, error)

	statusUpdates map[string]string
	deleted       []string
}

func (m *mockInquiryRepo) Create(ctx context.Context, inquiry *models.ProjectInquiry) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, inquiry)
	}
	return "new-inquiry-id", nil
}

func (m *mockInquiryRepo) GetAll(ctx context.Context, limit int64) ([]models.ProjectInquiry, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockInquiryRepo) GetByID(ctx context.Context, id string) (*models.ProjectInquiry, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockInquiryRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if m.statusUpdates == nil {
		m.statusUpdates = map[string]string{}
	}
	m.statusUpdates[id] = status
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockInquiryRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockInquiryRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockPortfolioRepo struct {
	createFn  func(ctx context.Context, item *models.PortfolioItem) (string, error)
	getAllFn  func(ctx context.Context) ([]models.PortfolioItem, error)
	getByIDFn func(ctx context.Context, id string) (*models.PortfolioItem, error)
	updateFn  func(ctx context.Context, id string, fields map[string]interface{}) error
	deleteFn  func(ctx context.Context, id string) error
	countFn   func(ctx context.Context) (int64, error)

	created    []*models.PortfolioItem
	lastUpdate map[string]interface{}
	deleted    []string
}

func (m *mockPortfolioRepo) Create(ctx context.Context, item *models.PortfolioItem) (string, error) {
	m.created = append(m.created, item)
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return "new-portfolio-id", nil
}

func (m *mockPortfolioRepo) GetAll(ctx context.Context) ([]models.PortfolioItem, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockPortfolioRepo) GetByID(ctx context.Context, id string) (*models.PortfolioItem, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPortfolioRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	m.lastUpdate = fields
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil
}

func (m *mockPortfolioRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPortfolioRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockSubscriberRepo struct {
	createFn     func(ctx context.Context, email string) (string, error)
	getAllFn     func(ctx context.Context, limit int64) ([]models.Subscriber, error)
	getByIDFn    func(ctx context.Context, id string) (*models.Subscriber, error)
	getByEmailFn func(ctx context.Context, email string) (*models.Subscriber, error)
	deleteFn     func(ctx context.Context, id string) error
	countFn      func(ctx context.Context) (int64, error)

	createdEmails []string
	deleted       []string
}

func (m *mockSubscriberRepo) Create(ctx context.Context, email string) (string, error) {
	m.createdEmails = append(m.createdEmails, email)
	if m.createFn != nil {
		return m.createFn(ctx, email)
	}
	return "new-subscriber-id", nil
}

func (m *mockSubscriberRepo) GetAll(ctx context.Context, limit int64) ([]models.Subscriber, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockSubscriberRepo) GetByID(ctx context.Context, id string) (*models.Subscriber, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSubscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockSubscriberRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSubscriberRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type uploadedFile struct {
	filename string
	folder   string
}

type deletedAsset struct {
	publicID string
	kind     string
}

type mockMediaStore struct {
	uploadFn  func(ctx context.Context, file io.Reader, filename, folder string) (*storage.Asset, error)
	deleteErr error

	uploads []uploadedFile
	deletes []deletedAsset
}

func (m *mockMediaStore) Upload(ctx context.Context, file io.Reader, filename, folder string) (*storage.Asset, error) {
	if m.uploadFn != nil {
		asset, err := m.uploadFn(ctx, file, filename, folder)
		if err != nil {
			return nil, err
		}
		m.uploads = append(m.uploads, uploadedFile{filename: filename, folder: folder})
		return asset, nil
	}
	m.uploads = append(m.uploads, uploadedFile{filename: filename, folder: folder})
	return &storage.Asset{
		SecureURL: "https://cdn.example.com/" + folder + "/" + filename,
		PublicID:  folder + "/" + filename,
	}, nil
}

func (m *mockMediaStore) Delete(ctx context.Context, publicID, kind string) error {
	m.deletes = append(m.deletes, deletedAsset{publicID: publicID, kind: kind})
	return m.deleteErr
}

type sentMail struct {
	subject   string
	body      string
	recipient string
}

type mockMailer struct {
	err  error
	sent []sentMail
}

func (m *mockMailer) Send(ctx context.Context, subject, body, recipient string) error {
	m.sent = append(m.sent, sentMail{subject: subject, body: body, recipient: recipient})
	return m.err
}
