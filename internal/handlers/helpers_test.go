package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/corexify/backend/internal/models"
	"github.com/corexify/backend/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func putJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// multipartBody builds a multipart form from text fields plus named file
// parts, returning the body and its content type.
func multipartBody(t *testing.T, fields map[string]string, files map[string][]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, names := range files {
		for _, name := range names {
			part, err := mw.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("file content"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func postMultipart(router *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Repository and gateway stubs, function fields with zero-value defaults.

type contactRepoStub struct {
	createFn  func(ctx context.Context, contact *models.Contact) (string, error)
	getByIDFn func(ctx context.Context, id string) (*models.Contact, error)
}

func (s *contactRepoStub) Create(ctx context.Context, contact *models.Contact) (string, error) {
	if s.createFn != nil {
		return s.createFn(ctx, contact)
	}
	return "contact-id", nil
}

func (s *contactRepoStub) GetAll(ctx context.Context, limit int64) ([]models.Contact, error) {
	return nil, nil
}

func (s *contactRepoStub) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *contactRepoStub) MarkAsRead(ctx context.Context, id string) error { return nil }

func (s *contactRepoStub) Delete(ctx context.Context, id string) error { return nil }

func (s *contactRepoStub) Count(ctx context.Context) (int64, error) { return 0, nil }

type inquiryRepoStub struct {
	createFn  func(ctx context.Context, inquiry *models.ProjectInquiry) (string, error)
	getByIDFn func(ctx context.Context, id string) (*models.ProjectInquiry, error)
}

func (s *inquiryRepoStub) Create(ctx context.Context, inquiry *models.ProjectInquiry) (string, error) {
	if s.createFn != nil {
		return s.createFn(ctx, inquiry)
	}
	return "inquiry-id", nil
}

func (s *inquiryRepoStub) GetAll(ctx context.Context, limit int64) ([]models.ProjectInquiry, error) {
	return nil, nil
}

func (s *inquiryRepoStub) GetByID(ctx context.Context, id string) (*models.ProjectInquiry, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *inquiryRepoStub) UpdateStatus(ctx context.Context, id, status string) error { return nil }

func (s *inquiryRepoStub) Delete(ctx context.Context, id string) error { return nil }

func (s *inquiryRepoStub) Count(ctx context.Context) (int64, error) { return 0, nil }

type portfolioRepoStub struct {
	createFn  func(ctx context.Context, item *models.PortfolioItem) (string, error)
	getByIDFn func(ctx context.Context, id string) (*models.PortfolioItem, error)
}

func (s *portfolioRepoStub) Create(ctx context.Context, item *models.PortfolioItem) (string, error) {
	if s.createFn != nil {
		return s.createFn(ctx, item)
	}
	return "portfolio-id", nil
}

func (s *portfolioRepoStub) GetAll(ctx context.Context) ([]models.PortfolioItem, error) {
	return nil, nil
}

func (s *portfolioRepoStub) GetByID(ctx context.Context, id string) (*models.PortfolioItem, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *portfolioRepoStub) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (s *portfolioRepoStub) Delete(ctx context.Context, id string) error { return nil }

func (s *portfolioRepoStub) Count(ctx context.Context) (int64, error) { return 0, nil }

type subscriberRepoStub struct {
	createFn  func(ctx context.Context, email string) (string, error)
	getByIDFn func(ctx context.Context, id string) (*models.Subscriber, error)
}

func (s *subscriberRepoStub) Create(ctx context.Context, email string) (string, error) {
	if s.createFn != nil {
		return s.createFn(ctx, email)
	}
	return "subscriber-id", nil
}

func (s *subscriberRepoStub) GetAll(ctx context.Context, limit int64) ([]models.Subscriber, error) {
	return nil, nil
}

func (s *subscriberRepoStub) GetByID(ctx context.Context, id string) (*models.Subscriber, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *subscriberRepoStub) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	return nil, nil
}

func (s *subscriberRepoStub) Delete(ctx context.Context, id string) error { return nil }

func (s *subscriberRepoStub) Count(ctx context.Context) (int64, error) { return 0, nil }

type adminRepoStub struct {
	getByIDFn    func(ctx context.Context, id string) (*models.AdminUser, error)
	getByEmailFn func(ctx context.Context, email string) (*models.AdminUser, error)
}

func (s *adminRepoStub) Create(ctx context.Context, admin *models.AdminUser) (string, error) {
	return "admin-id", nil
}

func (s *adminRepoStub) GetAll(ctx context.Context) ([]models.AdminUser, error) { return nil, nil }

func (s *adminRepoStub) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *adminRepoStub) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *adminRepoStub) Delete(ctx context.Context, id string) error { return nil }

func (s *adminRepoStub) Count(ctx context.Context) (int64, error) { return 0, nil }

type mediaStub struct {
	uploadFn func(ctx context.Context, file io.Reader, filename, folder string) (*storage.Asset, error)

	uploaded []string
}

func (s *mediaStub) Upload(ctx context.Context, file io.Reader, filename, folder string) (*storage.Asset, error) {
	if s.uploadFn != nil {
		return s.uploadFn(ctx, file, filename, folder)
	}
	s.uploaded = append(s.uploaded, filename)
	return &storage.Asset{
		SecureURL: "https://cdn.example.com/" + folder + "/" + filename,
		PublicID:  folder + "/" + filename,
	}, nil
}

func (s *mediaStub) Delete(ctx context.Context, publicID, kind string) error { return nil }

type mailerStub struct {
	sent []string
}

func (s *mailerStub) Send(ctx context.Context, subject, body, recipient string) error {
	s.sent = append(s.sent, subject)
	return nil
}
