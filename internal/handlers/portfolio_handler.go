package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corexify/backend/internal/responses"
	"github.com/corexify/backend/internal/services"
)

type PortfolioHandler struct {
	portfolioService *services.PortfolioService
}

func NewPortfolioHandler(portfolioService *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// List serves both the public GET /api/portfolio and GET /admin/portfolio.
func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.portfolioService.List(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, items, "")
}

// Get handles the public GET /api/portfolio/:id.
func (h *PortfolioHandler) Get(c *gin.Context) {
	item, err := h.portfolioService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Portfolio item not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, item, "")
}

// Create handles POST /admin/portfolio (multipart: text fields plus
// exactly one thumbnailFile and one videoFile).
func (h *PortfolioHandler) Create(c *gin.Context) {
	in := services.CreatePortfolioInput{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Technologies: c.PostForm("technologies"),
		Category:     c.PostForm("category"),
		Status:       c.PostForm("status"),
	}
	if in.Title == "" || in.Description == "" || in.Technologies == "" || in.Category == "" || in.Status == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "All text fields are required")
		return
	}

	thumbFH, thumbErr := c.FormFile("thumbnailFile")
	videoFH, videoErr := c.FormFile("videoFile")
	if thumbErr != nil || videoErr != nil {
		responses.Fail(c, http.StatusBadRequest, nil, "A thumbnail and video file are required")
		return
	}

	thumb, thumbFile, err := openUpload(thumbFH)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	defer thumbFile.Close()

	video, videoFile, err := openUpload(videoFH)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	defer videoFile.Close()

	in.Thumbnail = *thumb
	in.Video = *video

	id, err := h.portfolioService.Create(c.Request.Context(), in)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"id": id}, "Portfolio item created")
}

// Update handles PUT /admin/portfolio/:id. Any subset of the text fields
// may be present; thumbnailFile/videoFile replace the stored assets.
func (h *PortfolioHandler) Update(c *gin.Context) {
	in := services.UpdatePortfolioInput{Fields: map[string]string{}}
	for _, key := range []string{"title", "description", "technologies", "category", "status"} {
		if value, ok := c.GetPostForm(key); ok {
			in.Fields[key] = value
		}
	}

	if fh, err := c.FormFile("thumbnailFile"); err == nil {
		thumb, thumbFile, err := openUpload(fh)
		if err != nil {
			responses.Fail(c, http.StatusInternalServerError, err, "")
			return
		}
		defer thumbFile.Close()
		in.Thumbnail = thumb
	}
	if fh, err := c.FormFile("videoFile"); err == nil {
		video, videoFile, err := openUpload(fh)
		if err != nil {
			responses.Fail(c, http.StatusInternalServerError, err, "")
			return
		}
		defer videoFile.Close()
		in.Video = video
	}

	err := h.portfolioService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Portfolio item not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Portfolio item updated")
}

// Delete handles DELETE /admin/portfolio/:id.
func (h *PortfolioHandler) Delete(c *gin.Context) {
	err := h.portfolioService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			responses.Fail(c, http.StatusNotFound, nil, "Portfolio item not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Portfolio item deleted")
}

func openUpload(fh *multipart.FileHeader) (*services.FileUpload, multipart.File, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &services.FileUpload{Reader: f, Filename: fh.Filename}, f, nil
}
