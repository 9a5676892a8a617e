package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/addisestates/backend/internal/application"
	"github.com/addisestates/backend/internal/domain/entity"
	repo "github.com/addisestates/backend/internal/domain/repository"
	"github.com/addisestates/backend/internal/interface/middleware"
	"github.com/addisestates/backend/pkg/response"
	"github.com/addisestates/backend/pkg/validation"
)

const (
	maxUploadFiles    = 10
	maxUploadBytes    = 5 << 20 // per file
	defaultPublicPage = 12
)

type PropertyHandler struct {
	Svc    *application.PropertyService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *application.PropertyService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger}
}

type propertyRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=5000"`
	Category    string   `json:"category" binding:"required,oneof=residential_land apartment_sale house_rent"`
	Type        string   `json:"type" binding:"required,oneof=land apartment house villa condominium"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Currency    string   `json:"currency" binding:"omitempty,oneof=ETB USD"`
	AreaSize    float64  `json:"areaSize" binding:"required,gt=0"`
	AreaUnit    string   `json:"areaUnit" binding:"omitempty,oneof=sqm hectare"`
	City        string   `json:"city" binding:"required"`
	Subcity     string   `json:"subcity" binding:"required"`
	Woreda      string   `json:"woreda"`
	Kebele      string   `json:"kebele"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Bedrooms    int      `json:"bedrooms" binding:"gte=0"`
	Bathrooms   int      `json:"bathrooms" binding:"gte=0"`
	Parking     bool     `json:"parking"`
	Furnished   bool     `json:"furnished"`
	Garden      bool     `json:"garden"`
	Security    bool     `json:"security"`
	IsActive    *bool    `json:"isActive"`
	Status      string   `json:"status" binding:"omitempty,oneof=approved sold rented"`
}

func (r propertyRequest) toInput() application.PropertyInput {
	return application.PropertyInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Type:        r.Type,
		Price:       r.Price,
		Currency:    r.Currency,
		AreaSize:    r.AreaSize,
		AreaUnit:    r.AreaUnit,
		Location: entity.Location{
			City:      r.City,
			Subcity:   r.Subcity,
			Woreda:    r.Woreda,
			Kebele:    r.Kebele,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
		Features: entity.Features{
			Bedrooms:  r.Bedrooms,
			Bathrooms: r.Bathrooms,
			Parking:   r.Parking,
			Furnished: r.Furnished,
			Garden:    r.Garden,
			Security:  r.Security,
		},
		IsActive: r.IsActive,
		Status:   r.Status,
	}
}

// parsePropertyFilter maps list query params onto the repository filter.
// Unknown params are ignored; malformed numbers fall back to unfiltered.
func parsePropertyFilter(c *gin.Context, defLimit int) repo.PropertyFilter {
	f := repo.PropertyFilter{
		Category: c.Query("category"),
		Type:     c.Query("type"),
		City:     c.Query("city"),
		Subcity:  c.Query("subcity"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sortBy"),
	}
	f.MinPrice = queryFloat(c, "minPrice")
	f.MaxPrice = queryFloat(c, "maxPrice")
	f.MinArea = queryFloat(c, "minArea")
	f.MaxArea = queryFloat(c, "maxArea")
	f.Bedrooms = queryInt(c, "bedrooms")
	f.Bathrooms = queryInt(c, "bathrooms")
	f.Parking = queryBool(c, "parking")
	f.Furnished = queryBool(c, "furnished")
	f.Garden = queryBool(c, "garden")
	f.Security = queryBool(c, "security")

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	f.Page = repo.NewPage(page, limit, defLimit)
	return f
}

func queryFloat(c *gin.Context, name string) *float64 {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *gin.Context, name string) *int {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// Feature flags filter only on the literal "true"; anything else, including
// "1" and "TRUE", leaves the flag unset.
func queryBool(c *gin.Context, name string) bool {
	return c.Query(name) == "true"
}

// List GET /api/properties
func (h *PropertyHandler) List(c *gin.Context) {
	f := parsePropertyFilter(c, defaultPublicPage)
	f.PublicOnly = true
	f.Status = "" // the public surface never filters by raw status

	items, total, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		h.Logger.WithError(err).Error("property list failed")
		response.Error[any](c, http.StatusInternalServerError, "listing query failed", nil)
		return
	}

	meta := response.ListMeta{
		Count:      len(items),
		Pagination: response.NewPagination(f.Page.Number, f.Page.Limit, total),
	}
	response.Success(c, http.StatusOK, items, "properties", meta)
}

// Get GET /api/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrPropertyNotFound) {
			response.Error[any](c, http.StatusNotFound, "property not found", nil)
			return
		}
		h.Logger.WithError(err).Error("property fetch failed")
		response.Error[any](c, http.StatusInternalServerError, "property fetch failed", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "property", nil)
}

// Search GET /api/properties/search?q=
func (h *PropertyHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.Query("limit"))

	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("property search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}

// Create POST /api/properties (auth + listing role + approval required)
func (h *PropertyHandler) Create(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), u, req.toInput())
	if err != nil {
		h.Logger.WithError(err).Error("property create failed")
		response.Error[any](c, http.StatusInternalServerError, "property create failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "property submitted for approval", nil)
}

// Update PUT /api/properties/:id (owner only)
func (h *PropertyHandler) Update(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), u, c.Param("id"), req.toInput())
	if err != nil {
		h.writeOwnedErr(c, err, "property update failed")
		return
	}
	response.Success(c, http.StatusOK, p, "property updated", nil)
}

// Delete DELETE /api/properties/:id (owner only)
func (h *PropertyHandler) Delete(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if err := h.Svc.Delete(c.Request.Context(), u, c.Param("id")); err != nil {
		h.writeOwnedErr(c, err, "property delete failed")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "property deleted", nil)
}

// Mine GET /api/properties/my/listings (auth required)
func (h *PropertyHandler) Mine(c *gin.Context) {
	u := middleware.CurrentUser(c)
	items, err := h.Svc.ListMine(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.WithError(err).Error("own listings fetch failed")
		response.Error[any](c, http.StatusInternalServerError, "listings fetch failed", nil)
		return
	}
	response.Success(c, http.StatusOK, items, "my properties", gin.H{"count": len(items)})
}

// UploadImages POST /api/properties/:id/images (owner only, multipart)
func (h *PropertyHandler) UploadImages(c *gin.Context) {
	u := middleware.CurrentUser(c)

	form, err := c.MultipartForm()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "multipart form required", nil)
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		response.Error[any](c, http.StatusBadRequest, "no images provided", nil)
		return
	}
	if len(files) > maxUploadFiles {
		response.Error[any](c, http.StatusBadRequest, "too many images, max 10", nil)
		return
	}

	uploads := make([]application.ImageUpload, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxUploadBytes {
			response.Error[any](c, http.StatusBadRequest, "image exceeds 5MB limit: "+fh.Filename, nil)
			return
		}
		ct := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "image/") {
			response.Error[any](c, http.StatusBadRequest, "unsupported file type: "+fh.Filename, nil)
			return
		}
		f, err := fh.Open()
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "unreadable file: "+fh.Filename, nil)
			return
		}
		defer func() { _ = f.Close() }()
		uploads = append(uploads, application.ImageUpload{
			Filename:    fh.Filename,
			ContentType: ct,
			Reader:      f,
		})
	}

	p, err := h.Svc.UploadImages(c.Request.Context(), u, c.Param("id"), uploads)
	if err != nil {
		h.writeOwnedErr(c, err, "image upload failed")
		return
	}
	response.Success(c, http.StatusOK, p, "images uploaded", nil)
}

func (h *PropertyHandler) writeOwnedErr(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, application.ErrPropertyNotFound):
		response.Error[any](c, http.StatusNotFound, "property not found", nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Error[any](c, http.StatusForbidden, "not the property owner", nil)
	case errors.Is(err, application.ErrStatusLocked):
		response.Error[any](c, http.StatusBadRequest, "status can only change after approval", nil)
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error[any](c, http.StatusInternalServerError, logMsg, nil)
	}
}
