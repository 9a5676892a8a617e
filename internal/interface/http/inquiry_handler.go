package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/addisestates/backend/internal/application"
	repo "github.com/addisestates/backend/internal/domain/repository"
	"github.com/addisestates/backend/internal/interface/middleware"
	"github.com/addisestates/backend/pkg/response"
	"github.com/addisestates/backend/pkg/validation"
)

type InquiryHandler struct {
	Svc    *application.InquiryService
	Logger *logrus.Logger
}

func NewInquiryHandler(svc *application.InquiryService, logger *logrus.Logger) *InquiryHandler {
	return &InquiryHandler{Svc: svc, Logger: logger}
}

type createInquiryRequest struct {
	PropertyID string `json:"propertyId" binding:"required,uuid"`
	Subject    string `json:"subject" binding:"required,max=200"`
	Message    string `json:"message" binding:"required,max=2000"`
	Phone      string `json:"phone" binding:"omitempty,etphone"`
	Priority   string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// Create POST /api/inquiries (auth required)
func (h *InquiryHandler) Create(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req createInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	iq, err := h.Svc.Create(c.Request.Context(), u, application.CreateInquiryInput{
		PropertyID: req.PropertyID,
		Subject:    req.Subject,
		Message:    req.Message,
		Phone:      req.Phone,
		Priority:   req.Priority,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPropertyNotFound):
			response.Error[any](c, http.StatusNotFound, "property not found", nil)
		case errors.Is(err, application.ErrOwnProperty):
			response.Error[any](c, http.StatusBadRequest, "cannot inquire about your own property", nil)
		default:
			h.Logger.WithError(err).Error("inquiry create failed")
			response.Error[any](c, http.StatusInternalServerError, "inquiry create failed", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, iq, "inquiry sent", nil)
}

// Received GET /api/inquiries/received (auth required)
func (h *InquiryHandler) Received(c *gin.Context) {
	u := middleware.CurrentUser(c)
	page := pageFromQuery(c)

	items, total, err := h.Svc.ListReceived(c.Request.Context(), u.ID, c.Query("status"), page)
	if err != nil {
		h.Logger.WithError(err).Error("received inquiries fetch failed")
		response.Error[any](c, http.StatusInternalServerError, "inquiries fetch failed", nil)
		return
	}
	meta := response.ListMeta{
		Count:      len(items),
		Pagination: response.NewPagination(page.Number, page.Limit, total),
	}
	response.Success(c, http.StatusOK, items, "received inquiries", meta)
}

// Sent GET /api/inquiries/sent (auth required)
func (h *InquiryHandler) Sent(c *gin.Context) {
	u := middleware.CurrentUser(c)
	page := pageFromQuery(c)

	items, total, err := h.Svc.ListSent(c.Request.Context(), u.ID, c.Query("status"), page)
	if err != nil {
		h.Logger.WithError(err).Error("sent inquiries fetch failed")
		response.Error[any](c, http.StatusInternalServerError, "inquiries fetch failed", nil)
		return
	}
	meta := response.ListMeta{
		Count:      len(items),
		Pagination: response.NewPagination(page.Number, page.Limit, total),
	}
	response.Success(c, http.StatusOK, items, "sent inquiries", meta)
}

type respondRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// Respond PUT /api/inquiries/:id/respond (property owner only)
func (h *InquiryHandler) Respond(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	iq, err := h.Svc.Respond(c.Request.Context(), u, c.Param("id"), req.Message)
	if err != nil {
		h.writeInquiryErr(c, err, "inquiry respond failed")
		return
	}
	response.Success(c, http.StatusOK, iq, "response sent", nil)
}

// MarkRead PATCH /api/inquiries/:id/read (property owner only)
func (h *InquiryHandler) MarkRead(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if err := h.Svc.MarkRead(c.Request.Context(), u, c.Param("id")); err != nil {
		h.writeInquiryErr(c, err, "inquiry mark-read failed")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "inquiry marked read", nil)
}

func (h *InquiryHandler) writeInquiryErr(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, application.ErrInquiryNotFound):
		response.Error[any](c, http.StatusNotFound, "inquiry not found", nil)
	case errors.Is(err, application.ErrNotInquiryOwner):
		response.Error[any](c, http.StatusForbidden, "not the property owner", nil)
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error[any](c, http.StatusInternalServerError, logMsg, nil)
	}
}

func pageFromQuery(c *gin.Context) repo.Page {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return repo.NewPage(page, limit, 10)
}
