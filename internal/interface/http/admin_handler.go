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

type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

// Dashboard GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.Svc.Dashboard(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("dashboard build failed")
		response.Error[any](c, http.StatusInternalServerError, "dashboard unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, d, "dashboard", nil)
}

// ListUsers GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	f := repo.UserFilter{
		Role: c.Query("role"),
		Page: repo.NewPage(page, limit, 10),
	}
	if s := c.Query("isApproved"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			f.IsApproved = &v
		}
	}

	items, total, err := h.Svc.ListUsers(c.Request.Context(), f)
	if err != nil {
		h.Logger.WithError(err).Error("user list failed")
		response.Error[any](c, http.StatusInternalServerError, "user list failed", nil)
		return
	}
	meta := response.ListMeta{
		Count:      len(items),
		Pagination: response.NewPagination(f.Page.Number, f.Page.Limit, total),
	}
	response.Success(c, http.StatusOK, items, "users", meta)
}

// ApproveUser PUT /api/admin/users/:id/approve
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	u, err := h.Svc.ApproveUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeUserErr(c, err, "user approval failed")
		return
	}
	response.Success(c, http.StatusOK, u, "user approved", nil)
}

// RejectUser PUT /api/admin/users/:id/reject
func (h *AdminHandler) RejectUser(c *gin.Context) {
	u, err := h.Svc.RejectUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeUserErr(c, err, "user rejection failed")
		return
	}
	response.Success(c, http.StatusOK, u, "user approval revoked", nil)
}

// DeleteUser DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrAdminProtected):
			response.Error[any](c, http.StatusForbidden, "admin accounts cannot be deleted", nil)
		default:
			h.Logger.WithError(err).Error("user delete failed")
			response.Error[any](c, http.StatusInternalServerError, "user delete failed", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, nil, "user deleted", nil)
}

// ListProperties GET /api/admin/properties
func (h *AdminHandler) ListProperties(c *gin.Context) {
	f := parsePropertyFilter(c, 10)
	f.Status = c.Query("status")

	items, total, err := h.Svc.ListProperties(c.Request.Context(), f)
	if err != nil {
		h.Logger.WithError(err).Error("admin property list failed")
		response.Error[any](c, http.StatusInternalServerError, "property list failed", nil)
		return
	}
	meta := response.ListMeta{
		Count:      len(items),
		Pagination: response.NewPagination(f.Page.Number, f.Page.Limit, total),
	}
	response.Success(c, http.StatusOK, items, "properties", meta)
}

// ApproveProperty PUT /api/admin/properties/:id/approve
func (h *AdminHandler) ApproveProperty(c *gin.Context) {
	admin := middleware.CurrentUser(c)
	p, err := h.Svc.ApproveProperty(c.Request.Context(), admin.ID, c.Param("id"))
	if err != nil {
		h.writePropertyErr(c, err, "property approval failed")
		return
	}
	response.Success(c, http.StatusOK, p, "property approved", nil)
}

type rejectPropertyRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// RejectProperty PUT /api/admin/properties/:id/reject
func (h *AdminHandler) RejectProperty(c *gin.Context) {
	var req rejectPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.RejectProperty(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		h.writePropertyErr(c, err, "property rejection failed")
		return
	}
	response.Success(c, http.StatusOK, p, "property rejected", nil)
}

func (h *AdminHandler) writeUserErr(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, application.ErrUserNotFound) {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	h.Logger.WithError(err).Error(logMsg)
	response.Error[any](c, http.StatusInternalServerError, logMsg, nil)
}

func (h *AdminHandler) writePropertyErr(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, application.ErrPropertyNotFound) {
		response.Error[any](c, http.StatusNotFound, "property not found", nil)
		return
	}
	h.Logger.WithError(err).Error(logMsg)
	response.Error[any](c, http.StatusInternalServerError, logMsg, nil)
}
