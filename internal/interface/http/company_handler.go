package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/placementprep/placement-api/internal/application"
	"github.com/placementprep/placement-api/internal/domain/repository"
	"github.com/placementprep/placement-api/pkg/response"
	"github.com/placementprep/placement-api/pkg/validation"
)

type CompanyHandler struct {
	Svc    *application.CompanyService
	Logger *logrus.Logger
}

func NewCompanyHandler(svc *application.CompanyService, logger *logrus.Logger) *CompanyHandler {
	return &CompanyHandler{Svc: svc, Logger: logger}
}

type companyRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Roles        []string `json:"roles" binding:"required,min=1,dive,required"`
	Requirements string   `json:"requirements" binding:"required"`
	Featured     bool     `json:"featured"`
}

type updateCompanyRequest struct {
	ID           string   `json:"id" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Roles        []string `json:"roles" binding:"required,min=1,dive,required"`
	Requirements string   `json:"requirements" binding:"required"`
	Featured     bool     `json:"featured"`
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list companies failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to fetch companies", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, companies, "companies", nil)
	c.JSON(resp.Status, resp)
}

func (h *CompanyHandler) Featured(c *gin.Context) {
	companies, err := h.Svc.Featured(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list featured companies failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to fetch featured companies", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, companies, "featured companies", nil)
	c.JSON(resp.Status, resp)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	company, err := h.Svc.Create(c.Request.Context(), application.CompanyInput{
		Name:         req.Name,
		Description:  req.Description,
		Roles:        req.Roles,
		Requirements: req.Requirements,
		Featured:     req.Featured,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create company failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to create company", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusCreated, company, "company created", nil)
	c.JSON(resp.Status, resp)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	company, err := h.Svc.Update(c.Request.Context(), req.ID, application.CompanyInput{
		Name:         req.Name,
		Description:  req.Description,
		Roles:        req.Roles,
		Requirements: req.Requirements,
		Featured:     req.Featured,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "company not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("update company failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to update company", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, company, "company updated", nil)
	c.JSON(resp.Status, resp)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "company not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("delete company failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to delete company", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "company deleted", nil)
	c.JSON(resp.Status, resp)
}
