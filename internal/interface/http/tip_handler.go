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

type TipHandler struct {
	Svc    *application.TipService
	Logger *logrus.Logger
}

func NewTipHandler(svc *application.TipService, logger *logrus.Logger) *TipHandler {
	return &TipHandler{Svc: svc, Logger: logger}
}

type tipRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Link        string `json:"link" binding:"required,url"`
}

type updateTipRequest struct {
	ID          string `json:"id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Link        string `json:"link" binding:"required,url"`
}

func (h *TipHandler) List(c *gin.Context) {
	tips, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list tips failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to fetch tips", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, tips, "tips", nil)
	c.JSON(resp.Status, resp)
}

func (h *TipHandler) Latest(c *gin.Context) {
	tips, err := h.Svc.Latest(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list latest tips failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to fetch latest tips", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, tips, "latest tips", nil)
	c.JSON(resp.Status, resp)
}

func (h *TipHandler) Create(c *gin.Context) {
	var req tipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	tip, err := h.Svc.Create(c.Request.Context(), application.TipInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create tip failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to create tip", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusCreated, tip, "tip created", nil)
	c.JSON(resp.Status, resp)
}

func (h *TipHandler) Update(c *gin.Context) {
	var req updateTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	tip, err := h.Svc.Update(c.Request.Context(), req.ID, application.TipInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "tip not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("update tip failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to update tip", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, tip, "tip updated", nil)
	c.JSON(resp.Status, resp)
}

func (h *TipHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "tip not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("delete tip failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to delete tip", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "tip deleted", nil)
	c.JSON(resp.Status, resp)
}
