package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/placementprep/placement-api/internal/application"
	"github.com/placementprep/placement-api/internal/domain/repository"
	"github.com/placementprep/placement-api/pkg/response"
	"github.com/placementprep/placement-api/pkg/validation"
)

type InterviewHandler struct {
	Svc    *application.InterviewService
	Logger *logrus.Logger
}

func NewInterviewHandler(svc *application.InterviewService, logger *logrus.Logger) *InterviewHandler {
	return &InterviewHandler{Svc: svc, Logger: logger}
}

type submissionRequest struct {
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	University     string `json:"university" binding:"required"`
	Course         string `json:"course" binding:"required"`
	OtherCourse    string `json:"otherCourse"`
	GraduationYear string `json:"graduationYear" binding:"required"`
	LinkedinURL    string `json:"linkedinUrl" binding:"omitempty,url"`

	CompanyName string `json:"companyName" binding:"required"`
	JobTitle    string `json:"jobTitle" binding:"required"`
	JobLocation string `json:"jobLocation" binding:"required"`
	Salary      string `json:"salary" binding:"required"`

	TotalRounds           int    `json:"totalRounds" binding:"required,gte=1,lte=20"`
	TechnicalRoundDetails string `json:"technicalRoundDetails" binding:"required"`
	HRRoundDetails        string `json:"hrRoundDetails" binding:"required"`

	PreparationStrategy string `json:"preparationStrategy" binding:"required"`
	ChallengingQuestion string `json:"challengingQuestion" binding:"required"`
	Advice              string `json:"advice" binding:"required"`
}

// Submit is the only public write in the system.
func (h *InterviewHandler) Submit(c *gin.Context) {
	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}
	exp, err := h.Svc.Submit(c.Request.Context(), application.SubmissionInput{
		FullName:              req.FullName,
		Email:                 req.Email,
		University:            req.University,
		Course:                req.Course,
		OtherCourse:           req.OtherCourse,
		GraduationYear:        req.GraduationYear,
		LinkedinURL:           req.LinkedinURL,
		CompanyName:           req.CompanyName,
		JobTitle:              req.JobTitle,
		JobLocation:           req.JobLocation,
		Salary:                req.Salary,
		TotalRounds:           req.TotalRounds,
		TechnicalRoundDetails: req.TechnicalRoundDetails,
		HRRoundDetails:        req.HRRoundDetails,
		PreparationStrategy:   req.PreparationStrategy,
		ChallengingQuestion:   req.ChallengingQuestion,
		Advice:                req.Advice,
	})
	if err != nil {
		h.Logger.WithError(err).Error("submit interview experience failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to submit interview data", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusCreated, exp, "interview data submitted successfully", nil)
	c.JSON(resp.Status, resp)
}

func (h *InterviewHandler) List(c *gin.Context) {
	experiences, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list interview experiences failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to fetch interview data", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, experiences, "interview data", nil)
	c.JSON(resp.Status, resp)
}

func (h *InterviewHandler) GetByID(c *gin.Context) {
	exp, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "interview data not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("get interview experience failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to fetch interview data", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, exp, "interview data", nil)
	c.JSON(resp.Status, resp)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp := response.Error[any](c, http.StatusNotFound, "interview data not found", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("delete interview experience failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "failed to delete interview data", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "interview data deleted", nil)
	c.JSON(resp.Status, resp)
}

// Search queries the Elasticsearch mirror of the submissions.
func (h *InterviewHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		resp := response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		c.JSON(resp.Status, resp)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("search interview experiences failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
	c.JSON(resp.Status, resp)
}
