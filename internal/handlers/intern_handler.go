package handlers

import (
	"errors"
	"net/http"

	"github.com/ArowuTest/intern-dashboard/internal/metrics"
	"github.com/ArowuTest/intern-dashboard/internal/models"
	"github.com/ArowuTest/intern-dashboard/internal/repositories"
	"github.com/ArowuTest/intern-dashboard/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InternHandler handles intern-related HTTP requests
type InternHandler struct {
	internService services.InternService
	metrics       *metrics.Metrics
	log           logrus.FieldLogger
}

// NewInternHandler creates a new InternHandler
func NewInternHandler(internService services.InternService, m *metrics.Metrics, log logrus.FieldLogger) *InternHandler {
	return &InternHandler{
		internService: internService,
		metrics:       m,
		log:           log,
	}
}

// ListInterns handles GET /api/interns
func (h *InternHandler) ListInterns(c *gin.Context) {
	interns, err := h.internService.ListInterns(c.Request.Context())
	if err != nil {
		h.storeError(c, "Error fetching interns", err)
		return
	}

	c.JSON(http.StatusOK, interns)
}

// GetIntern handles GET /api/intern/:id. A malformed id cannot resolve to a
// document, so it is reported as not found.
func (h *InternHandler) GetIntern(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Intern not found"})
		return
	}

	intern, err := h.internService.GetIntern(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Intern not found"})
			return
		}
		h.storeError(c, "Error fetching intern", err)
		return
	}

	c.JSON(http.StatusOK, intern)
}

// CreateIntern handles POST /api/interns
func (h *InternHandler) CreateIntern(c *gin.Context) {
	var req models.CreateInternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	intern, err := h.internService.CreateIntern(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInternExists) {
			h.metrics.RecordSignup(metrics.SignupConflict)
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Intern already exists"})
			return
		}
		h.metrics.RecordSignup(metrics.SignupError)
		h.storeError(c, "Error creating intern", err)
		return
	}

	h.metrics.RecordSignup(metrics.SignupCreated)
	h.log.WithFields(logrus.Fields{"id": intern.ID.Hex(), "email": intern.Email}).Info("intern created")
	c.JSON(http.StatusCreated, models.CreateInternResponse{
		Message: "Intern created successfully",
		Intern:  intern.Summary(),
	})
}

// GetDemoData handles GET /api/demo-data
func (h *InternHandler) GetDemoData(c *gin.Context) {
	c.JSON(http.StatusOK, h.internService.DemoData())
}

// Health handles GET /health
func (h *InternHandler) Health(c *gin.Context) {
	if err := h.internService.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// storeError writes the generic 500 body carrying the underlying error text
func (h *InternHandler) storeError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	h.log.WithError(err).Error(message)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: message, Error: err.Error()})
}
