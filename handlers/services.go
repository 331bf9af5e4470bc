package handlers

import (
	"net/http"

	serviceRepo "citixo/database/repository/service"
	"citixo/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceHandler exposes the service catalog: public listing plus admin CRUD.
type ServiceHandler struct {
	repo   serviceRepo.ServiceRepository
	logger *zap.Logger
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(repo serviceRepo.ServiceRepository, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{repo: repo, logger: logger}
}

// ListServices handles GET /api/services. Non-admin clients see Active
// services only.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	services, err := h.repo.List(activeOnly)
	if err != nil {
		h.logger.Error("failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService handles GET /api/services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		h.logger.Error("failed to fetch service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service"})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// CreateService handles POST /api/services (admin).
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if svc.Name == "" || svc.BasePrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and a positive base price are required"})
		return
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if svc.Status == "" {
		svc.Status = models.ServiceStatusActive
	}
	svc.BookingCount = 0

	if err := h.repo.Create(&svc); err != nil {
		h.logger.Error("failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// UpdateService handles PUT /api/services/:id (admin).
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	existing, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		h.logger.Error("failed to fetch service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	svc.ID = existing.ID
	svc.BookingCount = existing.BookingCount
	svc.CreatedAt = existing.CreatedAt

	if err := h.repo.Update(&svc); err != nil {
		h.logger.Error("failed to update service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DeleteService handles DELETE /api/services/:id (admin).
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
