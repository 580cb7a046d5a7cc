package inspections

import (
	"net/http"
	"strconv"

	"stockroom/internal/inventory/entries"
	"stockroom/internal/inventory/instances"
	"stockroom/internal/inventory/items"
	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/gin-gonic/gin"
)

type InspectionHandler struct {
	Repository *InspectionRepository
	Service    *InspectionService
}

func NewHandler(r *repository.Repository, ir *InspectionRepository, entryRepo entries.EntryRepository, instanceRepo *instances.InstanceRepository, itemRepo *items.ItemRepository) *InspectionHandler {
	return &InspectionHandler{
		Repository: ir,
		Service:    &InspectionService{r, ir, entryRepo, instanceRepo, itemRepo},
	}
}

func (h *InspectionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/inspection-certificates/", h.GetCertificates)
	router.GET("/inspection-certificates/:id/", h.GetCertificate)
	router.POST("/inspection-certificates/", h.CreateCertificate)
	router.PUT("/inspection-certificates/:id/", h.UpdateCertificate)
	router.POST("/inspection-certificates/:id/confirm/", h.ConfirmCertificate)
}

func (h *InspectionHandler) GetCertificates(c *gin.Context) {
	certificates, err := h.Repository.GetCertificates()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list inspection certificates", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, certificates)
}

func (h *InspectionHandler) GetCertificate(c *gin.Context) {
	certificateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid certificate ID parameter, must be an integer"})
		return
	}

	certificate, err := h.Repository.GetCertificate(certificateID)
	if err != nil {
		if _, ok := err.(*custom_error.NotFoundError); ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch inspection certificate", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, certificate)
}

func (h *InspectionHandler) CreateCertificate(c *gin.Context) {
	var req models.InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	for _, line := range req.Items {
		if line.AcceptedQuantity+line.RejectedQuantity > line.TenderedQuantity {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Accepted and rejected quantities exceed the tendered quantity"})
			return
		}
	}

	certificateID, err := h.Repository.PersistCertificate(req)
	if err != nil {
		if _, ok := err.(*custom_error.UniqueViolationError); ok {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Certificate with same number already registered"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not insert inspection certificate", "details": err.Error()})
		return
	}

	certificate, err := h.Repository.GetCertificate(certificateID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusAccepted, gin.H{"message": "Certificate created but could not be fetched back", "id": certificateID, "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, certificate)
}

func (h *InspectionHandler) UpdateCertificate(c *gin.Context) {
	certificateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid certificate ID parameter, must be an integer"})
		return
	}

	var req models.InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.Repository.UpdateCertificate(certificateID, req); err != nil {
		if _, ok := err.(*custom_error.NotFoundError); ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not update inspection certificate", "details": err.Error()})
		return
	}

	certificate, err := h.Repository.GetCertificate(certificateID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch inspection certificate", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, certificate)
}

func (h *InspectionHandler) ConfirmCertificate(c *gin.Context) {
	certificateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid certificate ID parameter, must be an integer"})
		return
	}

	certificate, err := h.Repository.GetCertificate(certificateID)
	if err != nil {
		if _, ok := err.(*custom_error.NotFoundError); ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch inspection certificate", "details": err.Error()})
		return
	}

	if certificate.Status != metadata.CertificateDraft.String() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Certificate already in status " + certificate.Status, "details": "Only draft certificates can be confirmed"})
		return
	}

	response, err := h.Service.Confirm(certificate)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to confirm inspection certificate", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}
