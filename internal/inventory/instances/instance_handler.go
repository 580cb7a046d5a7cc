package instances

import (
	"net/http"
	"strconv"
	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/gin-gonic/gin"
)

type InstanceHandler struct {
	Repository *InstanceRepository
}

func NewInstanceHandler(r *InstanceRepository) *InstanceHandler {
	return &InstanceHandler{Repository: r}
}

func (h *InstanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/item-instances/", h.GetInstances)
	router.GET("/item-instances/:id/", h.GetInstance)
	router.POST("/item-instances/scan/", h.ScanInstance)
}

func (h *InstanceHandler) GetInstances(c *gin.Context) {
	conditions := repository.NewQueryBuilder()

	if locationID := c.Query("location"); locationID != "" {
		id, err := strconv.Atoi(locationID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid location parameter, must be an integer"})
			return
		}
		conditions.AddCondition("location", id)
	}

	if itemID := c.Query("item"); itemID != "" {
		id, err := strconv.Atoi(itemID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid item parameter, must be an integer"})
			return
		}
		conditions.AddCondition("item", id)
	}

	if status := c.Query("status"); status != "" {
		instanceStatus, err := metadata.NewInstanceStatus(status)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid status parameter", "details": err.Error()})
			return
		}
		conditions.AddCondition("status", instanceStatus.String())
	}

	instances, err := h.Repository.GetInstancesBy(conditions)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list item instances", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, instances)
}

func (h *InstanceHandler) GetInstance(c *gin.Context) {
	instanceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID parameter, must be an integer"})
		return
	}

	instance, err := h.Repository.GetInstance(instanceID)
	if err != nil {
		if _, ok := err.(*custom_error.NotFoundError); ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch instance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, instance)
}

// ScanInstance resolves a scanned or hand-typed instance code to the full
// instance record plus its movement history.
func (h *InstanceHandler) ScanInstance(c *gin.Context) {
	var req models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	instance, err := h.Repository.FindInstanceByCode(req.InstanceCode)
	if err != nil {
		if _, ok := err.(*custom_error.NotFoundError); ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not look up instance", "details": err.Error()})
		return
	}

	movements, err := h.Repository.GetMovementHistory(instance.ID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch movement history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ScanResponse{
		Instance:        *instance,
		MovementHistory: movements,
	})
}
