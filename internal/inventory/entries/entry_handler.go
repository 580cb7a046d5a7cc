package entries

import (
	"net/http"
	"strconv"

	"stockroom/internal/inventory/instances"
	"stockroom/internal/inventory/items"
	"stockroom/internal/locations"
	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	EntryRepository EntryRepository
	Service         *EntryService
}

func NewHandler(r *repository.Repository, er EntryRepository, instanceRepo *instances.InstanceRepository, itemRepo *items.ItemRepository, locationRepo *locations.LocationRepository) *EntryHandler {
	return &EntryHandler{
		EntryRepository: er,
		Service:         &EntryService{r, er, instanceRepo, itemRepo, locationRepo},
	}
}

func (h *EntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stock-entries/", h.GetEntries)
	router.GET("/stock-entries/dashboard_stats/", h.GetDashboardStats)
	router.GET("/stock-entries/:id/", h.GetEntry)
	router.POST("/stock-entries/", h.CreateEntry)
	router.POST("/stock-entries/:id/acknowledge/", h.AcknowledgeEntry)
	router.POST("/stock-entries/:id/return_temporary_items/", h.ReturnTemporaryItems)
}

func (h *EntryHandler) GetEntries(c *gin.Context) {
	conditions := repository.NewQueryBuilder()

	if status := c.Query("status"); status != "" {
		entryStatus, err := metadata.NewEntryStatus(status)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid status parameter", "details": err.Error()})
			return
		}
		conditions.AddCondition("status", entryStatus.String())
	}

	if entryType := c.Query("entry_type"); entryType != "" {
		parsed, err := metadata.NewEntryType(entryType)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid entry_type parameter", "details": err.Error()})
			return
		}
		conditions.AddCondition("entry_type", parsed.String())
	}

	if temporary := c.Query("is_temporary"); temporary != "" {
		isTemporary, err := strconv.ParseBool(temporary)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid is_temporary parameter, must be a boolean"})
			return
		}
		conditions.AddCondition("is_temporary", isTemporary)
	}

	if item := c.Query("item"); item != "" {
		itemID, err := strconv.Atoi(item)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid item parameter, must be an integer"})
			return
		}
		conditions.AddCondition("item", itemID)
	}

	var locationID *int
	if location := c.Query("location"); location != "" {
		id, err := strconv.Atoi(location)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid location parameter, must be an integer"})
			return
		}
		locationID = &id
	}

	entryRows, err := h.Service.GetEntries(conditions, locationID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list stock entries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entryRows)
}

func (h *EntryHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.Service.GetDashboardStats()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not compute dashboard stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *EntryHandler) GetEntry(c *gin.Context) {
	entryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID parameter, must be an integer"})
		return
	}

	entry, err := h.Service.GetEntry(entryID)
	if err != nil {
		if _, ok := err.(*custom_error.NotFoundError); ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch stock entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req models.StockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	validationErrors, err := h.Service.ValidateEntry(req)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to validate stock entry", "details": err.Error()})
		return
	}
	if len(validationErrors) > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Stock entry validation failed", "reasons": validationErrors})
		return
	}

	entryID, err := h.Service.CreateEntry(req)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to create stock entry", "details": err.Error()})
		return
	}

	entry, err := h.Service.GetEntry(entryID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusAccepted, gin.H{"message": "Stock entry created but could not be fetched back", "id": entryID, "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *EntryHandler) AcknowledgeEntry(c *gin.Context) {
	entryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID parameter, must be an integer"})
		return
	}

	var req models.AcknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	entry, err := h.EntryRepository.GetEntryRow(entryID)
	if err != nil {
		if _, ok := err.(*custom_error.NotFoundError); ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch stock entry", "details": err.Error()})
		return
	}

	if entry.Status != metadata.EntryStatusPendingAck.String() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Entry already in status " + entry.Status, "details": "Only pending entries can be acknowledged"})
		return
	}

	validationErrors, err := h.Service.ValidateAcknowledgment(entryID, req)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to validate acknowledgment", "details": err.Error()})
		return
	}
	if len(validationErrors) > 0 {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Acknowledgment validation failed", "reasons": validationErrors})
		return
	}

	response, err := h.Service.Acknowledge(entry, req)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to acknowledge stock entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *EntryHandler) ReturnTemporaryItems(c *gin.Context) {
	entryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID parameter, must be an integer"})
		return
	}

	entry, err := h.EntryRepository.GetEntryRow(entryID)
	if err != nil {
		if _, ok := err.(*custom_error.NotFoundError); ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch stock entry", "details": err.Error()})
		return
	}

	if entry.EntryType != metadata.EntryTypeIssue.String() || !entry.IsTemporary {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Entry is not a temporary issue"})
		return
	}
	if entry.Status != metadata.EntryStatusCompleted.String() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Entry already in status " + entry.Status, "details": "Only completed temporary issues can be returned"})
		return
	}
	if entry.ActualReturnDate != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Temporary issue already returned on " + *entry.ActualReturnDate})
		return
	}

	response, err := h.Service.ReturnTemporaryItems(entry)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to return temporary items", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}
