package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/optisys/optisys-api/internal/application/service"
	"github.com/optisys/optisys-api/internal/presentation/http/dto/response"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing stock items with an optional search term
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventoryService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Collection(c, 200, "items", items, int64(len(items)))
}

// ListLowStock handles listing items at or below their restock alert level
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.inventoryService.ListLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Collection(c, 200, "items", items, int64(len(items)))
}

// Get handles fetching one stock item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item id")
		return
	}

	item, err := h.inventoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Resource(c, 200, "", "item", item)
}

// Create handles adding a new stock item
func (h *InventoryHandler) Create(c *gin.Context) {
	var input service.InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Resource(c, 201, "Item created successfully", "item", item)
}

// Update handles modifying an existing stock item
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var input service.InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Resource(c, 200, "Item updated successfully", "item", item)
}

// Delete handles removing a stock item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item id")
		return
	}

	if err := h.inventoryService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully")
}
