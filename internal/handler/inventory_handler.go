package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lodgeos/internal/domain"
	"lodgeos/internal/service"
)

// InventoryHandler handles room type and room endpoints.
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// CreateRoomType handles POST /api/v1/room-types
func (h *InventoryHandler) CreateRoomType(c *gin.Context) {
	var input service.CreateRoomTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	roomType, err := h.inventoryService.CreateRoomType(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, roomType)
}

// ListRoomTypes handles GET /api/v1/room-types
func (h *InventoryHandler) ListRoomTypes(c *gin.Context) {
	roomTypes, err := h.inventoryService.ListRoomTypes(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, roomTypes)
}

// DeleteRoomType handles DELETE /api/v1/room-types/:id
func (h *InventoryHandler) DeleteRoomType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid room type id")
		return
	}

	if err := h.inventoryService.DeleteRoomType(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "room type deleted"})
}

// CreateRoom handles POST /api/v1/rooms
func (h *InventoryHandler) CreateRoom(c *gin.Context) {
	var input service.CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	room, err := h.inventoryService.CreateRoom(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, room)
}

// GetRoom handles GET /api/v1/rooms/:id
func (h *InventoryHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid room id")
		return
	}

	room, err := h.inventoryService.GetRoom(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, room)
}

// ListRooms handles GET /api/v1/rooms
func (h *InventoryHandler) ListRooms(c *gin.Context) {
	rooms, err := h.inventoryService.ListRooms(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rooms)
}

// SetRoomStatus handles PATCH /api/v1/rooms/:id/status
func (h *InventoryHandler) SetRoomStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid room id")
		return
	}

	var body struct {
		Status domain.RoomStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.inventoryService.SetRoomStatus(c.Request.Context(), id, body.Status); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "room status updated"})
}

// DeleteRoom handles DELETE /api/v1/rooms/:id
func (h *InventoryHandler) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid room id")
		return
	}

	if err := h.inventoryService.DeleteRoom(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "room deleted"})
}
