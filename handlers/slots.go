package handlers

import (
	"net/http"

	"trimly/store"

	"github.com/gin-gonic/gin"
)

// SlotHandler exposes slot catalog queries and maintenance.
type SlotHandler struct {
	Inventory *store.Inventory
}

func NewSlotHandler(inv *store.Inventory) *SlotHandler {
	return &SlotHandler{Inventory: inv}
}

type slotInput struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ListSlots returns the full free-slot catalog.
func (h *SlotHandler) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.Inventory.All()})
}

// AddSlot registers a new bookable (date, time) pair.
func (h *SlotHandler) AddSlot(c *gin.Context) {
	var input slotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.Inventory.Add(input.Date, input.Time)
	c.JSON(http.StatusOK, gin.H{"status": "added", "slots": h.Inventory.Times(input.Date)})
}

// RemoveSlot withdraws a (date, time) pair; removing an absent time is a
// no-op.
func (h *SlotHandler) RemoveSlot(c *gin.Context) {
	var input slotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.Inventory.Remove(input.Date, input.Time)
	c.JSON(http.StatusOK, gin.H{"status": "removed", "slots": h.Inventory.Times(input.Date)})
}
