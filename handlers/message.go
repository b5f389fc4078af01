package handlers

import (
	"net/http"

	"hireme/middleware"

	"github.com/gin-gonic/gin"
)

// SendMessageHandler appends a message to a booking's thread.
func (hb *HandlerBundle) SendMessageHandler(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	msg, err := hb.Messaging.Send(c.Param("id"), middleware.UserID(c), input.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetThreadHandler returns a booking's thread and marks it read for the
// caller, mirroring what opening the conversation view does.
func (hb *HandlerBundle) GetThreadHandler(c *gin.Context) {
	bookingID := c.Param("id")
	userID := middleware.UserID(c)

	if err := hb.Messaging.MarkRead(bookingID, userID); err != nil {
		respondError(c, err)
		return
	}
	msgs, err := hb.Messaging.Thread(bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// GetUnreadCountHandler counts the caller's unread messages in a thread.
func (hb *HandlerBundle) GetUnreadCountHandler(c *gin.Context) {
	count, err := hb.Messaging.UnreadCount(c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// ListThreadsHandler returns the caller's conversation list, most recently
// active first.
func (hb *HandlerBundle) ListThreadsHandler(c *gin.Context) {
	threads, err := hb.Messaging.Threads(middleware.UserID(c), middleware.ActingRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"threads": threads})
}
