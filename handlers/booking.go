package handlers

import (
	"net/http"

	"hireme/middleware"
	"hireme/models"
	bookingSvc "hireme/services/booking"
	"hireme/utils"

	"github.com/gin-gonic/gin"
)

// CreateBookingHandler requests a new booking for the authenticated customer.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	var input struct {
		ProviderID  string `json:"providerId" binding:"required"`
		ScheduledAt string `json:"scheduledAt" binding:"required"`
		Address     string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := hb.Bookings.Create(bookingSvc.CreateRequest{
		CustomerID:  middleware.UserID(c),
		ProviderID:  input.ProviderID,
		ScheduledAt: input.ScheduledAt,
		Address:     input.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListBookingsHandler returns the caller's bookings in the acting capacity.
func (hb *HandlerBundle) ListBookingsHandler(c *gin.Context) {
	bookings, err := hb.Bookings.ListForUser(middleware.UserID(c), middleware.ActingRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingHandler resolves one booking.
func (hb *HandlerBundle) GetBookingHandler(c *gin.Context) {
	booking, err := hb.Bookings.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatusHandler applies a lifecycle transition on behalf of the
// acting role.
func (hb *HandlerBundle) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
		Force  bool                 `json:"force"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := middleware.UserID(c)
	if input.Force {
		// Override path bypassing the transition table; admin accounts only.
		account, err := hb.UserRepo.GetByID(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		if account == nil || !account.IsAdmin {
			utils.JSONError(c, http.StatusForbidden, "not allowed", "forced status overrides require an admin account")
			return
		}
		booking, err := hb.Bookings.ForceStatus(c.Param("id"), input.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, booking)
		return
	}

	booking, err := hb.Bookings.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if booking.CustomerID != userID && booking.ProviderID != userID {
		utils.JSONError(c, http.StatusForbidden, "not allowed", "only the booking's customer or provider may change its status")
		return
	}

	updated, err := hb.Bookings.UpdateStatus(booking.ID, input.Status, middleware.ActingRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetInvoiceHandler returns the fee/total breakdown for a booking.
func (hb *HandlerBundle) GetInvoiceHandler(c *gin.Context) {
	invoice, err := hb.Bookings.Invoice(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// GetEarningsHandler summarizes the caller's provider revenue.
func (hb *HandlerBundle) GetEarningsHandler(c *gin.Context) {
	earnings, err := hb.Bookings.Earnings(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, earnings)
}
