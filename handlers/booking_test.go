package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bookingRepo "hireme/database/repository/booking"
	messageRepo "hireme/database/repository/message"
	providerRepo "hireme/database/repository/provider"
	userRepo "hireme/database/repository/user"
	"hireme/middleware"
	"hireme/models"
	bookingSvc "hireme/services/booking"
	"hireme/services/directory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBundle(t *testing.T) (*HandlerBundle, *bookingRepo.MemoryBookingRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := userRepo.NewMemoryUserRepo()
	bookings := bookingRepo.NewMemoryBookingRepo()
	for _, u := range []models.UserProfile{
		{ID: "cust_1", Email: "amna@example.com", FullName: "Amna Khan"},
		{ID: "admin_1", Email: "ops@example.com", FullName: "Ops", IsAdmin: true},
		{ID: "stranger_1", Email: "other@example.com", FullName: "Other"},
	} {
		u := u
		require.NoError(t, users.Create(&u))
	}

	svc := &bookingSvc.DefaultBookingService{
		Repo:      bookings,
		Messages:  messageRepo.NewMemoryMessageRepo(),
		Users:     users,
		Directory: directory.NewDefaultDirectoryService(providerRepo.NewMemoryProviderRepo()),
	}
	return &HandlerBundle{UserRepo: users, Bookings: svc}, bookings
}

func seedPendingBooking(t *testing.T, hb *HandlerBundle) *models.Booking {
	t.Helper()
	b, err := hb.Bookings.Create(bookingSvc.CreateRequest{
		CustomerID:  "cust_1",
		ProviderID:  "prov_1",
		ScheduledAt: "2024-06-01 10:00 AM",
	})
	require.NoError(t, err)
	return b
}

func patchStatus(hb *HandlerBundle, bookingID, userID string, role models.Role, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID+"/status", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: bookingID}}
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextActingRole, role)
	hb.UpdateBookingStatusHandler(c)
	return w
}

func TestUpdateStatusHandlerForceRequiresAdmin(t *testing.T) {
	hb, bookings := newTestBundle(t)
	b := seedPendingBooking(t, hb)

	// An ordinary participant cannot bypass the transition table.
	w := patchStatus(hb, b.ID, "cust_1", models.RoleCustomer, `{"status":"COMPLETED","force":true}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	stored, err := bookings.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	// An unknown account is rejected the same way.
	w = patchStatus(hb, b.ID, "ghost", models.RoleCustomer, `{"status":"COMPLETED","force":true}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// An admin account may force, including into DISPUTED.
	w = patchStatus(hb, b.ID, "admin_1", models.RoleCustomer, `{"status":"DISPUTED","force":true}`)
	assert.Equal(t, http.StatusOK, w.Code)

	stored, err = bookings.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDisputed, stored.Status)
}

func TestUpdateStatusHandlerParticipantsOnly(t *testing.T) {
	hb, bookings := newTestBundle(t)
	b := seedPendingBooking(t, hb)

	// A third party cannot touch someone else's booking.
	w := patchStatus(hb, b.ID, "stranger_1", models.RoleCustomer, `{"status":"CANCELLED"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	stored, err := bookings.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	// The booking's own provider accepts through the table.
	w = patchStatus(hb, b.ID, "prov_1", models.RoleProvider, `{"status":"ACCEPTED"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.StatusAccepted, updated.Status)

	// Participation does not unlock edges outside the table.
	w = patchStatus(hb, b.ID, "cust_1", models.RoleCustomer, `{"status":"COMPLETED"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}
