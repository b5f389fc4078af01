package bookingRepo

import (
	"testing"

	"hireme/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusVersionCheck(t *testing.T) {
	repo := NewMemoryBookingRepo()
	require.NoError(t, repo.Create(&models.Booking{
		ID:     "bk_1",
		Status: models.StatusPending,
	}))

	require.NoError(t, repo.UpdateStatus("bk_1", models.StatusAccepted, 0))

	// A writer holding the pre-update version loses.
	err := repo.UpdateStatus("bk_1", models.StatusCancelled, 0)
	assert.ErrorIs(t, err, ErrVersionConflict)

	b, err := repo.GetByID("bk_1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, b.Status)
	assert.Equal(t, int64(1), b.Version)

	err = repo.UpdateStatus("bk_missing", models.StatusAccepted, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewMemoryBookingRepo()
	_, err := repo.GetByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	repo := NewMemoryBookingRepo()
	require.NoError(t, repo.Create(&models.Booking{ID: "bk_old", CustomerID: "c1"}))
	require.NoError(t, repo.Create(&models.Booking{ID: "bk_new", CustomerID: "c1"}))

	list, err := repo.ListByCustomer("c1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bk_new", list[0].ID)
	assert.Equal(t, "bk_old", list[1].ID)
}
