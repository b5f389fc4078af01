package review

import (
	"testing"
	"time"

	bookingRepo "hireme/database/repository/booking"
	providerRepo "hireme/database/repository/provider"
	reviewRepo "hireme/database/repository/review"
	"hireme/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReviewService(t *testing.T) (*DefaultReviewService, *bookingRepo.MemoryBookingRepo, *providerRepo.MemoryProviderRepo) {
	t.Helper()
	bookings := bookingRepo.NewMemoryBookingRepo()
	providers := providerRepo.NewMemoryProviderRepo()
	svc := NewDefaultReviewService(reviewRepo.NewMemoryReviewRepo(), bookings, providers)
	return svc, bookings, providers
}

func seedCompletedBooking(t *testing.T, bookings *bookingRepo.MemoryBookingRepo) {
	t.Helper()
	require.NoError(t, bookings.Create(&models.Booking{
		ID:           "bk_1",
		CustomerID:   "cust_1",
		CustomerName: "Amna Khan",
		ProviderID:   "prov_x",
		Status:       models.StatusCompleted,
	}))
}

func TestAddReview(t *testing.T) {
	svc, bookings, providers := newTestReviewService(t)
	seedCompletedBooking(t, bookings)
	require.NoError(t, providers.Upsert(&models.ProviderProfile{
		ID: "prov_x", Rating: 4.0, ReviewCount: 3,
	}))

	rec, err := svc.Add("bk_1", "cust_1", 5, "Great work")
	require.NoError(t, err)
	assert.Equal(t, "prov_x", rec.ProviderID)
	assert.Equal(t, "Amna Khan", rec.ReviewerName)
	assert.Equal(t, 5, rec.Rating)
	assert.Equal(t, time.Now().Format("2006-01-02"), rec.Date)

	stored, err := svc.ForProvider("prov_x")
	require.NoError(t, err)
	require.Len(t, stored, 1)

	// The rating folds into the provider's running average.
	profile, err := providers.GetByID("prov_x")
	require.NoError(t, err)
	assert.Equal(t, 4, profile.ReviewCount)
	assert.InDelta(t, 4.25, profile.Rating, 1e-9)
}

func TestAddReviewEligibility(t *testing.T) {
	svc, bookings, _ := newTestReviewService(t)

	var nferr *NotFoundError
	_, err := svc.Add("bk_missing", "cust_1", 5, "")
	require.ErrorAs(t, err, &nferr)

	require.NoError(t, bookings.Create(&models.Booking{
		ID: "bk_pending", CustomerID: "cust_1", ProviderID: "prov_x",
		Status: models.StatusPending,
	}))
	var elerr *NotEligibleError
	_, err = svc.Add("bk_pending", "cust_1", 5, "")
	require.ErrorAs(t, err, &elerr)

	seedCompletedBooking(t, bookings)
	_, err = svc.Add("bk_1", "someone_else", 5, "")
	require.ErrorAs(t, err, &elerr)
}

func TestAddReviewRatingBounds(t *testing.T) {
	svc, bookings, _ := newTestReviewService(t)
	seedCompletedBooking(t, bookings)

	var verr *ValidationError
	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Add("bk_1", "cust_1", rating, "")
		require.ErrorAs(t, err, &verr, "rating %d", rating)
	}

	for _, rating := range []int{1, 5} {
		_, err := svc.Add("bk_1", "cust_1", rating, "")
		require.NoError(t, err, "rating %d", rating)
	}
}

func TestAddReviewAnonymousFallback(t *testing.T) {
	svc, bookings, _ := newTestReviewService(t)
	require.NoError(t, bookings.Create(&models.Booking{
		ID: "bk_1", CustomerID: "cust_1", ProviderID: "prov_x",
		Status: models.StatusCompleted,
	}))

	rec, err := svc.Add("bk_1", "cust_1", 4, "")
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", rec.ReviewerName)
}

func TestAddReviewSeedOnlyProvider(t *testing.T) {
	svc, bookings, providers := newTestReviewService(t)
	require.NoError(t, bookings.Create(&models.Booking{
		ID: "bk_1", CustomerID: "cust_1", ProviderID: "prov_1",
		Status: models.StatusCompleted,
	}))

	// No stored record for prov_1, so the review persists but the
	// published seed aggregates stay as they are.
	_, err := svc.Add("bk_1", "cust_1", 5, "")
	require.NoError(t, err)

	profile, err := providers.GetByID("prov_1")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestForProviderMergesSeed(t *testing.T) {
	svc, bookings, _ := newTestReviewService(t)
	require.NoError(t, bookings.Create(&models.Booking{
		ID: "bk_1", CustomerID: "cust_1", CustomerName: "Amna Khan",
		ProviderID: "prov_1", Status: models.StatusCompleted,
	}))

	_, err := svc.Add("bk_1", "cust_1", 5, "Fixed it fast")
	require.NoError(t, err)

	reviews, err := svc.ForProvider("prov_1")
	require.NoError(t, err)
	// One stored review plus the two built-in ones.
	require.Len(t, reviews, 3)
	assert.Equal(t, "Fixed it fast", reviews[0].Comment)
	assert.Equal(t, "r1", reviews[1].ID)
	assert.Equal(t, "r2", reviews[2].ID)
}
