package review

import (
	"errors"
	"fmt"
	"time"

	"hireme/database/repository"
	bookingRepo "hireme/database/repository/booking"
	"hireme/models"
	"hireme/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotFoundError signals a review against a booking that does not exist.
type NotFoundError struct {
	BookingID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}

// NotEligibleError signals a review rejected by policy: the booking is not
// completed, or the reviewer is not the booking's customer.
type NotEligibleError struct {
	Reason string
}

func (e *NotEligibleError) Error() string {
	return e.Reason
}

// ValidationError signals a rejected review input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ReviewService attaches ratings and comments to providers after completed
// bookings, and is the only writer of provider rating aggregates.
type ReviewService interface {
	// Add appends a review for the booking's provider.
	Add(bookingID, reviewerID string, rating int, comment string) (*models.Review, error)
	// ForProvider returns stored reviews merged over the seed reviews.
	ForProvider(providerID string) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Reviews   repository.ReviewRepository
	Bookings  repository.BookingRepository
	Providers repository.ProviderRepository
	Seed      []models.Review
}

// NewDefaultReviewService wires the standard seed reviews.
func NewDefaultReviewService(reviews repository.ReviewRepository, bookings repository.BookingRepository, providers repository.ProviderRepository) *DefaultReviewService {
	return &DefaultReviewService{
		Reviews:   reviews,
		Bookings:  bookings,
		Providers: providers,
		Seed:      models.SeedReviews(),
	}
}

// Add resolves the booking, checks eligibility and appends the review. Only
// the customer of a COMPLETED booking may review it.
func (svc *DefaultReviewService) Add(bookingID, reviewerID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}

	booking, err := svc.Bookings.GetByID(bookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, &NotFoundError{BookingID: bookingID}
	}
	if err != nil {
		return nil, err
	}
	if booking.Status != models.StatusCompleted {
		return nil, &NotEligibleError{Reason: "booking is not completed"}
	}
	if booking.CustomerID != reviewerID {
		return nil, &NotEligibleError{Reason: "only the booking's customer may review it"}
	}

	reviewerName := booking.CustomerName
	if reviewerName == "" {
		reviewerName = "Anonymous"
	}

	rec := &models.Review{
		ID:           uuid.New().String(),
		ProviderID:   booking.ProviderID,
		ReviewerName: reviewerName,
		Rating:       rating,
		Comment:      comment,
		Date:         time.Now().Format("2006-01-02"),
	}
	if err := svc.Reviews.Append(rec); err != nil {
		return nil, fmt.Errorf("failed to append review: %w", err)
	}

	svc.updateAggregates(booking.ProviderID, rating)
	return rec, nil
}

// ForProvider returns stored reviews merged over the seed reviews.
func (svc *DefaultReviewService) ForProvider(providerID string) ([]models.Review, error) {
	stored, err := svc.Reviews.ListByProvider(providerID)
	if err != nil {
		return nil, err
	}
	for _, r := range svc.Seed {
		if r.ProviderID == providerID {
			stored = append(stored, r)
		}
	}
	return stored, nil
}

// updateAggregates folds a new rating into the provider's running average.
// Seed-only providers have no stored record to update; their aggregates stay
// as published.
func (svc *DefaultReviewService) updateAggregates(providerID string, rating int) {
	logger := utils.GetLogger()
	profile, err := svc.Providers.GetByID(providerID)
	if err != nil {
		logger.Warn("failed to load provider for aggregate update",
			zap.String("providerID", providerID), zap.Error(err))
		return
	}
	if profile == nil {
		logger.Debug("no stored provider profile, skipping aggregate update",
			zap.String("providerID", providerID))
		return
	}

	newCount := profile.ReviewCount + 1
	newRating := (profile.Rating*float64(profile.ReviewCount) + float64(rating)) / float64(newCount)
	if err := svc.Providers.SetAggregates(providerID, newRating, newCount); err != nil {
		logger.Warn("failed to update provider aggregates",
			zap.String("providerID", providerID), zap.Error(err))
	}
}
