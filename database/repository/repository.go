package repository

import (
	bookingRepo "hireme/database/repository/booking"
	messageRepo "hireme/database/repository/message"
	providerRepo "hireme/database/repository/provider"
	reviewRepo "hireme/database/repository/review"
	userRepo "hireme/database/repository/user"
)

// Re-export the UserRepository interface and constructors.
type UserRepository = userRepo.UserRepository

var (
	NewMongoUserRepo  = userRepo.NewMongoUserRepo
	NewMemoryUserRepo = userRepo.NewMemoryUserRepo
)

// Re-export the ProviderRepository interface and constructors.
type ProviderRepository = providerRepo.ProviderRepository

var (
	NewMongoProviderRepo  = providerRepo.NewMongoProviderRepo
	NewMemoryProviderRepo = providerRepo.NewMemoryProviderRepo
)

// Re-export the BookingRepository interface, constructors and errors.
type BookingRepository = bookingRepo.BookingRepository

var (
	NewMongoBookingRepo   = bookingRepo.NewMongoBookingRepo
	NewMemoryBookingRepo  = bookingRepo.NewMemoryBookingRepo
	ErrBookingNotFound    = bookingRepo.ErrNotFound
	ErrBookingVersionLost = bookingRepo.ErrVersionConflict
)

// Re-export the MessageRepository interface and constructors.
type MessageRepository = messageRepo.MessageRepository

var (
	NewMongoMessageRepo  = messageRepo.NewMongoMessageRepo
	NewMemoryMessageRepo = messageRepo.NewMemoryMessageRepo
)

// Re-export the ReviewRepository interface and constructors.
type ReviewRepository = reviewRepo.ReviewRepository

var (
	NewMongoReviewRepo  = reviewRepo.NewMongoReviewRepo
	NewMemoryReviewRepo = reviewRepo.NewMemoryReviewRepo
)
