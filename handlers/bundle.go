package handlers

import (
	"errors"
	"net/http"

	"hireme/database/repository"
	bookingSvc "hireme/services/booking"
	"hireme/services/directory"
	"hireme/services/interpreter"
	"hireme/services/messaging"
	reviewSvc "hireme/services/review"
	userSvc "hireme/services/user"
	"hireme/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle carries every service the HTTP surface needs.
type HandlerBundle struct {
	UserRepo    repository.UserRepository
	Users       userSvc.UserService
	Directory   directory.DirectoryService
	Bookings    bookingSvc.BookingService
	Messaging   messaging.MessagingService
	Reviews     reviewSvc.ReviewService
	Interpreter interpreter.QueryInterpreter
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var (
		bookingNotFound *bookingSvc.NotFoundError
		reviewNotFound  *reviewSvc.NotFoundError
		threadNotFound  *messaging.ThreadNotFoundError
		invalidEdge     *bookingSvc.InvalidTransitionError
		conflict        *bookingSvc.ConflictError
		bookingInput    *bookingSvc.ValidationError
		messageInput    *messaging.ValidationError
		reviewInput     *reviewSvc.ValidationError
		notEligible     *reviewSvc.NotEligibleError
		authErr         *userSvc.AuthError
	)
	switch {
	case errors.As(err, &bookingNotFound), errors.As(err, &reviewNotFound), errors.As(err, &threadNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.As(err, &invalidEdge):
		utils.JSONError(c, http.StatusConflict, "invalid transition", err.Error())
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, "concurrent update", err.Error())
	case errors.As(err, &bookingInput), errors.As(err, &messageInput), errors.As(err, &reviewInput):
		utils.JSONError(c, http.StatusBadRequest, "validation failed", err.Error())
	case errors.As(err, &notEligible):
		utils.JSONError(c, http.StatusForbidden, "not allowed", err.Error())
	case errors.As(err, &authErr):
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
