package handlers

import (
	"net/http"

	"hireme/middleware"

	"github.com/gin-gonic/gin"
)

// AddReviewHandler attaches a rating and comment to a completed booking's
// provider.
func (hb *HandlerBundle) AddReviewHandler(c *gin.Context) {
	var input struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	review, err := hb.Reviews.Add(c.Param("id"), middleware.UserID(c), input.Rating, input.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListProviderReviewsHandler returns a provider's reviews.
func (hb *HandlerBundle) ListProviderReviewsHandler(c *gin.Context) {
	reviews, err := hb.Reviews.ForProvider(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
