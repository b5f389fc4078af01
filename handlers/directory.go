package handlers

import (
	"net/http"

	"hireme/services/directory"

	"github.com/gin-gonic/gin"
)

// SearchProvidersHandler runs a filtered, ranked directory search.
func (hb *HandlerBundle) SearchProvidersHandler(c *gin.Context) {
	criteria := directory.SearchCriteria{
		Category:     c.Query("category"),
		City:         c.Query("city"),
		Term:         c.Query("term"),
		LocationHint: c.Query("location"),
	}

	providers, err := hb.Directory.Search(criteria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers, "count": len(providers)})
}

// GetProviderHandler resolves one provider with its reviews.
func (hb *HandlerBundle) GetProviderHandler(c *gin.Context) {
	id := c.Param("id")
	provider, err := hb.Directory.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if provider == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		return
	}

	reviews, err := hb.Reviews.ForProvider(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": provider, "reviews": reviews})
}

// ListCategoriesHandler returns the service category catalog.
func (hb *HandlerBundle) ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": hb.Directory.Categories()})
}

// InterpretQueryHandler maps free-text input to a category/location/term hint.
func (hb *HandlerBundle) InterpretQueryHandler(c *gin.Context) {
	var input struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := hb.Interpreter.Interpret(c.Request.Context(), input.Query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// EnhanceBioHandler rewrites a provider bio.
func (hb *HandlerBundle) EnhanceBioHandler(c *gin.Context) {
	var input struct {
		Bio        string `json:"bio" binding:"required"`
		Name       string `json:"name" binding:"required"`
		Profession string `json:"profession" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bio, err := hb.Interpreter.EnhanceBio(c.Request.Context(), input.Bio, input.Name, input.Profession)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bio": bio})
}
