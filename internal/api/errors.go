package api

import (
	"errors"
	"net/http"

	"StockDesk/internal/analysis"
	"StockDesk/internal/desk"
	"StockDesk/internal/loader"
	"StockDesk/internal/store"
	"StockDesk/internal/watchlist"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrSymbolNotFound),
		errors.Is(err, analysis.ErrDateNotFound),
		errors.Is(err, desk.ErrNoLocalFile),
		errors.Is(err, watchlist.ErrNotListed):
		return http.StatusNotFound
	case errors.Is(err, analysis.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, watchlist.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, analysis.ErrPriceMissing),
		errors.Is(err, analysis.ErrEmptySeries),
		errors.Is(err, analysis.ErrInsufficientHistory),
		errors.Is(err, analysis.ErrMissingField),
		errors.Is(err, watchlist.ErrNotLoaded),
		errors.Is(err, loader.ErrMissingColumns):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	body := gin.H{"error": err.Error()}
	if status != http.StatusInternalServerError {
		body["message"] = s.Desk.Explain(err)
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
