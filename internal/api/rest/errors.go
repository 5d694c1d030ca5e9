package rest

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eos420/indexer-api/internal/api/dto"
	"github.com/eos420/indexer-api/internal/logger"
)

// respondWithError sends the standard error body
func respondWithError(c *gin.Context, statusCode int, code string, description string) {
	c.JSON(statusCode, dto.NewError(code, description))
}

// respondInvalidRequest sends a 400 Bad Request describing err
func respondInvalidRequest(c *gin.Context, err error) {
	respondWithError(c, http.StatusBadRequest, dto.ErrorInvalidRequest, describe(err))
}

// respondConflict sends a conflict body with status 400
func respondConflict(c *gin.Context, err error) {
	respondWithError(c, http.StatusBadRequest, dto.ErrorConflict, describe(err))
}

// respondNotFound sends a 404 Not Found describing err
func respondNotFound(c *gin.Context, err error) {
	respondWithError(c, http.StatusNotFound, dto.ErrorNotFound, describe(err))
}

// respondImpossible sends a 500 for a row that was found but could not be rendered
func respondImpossible(c *gin.Context, fields ...zap.Field) {
	logger.WarnCtx(c.Request.Context(), "Failed to render a stored row", fields...)
	respondWithError(c, http.StatusInternalServerError, dto.ErrorImpossible, "")
}

// respondServerError sends a 500 Internal Server Error response and logs the error
func respondServerError(c *gin.Context, err error, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	respondWithError(c, http.StatusInternalServerError, dto.ErrorServerError, "")
}

// describe turns an error into a client facing sentence
func describe(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	r := []rune(msg)
	return string(unicode.ToUpper(r[0])) + strings.TrimSpace(string(r[1:]))
}
