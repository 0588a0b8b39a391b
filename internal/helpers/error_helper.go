package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type FieldErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithBindingError turns a ShouldBindJSON failure into a 400 carrying
// one message per failing field. Every failing field is reported, not just
// the first, so the client can mark all offending inputs at once.
func RespondWithBindingError(c *gin.Context, err error) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldName(fe)] = FieldMessage(fe)
		}
		c.JSON(http.StatusBadRequest, FieldErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: "Invalid input. Please check your fields.",
			Fields:  fields,
		})
		return
	}
	RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
}
