package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationError sends a 400 for a request body that failed to bind. Validator
// failures name the offending field by its JSON path, e.g. items[1].quantity.
func ValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.WarnWithError(ctx, "request validation failed", err)
		respond(c, http.StatusBadRequest, "INVALID_INPUT", buildValidationMessage(validationErrs))
		return
	}

	logger.WarnWithError(ctx, "request binding failed", err)
	respond(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid request format. Please check your JSON syntax.")
}

func buildValidationMessage(validationErrs validator.ValidationErrors) string {
	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	if len(messages) == 1 {
		return messages[0]
	}
	return "Validation failed: " + strings.Join(messages, "; ")
}

func fieldMessage(fieldErr validator.FieldError) string {
	path := jsonPath(fieldErr.Namespace())

	switch fieldErr.Tag() {
	case "gte":
		if fieldErr.Param() == "0" {
			return fmt.Sprintf("%s must not be negative", path)
		}
		return fmt.Sprintf("%s must be at least %s", path, fieldErr.Param())
	case "required":
		return fmt.Sprintf("%s is required", path)
	default:
		return fmt.Sprintf("%s is invalid (%s)", path, fieldErr.Tag())
	}
}

// jsonPath turns a validator namespace such as SaveOrderRequest.Items[0].Quantity
// into items[0].quantity. Request fields use lower camel case JSON names.
func jsonPath(namespace string) string {
	segments := strings.Split(namespace, ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	for i, s := range segments {
		r, size := utf8.DecodeRuneInString(s)
		segments[i] = string(unicode.ToLower(r)) + s[size:]
	}
	return strings.Join(segments, ".")
}
