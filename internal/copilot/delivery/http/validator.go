package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"golang-stock-copilot/internal/copilot/dto"
)

// RequestValidator adapts validator/v10 to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// validationMessage flattens validator errors into a single line.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return "Missing required fields"
	}
	return "Invalid " + fe.Field() + ": must satisfy " + fe.Tag() + " " + fe.Param()
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, dto.ErrorResponse{Error: msg})
}

func badRequest(c echo.Context, msg string) error {
	return errorJSON(c, http.StatusBadRequest, msg)
}
