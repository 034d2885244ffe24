package handlers

import (
	"reflect"
	"strings"

	"sahl-bank-api/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator that reports fields by their json names,
// so error messages match the wire schema ("user.client_user_id").
func NewValidator() echo.Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// sendValidationError maps a validation failure to the API's 400 body:
// "Missing <field>" for absent required fields, "Invalid <field>" otherwise.
func sendValidationError(c echo.Context, err error) error {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return SendSystemError(c, err)
	}

	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		response := errors.MissingField(fieldPath(fe))
		return c.JSON(response.HTTPStatus(), response)
	}
	return SendError(c, errors.ValidationMissingField, errors.WithMessage("Invalid "+fieldPath(fe)))
}

// fieldPath strips the root struct name from the validator namespace,
// leaving the json path of the field.
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
