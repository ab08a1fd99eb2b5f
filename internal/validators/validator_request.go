package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mkarev/go-school-admin/models"
)

const (
	FieldName     = "Name"
	FieldEmail    = "Email"
	FieldPassword = "Password"
)

// RequestValidator validates inbound API request bodies against their
// `validate` struct tags using go-playground/validator, then maps the tag
// failures onto this package's sentinel errors.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.CreateUserRequest:
		return v.validateStruct(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateStruct(ctx, *value, fields...)

	case models.CreateSchoolRequest:
		return v.validateSchoolRequest(ctx, value, fields...)
	case *models.CreateSchoolRequest:
		return v.validateSchoolRequest(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	for _, fieldErr := range validationErrors {
		if mapped := mapFieldError(fieldErr); mapped != nil {
			return mapped
		}
	}

	return err
}

func (v *RequestValidator) validateSchoolRequest(ctx context.Context, req models.CreateSchoolRequest, fields ...string) error {
	if err := v.validateStruct(ctx, req, fields...); err != nil {
		if errors.Is(err, ErrMissingName) {
			return ErrMissingSchoolName
		}
		return err
	}
	return nil
}

func mapFieldError(fieldErr validator.FieldError) error {
	switch fieldErr.Field() {
	case FieldName:
		return ErrMissingName
	case FieldEmail:
		if fieldErr.Tag() == "email" {
			return ErrInvalidEmail
		}
		return ErrMissingEmail
	case FieldPassword:
		return ErrMissingPassword
	}

	return fmt.Errorf("%w: %s", ErrUnknownField, fieldErr.Field())
}
