package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Имена полей в ошибках совпадают с JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := types.NewTimeStringFromString(value)
		return err == nil
	})

	return v
}

// Validate проверяет DTO по тегам validate
func Validate(req interface{}) error {
	return validate.Struct(req)
}

// RespondValidationError отвечает 400, по возможности указывая поле
func RespondValidationError(w http.ResponseWriter, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		RespondFieldError(w, first.Field(), fmt.Sprintf("поле %s не прошло проверку %s", first.Field(), first.Tag()))
		return
	}

	var intervalErr *scheduling.IntervalError
	if errors.As(err, &intervalErr) {
		RespondFieldError(w, intervalErr.Field, intervalMessage(intervalErr))
		return
	}

	RespondBadRequest(w, err.Error())
}

// IsValidationError true для ошибок проверки полей и интервалов
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	var intervalErr *scheduling.IntervalError
	return errors.As(err, &fieldErrs) || errors.As(err, &intervalErr)
}

func intervalMessage(err *scheduling.IntervalError) string {
	switch {
	case errors.Is(err, scheduling.ErrInvalidDay):
		return "день недели должен быть от 0 до 6"
	case errors.Is(err, scheduling.ErrInvalidFormat):
		return "некорректный формат времени, ожидается HH:MM"
	case errors.Is(err, scheduling.ErrInvalidRange):
		return "время начала должно быть раньше времени окончания"
	default:
		return err.Error()
	}
}
