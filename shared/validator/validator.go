// Package validator decodes request bodies and checks them against their validate tags.
//
// Besides the go-playground built-ins it knows:
//
//	domain              the field type's Validate(*config.Config) error accepts the value
//	phone               a phone number valid in APP_HOTEL_PHONE_REGION
//	dataurl=<types>     a base64 data url whose content type is one of the space separated types
//	dataurlmax=<mb>     a data url whose decoded payload is at most <mb> megabytes
package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"grandhotel/config"
	"grandhotel/shared/base64"
	"grandhotel/shared/failure"
	"grandhotel/shared/phone"

	val "github.com/go-playground/validator/v10"
)

const megabyte = 1 << 20

type domainValue interface {
	Validate(cfg *config.Config) error
}

var validate = newValidate(config.Get())

func newValidate(cfg *config.Config) *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	region := cfg.App.Hotel.PhoneRegion
	if region == "" {
		region = phone.DefaultRegion
	}

	custom := map[string]val.Func{
		"domain": func(fl val.FieldLevel) bool {
			value, ok := fl.Field().Interface().(domainValue)

			return ok && value.Validate(cfg) == nil
		},
		"phone": func(fl val.FieldLevel) bool {
			return phone.Valid(fl.Field().String(), region)
		},
		"dataurl": func(fl val.FieldLevel) bool {
			contentType := base64.GetContentType(fl.Field().String())

			return contentType != "" && slices.Contains(strings.Fields(fl.Param()), contentType)
		},
		"dataurlmax": func(fl val.FieldLevel) bool {
			limit, err := strconv.ParseFloat(fl.Param(), 64)
			if err != nil {
				return false
			}

			_, data, err := base64.Decode(fl.Field().String())

			return err == nil && float64(len(data)) <= limit*megabyte
		},
	}

	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return v
}

// Validate decodes the JSON body into data and validates it. Both failures are a 400.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
