package validator

import (
	"agenda/config"
	"agenda/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerConfigValidation backs the "agenda" tag: the field's own Validate(*config.Config) decides.
func registerConfigValidation(cfg *config.Config) val.Func {
	return func(fl val.FieldLevel) bool {
		method := fl.Field().MethodByName("Validate")
		if method.IsValid() {
			result := method.Call([]reflect.Value{reflect.ValueOf(cfg)})

			return result[0].IsNil()
		}

		return false
	}
}

func registerNotBlankValidation(fl val.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	cfg := config.Get()

	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("agenda", registerConfigValidation(cfg))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("notblank", registerNotBlankValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
