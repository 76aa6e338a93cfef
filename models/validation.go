package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMissingField is returned when a stored record lacks one of the keys
// needed to construct the entity. It is a structural fault, not a business
// outcome, so callers are expected to stop and surface it.
var ErrMissingField = errors.New("missing required field")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json keys (hotel_id) instead of Go field names (HotelID)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateRecord checks the required keys of a decoded record. Records use
// pointer fields so that "absent" and "zero value" can be told apart.
func validateRecord(entity string, rec interface{}) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: %s record missing %s", ErrMissingField, entity, strings.Join(fields, ", "))
	}
	return fmt.Errorf("validate %s record: %w", entity, err)
}
