// Package validation checks incoming payloads against their `validate` struct
// tags and reports violations as an ordered field list.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/commerce-api/internal/apperr"
)

// Messager is implemented by payloads that word their own violations.
// Keys are json leaf field names, optionally suffixed with ".tag" to word a
// single rule.
type Messager interface {
	ValidationMessages() map[string]string
}

// MaxMoney is the largest amount a NUMERIC(12,2) column holds.
var MaxMoney = decimal.RequireFromString("9999999999.99")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// decimals are compared as numbers so gt/gte/min work on prices
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("money", money)
	return v
}

// money accepts decimals with at most two fraction digits, up to MaxMoney.
// The custom type func above hands tags a float64, so the original decimal
// is read back from the parent struct.
func money(fl validator.FieldLevel) bool {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}
	d, ok := parent.FieldByName(fl.StructFieldName()).Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.Equal(d.Truncate(2)) && d.LessThanOrEqual(MaxMoney)
}

// Struct validates v. It returns nil, an *apperr.Error of KindValidation,
// or the validator's own error when v is not a struct.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	var overrides map[string]string
	if m, ok := v.(Messager); ok {
		overrides = m.ValidationMessages()
	}

	fields := make([]apperr.FieldMessage, 0, len(ves))
	for _, fe := range ves {
		msg, ok := overrides[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg, ok = overrides[fe.Field()]
		}
		if !ok {
			msg = defaultMessage(fe)
		}
		fields = append(fields, apperr.FieldMessage{FieldName: fieldPath(fe), Message: msg})
	}
	return apperr.Validation(fields...)
}

// fieldPath drops the root struct name: "ProductInsert.items[0].quantity" -> "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "money":
		return fmt.Sprintf("must have at most 2 decimal places and not exceed %s", MaxMoney)
	case "min", "max":
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must have %s %s characters", bound, fe.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("must have %s %s item(s)", bound, fe.Param())
		default:
			return fmt.Sprintf("must be %s %s", bound, fe.Param())
		}
	default:
		return "is invalid"
	}
}
