package gameoptions

import (
	"errors"
	"reflect"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/educreate/gamecore/internal/fileformat"
)

var validate = validator.New()

var errInvalidValue = errors.New("invalid value")

// conforms checks v against the constraint implied by the definition's
// type, choices and bounds.
func (d Definition) conforms(v any) error {
	switch d.Type {
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return errInvalidValue
		}
	case TypeString:
		if _, ok := v.(string); !ok {
			return errInvalidValue
		}
	case TypeColor:
		s, ok := v.(string)
		if !ok || validate.Var(s, "hexcolor") != nil {
			return errInvalidValue
		}
	case TypeNumber, TypeRange:
		n, ok := fileformat.Number(v)
		if !ok {
			return errInvalidValue
		}
		if d.Min != nil && n < *d.Min || d.Max != nil && n > *d.Max {
			return errInvalidValue
		}
	case TypeSelect:
		if len(d.Choices) > 0 && !d.hasChoice(v) {
			return errInvalidValue
		}
	case TypeMultiselect:
		values, ok := v.([]string)
		if !ok {
			if values, ok = stringList(v); !ok {
				return errInvalidValue
			}
		}
		for _, s := range values {
			if len(d.Choices) > 0 && !d.hasChoice(s) {
				return errInvalidValue
			}
		}
	}
	return nil
}

func (d Definition) hasChoice(v any) bool {
	return slices.ContainsFunc(d.Choices, func(c Choice) bool {
		return equalValues(c.Value, v)
	})
}

// equalValues compares decoded values, treating numbers of different Go
// types as equal when they hold the same value.
func equalValues(a, b any) bool {
	if x, ok := fileformat.Number(a); ok {
		y, ok := fileformat.Number(b)
		return ok && x == y
	}
	return reflect.DeepEqual(a, b)
}
