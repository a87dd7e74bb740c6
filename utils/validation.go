package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected field, named by its JSON key.
type FieldError struct {
	Field   string
	Message string
}

// ValidateStruct runs the gin binding validator over obj. Use it after normalizing a
// request that was already bound.
func ValidateStruct(obj interface{}) error {
	return binding.Validator.ValidateStruct(obj)
}

// ValidationFields converts validator errors on obj into JSON-keyed field errors, in
// struct field order with one entry per field. messages is keyed by JSON name; a field
// without an entry gets a generic message. ok is false when err is not a validation error.
func ValidationFields(obj interface{}, err error, messages map[string]string) (fields []FieldError, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		name := jsonName(t, fe.StructField())
		if seen[name] {
			continue
		}
		seen[name] = true
		msg, found := messages[name]
		if !found {
			msg = fmt.Sprintf("%s failed the '%s' rule", name, fe.Tag())
		}
		fields = append(fields, FieldError{Field: name, Message: msg})
	}
	return fields, true
}

// FieldMap flattens field errors into the ErrorResponse.Fields shape.
func FieldMap(fields []FieldError) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Field] = f.Message
	}
	return out
}

func jsonName(t reflect.Type, structField string) string {
	if t.Kind() != reflect.Struct {
		return structField
	}
	sf, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}
	name := strings.Split(sf.Tag.Get("json"), ",")[0]
	if name == "" || name == "-" {
		return structField
	}
	return name
}
