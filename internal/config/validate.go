package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns a json-field -> message map; empty when the config is usable.
func (c *Config) Validate() map[string]string {
	err := validate.Struct(c)
	if err == nil {
		return map[string]string{}
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{
			"_error": err.Error(),
		}
	}

	errors := make(map[string]string)

	for _, e := range validationErrors {
		field := resolveFieldName(e.StructField())
		errors[field] = messageFor(field, e)
	}

	return errors
}

func messageFor(field string, e validator.FieldError) string {
	messages := map[string]func() string{
		"required": func() string {
			return fmt.Sprintf("%s is required", field)
		},
		"gt": func() string {
			return fmt.Sprintf("%s must be greater than %s", field, e.Param())
		},
		"gtefield": func() string {
			return fmt.Sprintf("%s must be greater than or equal to %s", field, resolveFieldName(e.Param()))
		},
		"min": func() string {
			return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
		},
		"oneof": func() string {
			return fmt.Sprintf("%s must be one of [%s]", field, e.Param())
		},
		"hostname_port": func() string {
			return fmt.Sprintf("%s must be a host:port pair", field)
		},
	}

	if msg, ok := messages[e.Tag()]; ok {
		return msg()
	}

	return fmt.Sprintf("%s is invalid", field)
}

func resolveFieldName(field string) string {
	t := reflect.TypeOf(Config{})

	if f, ok := t.FieldByName(field); ok {
		tag := f.Tag.Get("json")
		if tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}

	return strings.ToLower(field)
}
