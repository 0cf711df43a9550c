package config

import (
	"strings"

	"github.com/docker/go-units"
	"github.com/go-playground/validator/v10"
	"github.com/k1LoW/duration"
)

// validSize validates byte-size strings such as "10MB" or "1GB".
// Empty is acceptable; the preview size cap is optional.
func validSize(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	_, err := units.FromHumanSize(value)
	return err == nil
}

// validDuration validates human durations such as "7 days" or "24h".
// Empty is acceptable; an empty retention keeps logs forever.
func validDuration(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	_, err := duration.Parse(value)
	return err == nil
}
