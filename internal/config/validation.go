package config

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
	"git.home.luguber.info/inful/phonedir/internal/render"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("output_format", func(fl validator.FieldLevel) bool {
			_, err := render.ParseFormat(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// Validate checks the configuration and reports every invalid field.
func (c *Config) Validate() error {
	err := structValidator().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return perrors.InternalError("validate configuration").WithCause(err).Build()
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Namespace()+"="+fe.Tag())
	}
	b := perrors.ConfigError("invalid configuration").
		WithContext("fields", strings.Join(fields, ", "))
	if c.Output.Format != "" {
		b = b.WithContext("valid_formats", strings.Join(render.FormatNames(), ", "))
	}
	return b.Build()
}
