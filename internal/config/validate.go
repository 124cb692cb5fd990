package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"graphpaint/internal/render"
)

// ErrInvalidConfig is returned when a config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks every field against its constraints and reports all
// violations at once.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("listen_addr", isListenAddr); err != nil {
		return fmt.Errorf("register listen_addr: %w", err)
	}

	if err := validate.RegisterValidation("colormap", isColormap); err != nil {
		return fmt.Errorf("register colormap: %w", err)
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	_ = validate.RegisterTranslation("listen_addr", trans,
		func(ut ut.Translator) error {
			return ut.Add("listen_addr", "{0} must be a loopback host:port listen address", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("listen_addr", fe.Namespace())
			return t
		})

	_ = validate.RegisterTranslation("colormap", trans,
		func(ut ut.Translator) error {
			return ut.Add("colormap", "{0} must be one of "+strings.Join(render.ColormapNames(), ", "), true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("colormap", fe.Namespace())
			return t
		})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(trans))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// isListenAddr accepts host:port on a loopback host, where port may be 0
// (any free port). The viewer is never exposed beyond the local machine.
func isListenAddr(fl validator.FieldLevel) bool {
	host, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return false
	}
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func isColormap(fl validator.FieldLevel) bool {
	_, ok := render.LookupColormap(fl.Field().String())
	return ok
}
