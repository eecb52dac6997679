package models

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

var (
	// Translator renders validation errors in English.
	Translator ut.Translator

	setupOnce sync.Once
	setupErr  error

	// custom validation tags & texts
	notBlankTag  = "notblank"
	notBlankText = "{0} cannot be blank"
	requiredTag  = "required"
	requiredText = "{0} is required"
)

// SetupValidator configures gin's validator engine: field names come from the
// json (or form) tags and errors get English messages.
func SetupValidator() error {
	setupOnce.Do(func() {
		validate, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("unexpected binding validator engine")
			return
		}

		_en := en.New()
		uni := ut.New(_en, _en)
		Translator, _ = uni.GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(validate, Translator); err != nil {
			setupErr = errors.Wrap(err, "registering translations")
			return
		}

		validate.RegisterTagNameFunc(fieldName)

		if err := validate.RegisterValidation(notBlankTag, notBlankValidation); err != nil {
			setupErr = errors.Wrap(err, "registering notblank")
			return
		}
		registerCustomTranslation(validate, notBlankTag, notBlankText, false)
		registerCustomTranslation(validate, requiredTag, requiredText, true)
	})
	return setupErr
}

// FieldErrors maps each failing field to its translated message.
func FieldErrors(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = fe.Translate(Translator)
	}
	return fields
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func registerCustomTranslation(validate *validator.Validate, tag, text string, override bool) {
	_ = validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// notBlankValidation rejects strings made only of white space.
func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}
