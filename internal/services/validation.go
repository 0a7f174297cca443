package services

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/contentply/contentply/internal/domain"
)

// Messages shown when a submission is rejected before any remote call
const (
	MsgEmptyContent = "Please enter a URL or paste your content."
	MsgInvalidURL   = "Please enter a valid URL."
)

// inputValidator holds a singleton validator with english translations
type inputValidator struct {
	translator ut.Translator
	validate   *validator.Validate
}

var (
	validatorOnce sync.Once
	validatorSvc  *inputValidator
)

// getValidator initializes the validator on first use
func getValidator() *inputValidator {
	validatorOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerHTTPURL(v, trans)

		validatorSvc = &inputValidator{translator: trans, validate: v}
	})
	return validatorSvc
}

func registerHTTPURL(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("http_url", trans,
		func(ut ut.Translator) error {
			return ut.Add("http_url", "{0} must be a valid http(s) URL", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("http_url", fe.Field())
			return msg
		},
	)
}

// validateSubmission checks already-trimmed content. URL mode requires a
// parseable URL with a scheme and a host.
func validateSubmission(content string, isURL bool) error {
	rules := "required"
	if isURL {
		rules = "required,url"
	}

	err := getValidator().validate.Var(content, rules)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "url" {
		return &domain.ValidationError{Reason: MsgInvalidURL}
	}
	return &domain.ValidationError{Reason: MsgEmptyContent}
}

// webhookSettings is validated before a new webhook URL is stored
type webhookSettings struct {
	WebhookURL string `json:"webhook_url" validate:"omitempty,http_url"`
}

// validateStruct validates s and returns the first translated message as a ValidationError
func validateStruct(s any) error {
	v := getValidator()
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &domain.ValidationError{Reason: fieldErrs[0].Translate(v.translator)}
	}
	return &domain.ValidationError{Reason: err.Error()}
}
