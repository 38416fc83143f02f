package coinfolio

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/shopspring/decimal"
	validation "gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// ValidationError is a field scoped error. It blocks a form submission and
// goes away once the field is corrected.
type ValidationError struct {
	Field   string // form field name, e.g. "amount"
	Tag     string // failed rule: "required", "number" or "gt"
	Message string // human readable, e.g. "Amount is required"
}

func (e *ValidationError) Error() string { return e.Message }

// numberTag is the rule reported when a field cannot be read as a number.
const numberTag = "number"

// amountInput holds the form fields that carry validation rules.
// Price has none.
type amountInput struct {
	Amount *decimal.Decimal `label:"Amount" validate:"required,gt=0"`
}

// formValidator checks form input and translates failures into messages.
type formValidator struct {
	validate *validation.Validate
	trans    ut.Translator
}

var assetValidator = mustFormValidator()

func mustFormValidator() *formValidator {
	v, err := newFormValidator()
	if err != nil {
		panic(err)
	}
	return v
}

func newFormValidator() (*formValidator, error) {
	translator := en.New()
	uni := ut.New(translator, translator)

	trans, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("translator not found")
	}

	validate := validation.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("label") })
	// decimals are validated by their sign, so gt=0 holds for any positive
	// value, however small.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})

	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	if err := registerMessage(validate, trans, "required", "{0} is required"); err != nil {
		return nil, err
	}
	if err := registerMessage(validate, trans, "gt", "{0} must be greater than {1}"); err != nil {
		return nil, err
	}
	if err := trans.Add(numberTag, "{0} is not a valid number", true); err != nil {
		return nil, err
	}
	return &formValidator{validate: validate, trans: trans}, nil
}

// registerMessage overrides the message of a validation tag. The message
// receives the field label as {0} and the tag parameter as {1}.
func registerMessage(validate *validation.Validate, trans ut.Translator, tag, message string) error {
	return validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
		return ut.Add(tag, message, true)
	}, func(ut ut.Translator, fe validation.FieldError) string {
		t, _ := ut.T(tag, fe.Field(), fe.Param())
		return t
	})
}

// checkAmount validates the amount field. text is what the user typed, value
// its parsed value if any.
func (v *formValidator) checkAmount(text string, value Optional[decimal.Decimal]) *ValidationError {
	d, ok := value.Get()
	if !ok && strings.TrimSpace(text) != "" {
		msg, _ := v.trans.T(numberTag, "Amount")
		return &ValidationError{Field: "amount", Tag: numberTag, Message: msg}
	}
	var in amountInput
	if ok {
		in.Amount = &d
	}
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	var errs validation.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return &ValidationError{Field: "amount", Message: err.Error()}
	}
	fe := errs[0]
	return &ValidationError{
		Field:   strings.ToLower(fe.StructField()),
		Tag:     fe.Tag(),
		Message: fe.Translate(v.trans),
	}
}
