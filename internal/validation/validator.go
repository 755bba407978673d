package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	apperrors "fixed-deposit-core/internal/errors"
	"fixed-deposit-core/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	branchCodePattern  = regexp.MustCompile(`^[A-Z0-9]{2,20}$`)
	productCodePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]{1,49}$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// Decimals are validated as their float value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("branch_code", validateBranchCode)
	_ = v.RegisterValidation("product_code", validateProductCode)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("rate_percent", validateRatePercent)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and converts the first tag failure into an
// InvalidData AppError naming the field. code selects the error family.
func (v *Validator) Struct(s any, code apperrors.ErrorCode) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.Wrap(code, err, "")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	first := fieldErrs[0]
	return apperrors.New(code, strings.Join(details, "; ")).WithField(first.Field(), first.Param())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "positive_decimal":
		return fmt.Sprintf("%s must be a positive amount", fe.Field())
	case "rate_percent":
		return fmt.Sprintf("%s must be a percentage between 0 and 100", fe.Field())
	case "branch_code":
		return fmt.Sprintf("%s must be 2-20 uppercase letters or digits", fe.Field())
	case "product_code":
		return fmt.Sprintf("%s is not a valid product code", fe.Field())
	case "transaction_type":
		return fmt.Sprintf("%s is not a supported transaction type", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func validateBranchCode(fl validator.FieldLevel) bool {
	return branchCodePattern.MatchString(fl.Field().String())
}

func validateProductCode(fl validator.FieldLevel) bool {
	return productCodePattern.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	_, err := models.ParseTransactionType(fl.Field().String())
	return err == nil
}

// validatePositiveDecimal accepts amounts greater than zero with at most two
// decimal places.
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Float64 {
		return false
	}
	amount := decimal.NewFromFloat(fl.Field().Float())
	if !amount.IsPositive() {
		return false
	}
	return amount.Equal(amount.Round(2))
}

func validateRatePercent(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Float64 {
		return false
	}
	rate := fl.Field().Float()
	return rate >= 0 && rate <= 100
}
