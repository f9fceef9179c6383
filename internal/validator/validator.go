// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"celerey/internal/onboarding"
)

var looseEmailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// birthDateLayout is the format of the date picker's value.
const birthDateLayout = "2006-01-02"

var earliestBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// now is replaced in tests.
var now = time.Now

var (
	once     sync.Once
	validate *validator.Validate
)

// Get returns a standalone validator with the custom rules installed. It reads
// the same "binding" tags as Gin so structs validate identically in both.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
		configure(validate)
	})
	return validate
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configure(v)
	}
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)

	_ = v.RegisterValidation("display_currency", validateDisplayCurrency)
	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("loose_email", validateLooseEmail)
	_ = v.RegisterValidation("birthdate", validateBirthDate)
	_ = v.RegisterValidation("gender", choice(onboarding.ValidGender))
	_ = v.RegisterValidation("marital_status", choice(onboarding.ValidMaritalStatus))
	_ = v.RegisterValidation("income_source", choice(onboarding.ValidIncomeSource))
	_ = v.RegisterValidation("knowledge_level", choice(onboarding.ValidKnowledgeLevel))
	_ = v.RegisterValidation("timeframe", choice(onboarding.ValidTimeframe))
	_ = v.RegisterValidation("risk_tolerance", choice(onboarding.ValidRiskTolerance))
	_ = v.RegisterValidation("emergency_fund", choice(onboarding.ValidEmergencyFund))
	_ = v.RegisterValidation("financial_goal", choice(onboarding.ValidFinancialGoal))
}

// jsonFieldName reports fields by their JSON name so error keys match the
// request body.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func choice(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	}
}

func validateDisplayCurrency(fl validator.FieldLevel) bool {
	_, ok := onboarding.LookupCurrency(strings.ToUpper(fl.Field().String()))
	return ok
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateLooseEmail(fl validator.FieldLevel) bool {
	return looseEmailRegex.MatchString(fl.Field().String())
}

func validateBirthDate(fl validator.FieldLevel) bool {
	d, err := time.Parse(birthDateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	today := now().UTC().Truncate(24 * time.Hour)
	return !d.Before(earliestBirthDate) && !d.After(today)
}
