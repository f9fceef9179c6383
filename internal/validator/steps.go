package validator

import (
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"celerey/internal/onboarding"
)

// PersonalInfo is the part of the record the personal info screen requires.
type PersonalInfo struct {
	FirstName     string                   `json:"firstName" binding:"notblank"`
	LastName      string                   `json:"lastName" binding:"notblank"`
	Email         string                   `json:"email" binding:"notblank,loose_email"`
	Phone         string                   `json:"phone" binding:"notblank"`
	TimeZone      string                   `json:"timeZone" binding:"notblank"`
	DateOfBirth   string                   `json:"dateOfBirth" binding:"required,birthdate"`
	Citizenship   string                   `json:"citizenship" binding:"notblank"`
	Gender        onboarding.Gender        `json:"gender" binding:"required,gender"`
	MaritalStatus onboarding.MaritalStatus `json:"maritalStatus" binding:"required,marital_status"`
	Dependents    *onboarding.Dependents   `json:"dependents" binding:"required"`
	Agree         bool                     `json:"agree" binding:"required"`
}

// FinancialSnapshot is the part of the record the income & expenses screen
// requires.
type FinancialSnapshot struct {
	MonthlyIncome   string `json:"monthlyIncome" binding:"required"`
	MonthlyExpenses string `json:"monthlyExpenses" binding:"required"`
}

// GoalsAndRisk is the part of the record the goals & risk screen requires.
type GoalsAndRisk struct {
	RiskTolerance      onboarding.RiskTolerance  `json:"riskTolerance" binding:"required,risk_tolerance"`
	FinancialKnowledge onboarding.KnowledgeLevel `json:"financialKnowledge" binding:"required,knowledge_level"`
}

// messages holds the text shown under each field, keyed by JSON field name
// and then by failed tag. The "" entry is used for any other tag.
var messages = map[string]map[string]string{
	"firstName":          {"": "First name is required"},
	"lastName":           {"": "Last name is required"},
	"email":              {"": "Email is required", "loose_email": "Enter a valid email"},
	"phone":              {"": "Phone number is required"},
	"timeZone":           {"": "Location is required"},
	"dateOfBirth":        {"": "Date of birth is required", "birthdate": "Enter a valid date of birth"},
	"citizenship":        {"": "Citizenship is required"},
	"gender":             {"": "Gender is required"},
	"maritalStatus":      {"": "Marital status is required"},
	"dependents":         {"": "Number of dependents is required"},
	"agree":              {"": "You must agree to continue"},
	"monthlyIncome":      {"": "Monthly income is required"},
	"monthlyExpenses":    {"": "Monthly expenses are required"},
	"riskTolerance":      {"": "Please select your risk tolerance"},
	"financialKnowledge": {"": "Please select your financial knowledge level"},
}

// ValidateStep checks that rec holds everything the given screen requires.
// It returns nil or a validator.ValidationErrors.
func ValidateStep(step int, rec onboarding.Record) error {
	var target any
	switch step {
	case onboarding.StepPersonalInfo:
		target = PersonalInfo{
			FirstName:     rec.FirstName,
			LastName:      rec.LastName,
			Email:         rec.Email,
			Phone:         rec.Phone,
			TimeZone:      rec.TimeZone,
			DateOfBirth:   rec.DateOfBirth,
			Citizenship:   rec.Citizenship,
			Gender:        rec.Gender,
			MaritalStatus: rec.MaritalStatus,
			Dependents:    rec.Dependents,
			Agree:         rec.Agree,
		}
	case onboarding.StepFinancialSnapshot:
		target = FinancialSnapshot{
			MonthlyIncome:   rec.MonthlyIncome,
			MonthlyExpenses: rec.MonthlyExpenses,
		}
	case onboarding.StepGoalsAndRisk:
		target = GoalsAndRisk{
			RiskTolerance:      rec.RiskTolerance,
			FinancialKnowledge: rec.FinancialKnowledge,
		}
	default:
		return fmt.Errorf("no validation rules for step %d", step)
	}
	return Get().Struct(target)
}

// FieldErrors maps validation failures to the messages shown under each
// field, keyed by JSON field name. Errors that are not validation failures
// yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, fe.Tag(), fe.Param())
	}
	return out
}

func message(field, tag, param string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
		return byTag[""]
	}

	switch tag {
	case "required", "notblank":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", param)
	case "display_currency":
		return "Unsupported currency"
	}
	return "Invalid value"
}
