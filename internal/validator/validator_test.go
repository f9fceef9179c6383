package validator

import (
	"errors"
	"testing"
	"time"

	"celerey/internal/onboarding"
)

func completePersonalInfo() onboarding.Record {
	rec := onboarding.DefaultRecord()
	rec.FirstName = "Ama"
	rec.LastName = "Owusu"
	rec.Email = "ama@x.com"
	rec.Phone = "+233555"
	rec.TimeZone = "Accra, Ghana"
	rec.DateOfBirth = "1990-01-01"
	rec.Citizenship = "Ghanaian"
	rec.Gender = onboarding.GenderFemale
	rec.MaritalStatus = onboarding.MaritalSingle
	rec.Dependents = onboarding.Ptr(onboarding.Dependents(0))
	rec.Agree = true
	return rec
}

func TestValidateStepPersonalInfo(t *testing.T) {
	t.Run("accepts_complete_record", func(t *testing.T) {
		if err := ValidateStep(onboarding.StepPersonalInfo, completePersonalInfo()); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("reports_every_missing_field", func(t *testing.T) {
		fields := FieldErrors(ValidateStep(onboarding.StepPersonalInfo, onboarding.DefaultRecord()))

		want := map[string]string{
			"firstName":     "First name is required",
			"lastName":      "Last name is required",
			"email":         "Email is required",
			"phone":         "Phone number is required",
			"timeZone":      "Location is required",
			"dateOfBirth":   "Date of birth is required",
			"citizenship":   "Citizenship is required",
			"gender":        "Gender is required",
			"maritalStatus": "Marital status is required",
			"dependents":    "Number of dependents is required",
			"agree":         "You must agree to continue",
		}
		for field, msg := range want {
			if fields[field] != msg {
				t.Errorf("%s: expected %q, got %q", field, msg, fields[field])
			}
		}
		if len(fields) != len(want) {
			t.Errorf("expected %d fields, got %v", len(want), fields)
		}
	})

	tests := []struct {
		name   string
		mutate func(*onboarding.Record)
		field  string
		msg    string
	}{
		{"blank_first_name", func(r *onboarding.Record) { r.FirstName = "   " }, "firstName", "First name is required"},
		{"malformed_email", func(r *onboarding.Record) { r.Email = "ama@x" }, "email", "Enter a valid email"},
		{"email_with_spaces", func(r *onboarding.Record) { r.Email = "ama owusu@x.com" }, "email", "Enter a valid email"},
		{"no_consent", func(r *onboarding.Record) { r.Agree = false }, "agree", "You must agree to continue"},
		{"future_birth_date", func(r *onboarding.Record) { r.DateOfBirth = "2999-01-01" }, "dateOfBirth", "Enter a valid date of birth"},
		{"ancient_birth_date", func(r *onboarding.Record) { r.DateOfBirth = "1899-12-31" }, "dateOfBirth", "Enter a valid date of birth"},
		{"unparseable_birth_date", func(r *onboarding.Record) { r.DateOfBirth = "01/01/1990" }, "dateOfBirth", "Enter a valid date of birth"},
		{"unknown_gender", func(r *onboarding.Record) { r.Gender = "robot" }, "gender", "Gender is required"},
		{"missing_dependents", func(r *onboarding.Record) { r.Dependents = nil }, "dependents", "Number of dependents is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := completePersonalInfo()
			tt.mutate(&rec)

			fields := FieldErrors(ValidateStep(onboarding.StepPersonalInfo, rec))

			if fields[tt.field] != tt.msg {
				t.Errorf("expected %q for %s, got %v", tt.msg, tt.field, fields)
			}
			if len(fields) != 1 {
				t.Errorf("expected only %s to fail, got %v", tt.field, fields)
			}
		})
	}
}

func TestValidateStepFinancialSnapshot(t *testing.T) {
	rec := onboarding.DefaultRecord()
	fields := FieldErrors(ValidateStep(onboarding.StepFinancialSnapshot, rec))
	if fields["monthlyIncome"] != "Monthly income is required" {
		t.Errorf("unexpected monthlyIncome message: %v", fields)
	}
	if fields["monthlyExpenses"] != "Monthly expenses are required" {
		t.Errorf("unexpected monthlyExpenses message: %v", fields)
	}

	rec.MonthlyIncome = "12000"
	rec.MonthlyExpenses = "4000"
	if err := ValidateStep(onboarding.StepFinancialSnapshot, rec); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateStepGoalsAndRisk(t *testing.T) {
	rec := onboarding.DefaultRecord()
	fields := FieldErrors(ValidateStep(onboarding.StepGoalsAndRisk, rec))
	if fields["riskTolerance"] != "Please select your risk tolerance" {
		t.Errorf("unexpected riskTolerance message: %v", fields)
	}
	if fields["financialKnowledge"] != "Please select your financial knowledge level" {
		t.Errorf("unexpected financialKnowledge message: %v", fields)
	}

	rec.RiskTolerance = onboarding.RiskMedium
	rec.FinancialKnowledge = onboarding.KnowledgeBeginner
	if err := ValidateStep(onboarding.StepGoalsAndRisk, rec); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateStepUnknown(t *testing.T) {
	err := ValidateStep(7, onboarding.DefaultRecord())
	if err == nil {
		t.Fatal("expected error for unknown step")
	}
	if FieldErrors(err) != nil {
		t.Error("expected no field errors for a non-validation error")
	}
}

func TestFieldErrorsNonValidation(t *testing.T) {
	if got := FieldErrors(errors.New("boom")); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := FieldErrors(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestPatchRules(t *testing.T) {
	tests := []struct {
		name  string
		patch onboarding.Patch
		field string
	}{
		{"unknown_marital_status", onboarding.Patch{MaritalStatus: onboarding.Ptr(onboarding.MaritalStatus("complicated"))}, "maritalStatus"},
		{"unknown_income_source", onboarding.Patch{PrimaryIncomeSource: onboarding.Ptr(onboarding.IncomeSource("lottery"))}, "primaryIncomeSource"},
		{"unknown_goal", onboarding.Patch{FinancialGoals: onboarding.Ptr([]string{"retirement", "yacht"})}, "financialGoals[1]"},
		{"unknown_timeframe", onboarding.Patch{InvestmentTimeframe: onboarding.Ptr(onboarding.Timeframe("forever"))}, "investmentTimeframe"},
		{"unknown_emergency_fund", onboarding.Patch{EmergencyFund: onboarding.Ptr(onboarding.EmergencyFund("maybe"))}, "emergencyFund"},
		{"future_birth_date", onboarding.Patch{DateOfBirth: onboarding.Ptr("2999-12-31")}, "dateOfBirth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := FieldErrors(Get().Struct(tt.patch))
			if _, ok := fields[tt.field]; !ok {
				t.Errorf("expected %s to fail, got %v", tt.field, fields)
			}
		})
	}

	t.Run("partial_free_text_is_accepted", func(t *testing.T) {
		p := onboarding.Patch{FirstName: onboarding.Ptr(""), Email: onboarding.Ptr("ama@")}
		if err := Get().Struct(p); err != nil {
			t.Errorf("expected in-progress typing to pass, got %v", err)
		}
	})

	t.Run("known_enums_are_accepted", func(t *testing.T) {
		p := onboarding.Patch{
			Gender:         onboarding.Ptr(onboarding.GenderPreferNotToSay),
			FinancialGoals: onboarding.Ptr([]string{"home", "travel"}),
			RiskTolerance:  onboarding.Ptr(onboarding.RiskHigh),
		}
		if err := Get().Struct(p); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

func TestBirthDateBoundaries(t *testing.T) {
	orig := now
	now = func() time.Time { return time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC) }
	defer func() { now = orig }()

	type form struct {
		DOB string `json:"dob" binding:"birthdate"`
	}
	tests := map[string]bool{
		"2024-06-15": true,
		"2024-06-16": false,
		"1900-01-01": true,
		"1899-12-31": false,
	}
	for date, ok := range tests {
		err := Get().Struct(form{DOB: date})
		if (err == nil) != ok {
			t.Errorf("%s: expected valid=%v, got err=%v", date, ok, err)
		}
	}
}

func TestCurrencyRules(t *testing.T) {
	type form struct {
		Display string `json:"display" binding:"display_currency"`
	}
	for _, code := range []string{"GHS", "ngn", "USD"} {
		if err := Get().Struct(form{Display: code}); err != nil {
			t.Errorf("%s: expected no error, got %v", code, err)
		}
	}

	fields := FieldErrors(Get().Struct(form{Display: "KES"}))
	if fields["display"] != "Unsupported currency" {
		t.Errorf("unexpected fields: %v", fields)
	}
}
