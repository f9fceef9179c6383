package onboarding

import (
	"slices"
	"strings"
)

// Option lists offered by the onboarding screens.

// Choice is a selectable value with its display text.
type Choice struct {
	Value       string   `json:"value"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Details     []string `json:"details,omitempty"`
}

// StepLabel names a wizard step for the progress indicator.
type StepLabel struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
}

// Steps lists the wizard's steps in order.
var Steps = []StepLabel{
	{Number: StepPersonalInfo, Label: "Personal Info"},
	{Number: StepFinancialSnapshot, Label: "Income & Expenses"},
	{Number: StepGoalsAndRisk, Label: "Goals & Risk"},
}

var GenderChoices = []Choice{
	{Value: string(GenderMale), Label: "Male"},
	{Value: string(GenderFemale), Label: "Female"},
	{Value: string(GenderOther), Label: "Other"},
	{Value: string(GenderPreferNotToSay), Label: "Prefer not to say"},
}

var MaritalStatusChoices = []Choice{
	{Value: string(MaritalSingle), Label: "Single"},
	{Value: string(MaritalMarried), Label: "Married"},
	{Value: string(MaritalDivorced), Label: "Divorced"},
	{Value: string(MaritalWidowed), Label: "Widowed"},
	{Value: string(MaritalSeparated), Label: "Separated"},
}

var DependentsChoices = []Choice{
	{Value: "0", Label: "0"},
	{Value: "1", Label: "1"},
	{Value: "2", Label: "2"},
	{Value: "3", Label: "3"},
	{Value: "4", Label: "4"},
	{Value: "5+", Label: "5+"},
}

var IncomeSourceChoices = []Choice{
	{Value: string(IncomeSalary), Label: "Salary/Wages"},
	{Value: string(IncomeBusiness), Label: "Business Income"},
	{Value: string(IncomeInvestments), Label: "Investment Income"},
	{Value: string(IncomeRental), Label: "Rental Income"},
	{Value: string(IncomeRetirement), Label: "Retirement/Pension"},
	{Value: string(IncomeFreelance), Label: "Freelance/Gig Work"},
	{Value: string(IncomeMultiple), Label: "Multiple Sources"},
	{Value: string(IncomeOther), Label: "Other"},
}

var FinancialGoalChoices = []Choice{
	{Value: "retirement", Label: "Retirement Planning"},
	{Value: "home", Label: "Buying a Home"},
	{Value: "education", Label: "Education Funding"},
	{Value: "debt", Label: "Debt Reduction"},
	{Value: "investment", Label: "Wealth Building"},
	{Value: "emergency", Label: "Emergency Fund"},
	{Value: "travel", Label: "Travel/Vacation"},
	{Value: "other", Label: "Other"},
}

var RiskToleranceChoices = []Choice{
	{Value: string(RiskLow), Label: "Conservative", Description: "I prefer stable, predictable returns even if growth is slower"},
	{Value: string(RiskMedium), Label: "Balanced", Description: "I want a balance of growth and stability"},
	{Value: string(RiskHigh), Label: "Growth-Oriented", Description: "I seek maximum growth potential and can handle volatility"},
}

var KnowledgeLevelChoices = []Choice{
	{
		Value:       string(KnowledgeBeginner),
		Label:       "Beginner",
		Description: "I'm new to financial planning and investing",
		Details: []string{
			"Just starting to learn about finances",
			"Need help with basic budgeting and saving",
			"Want to understand investment basics",
		},
	},
	{
		Value:       string(KnowledgeIntermediate),
		Label:       "Intermediate",
		Description: "I have some knowledge but want to improve",
		Details: []string{
			"Understand basic investing concepts",
			"Have started some investments",
			"Want to optimize my financial strategy",
		},
	},
	{
		Value:       string(KnowledgeAdvanced),
		Label:       "Advanced",
		Description: "I'm experienced with finances and investing",
		Details: []string{
			"Comfortable with complex investment strategies",
			"Regularly manage my portfolio",
			"Looking for advanced optimization",
		},
	},
}

var TimeframeChoices = []Choice{
	{Value: string(TimeframeShort), Label: "Short-term", Description: "1-3 years"},
	{Value: string(TimeframeMedium), Label: "Medium-term", Description: "3-7 years"},
	{Value: string(TimeframeLong), Label: "Long-term", Description: "7+ years"},
}

var EmergencyFundChoices = []Choice{
	{Value: string(EmergencyFundYes), Label: "Yes"},
	{Value: string(EmergencyFundPartial), Label: "Partially"},
	{Value: string(EmergencyFundNo), Label: "No"},
}

// Currency is a display currency offered on the financial snapshot screen.
// Amounts are stored without currency; the choice only affects display.
type Currency struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
}

// DefaultCurrency is shown until the applicant picks another one.
const DefaultCurrency = "USD"

var Currencies = []Currency{
	{Code: "USD", Label: "US Dollar ($)", Symbol: "$"},
	{Code: "GHS", Label: "Ghanaian Cedi (₵)", Symbol: "₵"},
	{Code: "GBP", Label: "British Pound (£)", Symbol: "£"},
	{Code: "EUR", Label: "Euro (€)", Symbol: "€"},
	{Code: "CAD", Label: "Canadian Dollar (C$)", Symbol: "C$"},
	{Code: "AED", Label: "UAE Dirham (د.إ)", Symbol: "د.إ"},
	{Code: "ZAR", Label: "South African Rand (R)", Symbol: "R"},
	{Code: "NGN", Label: "Nigerian Naira (₦)", Symbol: "₦"},
}

// CountrySuggestions seeds the asset-location autocomplete.
var CountrySuggestions = []string{
	"Ghana",
	"United States",
	"United Kingdom",
	"Canada",
	"United Arab Emirates",
	"South Africa",
	"Nigeria",
	"Kenya",
	"Germany",
	"France",
	"Australia",
	"Singapore",
	"Japan",
	"China",
	"India",
	"Brazil",
}

// LookupCurrency returns the display currency with the given code.
func LookupCurrency(code string) (Currency, bool) {
	i := slices.IndexFunc(Currencies, func(c Currency) bool { return c.Code == code })
	if i < 0 {
		return Currency{}, false
	}
	return Currencies[i], true
}

// CurrencySymbol returns the symbol of code, falling back to "$".
func CurrencySymbol(code string) string {
	if c, ok := LookupCurrency(code); ok {
		return c.Symbol
	}
	return "$"
}

// SuggestCountries filters CountrySuggestions by a case-insensitive substring
// of query, leaving out countries that are already selected.
func SuggestCountries(query string, selected []string) []string {
	q := strings.ToLower(query)
	out := []string{}
	for _, country := range CountrySuggestions {
		if !strings.Contains(strings.ToLower(country), q) {
			continue
		}
		if slices.Contains(selected, country) {
			continue
		}
		out = append(out, country)
	}
	return out
}

func hasChoice(choices []Choice, value string) bool {
	return slices.ContainsFunc(choices, func(c Choice) bool { return c.Value == value })
}

func ValidGender(v string) bool         { return hasChoice(GenderChoices, v) }
func ValidMaritalStatus(v string) bool  { return hasChoice(MaritalStatusChoices, v) }
func ValidIncomeSource(v string) bool   { return hasChoice(IncomeSourceChoices, v) }
func ValidFinancialGoal(v string) bool  { return hasChoice(FinancialGoalChoices, v) }
func ValidRiskTolerance(v string) bool  { return hasChoice(RiskToleranceChoices, v) }
func ValidKnowledgeLevel(v string) bool { return hasChoice(KnowledgeLevelChoices, v) }
func ValidTimeframe(v string) bool      { return hasChoice(TimeframeChoices, v) }
func ValidEmergencyFund(v string) bool  { return hasChoice(EmergencyFundChoices, v) }
