// Package onboarding holds the onboarding record, the partial updates that are
// merged into it, and the Store that owns a single record on behalf of one
// onboarding session.
package onboarding

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Wizard steps, in the order the screens are shown.
const (
	StepPersonalInfo      = 1
	StepFinancialSnapshot = 2
	StepGoalsAndRisk      = 3

	FirstStep = StepPersonalInfo
	LastStep  = StepGoalsAndRisk
)

// StorageKey is the fixed identifier of the persisted onboarding slot.
const StorageKey = "onboarding-storage"

// ValidStep reports whether step is one of the wizard's steps.
func ValidStep(step int) bool {
	return step >= FirstStep && step <= LastStep
}

// Gender is the self-declared gender of the applicant.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

// MaritalStatus is the applicant's marital status.
type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "single"
	MaritalMarried   MaritalStatus = "married"
	MaritalDivorced  MaritalStatus = "divorced"
	MaritalWidowed   MaritalStatus = "widowed"
	MaritalSeparated MaritalStatus = "separated"
)

// IncomeSource tags the applicant's primary source of income.
type IncomeSource string

const (
	IncomeSalary      IncomeSource = "salary"
	IncomeBusiness    IncomeSource = "business"
	IncomeInvestments IncomeSource = "investments"
	IncomeRental      IncomeSource = "rental"
	IncomeRetirement  IncomeSource = "retirement"
	IncomeFreelance   IncomeSource = "freelance"
	IncomeMultiple    IncomeSource = "multiple"
	IncomeOther       IncomeSource = "other"
)

// KnowledgeLevel is the self-assessed financial knowledge.
type KnowledgeLevel string

const (
	KnowledgeBeginner     KnowledgeLevel = "beginner"
	KnowledgeIntermediate KnowledgeLevel = "intermediate"
	KnowledgeAdvanced     KnowledgeLevel = "advanced"
)

// Timeframe is the investment time horizon.
type Timeframe string

const (
	TimeframeShort  Timeframe = "short"
	TimeframeMedium Timeframe = "medium"
	TimeframeLong   Timeframe = "long"
)

// RiskTolerance is the applicant's appetite for volatility.
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "low"
	RiskMedium RiskTolerance = "medium"
	RiskHigh   RiskTolerance = "high"
)

// EmergencyFund describes whether 3-6 months of expenses are set aside.
type EmergencyFund string

const (
	EmergencyFundYes     EmergencyFund = "yes"
	EmergencyFundPartial EmergencyFund = "partial"
	EmergencyFundNo      EmergencyFund = "no"
)

// Dependents counts the applicant's dependents. Counts of five or more
// collapse into the "5+" bucket, which is encoded as a JSON string; smaller
// counts are encoded as JSON numbers.
type Dependents int

// DependentsFivePlus is the "5+" bucket.
const DependentsFivePlus Dependents = 5

const dependentsFivePlusLabel = "5+"

// ParseDependents parses "0".."4" and "5+". Larger plain numbers fall into
// the "5+" bucket.
func ParseDependents(s string) (Dependents, error) {
	if s == dependentsFivePlusLabel {
		return DependentsFivePlus, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid dependents value %q", s)
	}
	if n > int(DependentsFivePlus) {
		n = int(DependentsFivePlus)
	}
	return Dependents(n), nil
}

func (d Dependents) String() string {
	if d >= DependentsFivePlus {
		return dependentsFivePlusLabel
	}
	return strconv.Itoa(int(d))
}

// MarshalJSON implements json.Marshaler.
func (d Dependents) MarshalJSON() ([]byte, error) {
	if d >= DependentsFivePlus {
		return json.Marshal(dependentsFivePlusLabel)
	}
	return []byte(strconv.Itoa(int(d))), nil
}

// UnmarshalJSON accepts a JSON number or a string such as "3" or "5+".
func (d *Dependents) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseDependents(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid dependents value %s", data)
	}
	parsed, err := ParseDependents(strconv.Itoa(n))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Record is the single document accumulated across the onboarding screens.
// JSON names match the layout previously written by the web client so stored
// sessions keep loading.
type Record struct {
	// Personal information
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	TimeZone      string        `json:"timeZone"`
	Agree         bool          `json:"agree"`
	UserID        string        `json:"userId,omitempty"`
	DateOfBirth   string        `json:"dateOfBirth,omitempty"`
	Citizenship   string        `json:"citizenship,omitempty"`
	Gender        Gender        `json:"gender,omitempty"`
	MaritalStatus MaritalStatus `json:"maritalStatus,omitempty"`
	Dependents    *Dependents   `json:"dependents,omitempty"`

	// Income & expenses
	PrimaryIncomeSource IncomeSource `json:"primaryIncomeSource,omitempty"`
	MonthlyIncome       string       `json:"monthlyIncome,omitempty"`
	MonthlyExpenses     string       `json:"monthlyExpenses,omitempty"`

	// Assets
	CashSavings         string `json:"cashSavings,omitempty"`
	InvestmentPortfolio string `json:"investmentPortfolio,omitempty"`
	RetirementAccounts  string `json:"retirementAccounts,omitempty"`
	RealEstateValue     string `json:"realEstateValue,omitempty"`
	OtherAssets         string `json:"otherAssets,omitempty"`

	// Liabilities
	MortgageDebt     string `json:"mortgageDebt,omitempty"`
	StudentLoans     string `json:"studentLoans,omitempty"`
	CreditCardDebt   string `json:"creditCardDebt,omitempty"`
	PersonalLoans    string `json:"personalLoans,omitempty"`
	OtherLiabilities string `json:"otherLiabilities,omitempty"`

	AssetCountries []string `json:"assetCountries"`

	// Knowledge & preferences
	FinancialKnowledge  KnowledgeLevel `json:"financialKnowledge,omitempty"`
	FinancialGoals      []string       `json:"financialGoals"`
	InvestmentTimeframe Timeframe      `json:"investmentTimeframe,omitempty"`
	RiskTolerance       RiskTolerance  `json:"riskTolerance,omitempty"`
	EmergencyFund       EmergencyFund  `json:"emergencyFund,omitempty"`

	// Progress
	CurrentStep    int   `json:"currentStep"`
	CompletedSteps []int `json:"completedSteps"`
}

// DefaultRecord returns the empty record a new or restarted session begins with.
func DefaultRecord() Record {
	return Record{
		CurrentStep:    FirstStep,
		CompletedSteps: []int{},
	}
}

// Clone returns a deep copy; mutating the copy never reaches the original.
func (r Record) Clone() Record {
	out := r
	if r.Dependents != nil {
		d := *r.Dependents
		out.Dependents = &d
	}
	out.AssetCountries = slices.Clone(r.AssetCountries)
	out.FinancialGoals = slices.Clone(r.FinancialGoals)
	out.CompletedSteps = slices.Clone(r.CompletedSteps)
	return out
}

// FullName joins first and last name.
func (r Record) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// HasCompleted reports whether step appears in the completed steps.
func (r Record) HasCompleted(step int) bool {
	return slices.Contains(r.CompletedSteps, step)
}
