package onboarding

import "slices"

// Patch is a sparse update of a Record. A nil field is absent and leaves the
// record's value untouched; a non-nil field overwrites it, even with a zero
// value. Progress fields are deliberately missing: they change only through
// Store.SetStep, Store.CompleteStep and Store.Reset.
type Patch struct {
	FirstName     *string        `json:"firstName,omitempty" binding:"omitempty,max=100"`
	LastName      *string        `json:"lastName,omitempty" binding:"omitempty,max=100"`
	Email         *string        `json:"email,omitempty" binding:"omitempty,max=255"`
	Phone         *string        `json:"phone,omitempty" binding:"omitempty,max=50"`
	TimeZone      *string        `json:"timeZone,omitempty" binding:"omitempty,max=100"`
	Agree         *bool          `json:"agree,omitempty"`
	UserID        *string        `json:"userId,omitempty" binding:"omitempty,max=64"`
	DateOfBirth   *string        `json:"dateOfBirth,omitempty" binding:"omitempty,birthdate"`
	Citizenship   *string        `json:"citizenship,omitempty" binding:"omitempty,max=100"`
	Gender        *Gender        `json:"gender,omitempty" binding:"omitempty,gender"`
	MaritalStatus *MaritalStatus `json:"maritalStatus,omitempty" binding:"omitempty,marital_status"`
	Dependents    *Dependents    `json:"dependents,omitempty"`

	PrimaryIncomeSource *IncomeSource `json:"primaryIncomeSource,omitempty" binding:"omitempty,income_source"`
	MonthlyIncome       *string       `json:"monthlyIncome,omitempty"`
	MonthlyExpenses     *string       `json:"monthlyExpenses,omitempty"`
	CashSavings         *string       `json:"cashSavings,omitempty"`
	InvestmentPortfolio *string       `json:"investmentPortfolio,omitempty"`
	RetirementAccounts  *string       `json:"retirementAccounts,omitempty"`
	RealEstateValue     *string       `json:"realEstateValue,omitempty"`
	OtherAssets         *string       `json:"otherAssets,omitempty"`
	MortgageDebt        *string       `json:"mortgageDebt,omitempty"`
	StudentLoans        *string       `json:"studentLoans,omitempty"`
	CreditCardDebt      *string       `json:"creditCardDebt,omitempty"`
	PersonalLoans       *string       `json:"personalLoans,omitempty"`
	OtherLiabilities    *string       `json:"otherLiabilities,omitempty"`

	AssetCountries *[]string `json:"assetCountries,omitempty" binding:"omitempty,dive,max=100"`

	FinancialKnowledge  *KnowledgeLevel `json:"financialKnowledge,omitempty" binding:"omitempty,knowledge_level"`
	FinancialGoals      *[]string       `json:"financialGoals,omitempty" binding:"omitempty,dive,financial_goal"`
	InvestmentTimeframe *Timeframe      `json:"investmentTimeframe,omitempty" binding:"omitempty,timeframe"`
	RiskTolerance       *RiskTolerance  `json:"riskTolerance,omitempty" binding:"omitempty,risk_tolerance"`
	EmergencyFund       *EmergencyFund  `json:"emergencyFund,omitempty" binding:"omitempty,emergency_fund"`
}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Apply merges the present fields of p into r.
func (p Patch) Apply(r *Record) {
	set(&r.FirstName, p.FirstName)
	set(&r.LastName, p.LastName)
	set(&r.Email, p.Email)
	set(&r.Phone, p.Phone)
	set(&r.TimeZone, p.TimeZone)
	set(&r.Agree, p.Agree)
	set(&r.UserID, p.UserID)
	set(&r.DateOfBirth, p.DateOfBirth)
	set(&r.Citizenship, p.Citizenship)
	set(&r.Gender, p.Gender)
	set(&r.MaritalStatus, p.MaritalStatus)
	if p.Dependents != nil {
		d := *p.Dependents
		r.Dependents = &d
	}

	set(&r.PrimaryIncomeSource, p.PrimaryIncomeSource)
	set(&r.MonthlyIncome, p.MonthlyIncome)
	set(&r.MonthlyExpenses, p.MonthlyExpenses)
	set(&r.CashSavings, p.CashSavings)
	set(&r.InvestmentPortfolio, p.InvestmentPortfolio)
	set(&r.RetirementAccounts, p.RetirementAccounts)
	set(&r.RealEstateValue, p.RealEstateValue)
	set(&r.OtherAssets, p.OtherAssets)
	set(&r.MortgageDebt, p.MortgageDebt)
	set(&r.StudentLoans, p.StudentLoans)
	set(&r.CreditCardDebt, p.CreditCardDebt)
	set(&r.PersonalLoans, p.PersonalLoans)
	set(&r.OtherLiabilities, p.OtherLiabilities)

	if p.AssetCountries != nil {
		r.AssetCountries = dedupe(*p.AssetCountries)
	}

	set(&r.FinancialKnowledge, p.FinancialKnowledge)
	if p.FinancialGoals != nil {
		r.FinancialGoals = dedupe(*p.FinancialGoals)
	}
	set(&r.InvestmentTimeframe, p.InvestmentTimeframe)
	set(&r.RiskTolerance, p.RiskTolerance)
	set(&r.EmergencyFund, p.EmergencyFund)
}

// IsEmpty reports whether the patch carries no fields.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// dedupe copies values, keeping the first occurrence of each entry.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
