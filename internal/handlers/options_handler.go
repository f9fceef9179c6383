package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"celerey/internal/onboarding"
)

// OptionsResponse lists the choices offered by the onboarding screens.
type OptionsResponse struct {
	Steps              []onboarding.StepLabel `json:"steps"`
	Genders            []onboarding.Choice    `json:"genders"`
	MaritalStatuses    []onboarding.Choice    `json:"marital_statuses"`
	Dependents         []onboarding.Choice    `json:"dependents"`
	IncomeSources      []onboarding.Choice    `json:"income_sources"`
	FinancialGoals     []onboarding.Choice    `json:"financial_goals"`
	RiskTolerances     []onboarding.Choice    `json:"risk_tolerances"`
	KnowledgeLevels    []onboarding.Choice    `json:"knowledge_levels"`
	Timeframes         []onboarding.Choice    `json:"timeframes"`
	EmergencyFund      []onboarding.Choice    `json:"emergency_fund"`
	Currencies         []onboarding.Currency  `json:"currencies"`
	DefaultCurrency    string                 `json:"default_currency"`
	CountrySuggestions []string               `json:"country_suggestions"`
}

// GetOptions returns the option catalogs of the onboarding screens
// @Summary     Get onboarding options
// @Description Get the steps, choice lists, display currencies and country suggestions used by the screens
// @Tags        options
// @Produce     json
// @Success     200 {object} OptionsResponse "Option catalogs"
// @Router      /options [get]
func GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, OptionsResponse{
		Steps:              onboarding.Steps,
		Genders:            onboarding.GenderChoices,
		MaritalStatuses:    onboarding.MaritalStatusChoices,
		Dependents:         onboarding.DependentsChoices,
		IncomeSources:      onboarding.IncomeSourceChoices,
		FinancialGoals:     onboarding.FinancialGoalChoices,
		RiskTolerances:     onboarding.RiskToleranceChoices,
		KnowledgeLevels:    onboarding.KnowledgeLevelChoices,
		Timeframes:         onboarding.TimeframeChoices,
		EmergencyFund:      onboarding.EmergencyFundChoices,
		Currencies:         onboarding.Currencies,
		DefaultCurrency:    onboarding.DefaultCurrency,
		CountrySuggestions: onboarding.CountrySuggestions,
	})
}
