package sip

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fund is a mutual fund a goal can be planned against.
type Fund struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	CAGR5Y         decimal.Decimal `json:"cagr5y"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	Category       string          `json:"category"`
	RiskLevel      string          `json:"riskLevel"`
}

// Funds is the catalog offered by the goal planner.
var Funds = []Fund{
	{1, "HDFC Top 100 Fund", D(12.8), D(15), "Large Cap", "Moderate"},
	{2, "Axis Bluechip Fund", D(11.9), D(12), "Large Cap", "Moderate"},
	{3, "SBI Small Cap Fund", D(15.2), D(20), "Small Cap", "High"},
	{4, "ICICI Prudential Technology Fund", D(19.8), D(25), "Sectoral", "Very High"},
	{5, "Mirae Asset Emerging Bluechip Fund", D(14.3), D(18), "Mid Cap", "High"},
}

// LookupFund returns the fund with 'id' from the catalog.
func LookupFund(id int) (Fund, error) {
	for _, f := range Funds {
		if f.ID == id {
			return f, nil
		}
	}
	return Fund{}, fmt.Errorf("unknown fund %d", id)
}

// Apply returns 'plan' with the fund's 5 years CAGR as expected return.
func (f Fund) Apply(plan ContributionPlan) ContributionPlan {
	plan.AnnualRatePercent = f.CAGR5Y
	return plan
}
