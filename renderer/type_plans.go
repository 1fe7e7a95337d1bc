package renderer

import (
	"github.com/etnz/sip"
)

// Plans is a struct to represent the saved plans for rendering.
type Plans struct {
	Plans             []PlansRow `json:"plans"`
	TotalPlans        int        `json:"totalPlans"`
	TotalTargetAmount sip.Money  `json:"totalTargetAmount"`
	TotalMonthlySIP   sip.Money  `json:"totalMonthlySIP"`
}

// PlansRow represents a single saved plan.
type PlansRow struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Mode           string      `json:"mode"`
	Status         string      `json:"status"`
	PeriodicAmount sip.Money   `json:"periodicAmount"`
	Years          int         `json:"years"`
	AnnualRate     sip.Percent `json:"annualRate"`
	MaturityValue  sip.Money   `json:"maturityValue"`
	Created        string      `json:"created"`
}

// NewPlans creates a Plans struct from the saved plans, totals are in 'currency'.
func NewPlans(list []sip.SavedPlan, summary sip.PlanSummary, currency string) *Plans {
	p := &Plans{
		Plans:             make([]PlansRow, 0, len(list)),
		TotalPlans:        summary.TotalPlans,
		TotalTargetAmount: sip.M(summary.TotalTargetAmount, currency),
		TotalMonthlySIP:   sip.M(summary.TotalMonthlySIP, currency),
	}
	for _, sp := range list {
		p.Plans = append(p.Plans, PlansRow{
			ID:             sp.ID,
			Name:           sp.Name,
			Mode:           sp.Plan.Mode.String(),
			Status:         sp.Status.String(),
			PeriodicAmount: sip.M(sp.Plan.PeriodicAmount, sp.Plan.Currency),
			Years:          sp.Plan.Years,
			AnnualRate:     sip.P(sp.Plan.AnnualRatePercent),
			MaturityValue:  sip.M(sp.Result.MaturityValue, sp.Plan.Currency),
			Created:        sp.CreatedAt.Format("2006-01-02"),
		})
	}
	return p
}
