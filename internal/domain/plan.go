package domain

import "fmt"

// Plan is a subscription tier. Tiers are totally ordered: a higher rank
// includes every capability of the ranks below it.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

var planRanks = map[Plan]int{
	PlanFree:       0,
	PlanPremium:    1,
	PlanEnterprise: 2,
}

// ParsePlan validates a raw plan string
func ParsePlan(s string) (Plan, error) {
	p := Plan(s)
	if _, ok := planRanks[p]; !ok {
		return "", fmt.Errorf("unknown plan %q", s)
	}
	return p, nil
}

// Rank returns the plan's position in the tier order. Unknown plans rank
// below free so a corrupted value never grants access.
func (p Plan) Rank() int {
	if rank, ok := planRanks[p]; ok {
		return rank
	}
	return -1
}

// AtLeast reports whether the plan ranks at or above min
func (p Plan) AtLeast(min Plan) bool {
	return p.Rank() >= min.Rank()
}

// InsufficientPlanError is returned when a user's plan ranks below the
// tier a feature requires. It carries both tiers so callers can build a
// descriptive upgrade prompt.
type InsufficientPlanError struct {
	Current  Plan
	Required Plan
}

func (e *InsufficientPlanError) Error() string {
	return fmt.Sprintf("plan %s required (current plan: %s)", e.Required, e.Current)
}

// RequirePlan checks an already-authenticated user against a minimum
// tier. It never re-touches the credential.
func RequirePlan(user *User, min Plan) error {
	if !user.Plan.AtLeast(min) {
		return &InsufficientPlanError{Current: user.Plan, Required: min}
	}
	return nil
}

// PlanLimits describes the usage limits of a plan. -1 means unlimited.
type PlanLimits struct {
	MarketResearch   int `json:"market_research"`
	StoreConnections int `json:"store_connections"`
	APICalls         int `json:"api_calls"`
}

// PlanInfo describes a subscription tier for the public plan catalog
type PlanInfo struct {
	ID       Plan       `json:"id"`
	Name     string     `json:"name"`
	Price    float64    `json:"price"`
	Features []string   `json:"features"`
	Limits   PlanLimits `json:"limits"`
}

// PlanCatalog returns the public catalog of subscription tiers
func PlanCatalog() []PlanInfo {
	return []PlanInfo{
		{
			ID:    PlanFree,
			Name:  "Free",
			Price: 0,
			Features: []string{
				"Up to 5 market researches per month",
				"Basic calculators",
				"Email support",
			},
			Limits: PlanLimits{MarketResearch: 5, StoreConnections: 0, APICalls: 100},
		},
		{
			ID:    PlanPremium,
			Name:  "Premium",
			Price: 49.90,
			Features: []string{
				"Unlimited market researches",
				"Up to 3 store connections",
				"Advanced calculators",
				"Detailed reports",
				"Priority support",
			},
			Limits: PlanLimits{MarketResearch: -1, StoreConnections: 3, APICalls: 10000},
		},
		{
			ID:    PlanEnterprise,
			Name:  "Enterprise",
			Price: 149.90,
			Features: []string{
				"Everything in Premium",
				"Unlimited store connections",
				"Custom reports",
				"24/7 support",
				"Unlimited API access",
			},
			Limits: PlanLimits{MarketResearch: -1, StoreConnections: -1, APICalls: -1},
		},
	}
}
