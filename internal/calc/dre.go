package calc

import "sellerhub/internal/domain"

// DRE computes an income statement from revenue and maps of cost and
// expense line items. Category labels are arbitrary; only the values are
// summed. Negative profit is a valid result, never an error, and all
// ratio fields are 0 when revenue is 0.
func DRE(revenue float64, costs, expenses map[string]float64) *domain.DREResult {
	totalCosts := 0.0
	for _, cost := range costs {
		totalCosts += cost
	}
	totalExpenses := 0.0
	for _, expense := range expenses {
		totalExpenses += expense
	}

	grossProfit := revenue - totalCosts
	netProfit := grossProfit - totalExpenses

	var grossMargin, netMargin, costPct, expensePct float64
	if revenue > 0 {
		grossMargin = grossProfit / revenue * 100
		netMargin = netProfit / revenue * 100
		costPct = totalCosts / revenue * 100
		expensePct = totalExpenses / revenue * 100
	}

	return &domain.DREResult{
		Revenue:       revenue,
		TotalCosts:    totalCosts,
		TotalExpenses: totalExpenses,
		GrossProfit:   grossProfit,
		NetProfit:     netProfit,
		GrossMargin:   round2(grossMargin),
		NetMargin:     round2(netMargin),
		CostPct:       round2(costPct),
		ExpensePct:    round2(expensePct),
	}
}
