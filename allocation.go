package planner

import "sort"

// ContributionPlan maps each asset to the whole-currency amount to invest
// this month.
type ContributionPlan map[string]Money

// Assets returns the planned asset names in ascending order.
func (cp ContributionPlan) Assets() []string {
	assets := make([]string, 0, len(cp))
	for asset := range cp {
		assets = append(assets, asset)
	}
	sort.Strings(assets)
	return assets
}

// Total returns the sum of all planned amounts.
func (cp ContributionPlan) Total() Money {
	var total Money
	for _, amount := range cp {
		total = total.Add(amount)
	}
	return total
}

// ComputeContributionPlan splits a monthly contribution across the
// portfolio's assets so that the new money flows to the assets furthest
// below their target weight. It never plans a sale: an asset at or above its
// target value gets nothing until every other asset has caught up.
//
// The threshold parameter is a tolerance band on the weight deviation.
// Inside or outside the band the contribution-only top-up resolves to the
// same amount, so the parameter is accepted and validated but has no effect
// on the result yet.
//
// The returned amounts are whole currency units and sum exactly to the
// rounded monthly contribution: the rounding residual is assigned to the
// asset with the largest planned amount, first in asset-name order when
// several tie.
func ComputeContributionPlan(p *Portfolio, monthly Money, threshold Percent) (ContributionPlan, error) {
	if err := checkAssetKeys(p); err != nil {
		return nil, err
	}
	if monthly.IsNegative() {
		return nil, invalidInput("monthly contribution", "must not be negative, got %s", monthly)
	}
	if threshold < 0 {
		return nil, invalidInput("threshold", "must not be negative, got %s", threshold)
	}

	totalAfter := p.TotalValue().Add(monthly)

	// How much new money each asset needs to reach its target share of the
	// grown portfolio. Negative needs are clamped: no sales.
	needed := make(map[string]Money, len(p.Holdings))
	var totalNeeded Money
	for _, asset := range p.Assets() {
		target := totalAfter.Mul(Q(p.Targets[asset].Fraction()))
		n := target.Sub(p.Holdings[asset])
		if n.IsNegative() {
			n = M(0, n.Currency())
		}
		needed[asset] = n
		totalNeeded = totalNeeded.Add(n)
	}

	plan := make(ContributionPlan, len(p.Holdings))
	if totalNeeded.IsZero() {
		// Fully caught up: fall back to a strictly proportional split so the
		// month's contribution still lands somewhere sensible.
		for _, asset := range p.Assets() {
			plan[asset] = monthly.Mul(Q(p.Targets[asset].Fraction())).Round()
		}
	} else {
		for _, asset := range p.Assets() {
			share := needed[asset].DivPrice(totalNeeded)
			plan[asset] = monthly.Mul(share).Round()
		}
	}

	// Independent rounding can leave a residual of a few units; the largest
	// position absorbs it so the plan total matches the contribution exactly.
	diff := monthly.Round().Sub(plan.Total())
	if !diff.IsZero() {
		var biggest string
		for _, asset := range plan.Assets() {
			if biggest == "" || plan[asset].GreaterThan(plan[biggest]) {
				biggest = asset
			}
		}
		plan[biggest] = plan[biggest].Add(diff)
	}

	return plan, nil
}

// checkAssetKeys verifies that holdings and targets cover the same assets.
func checkAssetKeys(p *Portfolio) error {
	for asset := range p.Holdings {
		if _, ok := p.Targets[asset]; !ok {
			return invalidInput("targets", "asset %q has a holding but no target weight", asset)
		}
	}
	for asset := range p.Targets {
		if _, ok := p.Holdings[asset]; !ok {
			return invalidInput("holdings", "asset %q has a target weight but no holding", asset)
		}
	}
	return nil
}
