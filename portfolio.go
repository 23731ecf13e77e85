package planner

import "sort"

// Portfolio is a point-in-time snapshot of the assets under plan: the value
// currently invested in each asset and the weight each asset should converge
// to. By convention it is never mutated after construction; a new planning
// session builds a new Portfolio.
type Portfolio struct {
	Holdings map[string]Money   // current value per asset
	Targets  map[string]Percent // target weight per asset, summing to ~100%
}

// Assets returns the asset names in ascending order. Map iteration order is
// not reproducible, and the allocator's tie-break depends on a stable order.
func (p *Portfolio) Assets() []string {
	assets := make([]string, 0, len(p.Holdings))
	for asset := range p.Holdings {
		assets = append(assets, asset)
	}
	sort.Strings(assets)
	return assets
}

// Currency returns the currency the portfolio is valued in.
func (p *Portfolio) Currency() string {
	for _, v := range p.Holdings {
		if v.Currency() != "" {
			return v.Currency()
		}
	}
	return ""
}

// TotalValue returns the sum of all holdings.
func (p *Portfolio) TotalValue() Money {
	var total Money
	for _, v := range p.Holdings {
		total = total.Add(v)
	}
	return total
}

// CurrentWeights returns the weight of each asset in the portfolio.
// When the portfolio is empty every weight is zero.
func (p *Portfolio) CurrentWeights() map[string]Percent {
	weights := make(map[string]Percent, len(p.Holdings))
	total := p.TotalValue()
	if total.IsZero() {
		for asset := range p.Holdings {
			weights[asset] = 0
		}
		return weights
	}
	for asset, v := range p.Holdings {
		weights[asset] = Percent(100 * v.DivPrice(total).AsFloat())
	}
	return weights
}
