package cmd

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/planfolio/planner"
)

// assetDef is one asset as entered by the user: its name, the value
// currently invested, and the desired target weight in percentage points.
type assetDef struct {
	name   string
	amount float64
	target float64
}

// assetFlag collects repeatable -a NAME:AMOUNT:TARGET definitions.
type assetFlag struct {
	assets []assetDef
}

func (f *assetFlag) String() string {
	defs := make([]string, 0, len(f.assets))
	for _, a := range f.assets {
		defs = append(defs, fmt.Sprintf("%s:%g:%g", a.name, a.amount, a.target))
	}
	return strings.Join(defs, ",")
}

func (f *assetFlag) Set(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return fmt.Errorf("asset %q: want NAME:AMOUNT:TARGET, e.g. \"MSCI World:12000:70\"", s)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return fmt.Errorf("asset %q: name must not be empty", s)
	}
	amount, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return fmt.Errorf("asset %q: bad amount: %w", s, err)
	}
	target, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return fmt.Errorf("asset %q: bad target: %w", s, err)
	}
	f.assets = append(f.assets, assetDef{name: name, amount: amount, target: target})
	return nil
}

// portfolioBuilder accumulates assets for one planning session. The builder
// is the only mutable state around the portfolio; the planner package never
// sees it.
type portfolioBuilder struct {
	currency string
	holdings map[string]planner.Money
	targets  map[string]planner.Percent
}

func newPortfolioBuilder(currency string) *portfolioBuilder {
	return &portfolioBuilder{
		currency: currency,
		holdings: make(map[string]planner.Money),
		targets:  make(map[string]planner.Percent),
	}
}

// Has reports whether an asset with that name was already added.
func (b *portfolioBuilder) Has(name string) bool {
	_, ok := b.holdings[name]
	return ok
}

// Len returns the number of assets added so far.
func (b *portfolioBuilder) Len() int { return len(b.holdings) }

// Add records one asset. Names must be unique, amounts and targets
// non-negative.
func (b *portfolioBuilder) Add(name string, amount, targetPct float64) error {
	if name == "" {
		return fmt.Errorf("asset name must not be empty")
	}
	if b.Has(name) {
		return fmt.Errorf("asset %q was already added, names must be unique", name)
	}
	if amount < 0 {
		return fmt.Errorf("asset %q: invested amount must not be negative", name)
	}
	if targetPct < 0 {
		return fmt.Errorf("asset %q: target weight must not be negative", name)
	}
	b.holdings[name] = planner.M(amount, b.currency)
	b.targets[name] = planner.Percent(targetPct)
	return nil
}

// Build normalizes the target weights to sum to 100% and returns the
// portfolio. Weights off by more than one percentage point are normalized
// with a warning; an all-zero target set cannot be normalized.
func (b *portfolioBuilder) Build() (*planner.Portfolio, error) {
	if len(b.holdings) == 0 {
		return nil, fmt.Errorf("no assets were added")
	}
	var sum float64
	for _, t := range b.targets {
		sum += float64(t)
	}
	if sum == 0 {
		return nil, fmt.Errorf("target weights sum to 0%%, cannot normalize")
	}
	if math.Abs(sum-100) > 1 {
		log.Printf("warning: target weights sum to %.2f%%, normalizing to 100%%", sum)
	}
	targets := make(map[string]planner.Percent, len(b.targets))
	for name, t := range b.targets {
		targets[name] = planner.Percent(float64(t) / sum * 100)
	}
	return &planner.Portfolio{Holdings: b.holdings, Targets: targets}, nil
}

// buildPortfolio turns the repeated -a flags into a portfolio.
func buildPortfolio(assets *assetFlag, currency string) (*planner.Portfolio, error) {
	b := newPortfolioBuilder(currency)
	for _, a := range assets.assets {
		if err := b.Add(a.name, a.amount, a.target); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
