package planner

import "math"

// Projection is the month-by-month outcome of a contribution plan. Each
// trace entry is the portfolio value after that month's contribution and
// growth; Final equals the last trace entry.
type Projection struct {
	Final Money
	Trace []Money
}

// Months returns the number of simulated months.
func (pr Projection) Months() int { return len(pr.Trace) }

// YearEnds returns the projected value at the end of each elapsed year.
func (pr Projection) YearEnds() []Money {
	ends := make([]Money, 0, len(pr.Trace)/12)
	for m := 11; m < len(pr.Trace); m += 12 {
		ends = append(ends, pr.Trace[m])
	}
	return ends
}

// monthlyRate converts a nominal annual return into its monthly equivalent.
func monthlyRate(annualReturn Percent) float64 {
	return math.Pow(1+annualReturn.Fraction(), 1.0/12) - 1
}

// rampContribution interpolates the month-m contribution of a linear ramp
// over months steps. A single-month horizon pins the contribution to the
// final amount, there is nothing to interpolate.
func rampContribution(initial, final float64, m, months int) float64 {
	if months == 1 {
		return final
	}
	return initial + (final-initial)*float64(m)/float64(months-1)
}

// SimulateConstantPlan projects a portfolio forward under a constant monthly
// contribution. The starting value is currentTotal plus extraSavings, and
// each month the contribution is added before growth is applied.
//
// The compounding loop runs on floats on purpose: intermediate values are
// not reported, only the trace, converted back to Money.
func SimulateConstantPlan(currentTotal, monthly Money, years int, annualReturn Percent, extraSavings Money) (Projection, error) {
	if err := checkHorizon(years); err != nil {
		return Projection{}, err
	}

	months := years * 12
	rm := monthlyRate(annualReturn)
	currency := firstCurrency(currentTotal, monthly, extraSavings)
	contribution := monthly.AsFloat()

	value := currentTotal.AsFloat() + extraSavings.AsFloat()
	trace := make([]Money, 0, months)
	for m := 0; m < months; m++ {
		value = (value + contribution) * (1 + rm)
		trace = append(trace, M(value, currency))
	}
	return Projection{Final: M(value, currency), Trace: trace}, nil
}

// SimulateRamp projects a value forward under a monthly contribution that
// grows linearly from initialMonthly in the first month to finalMonthly in
// the last one. As in SimulateConstantPlan, each month's contribution is
// added before growth.
func SimulateRamp(initialMonthly, finalMonthly Money, years int, annualReturn Percent, initialValue Money) (Projection, error) {
	if err := checkHorizon(years); err != nil {
		return Projection{}, err
	}

	months := years * 12
	rm := monthlyRate(annualReturn)
	currency := firstCurrency(initialValue, initialMonthly, finalMonthly)
	initial := initialMonthly.AsFloat()
	final := finalMonthly.AsFloat()

	value := initialValue.AsFloat()
	trace := make([]Money, 0, months)
	for m := 0; m < months; m++ {
		value = (value + rampContribution(initial, final, m, months)) * (1 + rm)
		trace = append(trace, M(value, currency))
	}
	return Projection{Final: M(value, currency), Trace: trace}, nil
}
