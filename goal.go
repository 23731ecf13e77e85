package planner

import "math"

// AnnualContribution summarizes one year of a linear contribution ramp:
// the monthly amount at the start and end of the year, and their average.
type AnnualContribution struct {
	Year  int // 1-based
	Start Money
	End   Money
	Avg   Money
}

// Solver bounds and iteration counts. The fixed iteration counts bound the
// absolute precision to initialBound/2^iterations, far below one currency
// unit for any realistic goal.
const (
	constantSolverIterations = 40
	rampSolverIterations     = 30
	solverFloorBound         = 5000
)

// netOfTax applies the flat end-of-period capital-gains approximation:
// everything is assumed sold at the end, and taxRate is due on the gain
// over the total principal contributed.
func netOfTax(final, principal float64, taxRate Percent) float64 {
	gain := math.Max(0, final-principal)
	return final - taxRate.Fraction()*gain
}

// RequiredConstantMonthly finds the constant monthly contribution needed to
// reach goal in the given number of years, net of capital-gains tax,
// starting from currentTotal plus extraSavings. The result is a whole
// currency amount; it is zero when the goal is already met without
// contributing.
func RequiredConstantMonthly(currentTotal, goal Money, years int, annualReturn Percent, extraSavings Money, taxRate Percent) (Money, error) {
	if err := checkHorizon(years); err != nil {
		return Money{}, err
	}
	if err := checkRates(annualReturn, taxRate); err != nil {
		return Money{}, err
	}

	months := years * 12
	currency := firstCurrency(goal, currentTotal, extraSavings)

	// Net end value for a candidate contribution. Candidates are rounded to
	// whole units first: the schedule being solved for is paid in whole
	// units every month.
	netFinal := func(c float64) float64 {
		contribution := math.Max(0, math.Round(c))
		proj, err := SimulateConstantPlan(currentTotal, M(contribution, currency), years, annualReturn, extraSavings)
		if err != nil {
			return 0
		}
		principal := currentTotal.AsFloat() + extraSavings.AsFloat() + contribution*float64(months)
		return netOfTax(proj.Final.AsFloat(), principal, taxRate)
	}

	target := goal.AsFloat()
	if netFinal(0) >= target {
		return M(0, currency), nil
	}

	low, high := 0.0, math.Max(target/float64(months)*2, solverFloorBound)
	for i := 0; i < constantSolverIterations; i++ {
		mid := (low + high) / 2
		if netFinal(mid) < target {
			low = mid
		} else {
			high = mid
		}
	}
	return M(math.Round(high), currency), nil
}

// RequiredGrowingMonthlies finds the final monthly contribution of a linear
// ramp that starts at initialMonthly and reaches goal in the given number of
// years, net of capital-gains tax. It returns the solved final monthly
// amount together with the per-year schedule.
func RequiredGrowingMonthlies(currentTotal, goal Money, years int, annualReturn Percent, initialMonthly, extraSavings Money, taxRate Percent) (Money, []AnnualContribution, error) {
	if err := checkHorizon(years); err != nil {
		return Money{}, nil, err
	}
	if err := checkRates(annualReturn, taxRate); err != nil {
		return Money{}, nil, err
	}

	months := years * 12
	currency := firstCurrency(goal, initialMonthly, currentTotal)
	initial := initialMonthly.AsFloat()
	start := currentTotal.Add(extraSavings)

	netFinal := func(final float64) float64 {
		proj, err := SimulateRamp(initialMonthly, M(final, currency), years, annualReturn, start)
		if err != nil {
			return 0
		}
		// Total contributed on a linear ramp is the mean contribution times
		// the number of months, exact for the schedule being solved.
		principal := start.AsFloat() + float64(months)*(initial+final)/2
		return netOfTax(proj.Final.AsFloat(), principal, taxRate)
	}

	target := goal.AsFloat()
	low, high := 0.0, math.Max(initial*10, solverFloorBound)
	for i := 0; i < rampSolverIterations; i++ {
		mid := (low + high) / 2
		if netFinal(mid) < target {
			low = mid
		} else {
			high = mid
		}
	}

	final := M(math.Round((low+high)/2), currency)
	schedule, err := AnnualSchedule(initialMonthly, final, years)
	if err != nil {
		return Money{}, nil, err
	}
	return final, schedule, nil
}

// ConstantMonthlyAnnuity is the closed-form counterpart of
// RequiredConstantMonthly for the tax-free case, derived from the future
// value of an annuity-due: the current value is grown over the horizon and
// the shortfall is financed by equal monthly contributions.
func ConstantMonthlyAnnuity(currentTotal, goal Money, years int, annualReturn Percent) (Money, error) {
	if err := checkHorizon(years); err != nil {
		return Money{}, err
	}
	if err := checkRates(annualReturn, 0); err != nil {
		return Money{}, err
	}

	months := years * 12
	rm := monthlyRate(annualReturn)
	currency := firstCurrency(goal, currentTotal)

	grown := currentTotal.AsFloat() * math.Pow(1+rm, float64(months))
	shortfall := goal.AsFloat() - grown
	if shortfall <= 0 {
		return M(0, currency), nil
	}
	if rm == 0 {
		return M(math.Round(shortfall/float64(months)), currency), nil
	}
	c := shortfall * rm / (math.Pow(1+rm, float64(months)) - 1)
	return M(math.Round(c), currency), nil
}

// AnnualSchedule derives the per-year contribution figures of a linear ramp:
// for each year, the monthly amount at the year's first and last month and
// the average of the two, all rounded to whole units.
func AnnualSchedule(initialMonthly, finalMonthly Money, years int) ([]AnnualContribution, error) {
	if err := checkHorizon(years); err != nil {
		return nil, err
	}

	months := years * 12
	currency := firstCurrency(finalMonthly, initialMonthly)
	initial := initialMonthly.AsFloat()
	final := finalMonthly.AsFloat()

	entries := make([]AnnualContribution, 0, years)
	for year := 1; year <= years; year++ {
		startIdx := (year - 1) * 12
		endIdx := year*12 - 1
		if endIdx >= months {
			endIdx = months - 1
		}
		start := math.Round(rampContribution(initial, final, startIdx, months))
		end := math.Round(rampContribution(initial, final, endIdx, months))
		avg := math.Round((start + end) / 2)
		entries = append(entries, AnnualContribution{
			Year:  year,
			Start: M(start, currency),
			End:   M(end, currency),
			Avg:   M(avg, currency),
		})
	}
	return entries, nil
}
