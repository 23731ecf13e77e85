package planner

import "fmt"

// Percent is expressed in percentage points: Percent(50) is 50%.
type Percent float64

// Fraction returns the 0-1 value used by the planning algorithms.
func (p Percent) Fraction() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
