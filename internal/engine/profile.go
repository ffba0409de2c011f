package engine

// Profile is the resolved applicant snapshot a single recommendation or
// comparison call runs against. It is never persisted and never mutated by
// the engine.
type Profile struct {
	Age           int
	Salary        float64
	Budget        float64
	PreferredType string
}

// ResolveBudget fills the budget default of 5% of salary when the caller
// did not supply one.
func (p Profile) ResolveBudget() Profile {
	if p.Budget <= 0 {
		p.Budget = p.Salary * 0.05
	}
	return p
}
