package sweep

// Tally counts how many swept values were divisible by 2, 3 and 5.
type Tally struct {
	Two   uint64
	Three uint64
	Five  uint64
}

// Add returns the element-wise sum of t and o.
func (t Tally) Add(o Tally) Tally {
	return Tally{
		Two:   t.Two + o.Two,
		Three: t.Three + o.Three,
		Five:  t.Five + o.Five,
	}
}

// observe tests v against each divisor independently.
func (t *Tally) observe(v uint64) {
	if v%2 == 0 {
		t.Two++
	}
	if v%3 == 0 {
		t.Three++
	}
	if v%5 == 0 {
		t.Five++
	}
}

// ClosedForm returns the tally of [lo, hi] without iterating. Zero is never
// part of the sequence, so lo is clamped to 1.
func ClosedForm(lo, hi uint64) Tally {
	if lo == 0 {
		lo = 1
	}
	if hi < lo {
		return Tally{}
	}
	multiples := func(k uint64) uint64 {
		return hi/k - (lo-1)/k
	}
	return Tally{
		Two:   multiples(2),
		Three: multiples(3),
		Five:  multiples(5),
	}
}
