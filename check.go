package main

// Outcome records whether one expected answer was found.
type Outcome struct {
	Token string
	Found bool
}

// Report is the result of checking an answer key against produced tokens.
type Report struct {
	Outcomes []Outcome
	Passed   bool
}

// Found returns how many outcomes were found.
func (r *Report) Found() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Found {
			n++
		}
	}
	return n
}

// Missing returns the expected tokens that were not produced, in key order.
func (r *Report) Missing() []string {
	var missing []string
	for _, o := range r.Outcomes {
		if !o.Found {
			missing = append(missing, o.Token)
		}
	}
	return missing
}

// check looks up every expected token, in order, among the actual tokens.
// The report passes iff expected is a subset of actual; an empty key passes.
func check(expected, actual []string) *Report {
	seen := make(map[string]struct{}, len(actual))
	for _, tok := range actual {
		seen[tok] = struct{}{}
	}

	r := &Report{
		Outcomes: make([]Outcome, 0, len(expected)),
		Passed:   true,
	}
	for _, want := range expected {
		_, ok := seen[want]
		if !ok {
			r.Passed = false
		}
		r.Outcomes = append(r.Outcomes, Outcome{Token: want, Found: ok})
	}
	return r
}
