package formulaorder

// Formula is one declaration line in the ordered output.
type Formula struct {
	// Label is the declaration text from its first token up to the end of
	// the line, trailing whitespace included.
	Label string `json:"label" yaml:"label"`
	// Line is the 1-based input line.
	Line     int      `json:"line" yaml:"line"`
	Declares []string `json:"declares" yaml:"declares"`
	Calls    []string `json:"calls,omitempty" yaml:"calls,omitempty"`
	// DependsOn lists the labels of the formulas declaring a called name,
	// in input order.
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	// Rank is the 1-based position in the output.
	Rank int `json:"rank" yaml:"rank"`
}

// Result is a successful ordering.
type Result struct {
	Formulas []Formula `json:"formulas" yaml:"formulas"`
}

// Labels returns the formula labels in output order.
func (r *Result) Labels() []string {
	labels := make([]string, len(r.Formulas))
	for i, f := range r.Formulas {
		labels[i] = f.Label
	}
	return labels
}

// Len returns the number of formulas.
func (r *Result) Len() int {
	return len(r.Formulas)
}
