package harness

// TraceEvent records the evaluation of one case.
type TraceEvent struct {
	Seq    int64  `json:"seq"`
	Case   string `json:"case"`
	Op     string `json:"op"` // operator name, e.g. "shl"
	LHS    string `json:"lhs"`
	RHS    string `json:"rhs,omitempty"`
	Result string `json:"result,omitempty"` // rendered value or "true"/"false"
	Kind   string `json:"kind,omitempty"`   // "int", "float" or "bool"
	Error  string `json:"error,omitempty"`  // numeric.ErrorCode
	Pass   bool   `json:"pass"`
}

// Result is the outcome of a suite execution.
type Result struct {
	// RunID identifies this execution (UUIDv7 unless overridden).
	RunID string `json:"run_id"`

	// Suite is the suite name.
	Suite string `json:"suite"`

	// Pass is true if every case matched its expectation.
	Pass bool `json:"pass"`

	Passed int `json:"passed"`
	Failed int `json:"failed"`

	// Trace contains one event per case, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains a message per failing case.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(runID, suite string) *Result {
	return &Result{
		RunID:  runID,
		Suite:  suite,
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// addEvent appends an event and updates the counters.
func (r *Result) addEvent(ev TraceEvent) {
	r.Trace = append(r.Trace, ev)
	if ev.Pass {
		r.Passed++
	} else {
		r.Failed++
	}
}
