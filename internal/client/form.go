package client

import "sync"

// Outcome is the terminal state of one submission attempt
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

// Result reflects the outcome of a submission to the user
type Result struct {
	Outcome     Outcome
	UserMessage string
}

// Form is the state container for a single active contact form: field
// values, the in-flight flag and the last submission result. It is owned
// by one form instance, not shared globally.
type Form struct {
	mu         sync.Mutex
	submitting bool

	Name    string
	Email   string
	Message string
	Result  Result
}

// begin marks the form as submitting and snapshots the field values.
// It reports false when a submission is already in flight.
func (f *Form) begin() (name, email, message string, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitting {
		return "", "", "", false
	}
	f.submitting = true
	f.Result = Result{}
	return f.Name, f.Email, f.Message, true
}

// finish releases the in-flight flag and records the result. On success
// the field values are cleared.
func (f *Form) finish(result Result) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false
	f.Result = result
	if result.Outcome == OutcomeSuccess {
		f.Name = ""
		f.Email = ""
		f.Message = ""
	}
}

// Submitting reports whether a submission is currently in flight
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}
