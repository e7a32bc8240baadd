package testutil

// Call records a single runner invocation
type Call struct {
	Action string
	Args   []string
}

// SpyRunner implements switchcase.Runner, recording every invocation and
// returning a scripted result or error.
type SpyRunner struct {
	Calls  []Call
	Result interface{}
	Err    error
}

// Run records the invocation and returns the scripted result
func (r *SpyRunner) Run(name string, args ...string) (interface{}, error) {
	r.Calls = append(r.Calls, Call{Action: name, Args: args})
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Result, nil
}

// LastCall returns the most recent invocation, if any
func (r *SpyRunner) LastCall() (Call, bool) {
	if len(r.Calls) == 0 {
		return Call{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}

// Reset clears recorded calls
func (r *SpyRunner) Reset() {
	r.Calls = nil
}

// ErrRunner implements switchcase.Runner and always returns its error
type ErrRunner struct {
	Err error
}

// Run returns the configured error without recording anything
func (r *ErrRunner) Run(name string, args ...string) (interface{}, error) {
	return nil, r.Err
}
