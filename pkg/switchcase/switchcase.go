package switchcase

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/switchcase/pkg/errors"
	"github.com/arthur-debert/switchcase/pkg/logging"
)

// DefaultKey is the reserved case identifier used as the fallback when no
// case matches the switch value.
const DefaultKey = "default"

// Runner resolves an action name to a callable behavior and invokes it with
// positional arguments. It is the dispatcher's single point of contact with
// its host environment.
type Runner interface {
	Run(name string, args ...string) (interface{}, error)
}

// Dispatcher matches switch values against case maps and delegates the
// selected action to a Runner. It holds no mutable state; the runner and
// logger are fixed at construction.
type Dispatcher struct {
	runner Runner
	logger zerolog.Logger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLogger sets a custom logger for dispatch trace output
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// New creates a Dispatcher that delegates action invocation to runner
func New(runner Runner, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		runner: runner,
		logger: logging.GetLogger("switchcase"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch selects the case matching switchValue and executes its definition.
//
// The switch value is matched by its string form. An exact key match takes
// priority; otherwise the "default" case is used; if neither exists the
// dispatch fails with CASE_NOT_FOUND. The result of the invoked action is
// returned unmodified, and any error the runner raises propagates with its
// identity intact.
func (d *Dispatcher) Dispatch(switchValue interface{}, caseMap map[string]interface{}) (interface{}, error) {
	if caseMap == nil {
		return nil, errors.New(errors.ErrInvalidType, "case map must be a map, got nil")
	}

	switchStr := stringify(switchValue)

	definition, ok := caseMap[switchStr]
	if !ok {
		definition, ok = caseMap[DefaultKey]
	}
	if !ok {
		return nil, errors.Newf(errors.ErrCaseNotFound,
			"no matching case found for '%s' and no default case defined", switchStr).
			WithDetail("switchValue", switchValue)
	}

	return d.execute(definition)
}

// DispatchAny is the untyped boundary form of Dispatch. It accepts a case
// map as it arrives from a host runtime or a decoded document and fails
// with INVALID_TYPE when the value is not a mapping.
func (d *Dispatcher) DispatchAny(switchValue interface{}, caseMap interface{}) (interface{}, error) {
	switch m := caseMap.(type) {
	case map[string]interface{}:
		return d.Dispatch(switchValue, m)
	case map[string]string:
		converted := make(map[string]interface{}, len(m))
		for k, v := range m {
			converted[k] = v
		}
		return d.Dispatch(switchValue, converted)
	default:
		return nil, errors.Newf(errors.ErrInvalidType,
			"case map must be a map, got %T", caseMap)
	}
}

// execute parses a case definition and invokes the runner with it
func (d *Dispatcher) execute(definition interface{}) (interface{}, error) {
	def, err := ParseDef(definition)
	if err != nil {
		return nil, err
	}

	logging.LogDispatch(d.logger, def.Action, def.Args)

	return d.runner.Run(def.Action, def.Args...)
}
