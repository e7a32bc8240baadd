package registry

import (
	"github.com/arthur-debert/switchcase/pkg/errors"
)

// Action is a named, host-resolvable unit of behavior invoked with
// positional string arguments.
type Action func(args ...string) (interface{}, error)

// Global registry for named actions
var actionRegistry Registry[Action]

func init() {
	actionRegistry = New[Action]()
}

// RegisterAction registers a named action in the global action registry.
func RegisterAction(name string, action Action) error {
	return actionRegistry.Register(name, action)
}

// MustRegisterAction registers a named action and panics on failure.
// Intended for init() registration of built-in actions.
func MustRegisterAction(name string, action Action) {
	MustRegister(actionRegistry, name, action)
}

// GetAction retrieves an action by name.
func GetAction(name string) (Action, error) {
	action, err := actionRegistry.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrActionNotFound, "action '%s' is not registered", name)
	}
	return action, nil
}

// ListActions returns the names of all registered actions in sorted order.
func ListActions() []string {
	return actionRegistry.List()
}

// HasAction checks whether an action is registered.
func HasAction(name string) bool {
	return actionRegistry.Has(name)
}

// Runner resolves action names through the global action registry and
// invokes them with positional arguments. It satisfies the
// switchcase.Runner contract and is the runner the CLI dispatches through;
// library embedders typically supply their own runner instead.
type Runner struct{}

// Run resolves the named action and invokes it.
// Errors from the action itself are returned unmodified.
func (Runner) Run(name string, args ...string) (interface{}, error) {
	action, err := GetAction(name)
	if err != nil {
		return nil, err
	}
	return action(args...)
}
