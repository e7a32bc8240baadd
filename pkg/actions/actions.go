// Package actions provides the built-in actions available to the CLI.
// Blank-importing this package registers them in the global action registry.
package actions

import (
	"strings"
	"time"

	"github.com/arthur-debert/switchcase/pkg/errors"
	"github.com/arthur-debert/switchcase/pkg/logging"
	"github.com/arthur-debert/switchcase/pkg/registry"
)

func init() {
	registry.MustRegisterAction("log", Log)
	registry.MustRegisterAction("echo", Echo)
	registry.MustRegisterAction("fail", Fail)
	registry.MustRegisterAction("sleep", Sleep)
}

// Log writes its arguments as an info-level log line and returns nothing
func Log(args ...string) (interface{}, error) {
	logger := logging.GetLogger("actions.log")
	logger.Info().Msg(strings.Join(args, " "))
	return nil, nil
}

// Echo returns its arguments joined by single spaces
func Echo(args ...string) (interface{}, error) {
	return strings.Join(args, " "), nil
}

// Fail always returns an ACTION_EXECUTE error carrying its arguments as the message
func Fail(args ...string) (interface{}, error) {
	message := strings.Join(args, " ")
	if message == "" {
		message = "action failed"
	}
	return nil, errors.New(errors.ErrActionExecute, message)
}

// Sleep pauses for the duration given as its single argument (e.g. "250ms")
func Sleep(args ...string) (interface{}, error) {
	if len(args) != 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "sleep takes exactly one duration argument, got %d", len(args))
	}

	d, err := time.ParseDuration(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid sleep duration %q", args[0])
	}

	time.Sleep(d)
	return nil, nil
}
