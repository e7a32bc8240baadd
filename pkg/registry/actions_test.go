package registry_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/switchcase/pkg/errors"
	"github.com/arthur-debert/switchcase/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGetAction(t *testing.T) {
	err := registry.RegisterAction("test-join", func(args ...string) (interface{}, error) {
		return strings.Join(args, ","), nil
	})
	require.NoError(t, err)

	action, err := registry.GetAction("test-join")
	require.NoError(t, err)

	result, err := action("a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", result)
}

func TestGetActionNotRegistered(t *testing.T) {
	_, err := registry.GetAction("test-does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionNotFound))
	assert.Contains(t, err.Error(), "test-does-not-exist")
}

func TestRegisterActionDuplicate(t *testing.T) {
	noop := func(args ...string) (interface{}, error) { return nil, nil }

	require.NoError(t, registry.RegisterAction("test-dup", noop))
	err := registry.RegisterAction("test-dup", noop)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestListActions(t *testing.T) {
	noop := func(args ...string) (interface{}, error) { return nil, nil }
	require.NoError(t, registry.RegisterAction("test-list-b", noop))
	require.NoError(t, registry.RegisterAction("test-list-a", noop))

	names := registry.ListActions()
	assert.Contains(t, names, "test-list-a")
	assert.Contains(t, names, "test-list-b")

	// Sorted order
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestRunnerRun(t *testing.T) {
	require.NoError(t, registry.RegisterAction("test-runner-echo", func(args ...string) (interface{}, error) {
		return strings.Join(args, " "), nil
	}))

	var runner registry.Runner

	result, err := runner.Run("test-runner-echo", "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", result)
}

func TestRunnerRunUnknownAction(t *testing.T) {
	var runner registry.Runner

	_, err := runner.Run("test-runner-missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionNotFound))
}

func TestRunnerErrorsPassThrough(t *testing.T) {
	actionErr := stderrors.New("action blew up")
	require.NoError(t, registry.RegisterAction("test-runner-fail", func(args ...string) (interface{}, error) {
		return nil, actionErr
	}))

	var runner registry.Runner

	_, err := runner.Run("test-runner-fail")
	// The action's own error must surface with its identity intact
	assert.True(t, stderrors.Is(err, actionErr))
}
