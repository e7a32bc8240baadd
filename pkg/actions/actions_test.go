package actions_test

import (
	"testing"
	"time"

	"github.com/arthur-debert/switchcase/pkg/actions"
	"github.com/arthur-debert/switchcase/pkg/errors"
	"github.com/arthur-debert/switchcase/pkg/registry"
	"github.com/arthur-debert/switchcase/pkg/switchcase"
	"github.com/arthur-debert/switchcase/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"log", "echo", "fail", "sleep"} {
		assert.True(t, registry.HasAction(name), "built-in action %q should be registered", name)
	}
}

func TestEcho(t *testing.T) {
	result, err := actions.Echo("a b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a b c", result)
}

func TestEchoNoArgs(t *testing.T) {
	result, err := actions.Echo()
	require.NoError(t, err)
	assert.Equal(t, "", result)
}

func TestLog(t *testing.T) {
	result, err := actions.Log("message=found")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestFail(t *testing.T) {
	t.Run("with_message", func(t *testing.T) {
		_, err := actions.Fail("boom")
		testutil.AssertErrorCode(t, err, errors.ErrActionExecute)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("without_message", func(t *testing.T) {
		_, err := actions.Fail()
		testutil.AssertErrorCode(t, err, errors.ErrActionExecute)
	})
}

func TestSleep(t *testing.T) {
	t.Run("valid_duration", func(t *testing.T) {
		start := time.Now()
		_, err := actions.Sleep("10ms")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("invalid_duration", func(t *testing.T) {
		_, err := actions.Sleep("not-a-duration")
		testutil.AssertErrorCode(t, err, errors.ErrInvalidInput)
	})

	t.Run("wrong_arg_count", func(t *testing.T) {
		_, err := actions.Sleep()
		testutil.AssertErrorCode(t, err, errors.ErrInvalidInput)
	})
}

func TestDispatchThroughRegistry(t *testing.T) {
	d := switchcase.New(registry.Runner{})

	result, err := d.Dispatch("apple", map[string]interface{}{
		"apple":   []string{"echo", "found an apple"},
		"default": "echo unknown fruit",
	})
	require.NoError(t, err)
	assert.Equal(t, "found an apple", result)
}

func TestDispatchThroughRegistryDefault(t *testing.T) {
	d := switchcase.New(registry.Runner{})

	result, err := d.Dispatch("kiwi", map[string]interface{}{
		"apple": "echo found",
		// String form splits on whitespace, so multi-word output
		// needs the sequence form above
		"default": "echo unknown",
	})
	require.NoError(t, err)
	assert.Equal(t, "unknown", result)
}

func TestDispatchUnknownActionSurfaces(t *testing.T) {
	d := switchcase.New(registry.Runner{})

	_, err := d.Dispatch("apple", map[string]interface{}{
		"apple": "NoSuchAction arg",
	})
	testutil.AssertErrorCode(t, err, errors.ErrActionNotFound)
}
