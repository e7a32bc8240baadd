package testutil

import (
	"testing"

	"github.com/arthur-debert/switchcase/pkg/errors"
)

// AssertErrorCode checks that err carries the expected error code
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected error with code %s, got nil", code)
	}

	if !errors.IsErrorCode(err, code) {
		t.Errorf("Expected error code %s, got %s (%v)", code, errors.GetErrorCode(err), err)
	}
}

// AssertNoError fails the test immediately if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}
