// Package testutil provides test doubles and assertion helpers for
// exercising dispatch behavior without a real host runtime: a SpyRunner
// that records every invocation, an ErrRunner that always fails, and
// helpers for asserting on structured error codes.
package testutil
