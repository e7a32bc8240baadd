// Package switchcase provides value-to-action dispatch: given a switch value
// and a mapping of case identifiers to action definitions, it selects the
// definition matching the value's string form (falling back to the reserved
// "default" case), parses it into an action name plus positional arguments,
// and delegates invocation to a Runner supplied at construction.
//
// Case definitions come in two forms:
//
//   - string form: "actionName arg1 arg2" — split on whitespace, the first
//     field is the action name and the remaining fields are the arguments.
//   - sequence form: []string{"actionName", "arg1", "arg2"} — the first
//     element is the action name and the remaining elements are passed
//     through verbatim.
//
// The two forms split differently on purpose: string-form arguments are
// always whitespace-split, so an argument containing spaces must use the
// sequence form. See the case-syntax help topic for details.
//
// The package holds no state beyond the runner reference; every dispatch is
// a single synchronous match-then-invoke pass. A host runtime can expose
// Dispatch through its own action-resolution mechanism to get switch/case
// behavior as a named extension point.
package switchcase
