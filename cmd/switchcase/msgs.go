package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Dispatch a value to a named action through a case map"
	MsgRootLong = `switchcase matches a value against a case map and runs the matching action.

A case map binds case identifiers to action definitions; the reserved
"default" case is the fallback when nothing matches. See 'switchcase help
case-syntax' for the two definition forms and how their arguments split.`
	MsgRunShort        = "Match a value against a case map and run the selected action"
	MsgActionsShort    = "List the registered actions"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoActions        = "No actions registered."
	MsgAvailableActions = "Available actions:"
	MsgActionItem       = "  %s\n"
)
