// Package result is the synchronous Result workflow: steps that either
// succeed with a value or fail with a caller-defined payload.
//
// Highlights:
// - Bind/Return/Zero: chain steps; the first failure ends the workflow
// - Combine: run a unit step, then the rest only if it succeeded
// - FailWhen: "if cond then fail" with the no-op success as implicit else
// - Using/TryWith/TryFinally: scoped release and panic handling
// - While/For: loops that stop at the first failing iteration
// - Map/MapError/Try/Validate/Tee/Finally: railway helpers
package result
