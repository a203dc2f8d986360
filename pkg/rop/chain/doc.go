// Package chain provides fluent wrappers around the synchronous workflows.
//
// Chain[T, E] wraps rop.Result and composes the result workflow behind
// methods and free functions; Maybe[T] does the same for rop.Option. Both
// carry a context that is handed to every step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - AndThen: continue after a unit step only if it succeeded
// - Validate/Ensure: check or observe the value on success
// - Finally: collapse the chain into a final value via handlers
// - StartMaybe/Just, MaybeThen, Or, Filter: the same for optional values
package chain
