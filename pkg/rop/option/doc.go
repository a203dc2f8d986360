// Package option is the synchronous Option workflow: steps that may produce
// nothing, chained so that the first absent step ends the workflow.
//
// Bind chains steps and stops at absence. Combine sequences two expressions
// and keeps the first present value, so later expressions only run while
// nothing has been found. WhenTrue spells out "if cond then return v" with
// Zero (absent) as the implicit else.
package option
