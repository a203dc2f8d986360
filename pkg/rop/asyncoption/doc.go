// Package asyncoption is the Option workflow over async tasks.
//
// Steps are async.Task values resolving to rop.Option. Binding an option
// that is absent resolves to absent without any suspension; Combine never
// starts the second task once the first one found a value. Return of
// rop.Unit is Zero, which resolves to absent.
package asyncoption
