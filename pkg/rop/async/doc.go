// Package async is the asynchronous computation primitive the async workflows
// are built on.
//
// A Task[T] is a deferred function of a context. It is constructed without
// running, and every await point is an ordinary call, so the steps of one
// task always run one after another. Start moves a task onto its own
// goroutine and hands back a Future.
//
// Highlights:
// - Return/Raise/Delay: build tasks
// - Bind/Map: sequence tasks; Bind observes context cancellation
// - Using/Lazy: per-run acquire and release
// - TryWith/TryFinally: error handling and compensation
// - Start/Await: run on a goroutine and wait for the outcome
// - Parallel: run independent tasks on a bounded pool
package async
