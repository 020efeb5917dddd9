// Package async provides simple, generic helpers for running computations asynchronously and
// joining their results.
//
// The package is centred around the generic type Future that represents the eventual result of an
// asynchronous operation. A Future is obtained by calling Async, which starts the supplied function
// in its own goroutine and immediately returns. The caller can wait with Await, bound the wait with
// AwaitContext or AwaitWithTimeout, or poll with IsComplete.
//
// SettleAll is the join barrier used by form submission: it waits for every future, never
// short-circuits, and reports results and errors by index. WaitAll builds on it and returns the
// first error, still only after every future has settled.
//
// # Usage
//
//	futures := []*async.Future[field.State]{
//	    async.Async(ctx, email, validateEmail),
//	    async.Async(ctx, password, validatePassword),
//	}
//	states, errs := async.SettleAll(futures...)
//
// # Error Handling
//
// Futures carry the error produced by the callback. A context cancelled before the goroutine starts
// completes the future with ctx.Err(). AwaitWithTimeout returns ErrTimeout.
package async
