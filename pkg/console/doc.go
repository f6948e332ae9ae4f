// Package console owns the output surface: a single live Console handle per
// process, its ambient palette and timestamp configuration, and the leveled
// and raw writers built on top of the compose and timestamp packages.
//
// # Lifecycle
//
//	c, err := console.Allocate("build log")
//	if err != nil {
//		return err
//	}
//	defer c.Deallocate()
//
//	c.Info("starting")
//	c.Warn("disk almost full")
//	c.WriteLine("done", opt.Some(codec.Bold), opt.Some(codec.Cyan), opt.None[codec.Color]())
//
// Allocate is guarded: while a handle is active, further calls return that
// same handle without touching the platform again. Deallocate on an inactive
// handle fails with NOT_ACTIVE. Once deallocated, every writer on the handle
// is a silent no-op.
//
// # Concurrency
//
// Every writer composes its output and hands it to the sink inside one
// critical section, so fragments from concurrent callers never interleave.
// The active flag is read and written under the same lock.
//
// # Platform
//
// Acquiring a console window, changing font metrics and selecting the output
// encoding belong to the Platform. TerminalPlatform drives a regular output
// stream (stdout by default); tests substitute their own.
package console
