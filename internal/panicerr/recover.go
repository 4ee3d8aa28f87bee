// Package panicerr turns a recovered panic or goroutine exit into a plain
// error, so internal/vm's Machine.Run can surface a HALT, an internal
// panic, or an interpreter bug through the same error return.
package panicerr

// Recover runs f in a new goroutine wrappe in a defer logic to recover any
// abnormal exits or panics as non-nil error returns.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}
