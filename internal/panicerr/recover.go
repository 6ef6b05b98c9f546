package panicerr

// Recover runs f on a new goroutine and turns a panic or runtime.Goexit
// inside it into a non-nil error return, so one crashing task cannot take
// the rest of the scheduler down with it.
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
