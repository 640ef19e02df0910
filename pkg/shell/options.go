package shell

// Options holds the named options for a single command execution.
type Options struct {
	// Input is fed to the process on stdin when non-empty.
	Input string
	// Env holds extra environment variables, merged over the current
	// process environment.
	Env map[string]string
	// OKExitCodes lists the exit codes treated as success.
	// Empty means only zero is accepted.
	OKExitCodes []int
	// Attempts is the total number of tries. Values below one mean a
	// single try.
	Attempts int
	// DelayOnRetry inserts a short randomized sleep between tries.
	DelayOnRetry bool
}

// exitCodeAccepted reports whether code is an accepted exit code under o.
func (o Options) exitCodeAccepted(code int) bool {
	if len(o.OKExitCodes) == 0 {
		return code == 0
	}
	for _, ok := range o.OKExitCodes {
		if code == ok {
			return true
		}
	}
	return false
}
