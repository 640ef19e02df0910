package shell

// ExitCodeAccepted exports exitCodeAccepted for testing.
func (o Options) ExitCodeAccepted(code int) bool {
	return o.exitCodeAccepted(code)
}
