package ports

// TempRegistry creates and tracks ephemeral directories for best-effort
// removal at controlled exit.
type TempRegistry interface {
	// Create makes a fresh, uniquely named directory and tracks it until
	// cleanup. The returned path is absolute.
	Create() (string, error)

	// CleanupAll attempts to remove every tracked directory. Failures on
	// individual directories are ignored; cleanup is advisory, not a
	// guarantee. Calling it again after the first invocation is a no-op.
	CleanupAll()
}
