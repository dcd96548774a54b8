//go:build !unix

package credentials

// lockFile is a no-op where flock is unavailable; FileStore's mutex still
// serializes access within the process.
func lockFile(string, bool) (func() error, error) {
	return func() error { return nil }, nil
}
