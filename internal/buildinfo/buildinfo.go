// Package buildinfo carries the identifiers stamped in with -ldflags "-X".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, else the commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is Short plus the build date when one was stamped.
func String() string {
	if Date == "" || Date == "unknown" {
		return Short()
	}
	return Short() + " " + Date
}
