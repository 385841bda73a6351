package version

import "fmt"

// Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info holds version information about the current build
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the version information for the current build
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("rotationtest %s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}
