// Package version reports the build of the running binary
package version

// Service is the name every coursedex binary reports
const Service = "coursedex"

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service string `json:"service" yaml:"service"`
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// Info returns the build information
// set with -ldflags "-X 'coursedex/internal/core/version.version=v0.1.0' -X 'coursedex/internal/core/version.commit=abcd'"
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// String renders the build on one line for the cli
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
