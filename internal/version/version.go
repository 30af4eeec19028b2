package version

// Build metadata for the ferro CLI. All values can be overridden at link
// time, e.g.:
//
//	go build -ldflags "-X ferro/internal/version.Version=0.2.0 \
//	    -X ferro/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// Version is the semantic version reported by `ferro version`.
	Version = "0.1.0-dev"

	// GitCommit is the commit hash the binary was built from, if recorded.
	GitCommit = ""

	// GitMessage is the subject line of that commit, if recorded.
	GitMessage = ""

	// BuildDate is an ISO-8601 build timestamp, if recorded.
	BuildDate = ""
)
