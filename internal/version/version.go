package version

import "fmt"

// Set at build time:
// go build -ldflags "-X github.com/alexiusacademia/goclt/internal/version.Version=0.2.0"
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// String is the one-line version banner.
func String() string {
	s := fmt.Sprintf("goclt v%s", Version)
	if GitCommit != "unknown" {
		s += fmt.Sprintf(" (%s, built %s)", GitCommit, BuildTime)
	}
	return s
}
