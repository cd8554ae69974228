// Package buildinfo exposes version data stamped in at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/jobtracker/internal/buildinfo.buildVersion=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
)

const na = "N/A"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func valueOrNA(s string) string {
	if s == "" {
		return na
	}
	return s
}

// PrintBuildData writes version, date and commit to w, one per line.
// Values that were not stamped print as N/A.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(buildCommit))
}
