package main

import (
	"fmt"
	"runtime"
)

// provided at compile time
var (
	version   string // release tag, e.g. "v1.2.0"
	gitCommit string // long commit hash of source tree, e.g. "0b5ed7a"
	buildDate string // RFC3339 formatted UTC date, e.g. "2016-08-04T18:07:54Z"
)

// VersionCommand prints build metadata and exits.
type VersionCommand struct{}

func (c *VersionCommand) String() string {
	return "Version details"
}

func (c *VersionCommand) Execute(args []string) error {
	v := version
	if v == "" {
		v = "devel"
	}

	fmt.Printf("b32 %s\n", v)
	if gitCommit != "" {
		fmt.Printf("git commit %s\n", gitCommit)
	}
	if buildDate != "" {
		fmt.Printf("built %s\n", buildDate)
	}
	fmt.Printf("%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	return nil
}
