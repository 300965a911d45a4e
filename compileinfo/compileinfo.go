package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

// CompileInfo describes the binary's build, as recorded by the Go toolchain.
type CompileInfo struct {
	Package    string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Package == "" {
		return "Build information is not available for this binary."
	}

	mod := ""
	if c.Modified {
		mod = " (with uncommitted changes)"
	}

	version := ""
	if c.Version != "" && c.Version != "(devel)" {
		version = " " + c.Version
	}

	return fmt.Sprintf("%s%s built with %s from commit %v at %v%s", c.Package, version, c.GoVersion, c.Commit, c.CommitTime, mod)
}

func Get() CompileInfo {
	out := CompileInfo{}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Package = z.Path
	out.Version = z.Main.Version
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
