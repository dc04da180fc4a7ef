package main

import (
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// buildInfo is what the version command reports.
type buildInfo struct {
	Version  string `json:"version" yaml:"version"`
	Revision string `json:"revision,omitempty" yaml:"revision,omitempty"`
	Modified bool   `json:"modified,omitempty" yaml:"modified,omitempty"`
	Go       string `json:"go,omitempty" yaml:"go,omitempty"`
}

func (b buildInfo) String() string {
	s := b.Version
	if b.Revision != "" {
		s += "+" + b.Revision
		if b.Modified {
			s += ".dirty"
		}
	}
	if b.Go != "" {
		s = fmt.Sprintf("%s (%s)", s, b.Go)
	}
	return s
}

// readBuildInfo prefers the module version stamped by go install and falls
// back to VERSION, prefixed with "devel-", for local builds.
func readBuildInfo(info *debug.BuildInfo, ok bool) buildInfo {
	b := buildInfo{Version: "devel-" + strings.TrimSpace(embeddedVersion)}
	if !ok {
		return b
	}
	b.Go = info.GoVersion
	if v := info.Main.Version; v != "" && v != "(devel)" {
		b.Version = v
		return b
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) >= 7 {
				b.Revision = s.Value[:7]
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

// Version returns the version string of this binary.
func Version() string {
	return readBuildInfo(debug.ReadBuildInfo()).String()
}
