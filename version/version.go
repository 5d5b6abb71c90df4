package version

import "runtime/debug"

// Version can be set at build time with:
// go build -ldflags "-X github.com/spectrumkit/spectrum/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, with a "-dirty"
// suffix for modified trees, or empty when the build has no VCS info.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var revision string
	modified := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && modified {
		revision += "-dirty"
	}
	return revision
}()

// VersionOrHash is what the commands report as their version: Version if
// set, then Hash, then "devel".
var VersionOrHash = func() string {
	switch {
	case Version != "":
		return Version
	case Hash != "":
		return Hash
	}
	return "devel"
}()
