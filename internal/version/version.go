package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"golang.org/x/mod/semver"
)

const Header = "X-Client-Version"

const (
	versionDevel   = "devel"
	versionUnknown = "unknown"
)

// version is set via ldflags at build time.
// falls back to debug.ReadBuildInfo for go install.
var version = versionDevel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "("+versionDevel+")" {
			version = v
		}
	})
	return version
}

// IsDevelopment returns true for versions that should skip compatibility checks.
func IsDevelopment(v string) bool {
	return v == versionDevel || v == versionUnknown || v == "" ||
		strings.Contains(v, "dirty") ||
		strings.Contains(v, "-0.")
}

// ParseMajor extracts the major version number from a semver string.
// Returns "0" for unparseable versions.
func ParseMajor(v string) string {
	major := semver.Major(canonical(v))
	if major == "" {
		return "0"
	}
	return strings.TrimPrefix(major, "v")
}

// IsNewer reports whether latest is a newer release than current.
// Development builds are never considered outdated.
func IsNewer(current, latest string) bool {
	if IsDevelopment(current) {
		return false
	}
	c, l := canonical(current), canonical(latest)
	if !semver.IsValid(c) || !semver.IsValid(l) {
		return false
	}
	return semver.Compare(l, c) > 0
}

type IncompatibleError struct {
	ClientVersion string
	ServerVersion string
	MinVersion    string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("client version %s is incompatible with server %s (requires %s or newer)",
		e.ClientVersion, e.ServerVersion, e.MinVersion)
}

// CheckCompatibility rejects clients whose major version differs from the
// running server. Development builds on either side always pass.
func CheckCompatibility(clientVersion string) *IncompatibleError {
	server := Get()
	if IsDevelopment(clientVersion) || IsDevelopment(server) {
		return nil
	}
	if ParseMajor(clientVersion) == ParseMajor(server) {
		return nil
	}
	return &IncompatibleError{
		ClientVersion: clientVersion,
		ServerVersion: server,
		MinVersion:    "v" + ParseMajor(server) + ".0.0",
	}
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
