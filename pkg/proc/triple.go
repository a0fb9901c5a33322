package proc

import "runtime"

// targetTriple returns a Rust-style target triple for the running host,
// used to build the sidecar's triple-suffixed candidate name. It mirrors
// the TARGET_TRIPLE build-time constant the original host embedded via its
// build script; here it is derived at runtime from GOOS/GOARCH since Go has
// no equivalent compile-time env var.
func targetTriple() string {
	arch, ok := archTriples[runtime.GOARCH]
	if !ok {
		arch = runtime.GOARCH
	}
	switch runtime.GOOS {
	case "darwin":
		return arch + "-apple-darwin"
	case "linux":
		return arch + "-unknown-linux-gnu"
	case "windows":
		return arch + "-pc-windows-msvc"
	default:
		return arch + "-unknown-" + runtime.GOOS
	}
}

var archTriples = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
	"386":   "i686",
	"arm":   "armv7",
}
