package layout

import "strings"

const (
	// sharedLibSuffix is the platform dynamic-library suffix.
	sharedLibSuffix = ".so"

	// debugInfoSuffix marks detached debug-info files produced by
	// objcopy --only-keep-debug. They are packaged but never treated
	// as loadable libraries.
	debugInfoSuffix = ".debug"
)

// abiTagSuffixes lists the cross-compiled ABI suffix patterns whose
// filenames are deliberately cross-toolchain-generic and never match the
// embedded soname. Hard-coded: growing the target platform set means
// growing this table.
var abiTagSuffixes = []string{
	".abi3.so",
	"-arm-linux-gnueabihf.so",
}

// IsSharedLibrary reports whether name follows the loadable-library naming
// convention: a ".so" suffix, or ".so" followed by a version segment such
// as "libfoo.so.1". Detached debug-info files are excluded.
func IsSharedLibrary(name string) bool {
	if strings.HasSuffix(name, debugInfoSuffix) {
		return false
	}
	if strings.HasSuffix(name, sharedLibSuffix) {
		return true
	}
	return strings.Contains(name, sharedLibSuffix+".")
}

// IsDebugInfo reports whether name is a detached debug-info file
func IsDebugInfo(name string) bool {
	return strings.HasSuffix(name, debugInfoSuffix)
}

// IsABITagged reports whether name matches one of the exempted
// cross-compiled ABI suffix patterns
func IsABITagged(name string) bool {
	for _, suffix := range abiTagSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
