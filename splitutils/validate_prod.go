//go:build !debug_split

package splitutils

// DebugChecksEnabled reports whether the debug_split build tag is present. Code in
// the split package branches on it so that misuse checks compile away entirely in
// production builds.
const DebugChecksEnabled = false

// DebugValidate will call Validate on the provided object and panics if any errors are returned.
// This method no-ops unless the debug_split build tag is present
func DebugValidate(validatable Validatable) {
}
