// Package contract implements precondition checks for the numeric layer.
//
// The scalar utilities sit on the hottest paths of the renderer, so
// precondition checks must cost nothing in production builds. Checks are
// compiled in only when building with the "contracts" tag:
//
//	go test -tags contracts ./...
//
// Without the tag, Assert compiles to an empty function and the call sites
// are eliminated by the inliner. A violated precondition in an unchecked
// build therefore yields an unspecified result rather than a diagnostic;
// this mirrors assert-only discipline and keeps the hot paths free of
// branches.
package contract

// Enabled reports whether precondition checks are compiled in.
const Enabled = enabled
