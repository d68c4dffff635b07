// Package verifier simulates the xmake on_config step that renders the macOS
// launcher's Info.plist and checks the result.
//
// A run extracts the version from version.h, substitutes it into
// Info.plist.template, writes Info.plist, reads it back and validates it, then
// removes the generated file whatever happened. Every step is logged as a
// numbered progress line and recorded in a verification.Report.
package verifier
