// Package header reads the product version from the VERSION_* macros of version.h.
//
// The four macros are matched independently, so their order in the file is
// irrelevant. A header that is missing, incomplete or carries values that are not
// non-negative integers yields the fallback version instead of an error.
package header
