// Package output persists the generated Info.plist.
//
// The FileRepository overwrites the file on every Save and can remove it again,
// which the verifier does unconditionally at the end of a run.
package output
