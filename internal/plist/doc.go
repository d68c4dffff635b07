// Package plist parses the XML property list written from Info.plist.template.
//
// Parse builds a small element tree and rejects anything that is not a single
// well-formed XML document. Dict exposes the key/value pairs of the root's dict
// element, pairing every key with the element that follows it.
package plist
