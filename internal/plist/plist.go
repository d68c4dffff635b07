package plist

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrMalformed is returned when the document is not well-formed XML.
	ErrMalformed = errors.New("malformed XML")
	// ErrNoDict is returned by Document.Dict when the root has no dict child.
	ErrNoDict = errors.New("no dict element under the document root")

	// errNoRoot is reported for documents without any element.
	errNoRoot = errors.New("no root element")
	// errJunkAfterRoot is reported for content following the root element.
	errJunkAfterRoot = errors.New("junk after document element")
	// errTextBeforeRoot is reported for non-blank text preceding the root element.
	errTextBeforeRoot = errors.New("text before document element")
)

// utf8BOM is the byte-order mark some editors put in front of the XML declaration.
//
//nolint:gochecknoglobals // Constant byte sequence.
var utf8BOM = []byte("\xef\xbb\xbf")

// Element is a node of the parsed document.
type Element struct {
	// Name is the local tag name.
	Name string
	// Text is the character data before the first child element.
	Text string
	// Children are the child elements in document order.
	Children []*Element
}

// Find returns the first direct child named name.
func (e *Element) Find(name string) *Element {
	for _, child := range e.Children {
		if child.Name == name {
			return child
		}
	}

	return nil
}

// Document is a parsed XML document.
type Document struct {
	// Root is the document element, "plist" for a property list.
	Root *Element
}

// Parse reads a complete XML document from data.
func Parse(data []byte) (*Document, error) {
	decoder := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	decoder.Strict = true

	var (
		root  *Element
		stack []*Element
		text  []*strings.Builder
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				line, _ := decoder.InputPos()
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, errJunkAfterRoot)
			}

			element := &Element{Name: tok.Name.Local}
			if len(stack) == 0 {
				root = element
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, element)
			}

			stack = append(stack, element)
			text = append(text, new(strings.Builder))
		case xml.EndElement:
			// The strict decoder already matched the tag names.
			stack[len(stack)-1].Text = text[len(text)-1].String()
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(tok)) == 0 {
					continue
				}

				cause := errTextBeforeRoot
				if root != nil {
					cause = errJunkAfterRoot
				}

				line, _ := decoder.InputPos()

				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, cause)
			}

			// Text after a child element is its tail, not part of the parent.
			if len(stack[len(stack)-1].Children) == 0 {
				text[len(text)-1].Write(tok)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, errNoRoot)
	}

	return &Document{Root: root}, nil
}

// Entry is one key and the element holding its value.
type Entry struct {
	Key   string
	Value *Element
}

// Dict is the ordered content of a dict element.
type Dict struct {
	Entries []Entry
}

// Dict returns the entries of the root's first dict child.
// A key without a following element is kept with a nil Value.
func (d *Document) Dict() (*Dict, error) {
	element := d.Root.Find("dict")
	if element == nil {
		return nil, ErrNoDict
	}

	result := new(Dict)

	for i := 0; i < len(element.Children); i++ {
		child := element.Children[i]
		if child.Name != "key" {
			continue
		}

		entry := Entry{Key: child.Text}
		if i+1 < len(element.Children) && element.Children[i+1].Name != "key" {
			entry.Value = element.Children[i+1]
			i++
		}

		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// Lookup returns the value element of key. When a key repeats, the last one wins.
func (d *Dict) Lookup(key string) (*Element, bool) {
	for i := len(d.Entries) - 1; i >= 0; i-- {
		if d.Entries[i].Key == key {
			return d.Entries[i].Value, true
		}
	}

	return nil, false
}

// String returns the text of key when its value is a string element.
// ok is false for a missing key; isString is false for any other value type.
func (d *Dict) String(key string) (value string, ok, isString bool) {
	element, ok := d.Lookup(key)
	if !ok {
		return "", false, false
	}

	if element == nil || element.Name != "string" {
		return "", true, false
	}

	return element.Text, true, true
}
