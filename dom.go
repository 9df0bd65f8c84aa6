package velocity

import (
	"github.com/pochita1998/velocity-framework/pkg/dom"
)

// =============================================================================
// DOM access
// =============================================================================

// Node is a tree node managed by the current document.
type Node = dom.Node

// Document is the capability surface for mutating the node tree. A host
// environment installs one with SetDocument; without one the package-level
// DOM functions fail with dom.ErrNoDocument.
type Document = dom.Document

// ErrNoDocument is returned by DOM operations in a server context.
var ErrNoDocument = dom.ErrNoDocument

// SetDocument installs d as the process-wide document. Pass nil to return
// to a server context.
func SetDocument(d Document) {
	dom.SetDocument(d)
}

// IsServerContext reports whether no document is installed, meaning DOM
// operations are unavailable.
func IsServerContext() bool {
	return dom.IsServerContext()
}

// CreateElement creates an element node with the given tag via the current
// document.
func CreateElement(tag string) (*Node, error) {
	return dom.CreateElement(tag)
}

// CreateTextNode creates a text node via the current document.
func CreateTextNode(text string) (*Node, error) {
	return dom.CreateTextNode(text)
}

// AppendChild appends child to parent via the current document.
func AppendChild(parent, child *Node) error {
	return dom.AppendChild(parent, child)
}

// SetAttribute sets an attribute on n via the current document.
func SetAttribute(n *Node, name, value string) error {
	return dom.SetAttribute(n, name, value)
}

// SetText replaces n's text content via the current document.
func SetText(n *Node, text string) error {
	return dom.SetText(n, text)
}

// AddClass adds class to n's class list via the current document.
func AddClass(n *Node, class string) error {
	return dom.AddClass(n, class)
}

// RemoveClass removes class from n's class list via the current document.
func RemoveClass(n *Node, class string) error {
	return dom.RemoveClass(n, class)
}
