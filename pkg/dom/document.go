package dom

import (
	"errors"
	"sync"
)

// ErrNoDocument is returned by DOM-dependent calls when no document host
// is installed, i.e. during server execution. Callers that may run on
// either side branch on IsServerContext instead of probing for it.
var ErrNoDocument = errors.New("dom: no document host in server context")

// ErrNilNode is returned when an operation receives a nil node.
var ErrNilNode = errors.New("dom: nil node")

// Document is the capability surface consumed by compiler-generated
// code. The runtime never constructs DOM on its own; generated code
// drives the document through exactly these operations.
type Document interface {
	CreateElement(tag string) (*Node, error)
	CreateTextNode(text string) (*Node, error)
	AppendChild(parent, child *Node) error
	SetAttribute(n *Node, name, value string) error
	SetText(n *Node, text string) error
	AddClass(n *Node, class string) error
	RemoveClass(n *Node, class string) error
}

// MemoryDocument is an in-memory Document implementation. It serves
// server-side rendering and tests.
type MemoryDocument struct {
	root *Node
}

// NewMemoryDocument creates a document with an empty body element.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{
		root: &Node{Kind: KindElement, Tag: "body"},
	}
}

// Root returns the document's root element.
func (d *MemoryDocument) Root() *Node {
	return d.root
}

// CreateElement creates a detached element node.
func (d *MemoryDocument) CreateElement(tag string) (*Node, error) {
	return &Node{Kind: KindElement, Tag: tag}, nil
}

// CreateTextNode creates a detached text node.
func (d *MemoryDocument) CreateTextNode(text string) (*Node, error) {
	return &Node{Kind: KindText, Text: text}, nil
}

// AppendChild appends child to parent's children.
func (d *MemoryDocument) AppendChild(parent, child *Node) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	parent.Children = append(parent.Children, child)
	return nil
}

// SetAttribute sets an attribute on an element.
func (d *MemoryDocument) SetAttribute(n *Node, name, value string) error {
	if n == nil {
		return ErrNilNode
	}
	n.setAttr(name, value)
	return nil
}

// SetText replaces the node's text content.
func (d *MemoryDocument) SetText(n *Node, text string) error {
	if n == nil {
		return ErrNilNode
	}
	n.Text = text
	n.Children = nil
	return nil
}

// AddClass adds a class to the element's class attribute.
func (d *MemoryDocument) AddClass(n *Node, class string) error {
	if n == nil {
		return ErrNilNode
	}
	n.addClass(class)
	return nil
}

// RemoveClass removes a class from the element's class attribute.
func (d *MemoryDocument) RemoveClass(n *Node, class string) error {
	if n == nil {
		return ErrNilNode
	}
	n.removeClass(class)
	return nil
}

// current is the installed document host. nil means server context.
var (
	current   Document
	currentMu sync.RWMutex
)

// SetDocument installs the process-wide document host. Passing nil
// returns the process to server context.
func SetDocument(d Document) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = d
}

// CurrentDocument returns the installed document host, or ErrNoDocument
// when running in server context.
func CurrentDocument() (Document, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()

	if current == nil {
		return nil, ErrNoDocument
	}
	return current, nil
}

// IsServerContext reports whether no document host is installed.
// Mirrors the runtime's isServerContext entry point so callers can
// branch instead of hitting ErrNoDocument.
func IsServerContext() bool {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current == nil
}

// CreateElement creates an element via the installed document host.
func CreateElement(tag string) (*Node, error) {
	d, err := CurrentDocument()
	if err != nil {
		return nil, err
	}
	return d.CreateElement(tag)
}

// CreateTextNode creates a text node via the installed document host.
func CreateTextNode(text string) (*Node, error) {
	d, err := CurrentDocument()
	if err != nil {
		return nil, err
	}
	return d.CreateTextNode(text)
}

// AppendChild appends via the installed document host.
func AppendChild(parent, child *Node) error {
	d, err := CurrentDocument()
	if err != nil {
		return err
	}
	return d.AppendChild(parent, child)
}

// SetAttribute sets an attribute via the installed document host.
func SetAttribute(n *Node, name, value string) error {
	d, err := CurrentDocument()
	if err != nil {
		return err
	}
	return d.SetAttribute(n, name, value)
}

// SetText sets text content via the installed document host.
func SetText(n *Node, text string) error {
	d, err := CurrentDocument()
	if err != nil {
		return err
	}
	return d.SetText(n, text)
}

// AddClass adds a class via the installed document host.
func AddClass(n *Node, class string) error {
	d, err := CurrentDocument()
	if err != nil {
		return err
	}
	return d.AddClass(n, class)
}

// RemoveClass removes a class via the installed document host.
func RemoveClass(n *Node, class string) error {
	d, err := CurrentDocument()
	if err != nil {
		return err
	}
	return d.RemoveClass(n, class)
}
