package dom

import "strings"

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <div>, <button>, etc.
	KindText                    // Plain text node
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is an in-memory DOM node. It backs server-side rendering and
// tests; a browser host would substitute its own document.
type Node struct {
	Kind     NodeKind
	Tag      string            // Element tag name (e.g., "div")
	Text     string            // For KindText, or element text content
	Attrs    map[string]string // Attributes
	Children []*Node
}

// Attr returns the attribute value and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	if n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// setAttr sets an attribute, allocating the map on first use.
func (n *Node) setAttr(name, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
}

// HasClass reports whether class appears in the node's class attribute.
func (n *Node) HasClass(class string) bool {
	existing, _ := n.Attr("class")
	for _, c := range strings.Fields(existing) {
		if c == class {
			return true
		}
	}
	return false
}

// addClass appends class to the class attribute if not already present.
func (n *Node) addClass(class string) {
	if n.HasClass(class) {
		return
	}
	existing, _ := n.Attr("class")
	if existing == "" {
		n.setAttr("class", class)
		return
	}
	n.setAttr("class", existing+" "+class)
}

// removeClass drops class from the class attribute.
func (n *Node) removeClass(class string) {
	existing, _ := n.Attr("class")
	if existing == "" {
		return
	}
	kept := make([]string, 0, 4)
	for _, c := range strings.Fields(existing) {
		if c != class {
			kept = append(kept, c)
		}
	}
	n.setAttr("class", strings.Join(kept, " "))
}

// Walk visits n and every descendant in document order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}
