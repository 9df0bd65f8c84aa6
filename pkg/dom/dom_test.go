package dom

import (
	"errors"
	"testing"
)

func TestMemoryDocumentTree(t *testing.T) {
	d := NewMemoryDocument()

	div, err := d.CreateElement("div")
	if err != nil {
		t.Fatalf("CreateElement: %v", err)
	}
	text, err := d.CreateTextNode("hello")
	if err != nil {
		t.Fatalf("CreateTextNode: %v", err)
	}

	if err := d.AppendChild(d.Root(), div); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	if err := d.AppendChild(div, text); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}

	if len(d.Root().Children) != 1 || d.Root().Children[0] != div {
		t.Error("expected div under root")
	}
	if len(div.Children) != 1 || div.Children[0].Text != "hello" {
		t.Error("expected text node under div")
	}
}

func TestAttributesAndClasses(t *testing.T) {
	d := NewMemoryDocument()
	n, _ := d.CreateElement("button")

	if err := d.SetAttribute(n, "type", "submit"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	if v, ok := n.Attr("type"); !ok || v != "submit" {
		t.Errorf("expected type=submit, got %q (%v)", v, ok)
	}

	d.AddClass(n, "primary")
	d.AddClass(n, "large")
	d.AddClass(n, "primary") // idempotent
	if v, _ := n.Attr("class"); v != "primary large" {
		t.Errorf("expected class %q, got %q", "primary large", v)
	}

	d.RemoveClass(n, "primary")
	if n.HasClass("primary") || !n.HasClass("large") {
		t.Errorf("expected only large after removal, got %q", n.Attrs["class"])
	}
}

func TestSetTextReplacesChildren(t *testing.T) {
	d := NewMemoryDocument()
	n, _ := d.CreateElement("span")
	child, _ := d.CreateTextNode("old")
	d.AppendChild(n, child)

	d.SetText(n, "new")
	if n.Text != "new" || len(n.Children) != 0 {
		t.Errorf("expected text replaced and children cleared, got %q with %d children", n.Text, len(n.Children))
	}
}

func TestNilNodeRejected(t *testing.T) {
	d := NewMemoryDocument()
	if err := d.AppendChild(nil, nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("expected ErrNilNode, got %v", err)
	}
}

func TestServerContext(t *testing.T) {
	SetDocument(nil)
	defer SetDocument(nil)

	if !IsServerContext() {
		t.Error("expected server context with no host installed")
	}
	if _, err := CreateElement("div"); !errors.Is(err, ErrNoDocument) {
		t.Errorf("expected ErrNoDocument, got %v", err)
	}
	if err := AddClass(&Node{Kind: KindElement}, "x"); !errors.Is(err, ErrNoDocument) {
		t.Errorf("expected ErrNoDocument, got %v", err)
	}

	SetDocument(NewMemoryDocument())
	if IsServerContext() {
		t.Error("expected browser-like context after installing a host")
	}
	if _, err := CreateElement("div"); err != nil {
		t.Errorf("expected CreateElement to succeed with a host, got %v", err)
	}
}

func TestWalkOrder(t *testing.T) {
	d := NewMemoryDocument()
	a, _ := d.CreateElement("a")
	b, _ := d.CreateElement("b")
	c, _ := d.CreateElement("c")
	d.AppendChild(d.Root(), a)
	d.AppendChild(a, b)
	d.AppendChild(d.Root(), c)

	var tags []string
	d.Root().Walk(func(n *Node) {
		if n.Kind == KindElement {
			tags = append(tags, n.Tag)
		}
	})

	want := []string{"body", "a", "b", "c"}
	for i := range want {
		if i >= len(tags) || tags[i] != want[i] {
			t.Fatalf("expected walk order %v, got %v", want, tags)
		}
	}
}
