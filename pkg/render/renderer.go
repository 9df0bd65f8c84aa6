package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pochita1998/velocity-framework/pkg/dom"
)

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#39;",
	)
	// Attribute values additionally escape whitespace that could break
	// attribute parsing.
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#39;",
		"\n", "&#10;", "\r", "&#13;", "\t", "&#9;",
	)
)

// escapeHTML escapes text for HTML content position.
func escapeHTML(s string) string { return textEscaper.Replace(s) }

// escapeAttr escapes text for attribute value position.
func escapeAttr(s string) string { return attrEscaper.Replace(s) }

// voidElements are elements rendered without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Renderer handles server-side rendering of DOM trees to HTML.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node)
}

func (r *Renderer) renderNode(w io.Writer, node *dom.Node) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.KindElement:
		return r.renderElement(w, node)
	case dom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *dom.Node) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}

	// Deterministic attribute order for stable output.
	names := make([]string, 0, len(node.Attrs))
	for name := range node.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(node.Attrs[name])); err != nil {
			return err
		}
	}

	if voidElements[node.Tag] {
		_, err := io.WriteString(w, "/>")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if node.Text != "" {
		if _, err := io.WriteString(w, escapeHTML(node.Text)); err != nil {
			return err
		}
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}
