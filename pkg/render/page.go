package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pochita1998/velocity-framework/pkg/dom"
	"github.com/pochita1998/velocity-framework/pkg/hydrate"
)

// StateScriptID is the id of the script tag carrying the serialized
// state snapshot. The thin client reads and replays it before wiring
// any effect.
const StateScriptID = "__VELOCITY_STATE__"

// Page describes a full HTML document wrapping a rendered root node.
type Page struct {
	// Title is the document title.
	Title string

	// Root is the rendered application tree.
	Root *dom.Node

	// Snapshot is embedded as JSON for client-side hydration.
	// nil omits the state script entirely.
	Snapshot *hydrate.Snapshot

	// RuntimeSrc is the client runtime module URL. Empty omits the tag.
	RuntimeSrc string
}

// RenderPage renders a complete HTML document: doctype, head, the root
// tree with its hydration markers, the embedded state snapshot, and the
// client runtime script.
func (r *Renderer) RenderPage(page *Page) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderPageToWriter(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderPageToWriter streams a complete HTML document.
func (r *Renderer) RenderPageToWriter(w io.Writer, page *Page) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html>\n<head>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
		return err
	}

	if _, err := io.WriteString(w, `<div id="root" data-server-rendered="true">`); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Root); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</div>\n"); err != nil {
		return err
	}

	if page.Snapshot != nil {
		encoded, err := hydrate.Encode(page.Snapshot)
		if err != nil {
			return fmt.Errorf("encode state snapshot: %w", err)
		}
		// "</script" inside a JSON string would terminate the tag early.
		safe := strings.ReplaceAll(string(encoded), "</", `<\/`)
		if _, err := fmt.Fprintf(w,
			"<script id=%q type=\"application/json\">%s</script>\n",
			StateScriptID, safe); err != nil {
			return err
		}
	}

	if page.RuntimeSrc != "" {
		if _, err := fmt.Fprintf(w,
			"<script type=\"module\" src=%q></script>\n",
			page.RuntimeSrc); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
