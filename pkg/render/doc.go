// Package render turns in-memory DOM trees into HTML for server-side
// rendering.
//
// Output is deterministic (attributes sorted) and fully escaped. A Page
// wraps a rendered root with the document shell, embeds the serialized
// state snapshot in a JSON script tag, and references the client
// runtime module, so the markup carries everything hydration needs.
package render
