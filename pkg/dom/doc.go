// Package dom defines the thin DOM-construction capability consumed by
// compiler-generated code: create element, create text node, append
// child, and attribute/class mutation.
//
// The package carries no rendering or diffing logic. A Document host is
// installed per process; when none is installed the process is in server
// context and every DOM-dependent call fails explicitly with
// ErrNoDocument rather than ambiguously. IsServerContext lets callers
// branch up front. MemoryDocument is the in-memory host used for
// server-side rendering and tests.
package dom
