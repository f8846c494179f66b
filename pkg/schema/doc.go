// Package schema decodes and validates authored portrait data.
//
// Profiles arrive as YAML bytes from whatever source the host uses (editor
// buffers, embedded assets, a network body); this package turns them into
// domain.Profile values and checks the structural rules the directive engine
// relies on: sibling names unique, no path separators inside names, every
// node named. It also carries the plugin settings model with its
// merge-with-defaults semantics.
package schema
