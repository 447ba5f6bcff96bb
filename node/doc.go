// Package node provides the mutable document tree at the core of treedoc.
//
// # Overview
//
// A treedoc document (whether parsed from YAML or JSON text, created
// programmatically, or produced by the gomap reflection engine) is a tree of
// *Node values. A Node is a recursive tagged value with one of four shapes:
//
//   - Null: no payload, the state of a freshly constructed node
//   - Scalar: a textual value convertible to and from typed Go values
//   - Sequence: an ordered list of child nodes
//   - Map: an ordered list of key/value node pairs
//
// A nil *Node is additionally a valid "undefined" handle: inert, safe to
// call methods on, reported by Kind as UndefinedKind.
//
// # Handles and aliasing
//
// *Node is a handle into shared storage. Copying a handle aliases it, and
// children obtained from Get, GetOrCreate or iteration alias into the
// parent's storage, so mutation through any handle is visible through all of
// them:
//
//	a := node.New()
//	b := a
//	a.Push(1)
//	b.Size() // 1
//
// Reset and Set overwrite contents in place, which is how a change is made
// visible to every alias; plain Go assignment of a handle variable merely
// rebinds that variable.
//
// # Conversion
//
// Typed access is best-effort and never faults:
//
//	port := node.As(cfg.Get("port"), 8080)
//	host, ok := node.AsOptional[string](cfg.Get("host"))
//
// Scalar kinds are converted natively; structs and other composite Go types
// go through the Engine registered by the gomap package.
//
// # Vivification
//
// GetOrCreate creates intermediate structure on demand: a Null node becomes
// a Map, missing keys appear with Null values, sequence indices past the end
// pad with Nulls. Get is the strictly read-only form. Iter on a Null node
// converts it to an empty Sequence first; this quirk is deliberate and
// documented rather than enforced away.
//
// # Maps
//
// Map entries are an ordered pair list, not a hash: iteration follows
// insertion order, any node may serve as a key, and ForceInsert permits
// duplicate keys. Lookup is linear and finds the first matching pair.
//
// # Thread safety
//
// Nodes are not thread-safe. Concurrent mutation of aliased storage must be
// serialized by the caller; the package adds no locking.
//
// # Related Packages
//
//   - github.com/treedoc-format/go-treedoc/parse - Parses text into nodes
//   - github.com/treedoc-format/go-treedoc/encode - Encodes nodes to text
//   - github.com/treedoc-format/go-treedoc/gomap - Go value conversion engine
//   - github.com/treedoc-format/go-treedoc/patch - JSON Patch over trees
package node
