// Package prototype demonstrates the Prototype pattern: objects that can produce
// structurally equal, identity distinct copies of themselves, kept in a keyed
// Registry that hands out clones.
//
// The model is intentionally small:
//
//   - Prototype: a key/value pair plus one variant specific field.
//   - ConcretePrototype1 / ConcretePrototype2: the two variants, each with its
//     own Clone that copies every field by value.
//   - Registry: key -> Prototype. Create always returns a fresh clone; the
//     stored instance is never handed out.
//
// Ownership note
//
// Put stores the reference the caller passed. The caller keeps a live alias and
// can mutate the stored entry until the key is overwritten:
//
//	p := prototype.NewConcretePrototype2("P", 1, 22)
//	reg.Put("P", p)
//	p.Base.Value = 7 // the next Create("P") returns Value 7
//
// A Registry is not safe for concurrent use.
//
// Run prints the narrated walkthrough used by cmd/prototype.
package prototype
