// Package creational is a catalog of creational design patterns in Go.
//
// Each pattern lives in its own package and ships a runnable walkthrough:
//
//   - abstractfactory: families of related products behind one factory interface
//   - builder: step-by-step assembly, with an optional director
//   - factorymethod: creator logic that defers product choice to subtypes
//   - prototype: a keyed registry that hands out identity-distinct clones
//
// Packages do not depend on each other.
//
// Package creational See subpackages:
//   - abstractfactory, builder, factorymethod, prototype: the patterns
//   - cmd/<pattern>: one executable per walkthrough, no arguments
//   - cmd/creational: CLI that lists and runs any walkthrough
package creational
