// Package builder demonstrates the Builder pattern: a product assembled step by
// step by a Builder, optionally sequenced by a Director.
//
// Builders are not safe for concurrent use.
package builder

import (
	"strings"
)

// Part labels appended by ConcreteBuilder1.
const (
	PartA1 = "PartA1"
	PartB1 = "PartB1"
	PartC1 = "PartC1"
)

// Product is an ordered, append-only sequence of part labels.
type Product struct {
	parts []string
}

// Parts returns a copy of the part labels in the order they were produced.
func (p Product) Parts() []string {
	out := make([]string, len(p.parts))
	copy(out, p.parts)
	return out
}

// ListParts renders the product as "Product parts: A, B".
func (p Product) ListParts() string {
	return "Product parts: " + strings.Join(p.parts, ", ")
}

// Builder declares the construction steps shared by all builders.
type Builder interface {
	ProducePartA()
	ProducePartB()
	ProducePartC()
	// GetProduct returns the product built so far and starts a new blank one.
	GetProduct() Product
}

// ConcreteBuilder1 builds products out of the *1 part family.
type ConcreteBuilder1 struct {
	product Product
}

// NewConcreteBuilder1 returns a builder holding a blank product.
func NewConcreteBuilder1() *ConcreteBuilder1 {
	return &ConcreteBuilder1{}
}

// ProducePartA appends PartA1.
func (b *ConcreteBuilder1) ProducePartA() { b.add(PartA1) }

// ProducePartB appends PartB1.
func (b *ConcreteBuilder1) ProducePartB() { b.add(PartB1) }

// ProducePartC appends PartC1.
func (b *ConcreteBuilder1) ProducePartC() { b.add(PartC1) }

// GetProduct returns the accumulated product and resets the builder.
//
// The returned product owns its parts; later steps on b never reach it.
func (b *ConcreteBuilder1) GetProduct() Product {
	result := b.product
	b.product = Product{}
	return result
}

func (b *ConcreteBuilder1) add(part string) {
	b.product.parts = append(b.product.parts, part)
}
