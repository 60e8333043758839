// Package abstractfactory demonstrates the Abstract Factory pattern: a factory
// interface that creates a family of related products without naming their
// concrete types.
//
// Each concrete factory produces exactly one variant of every product, so
// products obtained from the same factory always match.
package abstractfactory

import (
	"strconv"
)

// Variant identifies a product family.
type Variant int

const (
	Variant1 Variant = iota + 1
	Variant2
)

// String returns "1" or "2" for known variants.
func (v Variant) String() string { return strconv.Itoa(int(v)) }

// UnsupportedVariantError is returned by NewFactory for unknown variants.
type UnsupportedVariantError struct{ Variant Variant }

// Error implements the error interface.
func (e UnsupportedVariantError) Error() string {
	// Example: abstractfactory: unsupported variant 3
	return "abstractfactory: unsupported variant " + strconv.Itoa(int(e.Variant))
}

// ProductA is the first product family.
type ProductA interface {
	Variant() Variant
	UsefulFunctionA() string
}

// ProductB is the second product family. It can collaborate with any ProductA.
type ProductB interface {
	Variant() Variant
	UsefulFunctionB() string
	AnotherUsefulFunctionB(collaborator ProductA) string
}

// Factory creates one product of each family.
type Factory interface {
	CreateProductA() ProductA
	CreateProductB() ProductB
}

// NewFactory returns the factory for v.
func NewFactory(v Variant) (Factory, error) {
	switch v {
	case Variant1:
		return Factory1{}, nil
	case Variant2:
		return Factory2{}, nil
	default:
		return nil, UnsupportedVariantError{Variant: v}
	}
}

// Factory1 creates variant 1 products.
type Factory1 struct{}

// CreateProductA returns a ProductA1.
func (Factory1) CreateProductA() ProductA { return ProductA1{} }

// CreateProductB returns a ProductB1.
func (Factory1) CreateProductB() ProductB { return ProductB1{} }

// Factory2 creates variant 2 products.
type Factory2 struct{}

// CreateProductA returns a ProductA2.
func (Factory2) CreateProductA() ProductA { return ProductA2{} }

// CreateProductB returns a ProductB2.
func (Factory2) CreateProductB() ProductB { return ProductB2{} }
