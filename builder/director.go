package builder

import (
	"fmt"
	"io"
)

// Director runs builder steps in fixed orders. It never reads the product; the
// caller collects it from the builder.
//
// The builder must be set (NewDirector or SetBuilder) before any Build call.
type Director struct {
	builder Builder
}

// NewDirector returns a Director that drives b.
func NewDirector(b Builder) *Director {
	return &Director{builder: b}
}

// SetBuilder replaces the builder used by subsequent Build calls.
func (d *Director) SetBuilder(b Builder) {
	d.builder = b
}

// BuildMinimalViableProduct runs step A only.
func (d *Director) BuildMinimalViableProduct() {
	d.builder.ProducePartA()
}

// BuildFullFeaturedProduct runs steps A, B and C in that order.
func (d *Director) BuildFullFeaturedProduct() {
	d.builder.ProducePartA()
	d.builder.ProducePartB()
	d.builder.ProducePartC()
}

// Run prints the builder walkthrough to w: two director recipes and one custom
// product built without the director.
func Run(w io.Writer) error {
	b := NewConcreteBuilder1()
	director := &Director{}
	director.SetBuilder(b)

	director.BuildMinimalViableProduct()
	basic := b.GetProduct()

	director.BuildFullFeaturedProduct()
	full := b.GetProduct()

	b.ProducePartA()
	b.ProducePartC()
	custom := b.GetProduct()

	_, err := fmt.Fprintf(w, "Standard basic product:\n%s\n\nStandard full featured product:\n%s\n\nCustom product:\n%s\n",
		basic.ListParts(), full.ListParts(), custom.ListParts())
	return err
}
