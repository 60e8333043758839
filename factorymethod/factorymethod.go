// Package factorymethod demonstrates the Factory Method pattern: a creator whose
// shared logic depends on a product chosen by the concrete creator.
package factorymethod

import (
	"fmt"
	"io"
)

// Product is what a creator's factory method returns.
type Product interface {
	Operation() string
}

// Product1 is the product made by Creator1.
type Product1 struct{}

// Operation identifies Product1.
func (*Product1) Operation() string { return "{Result of the ConcreteProduct1}" }

// Product2 is the product made by Creator2.
type Product2 struct{}

// Operation identifies Product2.
func (*Product2) Operation() string { return "{Result of the ConcreteProduct2}" }

// Creator declares the factory method.
type Creator interface {
	FactoryMethod() Product
}

// SomeOperation is the creator logic shared by every concrete creator.
func SomeOperation(c Creator) string {
	return "Creator: The same creator's code has just worked with " + c.FactoryMethod().Operation()
}

// Creator1 creates Product1.
type Creator1 struct{}

// FactoryMethod returns a new Product1.
func (Creator1) FactoryMethod() Product { return &Product1{} }

// Creator2 creates Product2.
type Creator2 struct{}

// FactoryMethod returns a new Product2.
func (Creator2) FactoryMethod() Product { return &Product2{} }

// ClientCode only knows the Creator interface.
func ClientCode(w io.Writer, c Creator) error {
	_, err := fmt.Fprintf(w, "Client: I'm not aware of the creator's class, but it still works.\n%s\n", SomeOperation(c))
	return err
}

// Run prints the factory method walkthrough to w.
func Run(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "App: Launched with the ConcreteCreator1."); err != nil {
		return err
	}
	if err := ClientCode(w, Creator1{}); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\nApp: Launched with the ConcreteCreator2."); err != nil {
		return err
	}
	return ClientCode(w, Creator2{})
}
