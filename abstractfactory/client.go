package abstractfactory

import (
	"fmt"
	"io"
)

// ClientCode works with any factory through the interfaces only.
func ClientCode(w io.Writer, f Factory) error {
	a := f.CreateProductA()
	b := f.CreateProductB()

	_, err := fmt.Fprintf(w, "%s\n%s\n", b.UsefulFunctionB(), b.AnotherUsefulFunctionB(a))
	return err
}

// Run prints the abstract factory walkthrough to w, running ClientCode with both
// factories.
func Run(w io.Writer) error {
	steps := []struct {
		intro   string
		variant Variant
	}{
		{intro: "Client: Testing client code with the first factory type:", variant: Variant1},
		{intro: "Client: Testing the same client code with the second factory type:", variant: Variant2},
	}

	for i, s := range steps {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		f, err := NewFactory(s.variant)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, s.intro); err != nil {
			return err
		}
		if err := ClientCode(w, f); err != nil {
			return err
		}
	}
	return nil
}
