package abstractfactory

// ProductA1 is the variant 1 implementation of ProductA.
type ProductA1 struct{}

// Variant returns Variant1.
func (ProductA1) Variant() Variant { return Variant1 }

// UsefulFunctionA returns the fixed A1 result line.
func (ProductA1) UsefulFunctionA() string { return "The result of the product A1." }

// ProductA2 is the variant 2 implementation of ProductA.
type ProductA2 struct{}

// Variant returns Variant2.
func (ProductA2) Variant() Variant { return Variant2 }

// UsefulFunctionA returns the fixed A2 result line.
func (ProductA2) UsefulFunctionA() string { return "The result of the product A2." }

// ProductB1 is the variant 1 implementation of ProductB.
type ProductB1 struct{}

// Variant returns Variant1.
func (ProductB1) Variant() Variant { return Variant1 }

// UsefulFunctionB returns the fixed B1 result line.
func (ProductB1) UsefulFunctionB() string { return "The result of the product B1." }

// AnotherUsefulFunctionB embeds the collaborator's UsefulFunctionA result.
// Any ProductA is accepted; variant matching is the factory's job.
func (ProductB1) AnotherUsefulFunctionB(collaborator ProductA) string {
	return collaborate("B1", collaborator)
}

// ProductB2 is the variant 2 implementation of ProductB.
type ProductB2 struct{}

// Variant returns Variant2.
func (ProductB2) Variant() Variant { return Variant2 }

// UsefulFunctionB returns the fixed B2 result line.
func (ProductB2) UsefulFunctionB() string { return "The result of the product B2." }

// AnotherUsefulFunctionB embeds the collaborator's UsefulFunctionA result.
func (ProductB2) AnotherUsefulFunctionB(collaborator ProductA) string {
	return collaborate("B2", collaborator)
}

func collaborate(self string, collaborator ProductA) string {
	return "The result of the " + self + " collaborating with the (" + collaborator.UsefulFunctionA() + ")"
}
