package prototype

import (
	"strconv"
)

// Registry keys seeded or used by the demo.
const (
	KeyPrototype1 = "PROTOTYPE_1"
	KeyPrototype2 = "PROTOTYPE_2"
)

// Prototype is an object capable of producing a copy of itself.
//
// Clone must return a new instance whose fields are equal to the receiver at the
// time of the call, sharing no state with it.
type Prototype interface {
	Key() string
	Value() int
	Clone() Prototype
	String() string
}

// Base holds the fields every prototype variant carries.
type Base struct {
	Key   string
	Value int
}

// String renders the shared fields as "key: K, value: V".
func (b Base) String() string {
	return "key: " + b.Key + ", value: " + strconv.Itoa(b.Value)
}

// ConcretePrototype1 is the first variant. Extra1 is its own field.
type ConcretePrototype1 struct {
	Base
	Extra1 int
}

// NewConcretePrototype1 returns a first-variant prototype.
func NewConcretePrototype1(key string, value, extra int) *ConcretePrototype1 {
	return &ConcretePrototype1{Base: Base{Key: key, Value: value}, Extra1: extra}
}

// Key returns the registry key the prototype was built with.
func (p *ConcretePrototype1) Key() string { return p.Base.Key }

// Value returns the shared value field.
func (p *ConcretePrototype1) Value() int { return p.Base.Value }

// Clone returns a field-by-field copy. A nil receiver clones to nil.
func (p *ConcretePrototype1) Clone() Prototype {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// String renders the base fields and Extra1.
func (p *ConcretePrototype1) String() string {
	return "Called from " + p.Base.String() + ", concretePrototypeValue1: " + strconv.Itoa(p.Extra1)
}

// ConcretePrototype2 is the second variant. Extra2 is its own field.
type ConcretePrototype2 struct {
	Base
	Extra2 int
}

// NewConcretePrototype2 returns a second-variant prototype.
func NewConcretePrototype2(key string, value, extra int) *ConcretePrototype2 {
	return &ConcretePrototype2{Base: Base{Key: key, Value: value}, Extra2: extra}
}

// Key returns the registry key the prototype was built with.
func (p *ConcretePrototype2) Key() string { return p.Base.Key }

// Value returns the shared value field.
func (p *ConcretePrototype2) Value() int { return p.Base.Value }

// Clone returns a field-by-field copy. A nil receiver clones to nil.
func (p *ConcretePrototype2) Clone() Prototype {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// String renders the base fields and Extra2.
func (p *ConcretePrototype2) String() string {
	return "Called from " + p.Base.String() + ", concretePrototypeValue2: " + strconv.Itoa(p.Extra2)
}
