package prototype

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// Comparison is the result of checking two prototypes against each other.
type Comparison struct {
	// Same reports identity: both references denote one instance.
	Same bool
	// Identical reports structural equality: same variant, all fields equal.
	Identical bool
}

// structural compares unexported fields too, so caller-defined variants with
// private state never make cmp panic.
var structural = cmp.Exporter(func(reflect.Type) bool { return true })

// Compare returns identity and structural equality of a and b as independent flags.
//
// It never panics. Values whose dynamic type is not comparable (for example a
// struct holding a slice) have no identity and are never Same.
func Compare(a, b Prototype) Comparison {
	return Comparison{
		Same:      sameInstance(a, b),
		Identical: cmp.Equal(a, b, structural),
	}
}

func sameInstance(a, b Prototype) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if a == nil {
		return true
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registry events. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// Registry is a keyed store of prototypes used as clone sources.
//
// Keys are unique. Listing follows first-insertion order; overwriting a key keeps
// its position.
type Registry struct {
	items map[string]Prototype
	order []string
	log   *zap.Logger
}

// NewRegistry returns a Registry seeded with PROTOTYPE_1 (value 1, extra 11).
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		items: map[string]Prototype{},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r.Put(KeyPrototype1, NewConcretePrototype1(KeyPrototype1, 1, 11))
}

// Put stores p under key, replacing any previous entry, and returns the registry
// for chaining.
//
// The stored reference is p itself: mutations made through the caller's alias are
// visible to later Create calls until key is overwritten.
func (r *Registry) Put(key string, p Prototype) *Registry {
	if _, exists := r.items[key]; !exists {
		r.order = append(r.order, key)
	}
	r.items[key] = p
	if ce := r.log.Check(zap.DebugLevel, "prototype stored"); ce != nil {
		ce.Write(zap.String("key", key), zap.String("type", fmt.Sprintf("%T", p)))
	}
	return r
}

// Get returns the stored instance (no clone) if present.
//
// It exists for comparisons and tests; callers that want a usable object should
// call Create.
func (r *Registry) Get(key string) (Prototype, bool) {
	p, ok := r.items[key]
	return p, ok
}

// Create returns a fresh clone of the prototype stored under key.
//
// It returns a *LookupMissError if key is absent and ErrNilPrototype if the stored
// entry is nil.
func (r *Registry) Create(key string) (Prototype, error) {
	stored, err := r.lookup(key)
	if err != nil {
		return nil, err
	}
	cp := stored.Clone()
	if cp == nil {
		// typed nil pointer stored behind a non-nil interface
		return nil, ErrNilPrototype
	}
	r.log.Debug("prototype cloned", zap.String("key", key))
	return cp, nil
}

// MustCreate returns a clone of the prototype stored under key or panics.
// Useful in examples/tests where missing keys should fail fast.
func (r *Registry) MustCreate(key string) Prototype {
	p, err := r.Create(key)
	if err != nil {
		panic(err)
	}
	return p
}

// Keys returns the registered keys in insertion order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered keys.
func (r *Registry) Len() int { return len(r.items) }

// CompareWithPrototype compares candidate with the instance stored under key.
func (r *Registry) CompareWithPrototype(key string, candidate Prototype) (Comparison, error) {
	stored, ok := r.items[key]
	if !ok {
		r.log.Debug("prototype lookup miss", zap.String("key", key))
		return Comparison{}, &LookupMissError{Key: key}
	}
	return Compare(stored, candidate), nil
}

// CompareWithClone compares two arbitrary prototypes, typically two results of
// Create.
func (r *Registry) CompareWithClone(a, b Prototype) Comparison {
	return Compare(a, b)
}

func (r *Registry) lookup(key string) (Prototype, error) {
	stored, ok := r.items[key]
	if !ok {
		r.log.Debug("prototype lookup miss", zap.String("key", key))
		return nil, &LookupMissError{Key: key}
	}
	if stored == nil {
		return nil, ErrNilPrototype
	}
	return stored, nil
}
