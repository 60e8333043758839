// Package catalog lists the runnable pattern walkthroughs under stable names.
package catalog

import (
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/sghaida/creational/abstractfactory"
	"github.com/sghaida/creational/builder"
	"github.com/sghaida/creational/factorymethod"
	"github.com/sghaida/creational/prototype"
)

// Demo is one runnable walkthrough.
type Demo struct {
	Name        string
	Description string
	Run         func(w io.Writer) error
}

// UnknownDemoError is returned by Lookup for names not in the catalog.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	return "catalog: unknown demo " + strconv.Quote(e.Name)
}

// Options tune the demos that accept extra inputs.
type Options struct {
	// Logger is passed to the prototype registry. Nil means no logging.
	Logger *zap.Logger
	// Seeds are registered before the prototype walkthrough.
	Seeds []prototype.Prototype
}

// All returns every demo in a fixed order.
func All(opts Options) []Demo {
	return []Demo{
		{
			Name:        "abstractfactory",
			Description: "families of related products created through one factory interface",
			Run:         abstractfactory.Run,
		},
		{
			Name:        "builder",
			Description: "step-by-step product assembly with an optional director",
			Run:         builder.Run,
		},
		{
			Name:        "factorymethod",
			Description: "creator logic that defers product choice to concrete creators",
			Run:         factorymethod.Run,
		},
		{
			Name:        "prototype",
			Description: "keyed registry handing out identity-distinct clones",
			Run: func(w io.Writer) error {
				return prototype.Run(w, prototype.WithSeeds(opts.Seeds...), prototype.WithRunLogger(opts.Logger))
			},
		},
	}
}

// Names returns the demo names in catalog order.
func Names() []string {
	demos := All(Options{})
	out := make([]string, 0, len(demos))
	for _, d := range demos {
		out = append(out, d.Name)
	}
	return out
}

// Lookup returns the demo called name.
func Lookup(name string, opts Options) (Demo, error) {
	for _, d := range All(opts) {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, UnknownDemoError{Name: name}
}
