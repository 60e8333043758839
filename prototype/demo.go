package prototype

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	seeds []Prototype
	log   *zap.Logger
}

// WithSeeds registers extra prototypes (under their own Key) before the walkthrough.
func WithSeeds(seeds ...Prototype) RunOption {
	return func(c *runConfig) { c.seeds = append(c.seeds, seeds...) }
}

// WithRunLogger passes l to the registry used by Run.
func WithRunLogger(l *zap.Logger) RunOption {
	return func(c *runConfig) { c.log = l }
}

// Lines renders c the way the walkthrough prints it.
func (c Comparison) Lines() []string {
	same, identical := "- Different objects", "- Not Identical"
	if c.Same {
		same = "- Same objects"
	}
	if c.Identical {
		identical = "- Identical"
	}
	return []string{same, identical}
}

// Run prints the prototype walkthrough to w.
//
// It seeds a registry, adds PROTOTYPE_2, creates two clones of each key and
// compares them with the stored entries and with each other.
func Run(w io.Writer, opts ...RunOption) error {
	cfg := runConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &printer{w: w}
	reg := NewRegistry(WithLogger(cfg.log))
	for _, s := range cfg.seeds {
		if s == nil {
			continue
		}
		reg.Put(s.Key(), s)
	}

	p.list(reg)
	p.println("Putting prototype <" + KeyPrototype2 + ">")
	reg.Put(KeyPrototype2, NewConcretePrototype2(KeyPrototype2, 2, 22))
	p.list(reg)

	p.println("======" + KeyPrototype1 + "========")
	first, second, err := p.createPair(reg, KeyPrototype1)
	if err != nil {
		return err
	}

	p.println("")
	p.println("======" + KeyPrototype2 + "========")
	third, fourth, err := p.createPair(reg, KeyPrototype2)
	if err != nil {
		return err
	}

	p.println("======DIFF========")
	p.compareWithClone(reg, first, third)
	p.compareWithClone(reg, second, fourth)
	return p.err
}

// createPair creates key twice, comparing each clone with the stored entry and
// the two clones with each other.
func (p *printer) createPair(reg *Registry, key string) (Prototype, Prototype, error) {
	var out [2]Prototype
	for i := range out {
		if i > 0 {
			p.println("")
		}
		p.println("Creating prototype: " + key)
		created, err := reg.Create(key)
		if err != nil {
			return nil, nil, fmt.Errorf("create %s: %w", key, err)
		}
		p.println(created.String())

		cmpRes, err := reg.CompareWithPrototype(key, created)
		if err != nil {
			return nil, nil, fmt.Errorf("compare %s: %w", key, err)
		}
		p.println("Comparing with Prototype:")
		p.println(cmpRes.Lines()...)
		out[i] = created
	}

	p.println("")
	p.compareWithClone(reg, out[0], out[1])
	return out[0], out[1], nil
}

func (p *printer) compareWithClone(reg *Registry, a, b Prototype) {
	p.println("Comparing with Clone:")
	p.println(reg.CompareWithClone(a, b).Lines()...)
}

func (p *printer) list(reg *Registry) {
	p.println("Listing available prototypes:")
	p.println(reg.Keys()...)
}

// printer writes one line per string and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(lines ...string) {
	for _, l := range lines {
		if p.err != nil {
			return
		}
		_, p.err = fmt.Fprintln(p.w, l)
	}
}
