package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/creational/internal/catalog"
	"github.com/sghaida/creational/internal/config"
	"github.com/sghaida/creational/prototype"
)

var errNoDemos = errors.New("no demos selected: pass names, --all, or set demos in config")

func newRunCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run one or more walkthroughs",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			switch {
			case all:
				names = catalog.Names()
			case len(names) == 0:
				names = a.cfg.Demos
			}
			if len(names) == 0 {
				return errNoDemos
			}
			return a.runDemos(names)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "run every walkthrough")
	return cmd
}

// runDemos resolves every name before running any, then runs them in order.
// With more than one demo each transcript gets a header.
func (a *app) runDemos(names []string) error {
	opts := catalog.Options{Logger: a.log, Seeds: seedPrototypes(a.cfg.Prototypes)}

	demos := make([]catalog.Demo, 0, len(names))
	for _, name := range names {
		d, err := catalog.Lookup(name, opts)
		if err != nil {
			return err
		}
		demos = append(demos, d)
	}

	for i, d := range demos {
		if len(demos) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(a.stdout); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(a.stdout, "=== %s ===\n", d.Name); err != nil {
				return err
			}
		}

		a.log.Info("running demo", zap.String("demo", d.Name))
		if err := d.Run(a.stdout); err != nil {
			a.log.Error("demo failed", zap.String("demo", d.Name), zap.Error(err))
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
	}
	return nil
}

// seedPrototypes converts validated config seeds into registry entries.
func seedPrototypes(seeds []config.PrototypeSeed) []prototype.Prototype {
	out := make([]prototype.Prototype, 0, len(seeds))
	for _, s := range seeds {
		switch s.Variant {
		case 1:
			out = append(out, prototype.NewConcretePrototype1(s.Key, s.Value, s.Extra))
		case 2:
			out = append(out, prototype.NewConcretePrototype2(s.Key, s.Value, s.Extra))
		}
	}
	return out
}
