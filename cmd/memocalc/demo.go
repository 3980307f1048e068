package main

import (
	"flag"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/zephyrtronium/memocalc"
)

// demoCommand evaluates three built-in trees of increasing size and reports
// their results and cache statistics.
type demoCommand struct {
	ui  cli.Ui
	log hclog.Logger
}

func (c *demoCommand) Help() string {
	return strings.TrimSpace(`
Usage: memocalc demo [-tree] [name ...]

  Evaluates the built-in expression trees and reports the result of each
  along with the number of operations in the tree, the distinct
  calculations recorded, and the cache hits during evaluation. With name
  arguments, evaluates only the named trees (simple, medium, complex).

Options:

  -tree  Draw each tree before evaluating it.
`)
}

func (c *demoCommand) Synopsis() string {
	return "Evaluate the built-in demonstration trees"
}

func (c *demoCommand) Run(args []string) int {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	draw := fs.Bool("tree", false, "draw each tree before evaluating it")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	ds := demos()
	if names := fs.Args(); len(names) > 0 {
		picked := make([]demo, 0, len(names))
		for _, name := range names {
			i := slices.IndexFunc(ds, func(d demo) bool { return d.name == name })
			if i < 0 {
				c.ui.Error(fmt.Sprintf("no demo tree named %q", name))
				return 1
			}
			picked = append(picked, ds[i])
		}
		ds = picked
	}
	for _, d := range ds {
		if *draw {
			c.ui.Output(strings.TrimSuffix(memocalc.Render(d.tree), "\n"))
		}
		start := time.Now()
		r, cache, err := memocalc.Evaluate(d.tree)
		if err != nil {
			c.ui.Error(fmt.Sprintf("evaluating %s: %v", d.name, err))
			return 1
		}
		c.log.Debug("evaluated", "name", d.name, "elapsed", time.Since(start))
		c.ui.Output(fmt.Sprintf("%s = %v (%d operations, %d entries, %d hits)",
			d.name, r, d.tree.Count(), cache.Len(), cache.Hits()))
	}
	return 0
}

type demo struct {
	name string
	tree *memocalc.Node
}

func demos() []demo {
	return []demo{
		{"simple", demoSimple()},
		{"medium", demoMedium()},
		{"complex", demoComplex()},
	}
}

// demoSimple builds ((2^10 + 2) * 2) + (2 * 10^2), which evaluates without
// any repeated calculations.
func demoSimple() *memocalc.Node {
	return memocalc.Add(
		memocalc.Mul(
			memocalc.Add(
				memocalc.Pow(memocalc.Int(2), memocalc.Int(10)),
				memocalc.Int(2),
			),
			memocalc.Int(2),
		),
		memocalc.Mul(
			memocalc.Int(2),
			memocalc.Pow(memocalc.Int(10), memocalc.Int(2)),
		),
	)
}

// demoMedium builds a chain that raises 2 to the 2^20th power on the way to
// its result.
func demoMedium() *memocalc.Node {
	return memocalc.Add(
		memocalc.Mul(
			memocalc.Add(
				memocalc.Mul(
					memocalc.Mul(
						memocalc.Add(memocalc.Int(2), memocalc.Int(2)),
						memocalc.Pow(
							memocalc.Int(2),
							memocalc.Pow(
								memocalc.Int(2),
								memocalc.Mul(memocalc.Int(2), memocalc.Int(10)),
							),
						),
					),
					memocalc.Int(10),
				),
				memocalc.Int(2),
			),
			memocalc.Int(2),
		),
		memocalc.Int(0),
	)
}

// demoComplex builds a tree whose two main branches repeat the same deep
// subexpressions with commutative operands flipped, so a third of its
// operations resolve from cache.
func demoComplex() *memocalc.Node {
	left := memocalc.Mul(
		memocalc.Add(
			memocalc.Mul(
				memocalc.Mul(
					memocalc.Add(memocalc.Int(2), memocalc.Int(2)),
					memocalc.Pow(
						memocalc.Int(2),
						memocalc.Pow(
							memocalc.Int(2),
							memocalc.Mul(
								memocalc.Int(2),
								memocalc.Add(memocalc.Int(5), memocalc.Int(10)),
							),
						),
					),
				),
				memocalc.Int(10),
			),
			memocalc.Int(2),
		),
		memocalc.Int(2),
	)
	right := memocalc.Add(
		memocalc.Int(2),
		memocalc.Add(
			memocalc.Int(10),
			memocalc.Mul(
				memocalc.Mul(memocalc.Int(2), memocalc.Int(2)),
				memocalc.Pow(
					memocalc.Int(2),
					memocalc.Pow(
						memocalc.Int(2),
						memocalc.Mul(
							memocalc.Int(2),
							memocalc.Add(memocalc.Int(10), memocalc.Int(5)),
						),
					),
				),
			),
		),
	)
	return memocalc.Mod(
		memocalc.Add(left, right),
		memocalc.Add(
			memocalc.Int(1),
			memocalc.Pow(memocalc.Int(2), memocalc.Mul(memocalc.Int(2), memocalc.Int(10))),
		),
	)
}
