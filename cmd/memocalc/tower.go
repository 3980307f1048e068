package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/zephyrtronium/memocalc"
)

// maxTowerHeight caps the tree at a couple million nodes.
const maxTowerHeight = 20

// maxTowerDraw caps drawn trees at a couple thousand lines.
const maxTowerDraw = 10

// towerCommand evaluates a tree whose size doubles with each level but whose
// distinct calculations grow only linearly.
type towerCommand struct {
	ui  cli.Ui
	log hclog.Logger
}

func (c *towerCommand) Help() string {
	return strings.TrimSpace(`
Usage: memocalc tower [-base n] [-height n] [-tree]

  Builds and evaluates the tree T(height), where T(1) is the base constant
  and T(k) multiplies T(k-1) with T(k-1)+k. Each level contains two full
  copies of the level below, so the tree holds 2^height-2 operations but
  only 2(height-1) distinct calculations; everything else is a cache hit.

Options:

  -base n    Value of the leaf constants. (default 2)
  -height n  Number of levels, between 1 and ` + fmt.Sprint(maxTowerHeight) + `. (default 8)
  -tree      Draw the tree before evaluating it. Only for heights up to ` + fmt.Sprint(maxTowerDraw) + `.
`)
}

func (c *towerCommand) Synopsis() string {
	return "Evaluate a tree with exponentially many repeated subtrees"
}

func (c *towerCommand) Run(args []string) int {
	fs := flag.NewFlagSet("tower", flag.ContinueOnError)
	base := fs.Int64("base", 2, "value of the leaf constants")
	height := fs.Int("height", 8, "number of levels")
	draw := fs.Bool("tree", false, "draw the tree before evaluating it")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *height < 1 || *height > maxTowerHeight {
		c.ui.Error(fmt.Sprintf("height must be between 1 and %d, not %d", maxTowerHeight, *height))
		return 1
	}
	if *draw && *height > maxTowerDraw {
		c.ui.Error(fmt.Sprintf("-tree is limited to heights up to %d", maxTowerDraw))
		return 1
	}

	n := towerTree(*base, *height)
	c.log.Debug("built tree", "operations", n.Count())
	if *draw {
		c.ui.Output(strings.TrimSuffix(memocalc.Render(n), "\n"))
	}
	start := time.Now()
	r, cache, err := memocalc.Evaluate(n)
	if err != nil {
		c.ui.Error(err.Error())
		return 1
	}
	c.log.Debug("evaluated", "elapsed", time.Since(start))
	c.ui.Output(fmt.Sprintf("height %d tower over %d = %s", *height, *base, abbrev(r.String())))
	c.ui.Output(fmt.Sprintf("%d operations collapsed into %d entries (%d hits)",
		n.Count(), cache.Len(), cache.Hits()))
	return 0
}

// towerTree builds T(height) with two fresh copies of the level below at
// each level. The copies share no pointers, only structure.
func towerTree(base int64, height int) *memocalc.Node {
	if height <= 1 {
		return memocalc.Int(base)
	}
	return memocalc.Mul(
		towerTree(base, height-1),
		memocalc.Add(towerTree(base, height-1), memocalc.Int(int64(height))),
	)
}

// abbrev elides the middle of very long numbers.
func abbrev(s string) string {
	if len(s) <= 48 {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:24], s[len(s)-12:], len(s))
}
