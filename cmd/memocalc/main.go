package main

import (
	"log"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func main() {
	log.SetFlags(0)
	logger := newLogger()
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("memocalc", version)
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"demo": func() (cli.Command, error) {
			return &demoCommand{ui: ui, log: logger}, nil
		},
		"tower": func() (cli.Command, error) {
			return &towerCommand{ui: ui, log: logger}, nil
		},
	}

	status, err := c.Run()
	if err != nil {
		log.Println(err)
	}
	os.Exit(status)
}

// newLogger builds the diagnostic logger. Logging is off unless the
// MEMOCALC_LOG environment variable names a level.
func newLogger() hclog.Logger {
	level := hclog.NoLevel
	if v := os.Getenv("MEMOCALC_LOG"); v != "" {
		level = hclog.LevelFromString(v)
	}
	if level == hclog.NoLevel {
		return hclog.NewNullLogger()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "memocalc",
		Level:  level,
		Output: os.Stderr,
	})
}
