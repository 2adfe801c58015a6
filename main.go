package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/springconv/internal/config"
	"github.com/olivier-w/springconv/internal/report"
	"github.com/olivier-w/springconv/internal/spring"
	"github.com/olivier-w/springconv/internal/ui"
)

const debugEnv = "SPRINGCONV_DEBUG"

var errUsage = errors.New("usage")

type options struct {
	response, damping float64
	duration, bounce  float64
	group             string
	json              bool
	set               map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v (using defaults)\n", err)
	}

	mode, a, b, headless, err := opts.inputs()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if headless {
		group := cfg.OutputGroup
		if opts.set["group"] {
			if group, err = spring.ParseOutputGroup(opts.group); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 2
			}
		}
		snap := spring.Resolve(mode, a, b)
		if opts.json {
			err = report.WriteJSON(stdout, snap)
		} else {
			err = report.WriteText(stdout, snap, group)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		if !snap.Finite() {
			return 1
		}
		return 0
	}

	if path := os.Getenv(debugEnv); path != "" {
		f, err := tea.LogToFile(path, "springconv")
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	program := tea.NewProgram(ui.New(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("springconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&opts.response, "response", 0, "iOS response in seconds")
	fs.Float64Var(&opts.damping, "damping", 0, "iOS damping fraction (0-1)")
	fs.Float64Var(&opts.duration, "duration", 0, "iOS duration in seconds")
	fs.Float64Var(&opts.bounce, "bounce", 0, "iOS bounce (0-1)")
	fs.StringVar(&opts.group, "group", "", "output group: android or generic")
	fs.BoolVar(&opts.json, "json", false, "print JSON instead of a table")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  springconv                         interactive converter\n")
		fmt.Fprintf(fs.Output(), "  springconv -response R -damping D  convert response/damping fraction\n")
		fmt.Fprintf(fs.Output(), "  springconv -duration T -bounce B   convert duration/bounce\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// inputs picks the input pair given on the command line. headless is false
// when no value flag was set.
func (o options) inputs() (mode spring.InputMode, a, b float64, headless bool, err error) {
	rd := o.set["response"] || o.set["damping"]
	db := o.set["duration"] || o.set["bounce"]
	switch {
	case rd && db:
		return mode, 0, 0, false, fmt.Errorf("%w: use either -response/-damping or -duration/-bounce", errUsage)
	case rd:
		if !o.set["response"] || !o.set["damping"] {
			return mode, 0, 0, false, fmt.Errorf("%w: -response and -damping go together", errUsage)
		}
		return spring.ResponseDamping, o.response, o.damping, true, nil
	case db:
		if !o.set["duration"] || !o.set["bounce"] {
			return mode, 0, 0, false, fmt.Errorf("%w: -duration and -bounce go together", errUsage)
		}
		return spring.DurationBounceMode, o.duration, o.bounce, true, nil
	}
	if o.set["json"] || o.set["group"] {
		return mode, 0, 0, false, fmt.Errorf("%w: -json and -group need input values", errUsage)
	}
	return mode, 0, 0, false, nil
}
