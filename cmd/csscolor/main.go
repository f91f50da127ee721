// Command csscolor parses one CSS color expression and prints it.
//
//	csscolor [--dark] [--format hex|number|rgb|css] <color>
//
// The default format is the 0xAARRGGBB number string. Invalid input prints an
// error to stderr and exits with status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/css-color-tools/internal/config"
	"github.com/ironsheep/css-color-tools/pkg/csscolor"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("csscolor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dark := fs.Bool("dark", false, "resolve light-dark() to its dark branch")
	format := fs.String("format", "number", "output format: hex, number, rgb or css")
	configPath := fs.String("config", "", "TOML config file (default $"+config.EnvConfig+")")
	version := fs.Bool("version", false, "print version information")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: csscolor [options] <color>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *version {
		fmt.Fprintf(stdout, "csscolor %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "csscolor: %v\n", err)
		return 1
	}
	mode, _ := csscolor.ParseMode(cfg.DefaultMode)
	if *dark {
		mode = csscolor.Dark
	}

	p := csscolor.NewParser(csscolor.WithLogger(cfg.NewLogger()))
	c, err := p.Parse(fs.Arg(0), csscolor.Options{Mode: mode})
	if err != nil {
		fmt.Fprintf(stderr, "csscolor: %q: %v\n", fs.Arg(0), err)
		return 1
	}

	switch *format {
	case "number":
		fmt.Fprintln(stdout, c.ToHexNumberString())
	case "hex":
		fmt.Fprintln(stdout, c.ToHexColorString())
	case "rgb":
		fmt.Fprintln(stdout, c.ToRgbColorString())
	case "css":
		fmt.Fprintln(stdout, c.ToHexNumberString())
		fmt.Fprintln(stdout, c.ToHexColorString())
		fmt.Fprintln(stdout, c.ToRgbColorString())
	default:
		fmt.Fprintf(stderr, "csscolor: unknown format %q\n", *format)
		return 2
	}
	return 0
}
