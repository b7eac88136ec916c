package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"exticons/icon"
)

func main() {
	err := run(os.Args[1:], os.Stdout, log.Default())
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to generate icons: %v", err)
	}
}

// run parses args, generates the icons and optionally verifies them
func run(args []string, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("exticons", flag.ContinueOnError)

	configPath := fs.String("config", "", "YAML config file (or set ICONGEN_CONFIG env var)")
	outDir := fs.String("out", icon.DefaultOutputDir, "Output directory")
	sizes := fs.String("sizes", "16,48,128", "Comma-separated icon sizes in pixels")
	format := fs.String("format", string(icon.FormatAuto), "Output format: auto, png or svg")
	fontPath := fs.String("font", icon.DefaultFontPath, "TrueType font for the glyph")
	glyph := fs.String("glyph", icon.DefaultGlyph, "Text drawn on the icon")
	rounded := fs.Bool("rounded", false, "Round PNG corners like the SVG icons")
	icoSize := fs.Int("ico", 0, "Also write favicon.ico at this size")
	sheet := fs.Bool("sheet", false, "Also write sheet.png with every icon")
	verify := fs.Bool("verify", false, "Check the icons after generating them")
	checkOnly := fs.Bool("check", false, "Only check existing icons, do not generate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Get config path from flag or environment
	path := *configPath
	if path == "" {
		path = os.Getenv("ICONGEN_CONFIG")
	}

	cfg := icon.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = icon.LoadConfig(path)
		if err != nil {
			return err
		}
	}

	// Flags given on the command line win over the config file
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutputDir = *outDir
		case "sizes":
			parsed, err := icon.ParseSizes(*sizes)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Sizes = parsed
		case "format":
			cfg.Format = icon.Format(*format)
		case "font":
			cfg.FontPath = *fontPath
		case "glyph":
			cfg.Glyph = *glyph
		case "rounded":
			cfg.Rounded = *rounded
		case "ico":
			cfg.ICOSize = *icoSize
		case "sheet":
			cfg.Sheet = *sheet
		}
	})
	if flagErr != nil {
		return flagErr
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if *checkOnly {
		return report(stdout, cfg.OutputDir, icon.Verify(cfg.OutputDir, cfg.Sizes, cfg.Format))
	}

	g := icon.NewGenerator(cfg, stdout, logger)
	res, err := g.Run()
	if err != nil {
		return err
	}

	if *verify {
		// Check what this run wrote, not whatever else sits in the directory
		return report(stdout, cfg.OutputDir, icon.VerifyFiles(res.Icons, cfg.Sizes))
	}
	return nil
}

// report prints one line per expected icon and fails if any is missing or wrong
func report(w io.Writer, dir string, checks []icon.Check) error {
	fmt.Fprintf(w, "\nChecking icons in %s...\n", dir)

	failed := 0
	for _, c := range checks {
		fmt.Fprintf(w, "  %s\n", c)
		if !c.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d icons failed verification", failed, len(checks))
	}
	return nil
}
