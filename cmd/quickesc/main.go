// Package main is the entry point for the quickesc keymap tester.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/nikallass/quickesc/internal/config"
	"github.com/nikallass/quickesc/internal/engine"
	"github.com/nikallass/quickesc/internal/event"
	"github.com/nikallass/quickesc/internal/keymap"
	"github.com/nikallass/quickesc/internal/layout"
	"github.com/nikallass/quickesc/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	variant    string
	scriptPath string
	keymapDir  string
	baseLayer  string
	demo       bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg = applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.demo {
		return runDemo(cfg, os.Stdout)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Error: interactive mode needs a terminal; use -demo\n")
		return 1
	}

	reg := keymap.NewRegistry()
	loader := keymap.NewLoader()
	for _, dir := range cfg.KeymapDirs {
		loader.AddSearchPath(dir)
	}
	for _, km := range loader.LoadAll() {
		if err := reg.Register(km); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping keymap %s: %v\n", km.Name, err)
		}
	}

	sim := newSimHost()

	var hook *script.Hook
	if cfg.ScriptPath != "" {
		hook = script.New(sim)
		defer hook.Close()
		if err := hook.LoadFile(cfg.ScriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	bus := event.NewBus()
	engineOpts := []engine.Option{engine.WithRegistry(reg), engine.WithBus(bus)}
	if hook != nil {
		engineOpts = append(engineOpts, engine.WithScript(hook))
	}

	eng, err := engine.New(sim, cfg, engineOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ui, err := newUI(eng, sim, bus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := ui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.variant, "variant", "", "Escape key variant (latch, dance)")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua hook script")
	flag.StringVar(&opts.keymapDir, "keymaps", "", "Directory of keymap override files")
	flag.StringVar(&opts.baseLayer, "base", "", "Base layer (mac_base, win_base)")
	flag.BoolVar(&opts.demo, "demo", false, "Run the scripted walkthrough and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "quickesc - Keychron K7 Max keymap tester\n\n")
		fmt.Fprintf(os.Stderr, "Usage: quickesc [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  quickesc                    Interactive board tester\n")
		fmt.Fprintf(os.Stderr, "  quickesc -variant dance     Test the tap dance variant\n")
		fmt.Fprintf(os.Stderr, "  quickesc -demo              Print the scripted walkthrough\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("quickesc %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if opts.variant != "" && opts.variant != config.VariantLatch && opts.variant != config.VariantDance {
		fmt.Fprintf(os.Stderr, "Error: invalid variant %q (must be latch or dance)\n", opts.variant)
		os.Exit(1)
	}

	return opts
}

// applyFlags lets command line flags override file settings.
func applyFlags(cfg config.Config, opts options) config.Config {
	if opts.variant != "" {
		cfg.Variant = opts.variant
	}
	if opts.scriptPath != "" {
		cfg.ScriptPath = opts.scriptPath
	}
	if opts.keymapDir != "" {
		cfg.KeymapDirs = append(cfg.KeymapDirs, opts.keymapDir)
	}
	if opts.baseLayer != "" {
		if layer, ok := layout.LayerFromName(opts.baseLayer); ok && layer.IsBase() {
			cfg.BaseLayer = layer
		}
	}
	return cfg
}
