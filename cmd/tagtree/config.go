package main

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/markup"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// Configuration keys.
const (
	keyIndent = "render.indent"
	keyFormat = "render.format"
)

const (
	defaultIndent = 2
	defaultFormat = formatCanonical
)

// appTag is used to locate configuration files at the OS-dependent
// standard locations. Tests clear it.
var appTag = "tagtree"

// settings are the effective rendering settings after merging defaults,
// configuration files and command line flags.
type settings struct {
	Indent int
	Format string
}

// loadConfig creates a configuration from defaults, an optional configuration
// file at the standard location, and an optional explicit file `path`.
func loadConfig(path string) (*koanfadapter.KConf, error) {
	k := koanf.New(".")
	err := k.Load(confmap.Provider(map[string]interface{}{
		keyIndent:         defaultIndent,
		keyFormat:         defaultFormat,
		"tracelevel.root": "Error",
	}, "."), nil)
	if err != nil {
		return nil, err
	}
	var suffixes []string
	if appTag != "" {
		suffixes = []string{".nt"}
	}
	conf := koanfadapter.New(k, appTag, suffixes)
	conf.InitDefaults()
	if path != "" {
		if err := k.Load(file.Provider(path), koanfadapter.Parser()); err != nil {
			return nil, fmt.Errorf("loading configuration %q: %w", path, err)
		}
	}
	return conf, nil
}

// setupTracing installs the Go standard logger as the tracing backend and
// configures trace levels from the `tracelevel` section of conf.
func setupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// configure merges flags into the configuration and initializes tracing.
// Flags explicitly set on the command line take precedence.
func (a *app) configure(cmd *cobra.Command) error {
	conf, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("indent") {
		v, _ := flags.GetInt("indent")
		conf.Set(keyIndent, v)
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		conf.Set(keyFormat, v)
	}
	if flags.Changed("trace") {
		v, _ := flags.GetString("trace")
		for _, key := range markup.TraceKeys() {
			conf.Set("tracelevel."+key, v)
		}
	}
	if err := setupTracing(conf); err != nil {
		return err
	}
	a.settings, err = settingsFrom(conf)
	if err != nil {
		return err
	}
	tracer().Debugf("settings: indent=%d, format=%s", a.settings.Indent, a.settings.Format)
	return nil
}

func settingsFrom(conf schuko.Configuration) (settings, error) {
	s := settings{
		Indent: conf.GetInt(keyIndent),
		Format: conf.GetString(keyFormat),
	}
	if s.Indent < 0 {
		return s, fmt.Errorf("indentation width must not be negative: %d", s.Indent)
	}
	if !validFormat(s.Format) {
		return s, fmt.Errorf("unknown output format %q", s.Format)
	}
	return s, nil
}
