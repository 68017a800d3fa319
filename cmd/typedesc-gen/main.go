// typedesc-gen derives TypeDescription implementations from Go source
// files. It reads struct and sum type declarations and emits one
// description method per type, preserving field order and documentation.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/matthiasbeyer/type-description/gen"
)

var (
	inputFile  string
	configFile string
	outputFile string
	tagKey     string
	types      string
	emitIndex  bool
	verbose    bool
)

func init() {
	flag.StringVar(&inputFile, "input", "", "Input Go source file (required)")
	flag.StringVar(&inputFile, "i", "", "Input Go source file (shorthand)")

	flag.StringVar(&configFile, "config", "", "Config file (YAML)")
	flag.StringVar(&configFile, "c", "", "Config file (shorthand)")

	flag.StringVar(&outputFile, "output", "", "Output file (default: stdout)")
	flag.StringVar(&outputFile, "o", "", "Output file (shorthand)")

	flag.StringVar(&tagKey, "tag", "", "Tag key for field names (default: json)")
	flag.StringVar(&types, "types", "", "Only generate for these types (comma-separated)")
	flag.BoolVar(&emitIndex, "index", false, "Emit a Descriptions index map")
	flag.BoolVar(&verbose, "v", false, "Verbose output")
}

func main() {
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(logger); err != nil {
		logger.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger) error {
	if inputFile == "" {
		flag.Usage()
		return fmt.Errorf("-input is required")
	}

	cfg := gen.DefaultConfig()
	if configFile != "" {
		loaded, err := gen.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if tagKey != "" {
		cfg.TagKey = tagKey
	}
	if types != "" {
		cfg.Types = strings.Split(types, ",")
	}
	if emitIndex {
		cfg.EmitIndex = true
	}
	if outputFile != "" {
		cfg.Output = outputFile
	}

	file, err := gen.NewParser(cfg.TagKey).ParseFile(inputFile)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("package", file.Package).
		Int("structs", len(file.Structs)).
		Int("enums", len(file.Enums)).
		Msg("parsed input")

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := gen.NewEmitter(cfg).Emit(file, out); err != nil {
		return err
	}
	if cfg.Output != "" {
		logger.Debug().Str("output", cfg.Output).Msg("wrote generated file")
	}
	return nil
}
