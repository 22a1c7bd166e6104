package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bytePro05541/tlvParser/pkg/config"
	"github.com/bytePro05541/tlvParser/pkg/dictionary"
	"github.com/bytePro05541/tlvParser/pkg/emv"
	"github.com/bytePro05541/tlvParser/pkg/tlv"
)

const commandName = "tlvparser"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run decodes one TLV stream, taken from the positional arguments or from
// stdin, and prints the record. It returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(commandName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to YAML configuration file")
	tagsPath := fs.String("tags", "", "Path to tag definition file (header row, then tag,name,... rows)")
	format := fs.String("format", "", "Output format: text, json or ber")
	ascii := fs.Bool("ascii", false, "Show printable ASCII next to each value")
	classify := fs.Bool("classify", false, "Show the BER class and form of each tag")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// --- 1. Configuration ---
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	if *tagsPath != "" {
		cfg.Dictionary.Path = *tagsPath
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	cfg.Output.ASCII = cfg.Output.ASCII || *ascii
	cfg.Output.Classify = cfg.Output.Classify || *classify

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	logger, closeLog := initLogger(cfg.Logging, stdout, stderr)
	defer closeLog()

	logger.Debug("Configuration loaded",
		slog.String("config_path", *configPath),
		slog.String("dictionary_path", cfg.Dictionary.Path),
		slog.Bool("dictionary_builtin", cfg.Dictionary.Builtin),
		slog.String("output_format", cfg.Output.Format),
	)

	// --- 2. Tag definitions ---
	dict, err := loadDictionary(cfg.Dictionary)
	if err != nil {
		logger.Error("Tag definitions unavailable", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "Error loading tag definitions: %v\n", err)
		return 1
	}

	logger.Info("Tag definitions loaded",
		slog.String("source", dictionarySource(cfg.Dictionary)),
		slog.Int("entries", dict.Len()),
		slog.Int("skipped_rows", dict.Skipped()),
	)

	// --- 3. Decode ---
	input, err := readInput(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return 1
	}

	rec, err := tlv.Decode(input, dict)
	if err != nil {
		attrs := []any{slog.Int("input_length", len(input))}
		var decErr *tlv.DecodeError
		if errors.As(err, &decErr) {
			attrs = append(attrs,
				slog.String("kind", decErr.Kind.String()),
				slog.Int("index", decErr.Index),
			)
		}
		logger.Error("Decode failed", attrs...)
		fmt.Fprintf(stderr, "Error decoding TLV data: %v\n", err)
		return 1
	}

	logger.Debug("Decode finished",
		slog.Int("input_length", len(input)),
		slog.Int("fields", rec.Len()),
	)

	// --- 4. Output ---
	if err := render(stdout, rec, dict, cfg.Output); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}

	return 0
}

// loadDictionary reads the configured definition file, or falls back to the
// built-in EMV table.
func loadDictionary(cfg config.DictionaryConfig) (*dictionary.Dictionary, error) {
	if cfg.Path != "" {
		return dictionary.Load(cfg.Path)
	}
	return emv.Dictionary(), nil
}

func dictionarySource(cfg config.DictionaryConfig) string {
	if cfg.Path != "" {
		return cfg.Path
	}
	return "builtin"
}

// readInput joins the positional arguments, or reads stdin when there are
// none (or the only one is "-"). Whitespace is dropped so dumps can be
// pasted with spaces and line breaks.
func readInput(args []string, stdin io.Reader) (string, error) {
	var raw string
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		raw = string(data)
	} else {
		raw = strings.Join(args, "")
	}
	return strings.Join(strings.Fields(raw), ""), nil
}

type jsonField struct {
	Tag   string `json:"tag"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Class string `json:"class,omitempty"`
}

func render(w io.Writer, rec *tlv.Record, dict *dictionary.Dictionary, cfg config.OutputConfig) error {
	switch cfg.Format {
	case "json":
		fields := make([]jsonField, 0, rec.Len())
		for _, f := range rec.Fields() {
			jf := jsonField{Tag: f.Tag, Name: dict.NameOr(f.Tag, tlv.UnknownName), Value: f.Value}
			if cfg.Classify {
				jf.Class = emv.Classify(f.Tag)
			}
			fields = append(fields, jf)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)

	case "ber":
		data, err := rec.EncodeBER()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, strings.ToUpper(hex.EncodeToString(data)))
		return err

	default:
		opts := tlv.DescribeOptions{ASCII: cfg.ASCII}
		if cfg.Classify {
			opts.Classify = emv.Classify
		}
		report := tlv.DescribeWith(rec, dict, opts)
		if report == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, report)
		return err
	}
}

// initLogger builds the slog logger described by cfg. The returned function
// closes the log file, if one was opened.
func initLogger(cfg config.LoggingConfig, stdout, stderr io.Writer) (*slog.Logger, func()) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	output := stderr
	closeFn := func() {}
	switch cfg.Output {
	case "stderr", "":
	case "stdout":
		output = stdout
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log file %s: %v, falling back to stderr\n", cfg.Output, err)
		} else {
			output = file
			closeFn = func() { _ = file.Close() }
		}
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler).With(slog.String("command", commandName)), closeFn
}
