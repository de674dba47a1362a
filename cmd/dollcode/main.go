// dollcode converts numbers and printable ASCII text to dollcode symbol
// streams and back.
//
// Each argument (or each stdin line when no argument is given) is classified
// and converted independently: decimal and 0x-prefixed hexadecimal numbers
// and text are encoded, symbol streams are decoded. Results go to stdout,
// one per line. Failures are reported on stderr and the process exits with
// the status of the last failure.
//
// With --pack the resulting symbol stream is written as a base64 pack (see
// package pack); --unpack reverses it.
package main

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/arloliu/dollcode/adapter"
	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/internal/config"
	"github.com/arloliu/dollcode/pack"
)

const version = "0.1.0"

// maxLineSize bounds a single stdin line.
const maxLineSize = 1 << 20

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cliFlags struct {
	mode        string
	segment     string
	compression string
	configPath  string
	logLevel    string
	pack        bool
	unpack      bool
	showVersion bool
}

func (f *cliFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.mode, "mode", "auto", "input kind: auto, decimal, hex, text or symbols")
	flagSet.StringVar(&f.segment, "segment", "", "text segment convention: fixed or delimited")
	flagSet.BoolVar(&f.pack, "pack", false, "write the symbol stream as a base64 pack")
	flagSet.BoolVar(&f.unpack, "unpack", false, "read inputs as base64 packs")
	flagSet.StringVar(&f.compression, "compression", "", "pack compression: none, zstd, s2 or lz4")
	flagSet.StringVar(&f.configPath, "config", "", "path to the YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flagSet.BoolVar(&f.showVersion, "version", false, "print the version and exit")
	flagSet.BoolP("help", "h", false, "show help")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var flags cliFlags

	flagSet := pflag.NewFlagSet("dollcode", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flags.register(flagSet)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return adapter.ExitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)

		return adapter.ExitUnknown
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return adapter.ExitOK
	}

	if flags.showVersion {
		fmt.Fprintf(stdout, "dollcode %s\n", version)
		return adapter.ExitOK
	}

	proc, logger, err := newProcessor(&flags, flagSet, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return adapter.ExitUnknown
	}

	inputs := flagSet.Args()
	if len(inputs) > 0 {
		next, text := sliceInputs(inputs)
		return proc.runAll(next, text, stdout, stderr)
	}

	logger.Debug("reading inputs from stdin")
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	code := proc.runAll(scanner.Scan, scanner.Text, stdout, stderr)
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "error: read stdin: %v\n", err)
		return adapter.ExitUnknown
	}

	return code
}

// sliceInputs adapts a fixed list of inputs to the next/text pair used by runAll.
func sliceInputs(inputs []string) (func() bool, func() string) {
	i := -1
	next := func() bool {
		i++
		return i < len(inputs)
	}

	return next, func() string { return inputs[i] }
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `dollcode converts numbers and text to dollcode symbols (▖ ▘ ▌) and back.

Usage:
  dollcode [flags] [input...]

Inputs are read from the arguments, or one per line from stdin.

Examples:
  dollcode 42             # ▖▖▖▌
  dollcode 0x2a           # ▖▖▖▌
  dollcode Hi             # ▖▖▖▌▘▖▘▖▌▘
  dollcode ▖▖▖▌           # d:42,h:0x2a
  dollcode --pack Hi      # base64 pack of the encoded stream
  dollcode --mode text 42 # encode "42" as text

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

// processor converts single inputs according to the resolved configuration.
type processor struct {
	kind      adapter.Kind
	auto      bool
	converter *adapter.Converter
	encoder   *pack.Encoder
	unpack    bool
	logger    *slog.Logger
}

func newProcessor(flags *cliFlags, flagSet *pflag.FlagSet, logOutput io.Writer) (*processor, *slog.Logger, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return nil, nil, err
	}

	if flagSet.Changed("segment") {
		cfg.SegmentMode = flags.segment
	}
	if flagSet.Changed("compression") {
		cfg.Pack.Compression = flags.compression
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: level}))

	if flags.pack && flags.unpack {
		return nil, nil, errors.New("--pack and --unpack are mutually exclusive")
	}

	proc := &processor{
		auto:   flags.mode == "auto",
		unpack: flags.unpack,
		logger: logger,
	}
	if !proc.auto {
		kind, err := adapter.ParseKind(flags.mode)
		if err != nil || kind == adapter.KindEmpty {
			return nil, nil, fmt.Errorf("invalid --mode %q", flags.mode)
		}
		proc.kind = kind
	}

	proc.converter, err = adapter.NewConverter(cfg.ConverterOptions()...)
	if err != nil {
		return nil, nil, err
	}

	if flags.pack {
		proc.encoder, err = pack.NewEncoder(cfg.EncoderOptions()...)
		if err != nil {
			return nil, nil, err
		}
	}

	logger.Debug("configuration resolved",
		"segment_mode", cfg.SegmentMode,
		"max_input", cfg.MaxInput,
		"compression", cfg.Pack.Compression,
		"byte_order", cfg.Pack.ByteOrder,
	)

	return proc, logger, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	return config.Load()
}

// runAll processes every input and returns the exit code of the last failure.
func (p *processor) runAll(next func() bool, text func() string, stdout, stderr io.Writer) int {
	code := adapter.ExitOK
	for next() {
		input := strings.TrimSuffix(text(), "\r")

		out, err := p.process(input)
		if err != nil {
			p.logger.Debug("conversion failed", "input", input, "error", err)
			fmt.Fprintf(stderr, "error: %s\n", adapter.Message(err))
			code = adapter.ExitCode(err)

			continue
		}
		fmt.Fprintln(stdout, out)
	}

	return code
}

func (p *processor) process(input string) (string, error) {
	if p.unpack {
		return p.processPacked(input)
	}

	kind := p.kind
	if p.auto {
		kind = adapter.Classify(input)
	}

	// a symbol input is packed as is
	if p.encoder != nil && kind == adapter.KindSymbols {
		return p.packStream(input)
	}

	out, err := p.convert(kind, input)
	if err != nil {
		return "", err
	}
	p.logger.Debug("converted", "kind", kind, "input_len", len(input), "output_len", len(out))

	if p.encoder != nil {
		return p.packStream(out)
	}

	return out, nil
}

func (p *processor) packStream(stream string) (string, error) {
	data, err := p.encoder.Encode(stream)
	if err != nil {
		return "", err
	}
	p.logger.Debug("packed", "compression", p.encoder.Compression(), "bytes", len(data))

	return base64.StdEncoding.EncodeToString(data), nil
}

func (p *processor) processPacked(input string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrInvalidInput, err)
	}

	stream, err := pack.Decode(data)
	if err != nil {
		return "", err
	}
	p.logger.Debug("unpacked", "bytes", len(data), "stream_len", len(stream))

	return p.converter.ConvertSymbols(stream)
}

func (p *processor) convert(kind adapter.Kind, input string) (string, error) {
	switch kind {
	case adapter.KindEmpty:
		return "", nil
	case adapter.KindSymbols:
		return p.converter.ConvertSymbols(input)
	case adapter.KindHex:
		return p.converter.ConvertHex(input)
	case adapter.KindDecimal:
		return p.converter.ConvertDecimal(input)
	case adapter.KindText:
		return p.converter.ConvertText(input)
	default:
		return "", fmt.Errorf("unsupported input kind %s", kind)
	}
}
