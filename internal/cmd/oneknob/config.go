package oneknob

import (
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/cwbudde/oneknob/dsp/effects/oneknob"
)

// AppName is the command name.
const AppName = "oneknob"

// AppDesc is the command description.
const AppDesc = "Offline one-knob compressor/expander"

// Command selects what Run does.
type Command string

const (
	CommandProcess Command = "process"
	CommandCurve   Command = "curve"
	CommandAnalyze Command = "analyze"
)

// Config holds oneknob command configuration.
type Config struct {
	SampleRate float64 `env:"ONEKNOB_SAMPLE_RATE" envDefault:"48000"`
	Channels   int     `env:"ONEKNOB_CHANNELS"    envDefault:"2"`
	BlockSize  int     `env:"ONEKNOB_BLOCK_SIZE"  envDefault:"512"`
	Amount     float64 `env:"ONEKNOB_AMOUNT"      envDefault:"0"`
	Bypass     bool    `env:"ONEKNOB_BYPASS"`
	Verbose    bool    `env:"ONEKNOB_VERBOSE"`
	Input      string  `env:"ONEKNOB_INPUT"       envDefault:"-"`
	Output     string  `env:"ONEKNOB_OUTPUT"      envDefault:"-"`
}

// ParseArgs reads the environment into a Config, then applies command-line
// flags on top. args excludes the program name.
func ParseArgs(args []string) (Config, Command, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, "", errors.Wrap(err, "parse env")
	}

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc

	processCmd := flaggy.Subcommand{
		Name:        string(CommandProcess),
		ShortName:   "p",
		Description: "process interleaved float32 little-endian PCM",
	}
	processCmd.String(&cfg.Input, "i", "in", "input file ('-' for stdin)")
	processCmd.String(&cfg.Output, "o", "out", "output file ('-' for stdout)")
	parser.AttachSubcommand(&processCmd, 1)

	curveCmd := flaggy.Subcommand{
		Name:        string(CommandCurve),
		ShortName:   "c",
		Description: "print the static transfer curve",
	}
	parser.AttachSubcommand(&curveCmd, 1)

	analyzeCmd := flaggy.Subcommand{
		Name:        string(CommandAnalyze),
		ShortName:   "a",
		Description: "measure level and THD of a sine across the knob range",
	}
	parser.AttachSubcommand(&analyzeCmd, 1)

	parser.Float64(&cfg.SampleRate, "r", "rate", "sample rate in Hz")
	parser.Int(&cfg.Channels, "ch", "channels", "channel count (1 or 2)")
	parser.Int(&cfg.BlockSize, "n", "block", "block size in frames")
	parser.Float64(&cfg.Amount, "k", "amount", "knob position in percent [-100, 100]")
	parser.Bool(&cfg.Bypass, "b", "bypass", "pass audio through untouched")
	parser.Bool(&cfg.Verbose, "v", "verbose", "log configuration and progress")

	if err := parser.ParseArgs(args); err != nil {
		return Config{}, "", errors.Wrap(err, "parse flags")
	}

	switch {
	case processCmd.Used:
		return cfg, CommandProcess, nil
	case curveCmd.Used:
		return cfg, CommandCurve, nil
	case analyzeCmd.Used:
		return cfg, CommandAnalyze, nil
	}

	return Config{}, "", errors.New("missing subcommand (process|curve|analyze)")
}

// Validate reports the first invalid setting.
func (cfg Config) Validate() error {
	switch {
	case cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0):
		return errors.Errorf("sample rate must be positive and finite: %v", cfg.SampleRate)
	case cfg.BlockSize <= 0:
		return errors.Errorf("block size must be positive: %d", cfg.BlockSize)
	case !oneknob.SupportsLayout(cfg.Channels, cfg.Channels):
		return errors.Errorf("channel count must be 1 or 2: %d", cfg.Channels)
	case math.IsNaN(cfg.Amount) || cfg.Amount < oneknob.AmountParam.Min || cfg.Amount > oneknob.AmountParam.Max:
		return errors.Errorf("amount must be in [%g, %g]: %v",
			oneknob.AmountParam.Min, oneknob.AmountParam.Max, cfg.Amount)
	}

	return nil
}
