package oneknob

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/cwbudde/oneknob/dsp/buffer"
	"github.com/cwbudde/oneknob/dsp/core"
	"github.com/cwbudde/oneknob/dsp/effects/dynamics"
	"github.com/cwbudde/oneknob/dsp/effects/oneknob"
	"github.com/cwbudde/oneknob/dsp/signal"
	"github.com/cwbudde/oneknob/measure/tone"
)

const (
	curveMinDB  = -60.0
	curveMaxDB  = 0.0
	curveStepDB = 3.0

	analyzeFFTSize   = 8192
	analyzeFrequency = 1000.0
	analyzeAmplitude = 0.5
	analyzeStep      = 25.0
)

// Run executes command. in is only read by CommandProcess.
func Run(ctx context.Context, cfg Config, command Command, in io.Reader, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	logger := log.New(errOut, AppName+": ", 0)
	if cfg.Verbose {
		logger.Printf("%s: rate=%g channels=%d block=%d amount=%s bypass=%t",
			command, cfg.SampleRate, cfg.Channels, cfg.BlockSize,
			oneknob.FormatAmount(cfg.Amount), cfg.Bypass)
	}

	switch command {
	case CommandProcess:
		if in == nil {
			return errors.New("process: no input stream")
		}
		return runProcess(ctx, cfg, in, out, logger)
	case CommandCurve:
		return runCurve(cfg, out)
	case CommandAnalyze:
		return runAnalyze(ctx, cfg, out, logger)
	}

	return errors.Errorf("unknown command %q", command)
}

func runProcess(ctx context.Context, cfg Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	proc, err := oneknob.NewProcessor(cfg.SampleRate)
	if err != nil {
		return errors.Wrap(err, "create processor")
	}
	proc.SetAmountPercent(cfg.Amount)
	proc.SetBypass(cfg.Bypass)

	frameBytes := cfg.Channels * bytesPerSample
	block := buffer.NewBlock(cfg.Channels, cfg.BlockSize)
	samples := make([]float32, cfg.Channels*cfg.BlockSize)
	raw := make([]byte, len(samples)*bytesPerSample)

	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)

	var blocks, frames int
	for {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "process interrupted")
		}

		n, readErr := io.ReadFull(r, raw)
		if whole := n / frameBytes * frameBytes; whole > 0 {
			count := decodeFloat32LE(samples, raw[:whole])
			frames += block.Deinterleave(samples[:count])
			proc.ProcessBlock(block.Channels())
			block.Interleave(samples[:count])
			encodeFloat32LE(raw, samples[:count])

			if _, err := w.Write(raw[:whole]); err != nil {
				return errors.Wrap(err, "write samples")
			}
			blocks++
		}

		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			if rest := n % frameBytes; rest != 0 {
				logger.Printf("dropped %d trailing bytes of a partial frame", rest)
			}
			break
		}
		if readErr != nil {
			return errors.Wrap(readErr, "read samples")
		}
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "flush output")
	}
	if cfg.Verbose {
		logger.Printf("processed %d frames in %d blocks", frames, blocks)
	}

	return nil
}

func runCurve(cfg Config, out io.Writer) error {
	percent := oneknob.AmountParam.Snap(cfg.Amount)
	if cfg.Bypass {
		percent = 0
	}
	amount := float32(percent / 100)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "# %s ratio %.2f:1 %s\n", oneknob.FormatAmount(percent),
		dynamics.RatioForAmount(amount), dynamics.ModeForAmount(amount))
	fmt.Fprintln(tw, "input dB\toutput dB\tgain dB\t")

	for in := curveMinDB; in <= curveMaxDB; in += curveStepDB {
		outDB := dynamics.StaticOutputDB(in, amount)
		fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t\n", in, outDB, outDB-in)
	}

	return errors.Wrap(tw.Flush(), "write curve")
}

func runAnalyze(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	gen := signal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(cfg.SampleRate)})
	freq := tone.BinFrequency(analyzeFrequency, cfg.SampleRate, analyzeFFTSize)
	warmup := int(cfg.SampleRate / 5)

	probe, err := gen.Sine(freq, analyzeAmplitude, warmup+analyzeFFTSize)
	if err != nil {
		return errors.Wrap(err, "generate probe")
	}

	toneCfg := tone.Config{SampleRate: cfg.SampleRate, Frequency: freq}
	tail := make([]float64, analyzeFFTSize)

	core.ToFloat64(tail, probe[warmup:])
	ref, err := tone.Analyze(tail, toneCfg)
	if err != nil {
		return errors.Wrap(err, "analyze probe")
	}
	if cfg.Verbose {
		logger.Printf("probe: %.2f Hz at %.2f dBFS, %d warmup samples", ref.Frequency, ref.AmplitudeDB, warmup)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "amount\toutput dB\tgain dB\tTHD %\t")

	x := make([]float32, len(probe))
	for percent := oneknob.AmountParam.Min; percent <= oneknob.AmountParam.Max; percent += analyzeStep {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "analyze interrupted")
		}

		engine, err := dynamics.NewEngine(cfg.SampleRate)
		if err != nil {
			return errors.Wrap(err, "create engine")
		}
		engine.SetAmount(float32(percent / 100))

		copy(x, probe)
		engine.Process([][]float32{x})

		core.ToFloat64(tail, x[warmup:])
		res, err := tone.Analyze(tail, toneCfg)
		if err != nil {
			return errors.Wrapf(err, "analyze amount %g", percent)
		}

		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.3f\t\n", oneknob.FormatAmount(percent),
			res.AmplitudeDB, res.AmplitudeDB-ref.AmplitudeDB, res.THD*100)
	}

	return errors.Wrap(tw.Flush(), "write analysis")
}

// OpenInput opens path for reading; "-" and "" select stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}

// OpenOutput creates path for writing; "-" and "" select stdout.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create output")
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
