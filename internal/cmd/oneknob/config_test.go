package oneknob

import (
	"math"
	"testing"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, command, err := ParseArgs([]string{"curve"})
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if command != CommandCurve {
		t.Fatalf("command=%q want %q", command, CommandCurve)
	}
	if cfg.SampleRate != 48000 {
		t.Fatalf("expected default sample rate, got %g", cfg.SampleRate)
	}
	if cfg.Channels != 2 {
		t.Fatalf("expected default channels, got %d", cfg.Channels)
	}
	if cfg.BlockSize != 512 {
		t.Fatalf("expected default block size, got %d", cfg.BlockSize)
	}
	if cfg.Amount != 0 || cfg.Bypass || cfg.Verbose {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Input != "-" || cfg.Output != "-" {
		t.Fatalf("expected stdio defaults, got in=%q out=%q", cfg.Input, cfg.Output)
	}
}

func TestParseArgsEnv(t *testing.T) {
	t.Setenv("ONEKNOB_SAMPLE_RATE", "44100")
	t.Setenv("ONEKNOB_CHANNELS", "1")
	t.Setenv("ONEKNOB_AMOUNT", "-35")
	t.Setenv("ONEKNOB_BYPASS", "true")

	cfg, command, err := ParseArgs([]string{"analyze"})
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if command != CommandAnalyze {
		t.Fatalf("command=%q want %q", command, CommandAnalyze)
	}
	if cfg.SampleRate != 44100 || cfg.Channels != 1 || cfg.Amount != -35 || !cfg.Bypass {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestParseArgsFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ONEKNOB_AMOUNT", "-35")
	t.Setenv("ONEKNOB_BLOCK_SIZE", "128")

	cfg, command, err := ParseArgs([]string{"--amount", "60", "process", "--in", "dry.f32", "--out", "wet.f32"})
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if command != CommandProcess {
		t.Fatalf("command=%q want %q", command, CommandProcess)
	}
	if cfg.Amount != 60 {
		t.Fatalf("flag should override env amount, got %g", cfg.Amount)
	}
	if cfg.BlockSize != 128 {
		t.Fatalf("env block size should survive, got %d", cfg.BlockSize)
	}
	if cfg.Input != "dry.f32" || cfg.Output != "wet.f32" {
		t.Fatalf("process flags not applied: in=%q out=%q", cfg.Input, cfg.Output)
	}
}

func TestParseArgsMissingSubcommand(t *testing.T) {
	if _, _, err := ParseArgs(nil); err == nil {
		t.Fatal("expected error without subcommand")
	}
}

func TestParseArgsBadEnv(t *testing.T) {
	t.Setenv("ONEKNOB_CHANNELS", "stereo")

	if _, _, err := ParseArgs([]string{"curve"}); err == nil {
		t.Fatal("expected error for malformed env value")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{SampleRate: 48000, Channels: 2, BlockSize: 512}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid stereo", mutate: func(*Config) {}},
		{name: "valid mono", mutate: func(c *Config) { c.Channels = 1 }},
		{name: "full compress", mutate: func(c *Config) { c.Amount = 100 }},
		{name: "full expand", mutate: func(c *Config) { c.Amount = -100 }},
		{name: "zero rate", mutate: func(c *Config) { c.SampleRate = 0 }, wantErr: true},
		{name: "negative rate", mutate: func(c *Config) { c.SampleRate = -1 }, wantErr: true},
		{name: "nan rate", mutate: func(c *Config) { c.SampleRate = math.NaN() }, wantErr: true},
		{name: "inf rate", mutate: func(c *Config) { c.SampleRate = math.Inf(1) }, wantErr: true},
		{name: "zero block", mutate: func(c *Config) { c.BlockSize = 0 }, wantErr: true},
		{name: "no channels", mutate: func(c *Config) { c.Channels = 0 }, wantErr: true},
		{name: "three channels", mutate: func(c *Config) { c.Channels = 3 }, wantErr: true},
		{name: "amount above", mutate: func(c *Config) { c.Amount = 100.5 }, wantErr: true},
		{name: "amount below", mutate: func(c *Config) { c.Amount = -101 }, wantErr: true},
		{name: "nan amount", mutate: func(c *Config) { c.Amount = math.NaN() }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate()=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}
