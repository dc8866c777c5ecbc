// Command oneknob runs the one-knob dynamics processor offline.
//
// Usage:
//
//	oneknob [flags] process [-in file] [-out file]
//	oneknob [flags] curve
//	oneknob [flags] analyze
//
// Audio is raw interleaved float32 little-endian PCM. Every flag can also be
// set through its ONEKNOB_* environment variable; flags win.
//
// Examples:
//
//	oneknob --amount 60 process -in dry.f32 -out wet.f32
//	sox in.wav -t f32 - | oneknob -ch 2 --amount 40 process | sox -t f32 -r 48000 -c 2 - out.wav
//	ONEKNOB_AMOUNT=-50 oneknob curve
//	oneknob -r 44100 analyze
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	cmd "github.com/cwbudde/oneknob/internal/cmd/oneknob"
)

func main() {
	log.SetFlags(0)

	cfg, command, err := cmd.ParseArgs(os.Args[1:])
	chk(err, "failed to parse arguments")
	chk(cfg.Validate(), "invalid config")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if command != cmd.CommandProcess {
		chk(cmd.Run(ctx, cfg, command, nil, os.Stdout, os.Stderr), "failed to run "+string(command))
		return
	}

	in, err := cmd.OpenInput(cfg.Input)
	chk(err, "failed to open input")
	defer in.Close()

	out, err := cmd.OpenOutput(cfg.Output)
	chk(err, "failed to open output")

	chk(cmd.Run(ctx, cfg, command, in, out, os.Stderr), "failed to process")
	chk(out.Close(), "failed to close output")
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
