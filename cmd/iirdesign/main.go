// Command iirdesign designs IIR filters and inspects or applies them.
//
// Usage:
//
//	iirdesign <command> [flags]
//
// Commands:
//
//	list       families, pass types and valid orders
//	design     coefficients, difference equation, poles and zeros
//	response   magnitude and phase over a frequency sweep
//	apply      filter a PCM WAV file
//
// Examples:
//
//	iirdesign list
//	iirdesign design -t butterworth -p lowpass --fc 1000 -o 4
//	iirdesign design -t chebyshev-type-i -p bandpass --fc 1000 --bw 200 -o 4 --ripple 1 --sections
//	iirdesign response -t notch --fs 10000 --fc 1000 --bw 100 --points 24 --log
//	iirdesign response -t bessel -p lowpass --fc 2000 -o 3 --fft 1024
//	iirdesign apply -t shelf -p lowpass --fc 200 -o 2 --gain-db 6 in.wav out.wav
package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
)

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool `short:"v" help:"Log design details to stderr."`
}

// CLI is the command tree.
type CLI struct {
	Globals

	List     ListCmd     `cmd:"" help:"List filter families, pass types and orders."`
	Design   DesignCmd   `cmd:"" help:"Print coefficients, poles and zeros of a design."`
	Response ResponseCmd `cmd:"" help:"Print the frequency response of a design."`
	Apply    ApplyCmd    `cmd:"" help:"Filter a PCM WAV file."`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("iirdesign: ")

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("iirdesign"),
		kong.Description("IIR filter design and analysis"),
		kong.UsageOnError(),
		kong.Vars{
			"types":  typeList(),
			"passes": passList(),
		},
	)

	if err := ctx.Run(&cli.Globals); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// verbosef logs only with --verbose.
func (g *Globals) verbosef(format string, args ...any) {
	if g.Verbose {
		log.Printf(format, args...)
	}
}
