package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// ApplyCmd filters every channel of a PCM WAV file. The sample rate of the
// file overrides --fs.
type ApplyCmd struct {
	FilterFlags

	Input  string `arg:"" type:"existingfile" help:"Input WAV file."`
	Output string `arg:"" type:"path" help:"Output WAV file."`
}

func (c *ApplyCmd) Run(g *Globals) error {
	buf, bitDepth, err := readWAV(c.Input)
	if err != nil {
		return err
	}

	channels := buf.Format.NumChannels
	rate := buf.Format.SampleRate
	g.verbosef("input %s: %d Hz, %d channels, %d-bit, %d frames",
		c.Input, rate, channels, bitDepth, len(buf.Data)/max(channels, 1))

	f, err := c.build(g, float64(rate))
	if err != nil {
		return err
	}

	clipped, err := filterInterleaved(f, buf.Data, channels, bitDepth)
	if err != nil {
		return err
	}

	if clipped > 0 {
		g.verbosef("clipped %d samples to %d-bit range", clipped, bitDepth)
	}

	if err := writeWAV(c.Output, buf, bitDepth); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("wrote"), c.Output)

	return nil
}

func readWAV(path string) (*audio.IntBuffer, int, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("invalid WAV format: %s", path)
	}

	return buf, int(dec.BitDepth), nil
}

func writeWAV(path string, buf *audio.IntBuffer, bitDepth int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(out, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}

	return out.Close()
}

// filterInterleaved runs f over each channel of data in place and clips
// the result to the range of bitDepth. 8-bit PCM is unsigned and is
// centred on 128 while filtering. It returns the number of clipped samples.
func filterInterleaved(f *iir.Filter, data []int, channels, bitDepth int) (int, error) {
	frames := len(data) / channels
	limit := 1<<(bitDepth-1) - 1
	offset := 0
	if bitDepth == 8 {
		offset = 128
	}
	clipped := 0
	ch := make([]int, frames)

	for c := range channels {
		for i := range frames {
			ch[i] = data[i*channels+c] - offset
		}

		out, err := iir.Apply(f, ch)
		if err != nil {
			return clipped, fmt.Errorf("channel %d: %w", c, err)
		}

		for i, v := range out {
			switch {
			case v > limit:
				v = limit
				clipped++
			case v < -limit-1:
				v = -limit - 1
				clipped++
			}
			data[i*channels+c] = v + offset
		}
	}

	return clipped, nil
}
