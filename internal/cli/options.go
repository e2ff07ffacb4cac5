// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/ik5/wavglitch/glitch"
)

// DefaultOutput is written to when no output path is given.
const DefaultOutput = "out.wav"

// Options is everything the command line controls.
type Options struct {
	Input  string
	Output string
	Config glitch.Config
	Seed   uint64
	// Rate resamples the input before glitching when positive.
	Rate    int
	Mono    bool
	Force   bool
	Verbose bool

	flags *pflag.FlagSet
}

// NewOptions returns the defaults of every option.
func NewOptions() *Options {
	return &Options{
		Output: DefaultOutput,
		Config: glitch.DefaultConfig(),
	}
}

// Register adds the flags to fs. Defaults and Seeded consult fs to tell
// explicit values from defaults, so fs must be the set that is parsed.
func (o *Options) Register(fs *pflag.FlagSet) {
	o.flags = fs

	fs.StringVarP(&o.Output, "output", "o", o.Output, "Output WAV file path")
	fs.VarP((*tempoValue)(&o.Config.Tempo), "tempo", "t", "Tempo, 1.0 to 4095.0")
	fs.VarP((*fractionValue)(&o.Config.Length), "length", "l", "Length of a single segment, relative note value in x/y format")
	fs.VarP((*probabilityValue)(&o.Config.Silence), "silence", "s", "Probability of silencing segment, 0.0 to 1.0")
	fs.VarP((*probabilityValue)(&o.Config.Swap), "swap", "w", "Probability of swapping segment, 0.0 to 1.0")
	fs.VarP((*probabilityValue)(&o.Config.Reverse), "reverse", "r", "Probability of reversing segment, 0.0 to 1.0")
	fs.VarP((*probabilityValue)(&o.Config.Repeat), "repeat", "p", "Probability of repeating segment, 0.0 to 1.0")
	fs.VarP((*countValue)(&o.Config.MaxSwapRange), "range", "a", "Maximal swap range, 1 to 65535")
	fs.VarP((*countValue)(&o.Config.MaxRepeat), "number", "n", "Maximal number of repetitions, 1 to 65535")
	fs.BoolVarP(&o.Config.PerChannel, "channels", "c", false, "Process each channel separately")
	fs.Uint64Var(&o.Seed, "seed", 0, "Seed for reproducible output (random when unset)")
	fs.IntVar(&o.Rate, "rate", 0, "Resample the input to this rate in Hz before processing")
	fs.BoolVar(&o.Mono, "mono", false, "Mix the input down to mono before processing")
	fs.BoolVarP(&o.Force, "force", "f", false, "Overwrite the output file if it exists")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Log segment and decision details")
}

func (o *Options) changed(name string) bool {
	return o.flags != nil && o.flags.Changed(name)
}

// Seeded reports whether --seed was given.
func (o *Options) Seeded() bool { return o.changed("seed") }

// Defaults lists a line for every glitch option left at its default.
func (o *Options) Defaults() []string {
	defaults := []struct {
		flag string
		line string
	}{
		{"output", "Using default value (`out.wav`) for output path"},
		{"tempo", "Using default value (100) for tempo"},
		{"length", "Using default value (1/16) for segment length"},
		{"silence", "Using default value (0.0) for probability of silencing"},
		{"swap", "Using default value (0.0) for probability of swapping"},
		{"reverse", "Using default value (0.0) for probability of reversing"},
		{"repeat", "Using default value (0.0) for probability of repeating"},
		{"range", "Using default value (8) for maximal swap range"},
		{"number", "Using default value (8) for maximal number of repetitions"},
	}

	var lines []string
	for _, d := range defaults {
		if !o.changed(d.flag) {
			lines = append(lines, d.line)
		}
	}

	return lines
}

// EngineOptions converts the options into glitch engine options.
func (o *Options) EngineOptions(logger *slog.Logger) []glitch.Option {
	opts := []glitch.Option{glitch.WithLogger(logger)}
	if o.Seeded() {
		opts = append(opts, glitch.WithSeed(o.Seed))
	}
	return opts
}

// Level is the log level the options ask for.
func (o *Options) Level() slog.Level {
	if o.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
