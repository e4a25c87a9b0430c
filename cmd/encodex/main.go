package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/encodex/encodex"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

var (
	//args
	baseName string
	decode   bool
	wrapAt   int
	noPad    bool
	foldCase bool
	verbose  bool
	app      = cli.NewApp()
)

func init() {
	app.Name = "encodex"
	app.Usage = "encode and decode RFC 4648 base encodings"
	app.Version = "0.1.0"
	app.ArgsUsage = "[file...]"
	app.Action = run
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "base, b", Value: "guess", Usage: "base64, base64url, base32, base32hex, base16, or guess", Destination: &baseName},
		cli.BoolFlag{Name: "decode, d", Usage: "decode input instead of encoding it", Destination: &decode},
		cli.IntFlag{Name: "wrap, w", Value: 0, Usage: "wrap encoded output at this column; on decode, tolerate line breaks", Destination: &wrapAt},
		cli.BoolFlag{Name: "no-pad", Usage: "omit padding on encode and reject it on decode", Destination: &noPad},
		cli.BoolFlag{Name: "fold-case", Usage: "accept either case when decoding base32, base32hex or base16", Destination: &foldCase},
		cli.BoolFlag{Name: "verbose", Usage: "enable debug logging", Destination: &verbose},
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := encodex.Config{WrapAt: wrapAt, FoldCase: foldCase}
	if noPad {
		cfg.Padding = encodex.PaddingOmitted
	}

	inputs, err := readInputs(c.Args())
	if err != nil {
		logger.Error().Err(err).Msg("reading input")
		return cli.NewExitError("", 1)
	}

	for _, in := range inputs {
		variant, err := pickVariant(in)
		if err != nil {
			logger.Error().Err(err).Str("input", in.name).Msg("selecting base variant")
			return cli.NewExitError("", 1)
		}
		logger.Debug().Str("input", in.name).Stringer("base", variant).Msg("translating")

		out, err := translate(in.data, variant, cfg, decode)
		if err != nil {
			logger.Error().Err(err).Str("input", in.name).Stringer("base", variant).Msg("translation failed")
			return cli.NewExitError("", 1)
		}

		os.Stdout.Write(out)
		os.Stdout.Write([]byte{'\n'})
	}

	return nil
}

func pickVariant(in input) (encodex.Variant, error) {
	if baseName != "guess" {
		return encodex.ParseVariant(baseName)
	}
	if decode {
		return encodex.GuessVariant(in.data)
	}
	// there is nothing to guess from when encoding arbitrary bytes
	return encodex.Base64, nil
}

func translate(data []byte, v encodex.Variant, cfg encodex.Config, decode bool) ([]byte, error) {
	if decode {
		return encodex.Decode(trimTrailingBreak(data), v, cfg)
	}
	return encodex.Encode(data, v, cfg), nil
}

// trimTrailingBreak drops a single final line break so encoded text saved
// with a trailing newline still decodes.
func trimTrailingBreak(data []byte) []byte {
	if n := len(data); n > 0 && data[n-1] == '\n' {
		data = data[:n-1]
		if n := len(data); n > 0 && data[n-1] == '\r' {
			data = data[:n-1]
		}
	}
	return data
}
