// Command rho solves elliptic curve discrete logarithms with Pollard's rho
// and breaks toy ECDH exchanges.
//
// Usage:
//
//	rho [flags] <paramfile> basic|full|ecdh
//
// basic writes the collision to BasicRhoOutput.txt, full also solves for l
// and writes FullRhoOutput.txt, ecdh recovers Alice's key, decrypts the
// ciphertext and writes plaintext.txt.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/mahdiidarabi/ecdlp-rho/internal/desecb"
	"github.com/mahdiidarabi/ecdlp-rho/internal/params"
	"github.com/mahdiidarabi/ecdlp-rho/internal/report"
	"github.com/mahdiidarabi/ecdlp-rho/pkg/ecdh"
	"github.com/mahdiidarabi/ecdlp-rho/pkg/rho"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	outDir   string
	logLevel string
	config   rho.Config
	file     string
	mode     params.Mode
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	defaults := rho.DefaultConfig()
	fs := flag.NewFlagSet("rho", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rho [flags] <paramfile> basic|full|ecdh\n\nFlags:\n")
		fs.PrintDefaults()
	}

	var (
		outDir        = fs.String("out", ".", "Directory for result files")
		timeout       = fs.Duration("timeout", 0, "Abort the search after this long (0 = no limit)")
		maxSteps      = fs.Uint64("max-steps", defaults.MaxSteps, "Step limit per attempt (0 = derived from n)")
		maxAttempts   = fs.Int("max-attempts", defaults.MaxAttempts, "Fresh starts before giving up")
		maxCandidates = fs.Int64("max-candidates", defaults.MaxCandidates, "Largest gcd(d'-d, n) to enumerate")
		workers       = fs.Int("workers", 1, "Number of parallel walks")
		seed          = fs.Int64("seed", 0, "Seed for the starting points (0 = random)")
		logLevel      = fs.String("log-level", "info", "Log level (debug, info, warn, error, disabled)")
	)
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return nil, errUsage
	}
	mode, err := params.ParseMode(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, errUsage
	}

	return &options{
		outDir:   *outDir,
		logLevel: *logLevel,
		file:     fs.Arg(0),
		mode:     mode,
		config: rho.Config{
			MaxAttempts:   *maxAttempts,
			MaxSteps:      *maxSteps,
			MaxCandidates: *maxCandidates,
			Workers:       *workers,
			Seed:          *seed,
			Timeout:       *timeout,
		},
	}, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return exitUsage
	}

	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	in, err := params.LoadFile(opts.file, opts.mode)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load parameters")
		return exitFailure
	}

	client := rho.NewClient().WithConfig(opts.config).WithLogger(logger)
	ctx := context.Background()

	var path string
	switch opts.mode {
	case params.ModeBasic:
		path, err = runBasic(ctx, client, in, opts.outDir, stdout)
	case params.ModeFull:
		path, err = runFull(ctx, client, in, opts.outDir, stdout)
	case params.ModeECDH:
		path, err = runECDH(ctx, client, in, opts.outDir, stdout)
	}
	if err != nil {
		logger.Error().Err(err).Str("mode", string(opts.mode)).Msg("failed")
		return exitFailure
	}

	color.New(color.FgGreen).Fprintf(stdout, "    ✓ Wrote %s\n", path)
	return exitOK
}

func runBasic(ctx context.Context, client *rho.Client, in *params.Input, outDir string, stdout io.Writer) (string, error) {
	col, err := client.FindCollision(ctx, in.Curve, in.P, in.Q)
	if err != nil {
		return "", err
	}

	c, d, cPrime, dPrime := col.Tuple()
	color.New(color.FgGreen, color.Bold).Fprintln(stdout, "[+] Collision found!")
	fmt.Fprintf(stdout, "    (c, d) = (%s, %s), (c', d') = (%s, %s)\n", c, d, cPrime, dPrime)
	fmt.Fprintf(stdout, "    Point: %s after %d steps, %d attempt(s)\n", col.Tortoise.Position, col.Steps, col.Attempts)

	return report.WriteRhoFile(outDir, report.Rho{Curve: in.Curve, P: in.P, Q: in.Q, Collision: col})
}

func runFull(ctx context.Context, client *rho.Client, in *params.Input, outDir string, stdout io.Writer) (string, error) {
	res, err := client.Solve(ctx, in.Curve, in.P, in.Q)
	if err != nil {
		return "", err
	}

	color.New(color.FgGreen, color.Bold).Fprintln(stdout, "[+] Discrete logarithm recovered!")
	fmt.Fprintf(stdout, "    l = %s\n", res.Log)
	fmt.Fprintf(stdout, "    Candidates checked: %d\n", res.Candidates)

	return report.WriteRhoFile(outDir, report.Rho{Curve: in.Curve, P: in.P, Q: in.Q, Collision: res.Collision, Log: res.Log})
}

func runECDH(ctx context.Context, client *rho.Client, in *params.Input, outDir string, stdout io.Writer) (string, error) {
	res, err := ecdh.NewBreaker(client, desecb.Cipher{}).Break(ctx, in.Curve, in.P, in.QA, in.QB, in.Ciphertext)
	if err != nil {
		return "", err
	}

	color.New(color.FgGreen, color.Bold).Fprintln(stdout, "[+] Shared secret recovered!")
	fmt.Fprintf(stdout, "    dA = %s\n", res.PrivateKey)
	fmt.Fprintf(stdout, "    S  = %s\n", res.SharedSecret)
	fmt.Fprintf(stdout, "    Plaintext: %s\n", res.Plaintext)

	return report.WritePlaintextFile(outDir, res.Plaintext)
}
