package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// RunnerConfig holds the command-line options.
type RunnerConfig struct {
	Expr        string
	Interactive bool

	// Empty strings mean "use the environment/.env value".
	Plain    bool
	LogLevel string
	LogFile  string

	Verbose bool
}

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config if no arguments are given (GUI mode) or help was printed.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{}

	fs := flag.NewFlagSet("physcalc", flag.ContinueOnError)
	fs.Usage = PrintUsage

	fs.StringVar(&cfg.Expr, "e", "", "Evaluate one expression and exit")
	fs.StringVar(&cfg.Expr, "eval", "", "Evaluate one expression and exit")
	fs.BoolVar(&cfg.Interactive, "i", false, "Interactive mode")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "Interactive mode")

	fs.BoolVar(&cfg.Plain, "plain", false, "Plain decimal output instead of scientific notation")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Also write JSON logs to this file (rotated)")

	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	// Bare arguments form the expression: physcalc 'h*c'
	if cfg.Expr == "" && fs.NArg() > 0 {
		cfg.Expr = strings.Join(fs.Args(), " ")
	}

	if cfg.Expr == "" && !cfg.Interactive {
		fmt.Fprintf(os.Stderr, "Error: provide an expression with -e or start a session with -i\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing expression")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Physics Calculator

Usage: physcalc [flags] [expression]
       physcalc           (no arguments: open the calculator window)
       physcalc help      (show this message)

EVALUATION:
  -e, -eval <expr>         Evaluate one expression and exit
  -i, -interactive         Read expressions line by line (type :help inside)

OUTPUT:
  -plain                   Plain decimal output instead of M×10^E
  -v, -verbose             Verbose output

LOGGING:
  -log-level <level>       debug, info, warn or error (default: info)
  -log-file <path>         Also write JSON logs to a rotated file

ENVIRONMENT (also read from .env):
  PHYSCALC_MODE            scientific or plain
  PHYSCALC_LOG_LEVEL       default log level
  PHYSCALC_LOG_FILE        default log file
  PHYSCALC_CACHE_TTL       how long parsed expressions stay cached (e.g. 10m, 0 disables)

EXPRESSIONS:
  Operators  + - * / ^ (or **) and parentheses
  Functions  sqrt cbrt log10 ln sin cos tan exp abs pow(x, y)
  Constants  h ℏ c e mₑ mₚ mₙ u α ε₀ μ₀ G kB NA R∞ π euler
             (ASCII aliases: hbar me mp mn alpha eps0 mu0 Rinf pi)
  Units      eV keV MeV nm pm fm Å (A) MHz GHz THz
  Literals   6.63e-34 or 6.63×10^-34

EXAMPLES:
  # Photon energy of 500 nm light, in eV
  physcalc -e "h*c/(500*nm)/eV"

  # Electron rest energy
  physcalc -e "me*c^2"

  # Plain output
  physcalc -plain -e "NA*kB"

  # Interactive session with debug logging to a file
  physcalc -i -log-level debug -log-file physcalc.log

`)
}
