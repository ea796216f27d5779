package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/petagego/internal/app"
)

// version is the user-facing version string printed by --version.
const version = "3.0"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("petagego", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
petagego - Convert animal age to human years & show colorful lifespan comparisons.

Usage:
  petagego [options]

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprint(output, `
Examples:
  petagego -t cat -a 3
  petagego --type small_dog --age 5
  petagego --list
  petagego -t horse -a 10 --json
  petagego -t cat,small_dog -a 3 --no-color
`)
	}

	typeFlag := flagSet.String("type", "", "Animal type. Supports a comma-separated list.")
	tFlag := flagSet.String("t", "", "Animal type (shorthand).")
	ageFlag := flagSet.Float64("age", 0, "Age of the animal in real years.")
	aFlag := flagSet.Float64("a", 0, "Age of the animal in real years (shorthand).")
	listFlag := flagSet.Bool("list", false, "Show supported animal types.")
	jsonFlag := flagSet.Bool("json", false, "Output in JSON format.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintf(output, "petagego %s\n", version)
		return nil, true, nil
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %q", flagSet.Arg(0))}
	}

	// The flag package cannot distinguish an unset flag from its zero value,
	// so Visit records which flags the user actually set. Age 0 is valid
	// input and must survive as "provided".
	provided := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { provided[f.Name] = true })

	animalSpec := ""
	if *typeFlag != "" {
		animalSpec = *typeFlag
	} else if *tFlag != "" {
		animalSpec = *tFlag
	}

	var animals []string
	if animalSpec != "" {
		animals = strings.Split(animalSpec, ",")
	}
	slog.Debug("Animal list determined.", "animals", animals)

	var age *float64
	if provided["age"] {
		age = ageFlag
	} else if provided["a"] {
		age = aFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Animals:   animals,
		Age:       age,
		List:      *listFlag,
		JSON:      *jsonFlag,
		NoColor:   *noColorFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
