package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ExitSuccess           = 0
	ExitValidationFailure = 1
	ExitInvalidInvocation = 2
	ExitInputError        = 3
	ExitInternalError     = 4
)

// Invocation is the canonical description of one validation run.
type Invocation struct {
	// LocalesDir is the cleaned path of the directory holding one document
	// per locale.
	LocalesDir string

	// BaseLocale is the locale treated as ground truth.
	BaseLocale string

	// Verbose enables debug logging.
	Verbose bool
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// envPrefix makes every setting overridable as LOCALECHECK_<KEY>, with
// dashes mapped to underscores (LOCALECHECK_LOCALES_DIR, LOCALECHECK_BASE).
const envPrefix = "LOCALECHECK"

// ParseInvocation parses CLI flags, environment overrides, and an optional
// config file into a canonical Invocation.
//
// Precedence, highest first: explicit flags, environment, config file, flag
// defaults. Positional arguments are rejected.
func ParseInvocation(args []string) (Invocation, error) {
	cmd := newFlagCommand()
	if err := cmd.ParseFlags(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs := cmd.Flags(); fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		return Invocation{}, &InvocationError{ExitCode: ExitSuccess, Message: cmd.UsageString()}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Invocation{}, invalidInvocationf("bind flags: %v", err)
	}

	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return Invocation{}, invalidInvocationf("read config %s: %v", cfg, err)
		}
	} else {
		v.SetConfigName("localecheck")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Invocation{}, invalidInvocationf("read config: %v", err)
			}
		}
	}

	dir := strings.TrimSpace(v.GetString("locales-dir"))
	if dir == "" {
		return Invocation{}, invalidInvocationf("--locales-dir is required")
	}
	base := strings.TrimSpace(v.GetString("base"))
	if base == "" {
		return Invocation{}, invalidInvocationf("--base must not be empty")
	}

	return Invocation{
		LocalesDir: filepath.Clean(dir),
		BaseLocale: base,
		Verbose:    v.GetBool("verbose"),
	}, nil
}

// newFlagCommand declares the flag surface. The command is used for flag
// parsing and usage rendering only; execution is wired in Run/Execute so
// the run stays testable without process-level side effects.
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "localecheck",
		Short:         "Validate that localization files share the base locale's structure",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	fs := cmd.Flags()
	fs.String("locales-dir", "", "Directory containing one document per locale. Required.")
	fs.String("base", "en", "Base locale name treated as ground truth.")
	fs.String("config", "", "Config file path (default: ./localecheck.yaml).")
	fs.BoolP("verbose", "v", false, "Enable debug logging.")
	cmd.InitDefaultHelpFlag()
	return cmd
}

// ExitCode extracts a semantic exit code from a ParseInvocation error.
// Unknown errors map to ExitInternalError.
func ExitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		return invErr.ExitCode
	}
	if err == nil {
		return ExitSuccess
	}
	return ExitInternalError
}
