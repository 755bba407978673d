package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	apperrors "fixed-deposit-core/internal/errors"
	"fixed-deposit-core/internal/services"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Exit codes by failure kind.
const (
	exitOK = iota
	exitInternal
	exitInvalidData
	exitNotFound
	exitConflict
	exitUnauthorized
	exitServiceIntegration
)

var exitCodes = map[apperrors.Kind]int{
	apperrors.KindInternal:           exitInternal,
	apperrors.KindInvalidData:        exitInvalidData,
	apperrors.KindNotFound:           exitNotFound,
	apperrors.KindConflict:           exitConflict,
	apperrors.KindUnauthorized:       exitUnauthorized,
	apperrors.KindServiceIntegration: exitServiceIntegration,
}

// runtime holds the global flags and the lazily built App shared by every
// subcommand of one invocation.
type runtime struct {
	load       Loader
	configPath string
	user       string
	roles      []string
	app        *App
}

// NewRootCommand builds the fdctl command tree. load is called at most once,
// by the first command that needs services.
func NewRootCommand(load Loader) *cobra.Command {
	return newRootCommand(&runtime{load: load})
}

func newRootCommand(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:           "fdctl",
		Short:         "Operate the fixed deposit core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&rt.configPath, "config", "", "path to a TOML config file (default $FD_CONFIG_FILE)")
	flags.StringVar(&rt.user, "user", os.Getenv("FD_USER"), "username acting on the core (default $FD_USER)")
	flags.StringSliceVar(&rt.roles, "roles", splitRoles(os.Getenv("FD_ROLES")), "roles held by --user (default $FD_ROLES)")

	root.AddCommand(
		newAccountCommand(rt),
		newCalculationCommand(rt),
		newTransactionCommand(rt),
		newMigrateCommand(rt),
		newHealthCommand(rt),
	)

	return root
}

// Execute runs fdctl with args and returns the process exit code. Failures
// are written to stderr as the JSON error envelope.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rt := &runtime{load: Bootstrap}
	defer rt.close()

	root := newRootCommand(rt)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	return renderError(stderr, err)
}

func renderError(w io.Writer, err error) int {
	appErr, ok := apperrors.As(err)
	if !ok {
		// Flag and argument errors from cobra are usage mistakes, not AppErrors.
		fmt.Fprintln(w, "Error:", err)
		return exitInvalidData
	}

	body, marshalErr := apperrors.FromError(appErr, "").ToJSON()
	if marshalErr != nil {
		fmt.Fprintln(w, apperrors.FromError(appErr, "").String())
	} else {
		fmt.Fprintln(w, string(body))
	}

	if code, ok := exitCodes[appErr.Kind]; ok {
		return code
	}
	return exitInternal
}

func (rt *runtime) services(cmd *cobra.Command) (*App, error) {
	if rt.app != nil {
		return rt.app, nil
	}

	app, err := rt.load(cmd.Context(), rt.configPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.SystemConfigurationError, err, err.Error())
	}
	rt.app = app
	return app, nil
}

func (rt *runtime) close() {
	if rt.app != nil {
		rt.app.Close()
		rt.app = nil
	}
}

func (rt *runtime) caller() services.Caller {
	return services.Caller{Username: rt.user, Roles: rt.roles}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func splitRoles(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, apperrors.Newf(apperrors.ValidationInvalidFormat, "%s must be a decimal number, got %q", field, value).
			WithField(field, "")
	}
	return d, nil
}

// parseTime accepts RFC 3339 timestamps or plain dates. A plain date used as
// an upper bound covers the whole day.
func parseTime(field, value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, apperrors.Newf(apperrors.ValidationInvalidDate, "%s must be a date (YYYY-MM-DD) or RFC 3339 timestamp, got %q", field, value).
			WithField(field, "")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
