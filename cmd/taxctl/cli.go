package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/adapter"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

type command func(ctx context.Context, client adapter.APIClient, args []string, stdout io.Writer) error

var commands = map[string]command{
	"login":      loginCmd,
	"health":     healthCmd,
	"version":    versionCmd,
	"export":     exportCmd,
	"history":    historyCmd,
	"invite":     inviteCmd,
	"deactivate": deactivateCmd,
}

// run executes one taxctl invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("taxctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var overrides config.Client
	fs.StringVar(&overrides.ServerURL, "server", "", "API base URL")
	fs.StringVar(&overrides.MachineToken, "token", "", "bearer token, machine or access token")
	fs.DurationVar(&overrides.RequestTimeout, "timeout", 0, "request timeout")
	fs.StringVar(&overrides.LogLevel, "log-level", "", "log level")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: taxctl [flags] <login|health|version|export|history|invite|deactivate> [args]")
		return exitUsage
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "taxctl: unknown command %q\n", name)
		return exitUsage
	}

	cfg, err := config.GetClientConfig(overrides)
	if err != nil {
		fmt.Fprintf(stderr, "taxctl: %v\n", err)
		return exitError
	}

	log := logger.NewLoggerTo(stderr, "taxctl", cfg.LogLevel)

	client, err := adapter.NewHTTPAPIClient(*cfg, log)
	if err != nil {
		fmt.Fprintf(stderr, "taxctl: %v\n", err)
		return exitError
	}

	if err = cmd(log.WithContext(ctx), client, fs.Args()[1:], stdout); err != nil {
		fmt.Fprintf(stderr, "taxctl %s: %v\n", name, err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func positiveID(args []string, name string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected <%s>", errUsage, name)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", errUsage, name)
	}
	return id, nil
}

// loginCmd exchanges a username and password for an access token and prints
// it, so scripts can pass it back through -token.
func loginCmd(ctx context.Context, client adapter.APIClient, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var req models.LoginRequest
	fs.StringVar(&req.Username, "u", "", "username or e-mail")
	fs.StringVar(&req.Password, "p", "", "password, defaults to $TAXCTL_PASSWORD")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if req.Password == "" {
		req.Password = os.Getenv("TAXCTL_PASSWORD")
	}
	if req.Username == "" || req.Password == "" {
		return fmt.Errorf("%w: -u and a password are required", errUsage)
	}

	res, err := client.Login(ctx, req)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("username", res.User.Username).Str("role", res.User.Role).Msg("logged in")
	_, err = fmt.Fprintln(stdout, client.Token())
	return err
}

func healthCmd(ctx context.Context, client adapter.APIClient, _ []string, stdout io.Writer) error {
	health, err := client.Health(ctx)
	if health.Status != "" {
		if perr := printJSON(stdout, health); perr != nil {
			return perr
		}
	}
	return err
}

func versionCmd(ctx context.Context, client adapter.APIClient, _ []string, stdout io.Writer) error {
	server, err := client.Version(ctx)
	if err != nil {
		return err
	}
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	return printJSON(stdout, map[string]string{
		"server":       server,
		"client":       info.BuildVersion(),
		"client_date":  info.BuildDate(),
		"client_build": info.BuildCommit(),
	})
}

func exportCmd(ctx context.Context, client adapter.APIClient, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		format string
		output string
		filter models.JurisdictionFilter
	)
	fs.StringVar(&format, "format", adapter.ExportCSV, "csv or xlsx")
	fs.StringVar(&output, "o", "", "output file, - for stdout")
	fs.StringVar(&filter.State, "state", "", "state code")
	fs.StringVar(&filter.JurisdictionType, "type", models.JurisdictionAll, "all, county or municipality")
	fs.StringVar(&filter.Search, "search", "", "search text")
	fs.BoolVar(&filter.SearchByNameOnly, "name-only", false, "search names only")
	fs.BoolVar(&filter.HideValidated, "hide-validated", false, "skip validated jurisdictions")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if output == "" {
		output = "tax_jurisdictions." + format
	}

	if output == "-" {
		_, err := client.Export(ctx, format, filter, stdout)
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}

	n, err := client.Export(ctx, format, filter, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(output)
		return err
	}

	logger.FromContext(ctx).Info().Str("file", output).Int64("bytes", n).Msg("export written")
	return nil
}

func historyCmd(ctx context.Context, client adapter.APIClient, args []string, stdout io.Writer) error {
	researchID, err := positiveID(args, "researchId")
	if err != nil {
		return err
	}

	history, err := client.EditHistory(ctx, researchID)
	if err != nil {
		return err
	}
	return printJSON(stdout, history)
}

func inviteCmd(ctx context.Context, client adapter.APIClient, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("invite", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		req     models.CreateInviteRequest
		email   string
		maxUses int
		expires string
	)
	fs.StringVar(&req.Code, "code", "", "invite code, generated when empty")
	fs.StringVar(&email, "email", "", "restrict to this email")
	fs.IntVar(&maxUses, "max-uses", 0, "usage cap")
	fs.StringVar(&expires, "expires", "", "expiry, RFC 3339")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if email != "" {
		req.Email = &email
	}
	if maxUses != 0 {
		req.MaxUses = &maxUses
	}
	if expires != "" {
		t, err := time.Parse(time.RFC3339, expires)
		if err != nil {
			return fmt.Errorf("%w: -expires: %w", errUsage, err)
		}
		req.ExpiresAt = &t
	}

	invite, err := client.CreateInviteCode(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(stdout, invite)
}

func deactivateCmd(ctx context.Context, client adapter.APIClient, args []string, stdout io.Writer) error {
	userID, err := positiveID(args, "userId")
	if err != nil {
		return err
	}

	out, err := client.DeactivateUser(ctx, userID)
	if err != nil {
		return err
	}
	return printJSON(stdout, out)
}
