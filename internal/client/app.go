package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-lock-keeper/internal/adapter"
	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/utils"
	"github.com/MKhiriev/go-lock-keeper/models"
)

type command func(ctx context.Context, args []string) error

// App is the operator CLI.
type App struct {
	adapter  adapter.VaultAdapter
	cfg      *config.ClientConfig
	out      io.Writer
	logger   *logger.Logger
	commands map[string]command
}

func NewApp(vaults adapter.VaultAdapter, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) *App {
	a := &App{
		adapter: vaults,
		cfg:     cfg,
		out:     out,
		logger:  log,
	}
	a.commands = map[string]command{
		"token":       a.token,
		"version":     a.version,
		"list":        a.list,
		"status":      a.status,
		"claimable":   a.claimable,
		"reclaimable": a.reclaimable,
		"withdraw":    a.withdraw,
		"reclaim":     a.reclaim,
	}
	if cfg.Token != "" {
		vaults.SetToken(cfg.Token)
	}

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("func", "*App.Run").Str("command", name).Msg("running command")
	if err := cmd(a.logger.WithContext(ctx), rest); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func (a *App) token(_ context.Context, args []string) error {
	fs := newFlagSet("token")
	sub := fs.String("sub", "", "subject account address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sub == "" {
		return fmt.Errorf("%w: -sub", ErrMissingArgument)
	}
	if a.cfg.TokenSignKey == "" {
		return ErrNoSignKey
	}

	addr, err := models.ParseAddress(*sub)
	if err != nil {
		return err
	}
	token, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, addr, a.cfg.TokenDuration, a.cfg.TokenSignKey)
	if err != nil {
		return err
	}

	return a.print(models.NewTokenResponse(token))
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	var filter models.VaultFilter
	fs.StringVar(&filter.Owner, "owner", "", "owner address")
	fs.StringVar(&filter.Beneficiary, "beneficiary", "", "beneficiary address")
	fs.StringVar(&filter.Status, "status", "", "vault status")
	if err := fs.Parse(args); err != nil {
		return err
	}

	views, err := a.adapter.ListVaults(ctx, filter)
	if err != nil {
		return err
	}
	return a.print(views)
}

func (a *App) status(ctx context.Context, args []string) error {
	id, err := positional(args, 0, "vault")
	if err != nil {
		return err
	}

	view, err := a.adapter.GetVault(ctx, id)
	if err != nil {
		return err
	}
	return a.print(view)
}

func (a *App) claimable(ctx context.Context, args []string) error {
	id, err := positional(args, 0, "vault")
	if err != nil {
		return err
	}
	address, err := positional(args, 1, "address")
	if err != nil {
		return err
	}

	at, err := parseInstant("claimable", args[2:])
	if err != nil {
		return err
	}

	state, err := a.adapter.BeneficiaryState(ctx, id, address, at)
	if err != nil {
		return err
	}
	return a.print(state)
}

func (a *App) reclaimable(ctx context.Context, args []string) error {
	id, err := positional(args, 0, "vault")
	if err != nil {
		return err
	}

	at, err := parseInstant("reclaimable", args[1:])
	if err != nil {
		return err
	}

	state, err := a.adapter.OwnerState(ctx, id, at)
	if err != nil {
		return err
	}
	return a.print(state)
}

func (a *App) withdraw(ctx context.Context, args []string) error {
	return a.payout(ctx, args, a.adapter.Withdraw)
}

func (a *App) reclaim(ctx context.Context, args []string) error {
	return a.payout(ctx, args, a.adapter.Reclaim)
}

func (a *App) payout(ctx context.Context, args []string, call func(context.Context, string) (models.PayoutResponse, error)) error {
	id, err := positional(args, 0, "vault")
	if err != nil {
		return err
	}
	if a.adapter.Token() == "" {
		return ErrNoToken
	}

	resp, err := call(ctx, id)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseInstant reads the optional -at flag. Absent means server time.
func parseInstant(name string, args []string) (*uint64, error) {
	fs := newFlagSet(name)
	at := fs.Uint64("at", 0, "unix time to evaluate at")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	given := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "at" {
			given = true
		}
	})
	if !given {
		return nil, nil
	}
	return at, nil
}

func positional(args []string, i int, name string) (string, error) {
	if len(args) <= i || strings.HasPrefix(args[i], "-") {
		return "", fmt.Errorf("%w: <%s>", ErrMissingArgument, name)
	}
	return args[i], nil
}
