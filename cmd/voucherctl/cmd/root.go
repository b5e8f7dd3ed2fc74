// Package cmd provides the voucherctl commands: the station workflow from a terminal.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // receipt time zone on hosts without zoneinfo

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/voucher/internal/clients/backend"
	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/internal/service"
	"github.com/samandr77/microservices/voucher/pkg/config"
	"github.com/samandr77/microservices/voucher/pkg/logger"
)

const tokenEnv = "VOUCHER_TOKEN"

var (
	errNoToken      = errors.New("token is required: pass --token or set " + tokenEnv)
	errCodeNotFound = errors.New(entity.MsgCodeNotFound)
)

type app struct {
	cfgFile string
	token   string
	debug   bool

	svc *service.Service
}

// NewRootCmd builds the command tree. Commands that talk to the backend authenticate lazily,
// so qr and decode work offline.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "voucherctl",
		Short: "Redeem and issue fuel vouchers",
		Long: `voucherctl runs the fuel station workflow against the requisition backend.

Example:
  voucherctl locate A7F9-29QK-4C1M-8XZT
  voucherctl settle 42 --liters 23.5 --amount 140.00 --receipt comprovante.pdf
  voucherctl qr A7F9-29QK-4C1M-8XZT -o voucher.png`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", ".env", "env file to load")
	root.PersistentFlags().StringVar(&a.token, "token", "", "backend session token (default $"+tokenEnv+")")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newLocateCmd(a),
		newSettleCmd(a),
		newReconcileCmd(a),
		newIssueCmd(a),
		newQRCmd(),
		newDecodeCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if a.svc != nil {
		return nil
	}

	cfg, err := config.New(a.cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logger.Level
	if a.debug {
		level = "debug"
	}

	_, err = logger.NewWithWriter(cmd.ErrOrStderr(), level, "text")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Receipt.TimeZone)
	if err != nil {
		return fmt.Errorf("load receipt time zone: %w", err)
	}

	a.svc = service.New(backend.NewClient(cfg.Backend, nil), nil, nil, nil).WithLocation(loc)

	return nil
}

// session resolves the token owner and returns a context carrying both, as the HTTP middleware does.
func (a *app) session(cmd *cobra.Command) (context.Context, entity.User, error) {
	err := a.init(cmd)
	if err != nil {
		return nil, entity.User{}, err
	}

	token := a.token
	if token == "" {
		token = os.Getenv(tokenEnv)
	}

	if token == "" {
		return nil, entity.User{}, errNoToken
	}

	ctx := cmd.Context()

	user, err := a.svc.Authenticate(ctx, token)
	if err != nil {
		return nil, entity.User{}, fmt.Errorf("authenticate: %w", err)
	}

	ctx = entity.CtxWithUser(ctx, user)
	ctx = entity.CtxWithJWT(ctx, token)

	return ctx, user, nil
}

// lookupErr hides why a code lookup failed, as the HTTP API does.
func lookupErr(err error) error {
	if errors.Is(err, entity.ErrNotFound) {
		return errCodeNotFound
	}

	return err
}
