package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/internal/voucher"
)

func newIssueCmd(a *app) *cobra.Command {
	var (
		r      entity.IssueRequest
		limit  string
		qrPath string
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a requisition with a new voucher code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit != "" {
				d, err := decimal.NewFromString(limit)
				if err != nil {
					return fmt.Errorf("%w: limit: %w", entity.ErrValidation, err)
				}

				r.Limit = decimal.NewNullDecimal(d)
			}

			ctx, _, err := a.session(cmd)
			if err != nil {
				return err
			}

			created, err := a.svc.Issue(ctx, r)
			if err != nil {
				return err
			}

			printRequisition(cmd.OutOrStdout(), created)

			if qrPath == "" {
				return nil
			}

			return writeQR(cmd, created.ScanValue(), qrPath)
		},
	}

	cmd.Flags().Int64Var(&r.VehicleID, "vehicle", 0, "vehicle id")
	cmd.Flags().Int64Var(&r.StationID, "station", 0, "station id")
	cmd.Flags().Int64Var(&r.FuelTypeID, "fuel", 0, "fuel type id")
	cmd.Flags().Int64Var(&r.CostCenterID, "cost-center", 0, "cost center id")
	cmd.Flags().StringVar(&limit, "limit", "", "monetary limit")
	cmd.Flags().BoolVar(&r.FillTank, "fill-tank", false, "authorize a full tank instead of a limit")
	cmd.Flags().Int64Var(&r.Odometer, "odometer", 0, "odometer reading")
	cmd.Flags().StringVar(&r.Destination, "destination", "", "trip destination")
	cmd.Flags().StringVarP(&qrPath, "output", "o", "", "write the voucher QR code to this file")
	cmd.MarkFlagsMutuallyExclusive("limit", "fill-tank")

	return cmd
}

func newQRCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "qr <code>",
		Short: "Render a voucher code as a QR image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeQR(cmd, entity.NormalizeCode(args[0]), out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "voucher.png", "output file")

	return cmd
}

func writeQR(cmd *cobra.Command, code, path string) error {
	img, err := voucher.EncodeForScan(code)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, img, 0o644)
	if err != nil {
		return fmt.Errorf("write qr: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "QR:           %s\n", path)

	return nil
}
