package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/internal/voucher"
)

func newLocateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locate <code>",
		Short: "Find a pending voucher and estimate the dispense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := a.session(cmd)
			if err != nil {
				return err
			}

			req, err := a.svc.Locate(ctx, args[0])
			if err != nil {
				return lookupErr(err)
			}

			printRequisition(cmd.OutOrStdout(), req)
			printEstimate(cmd.OutOrStdout(), a.svc.Estimate(ctx, req))

			return nil
		},
	}
}

func newSettleCmd(a *app) *cobra.Command {
	var (
		liters, amount string
		receiptPath    string
	)

	cmd := &cobra.Command{
		Use:   "settle <requisition id>",
		Short: "Redeem a voucher with the liters and amount read from the pump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse requisition id: %w", err)
			}

			l, err := decimal.NewFromString(liters)
			if err != nil {
				return fmt.Errorf("%w: liters: %w", entity.ErrValidation, err)
			}

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("%w: amount: %w", entity.ErrValidation, err)
			}

			ctx, user, err := a.session(cmd)
			if err != nil {
				return err
			}

			st, err := a.svc.Settle(ctx, id, l, amt)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printRequisition(out, st.Requisition)
			fmt.Fprintf(out, "Unit price:   R$ %s\n", st.UnitPriceDisplay())

			if receiptPath == "" {
				return nil
			}

			pdf, _, err := a.svc.SettlementPDF(st, user.ID)
			if err != nil {
				return err
			}

			err = os.WriteFile(receiptPath, pdf, 0o644)
			if err != nil {
				return fmt.Errorf("write receipt: %w", err)
			}

			fmt.Fprintf(out, "Receipt:      %s\n", receiptPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&liters, "liters", "", "liters dispensed")
	cmd.Flags().StringVar(&amount, "amount", "", "total amount charged")
	cmd.Flags().StringVar(&receiptPath, "receipt", "", "write the PDF receipt to this file")
	_ = cmd.MarkFlagRequired("liters")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newReconcileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <requisition id>",
		Short: "Re-read a requisition after a settlement with unknown outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse requisition id: %w", err)
			}

			ctx, _, err := a.session(cmd)
			if err != nil {
				return err
			}

			req, err := a.svc.Reconcile(ctx, id)
			if err != nil {
				return err
			}

			printRequisition(cmd.OutOrStdout(), req)

			return nil
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	var locate bool

	cmd := &cobra.Command{
		Use:   "decode <file.png>",
		Short: "Read the voucher code from a QR image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			code, err := voucher.DecodeScan(f)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), code)

			if !locate {
				return nil
			}

			ctx, _, err := a.session(cmd)
			if err != nil {
				return err
			}

			req, err := a.svc.Locate(ctx, code)
			if err != nil {
				return lookupErr(err)
			}

			printRequisition(cmd.OutOrStdout(), req)
			printEstimate(cmd.OutOrStdout(), a.svc.Estimate(ctx, req))

			return nil
		},
	}

	cmd.Flags().BoolVar(&locate, "locate", false, "also look the code up")

	return cmd
}

func printRequisition(w io.Writer, r entity.Requisition) {
	fmt.Fprintf(w, "Requisition:  %d\n", r.ID)
	fmt.Fprintf(w, "Code:         %s\n", r.ScanValue())
	fmt.Fprintf(w, "Status:       %s\n", r.Status)
	fmt.Fprintf(w, "Vehicle:      %s\n", r.VehiclePlate)
	fmt.Fprintf(w, "Station:      %s\n", r.StationName)
	fmt.Fprintf(w, "Fuel:         %s\n", r.FuelTypeName)
	fmt.Fprintf(w, "Limit:        %s\n", r.LimitDescription())

	if r.IsSettled() {
		fmt.Fprintf(w, "Liters:       %s\n", r.LitersDispensed.StringFixed(3))
		fmt.Fprintf(w, "Total:        R$ %s\n", r.TotalAmount.StringFixed(2))
	}
}

func printEstimate(w io.Writer, e entity.Estimation) {
	if e.PricePerLiter.Valid {
		fmt.Fprintf(w, "Price/liter:  R$ %s\n", e.PricePerLiter.Decimal.StringFixed(2))
	} else {
		fmt.Fprintln(w, "Price/liter:  unavailable")
	}

	if e.EstimatedLiters.Valid {
		fmt.Fprintf(w, "Estimate:     %s L\n", e.EstimatedLiters.Decimal.StringFixed(3))
	}
}
