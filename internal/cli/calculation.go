package cli

import (
	"fixed-deposit-core/internal/dto"
	apperrors "fixed-deposit-core/internal/errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const defaultRecentDays = 30

func newCalculationCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calc",
		Aliases: []string{"calculation"},
		Short:   "Quote maturity amounts and browse past quotes",
	}

	cmd.AddCommand(
		newCalcRunCommand(rt),
		newCalcGetCommand(rt),
		newCalcHistoryCommand(rt),
		newCalcRecentCommand(rt),
	)
	return cmd
}

func newCalcRunCommand(rt *runtime) *cobra.Command {
	var (
		req       dto.CalculationRequest
		principal string
		frequency int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Calculate and record a maturity quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.PrincipalAmount, err = parseDecimal("principal_amount", principal); err != nil {
				return err
			}
			if cmd.Flags().Changed("frequency") {
				req.CompoundingFrequency = &frequency
			}

			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			calc, err := app.Calculations.CalculateFd(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, calc)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.CustomerID, "customer", "", "customer id")
	f.StringVar(&req.ProductCode, "product", "", "product code")
	f.StringVar(&principal, "principal", "", "principal amount")
	f.IntVar(&req.TenureMonths, "tenure", 0, "tenure in months")
	f.IntVar(&frequency, "frequency", 0, "compounding periods per year (default from config)")
	for _, name := range []string{"customer", "product", "principal", "tenure"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newCalcGetCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get CALCULATION_ID",
		Short: "Show one recorded quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return apperrors.Newf(apperrors.ValidationInvalidFormat, "Invalid calculation id: %s", args[0]).
					WithField("id", "")
			}

			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			calc, err := app.Calculations.GetCalculationByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, calc)
		},
	}
}

func newCalcHistoryCommand(rt *runtime) *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List every quote for a customer, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			calculations, err := app.Calculations.GetCalculationHistory(cmd.Context(), customerID)
			if err != nil {
				return err
			}
			return printJSON(cmd, calculations)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}

func newCalcRecentCommand(rt *runtime) *cobra.Command {
	var (
		customerID string
		days       int
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List a customer's quotes from the last few days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			calculations, err := app.Calculations.GetRecentCalculations(cmd.Context(), customerID, days)
			if err != nil {
				return err
			}
			return printJSON(cmd, calculations)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	cmd.Flags().IntVar(&days, "days", defaultRecentDays, "look-back window in days")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}
