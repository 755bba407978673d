package cli

import (
	"fixed-deposit-core/internal/dto"

	"github.com/spf13/cobra"
)

func newAccountCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Open, inspect and close fixed deposit accounts",
	}

	cmd.AddCommand(
		newAccountCreateCommand(rt),
		newAccountGetCommand(rt),
		newAccountListCommand(rt),
		newAccountCloseCommand(rt),
		newAccountStatusCommand(rt, "suspend", "Suspend an active account"),
		newAccountStatusCommand(rt, "reactivate", "Return a suspended account to active"),
		newAccountMatureCommand(rt),
	)
	return cmd
}

func newAccountCreateCommand(rt *runtime) *cobra.Command {
	var (
		req             dto.CreateAccountRequest
		principal, rate string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a fixed deposit account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.PrincipalAmount, err = parseDecimal("principal_amount", principal); err != nil {
				return err
			}
			if req.InterestRate, err = parseDecimal("interest_rate", rate); err != nil {
				return err
			}

			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			account, err := app.Accounts.CreateAccount(cmd.Context(), rt.caller(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, account)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.CustomerID, "customer", "", "customer id")
	f.StringVar(&req.ProductCode, "product", "", "product code")
	f.StringVar(&principal, "principal", "", "principal amount")
	f.StringVar(&rate, "rate", "", "annual interest rate in percent")
	f.IntVar(&req.TenureMonths, "tenure", 0, "tenure in months")
	f.StringVar(&req.BranchCode, "branch", "", "opening branch code")
	f.StringVar(&req.Remarks, "remarks", "", "free-text remarks")
	for _, name := range []string{"customer", "product", "principal", "rate", "tenure", "branch"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newAccountGetCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_NO",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			account, err := app.Accounts.GetAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, account)
		},
	}
}

func newAccountListCommand(rt *runtime) *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a customer's accounts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			accounts, err := app.Accounts.GetCustomerAccounts(cmd.Context(), customerID)
			if err != nil {
				return err
			}
			return printJSON(cmd, accounts)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}

func newAccountCloseCommand(rt *runtime) *cobra.Command {
	var req dto.CloseAccountRequest

	cmd := &cobra.Command{
		Use:   "close ACCOUNT_NO",
		Short: "Close an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			account, err := app.Accounts.CloseAccount(cmd.Context(), rt.caller(), args[0], req)
			if err != nil {
				return err
			}
			return printJSON(cmd, account)
		},
	}

	cmd.Flags().StringVar(&req.ClosureReason, "reason", "", "closure reason")
	cmd.Flags().StringVar(&req.Remarks, "remarks", "", "free-text remarks")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

// newAccountStatusCommand builds suspend and reactivate, which differ only in
// the service call.
func newAccountStatusCommand(rt *runtime, use, short string) *cobra.Command {
	var remarks string

	cmd := &cobra.Command{
		Use:   use + " ACCOUNT_NO",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			change := app.Accounts.SuspendAccount
			if use == "reactivate" {
				change = app.Accounts.ReactivateAccount
			}

			account, err := change(cmd.Context(), rt.caller(), args[0], remarks)
			if err != nil {
				return err
			}
			return printJSON(cmd, account)
		},
	}

	cmd.Flags().StringVar(&remarks, "remarks", "", "free-text remarks")
	return cmd
}

func newAccountMatureCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "mature ACCOUNT_NO",
		Short: "Mark an account whose maturity date has passed as matured",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			account, err := app.Accounts.MatureAccount(cmd.Context(), rt.caller(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, account)
		},
	}
}
