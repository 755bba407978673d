package cli

import (
	"fixed-deposit-core/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// balanceView is what `txn balance` prints.
type balanceView struct {
	AccountNo string          `json:"account_no"`
	Balance   decimal.Decimal `json:"balance"`
}

func newTransactionCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "txn",
		Aliases: []string{"transaction"},
		Short:   "Record and read account ledger entries",
	}

	cmd.AddCommand(
		newTxnRecordCommand(rt),
		newTxnListCommand(rt),
		newTxnRangeCommand(rt),
		newTxnBalanceCommand(rt),
	)
	return cmd
}

func newTxnRecordCommand(rt *runtime) *cobra.Command {
	var (
		req    dto.TransactionRequest
		amount string
	)

	cmd := &cobra.Command{
		Use:   "record ACCOUNT_NO",
		Short: "Append an entry to an account's ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Amount, err = parseDecimal("amount", amount); err != nil {
				return err
			}

			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			txn, err := app.Transactions.RecordTransaction(cmd.Context(), rt.caller(), args[0], req)
			if err != nil {
				return err
			}
			return printJSON(cmd, txn)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.TransactionType, "type", "", "DEPOSIT, WITHDRAWAL, INTEREST_CREDIT, PREMATURE_CLOSURE, MATURITY_PAYOUT, PENALTY_DEBIT or REVERSAL")
	f.StringVar(&amount, "amount", "", "transaction amount")
	f.StringVar(&req.Description, "description", "", "description")
	f.StringVar(&req.ReferenceNo, "reference", "", "external reference number")
	f.StringVar(&req.Remarks, "remarks", "", "free-text remarks")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTxnListCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list ACCOUNT_NO",
		Short: "List an account's ledger, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			transactions, err := app.Transactions.GetAccountTransactions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, transactions)
		},
	}
}

func newTxnRangeCommand(rt *runtime) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "range ACCOUNT_NO",
		Short: "List ledger entries dated within a range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromTime, err := parseTime("from", from, false)
			if err != nil {
				return err
			}
			toTime, err := parseTime("to", to, true)
			if err != nil {
				return err
			}

			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			transactions, err := app.Transactions.GetAccountTransactionsByDateRange(cmd.Context(), args[0], fromTime, toTime)
			if err != nil {
				return err
			}
			return printJSON(cmd, transactions)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date, inclusive")
	cmd.Flags().StringVar(&to, "to", "", "end date, inclusive")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newTxnBalanceCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "balance ACCOUNT_NO",
		Short: "Show an account's current ledger balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services(cmd)
			if err != nil {
				return err
			}

			balance, err := app.Transactions.GetCurrentBalance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, balanceView{AccountNo: args[0], Balance: balance})
		},
	}
}
