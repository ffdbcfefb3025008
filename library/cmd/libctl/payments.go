package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPayCmd(baseURL *string) *cobra.Command {
	var patronID string
	cmd := &cobra.Command{
		Use:   "pay <bookId>",
		Short: "Pay the outstanding late fee on a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bookId must be an integer: %q", args[0])
			}
			res, err := newClient(*baseURL).payFee(cmd.Context(), patronID, bookID)
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			if res.TransactionID != "" {
				fmt.Println("Transaction ID:", res.TransactionID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&patronID, "patron", "", "6 digit patron ID")
	_ = cmd.MarkFlagRequired("patron")
	return cmd
}

func newRefundCmd(baseURL *string) *cobra.Command {
	var amount float64
	cmd := &cobra.Command{
		Use:   "refund <transactionId>",
		Short: "Refund a late fee payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient(*baseURL).refund(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to refund in dollars")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
