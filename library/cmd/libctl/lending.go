package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBorrowCmd(baseURL *string) *cobra.Command {
	var patronID string
	cmd := &cobra.Command{
		Use:   "borrow <bookId>",
		Short: "Borrow a book for a patron",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bookId must be an integer: %q", args[0])
			}
			res, err := newClient(*baseURL).borrow(cmd.Context(), bookID, patronID)
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&patronID, "patron", "", "6 digit patron ID")
	_ = cmd.MarkFlagRequired("patron")
	return cmd
}

func newReturnCmd(baseURL *string) *cobra.Command {
	var patronID string
	cmd := &cobra.Command{
		Use:   "return <bookId>",
		Short: "Return a borrowed book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bookId must be an integer: %q", args[0])
			}
			res, err := newClient(*baseURL).returnBook(cmd.Context(), bookID, patronID)
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&patronID, "patron", "", "6 digit patron ID")
	_ = cmd.MarkFlagRequired("patron")
	return cmd
}

func newFeeCmd(baseURL *string) *cobra.Command {
	var patronID string
	cmd := &cobra.Command{
		Use:   "fee <bookId>",
		Short: "Quote the current late fee for a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bookId must be an integer: %q", args[0])
			}
			res, err := newClient(*baseURL).feeQuote(cmd.Context(), patronID, bookID)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
	cmd.Flags().StringVar(&patronID, "patron", "", "6 digit patron ID")
	_ = cmd.MarkFlagRequired("patron")
	return cmd
}

func newReportCmd(baseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "report <patronId>",
		Short: "Show a patron's loans, history and owed fees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient(*baseURL).report(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
}
