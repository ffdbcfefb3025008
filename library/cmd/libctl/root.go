package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "libctl",
		Short: "Command line client for the library lending service",
		Long: `libctl drives the library lending REST API from the terminal:
catalog management, borrowing and returns, late fee quotes, payments
and refunds.

The service address comes from --base-url or the LIBRARY_BASE_URL
environment variable. A .env file in the working directory is honored.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "service base URL (default http://localhost:8080)")

	cmd.AddCommand(newBooksCmd(&baseURL))
	cmd.AddCommand(newBorrowCmd(&baseURL))
	cmd.AddCommand(newReturnCmd(&baseURL))
	cmd.AddCommand(newFeeCmd(&baseURL))
	cmd.AddCommand(newReportCmd(&baseURL))
	cmd.AddCommand(newPayCmd(&baseURL))
	cmd.AddCommand(newRefundCmd(&baseURL))

	return cmd
}
