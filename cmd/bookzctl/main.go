// bookzctl drives the SMS notification operations of the book catalog from
// the command line: manual fan-out for one book, the recent-books batch, a
// test send and account queries against the SMSPilot gateway.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "bookzctl",
	Short:         "Book catalog notification operations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(
		newNotifyCmd(),
		newNotifyRecentCmd(),
		newTestCmd(),
		newBalanceCmd(),
		newInfoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
