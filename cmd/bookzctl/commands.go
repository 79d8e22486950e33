package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bookz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newNotifyCmd() *cobra.Command {
	var bookID string

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send the new-book SMS to the book's subscribers",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(bookID)
			if err != nil {
				return errors.Wrap(err, "invalid --book-id")
			}

			d, err := buildDeps()
			if err != nil {
				return err
			}
			defer d.closeDB()

			result, err := d.notification.NotifyNewBook(context.Background(), id)
			if err != nil {
				return err
			}

			printResult(result)
			if result.Failed > 0 {
				return errors.Errorf("%d of %d sends failed", result.Failed, result.Sent+result.Failed)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&bookID, "book-id", "", "UUID of the book to notify about")
	_ = cmd.MarkFlagRequired("book-id")

	return cmd
}

func newNotifyRecentCmd() *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "notify-recent",
		Short: "Send the new-book SMS for every book created in the last N hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			if hours <= 0 {
				return errors.New("--hours must be positive")
			}

			d, err := buildDeps()
			if err != nil {
				return err
			}
			defer d.closeDB()

			result, err := d.notification.NotifyRecent(context.Background(), time.Duration(hours)*time.Hour)
			if err != nil {
				return err
			}

			printResult(result)
			if result.Failed > 0 {
				return errors.Errorf("%d of %d sends failed", result.Failed, result.Sent+result.Failed)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 24, "look-back window in hours")

	return cmd
}

func newTestCmd() *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Send a single test SMS",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			defer d.closeDB()

			if err := d.notification.SendTest(context.Background(), phone); err != nil {
				return err
			}

			fmt.Println("Test SMS sent to", phone)

			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "recipient phone, digits only")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the SMS account balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			defer d.closeDB()

			balance, err := d.notification.Balance(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Balance: %.2f\n", balance)

			return nil
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show SMS account info",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			defer d.closeDB()

			info, err := d.notification.AccountInfo(context.Background())
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(info))
			for k := range info {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%s = %s\n", k, info[k])
			}

			return nil
		},
	}
}

func printResult(result *entity.NotificationResult) {
	fmt.Printf("Sent: %d, Failed: %d\n", result.Sent, result.Failed)
	for _, sendErr := range result.Errors {
		if sendErr.Phone == "" {
			fmt.Printf("  error: %s\n", sendErr.Detail)

			continue
		}
		fmt.Printf("  %s: %s\n", sendErr.Phone, sendErr.Detail)
	}
}
