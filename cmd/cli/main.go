package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledger-cli",
		Short: "EcoFin ledger CLI tool",
		Long:  `A command line interface for interacting with the EcoFin ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(transferCmd())
	rootCmd.AddCommand(reconcileCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var ownerID, currency, nickname string

	createCmd := &cobra.Command{
		Use:   "create <account-number>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]string{
				"account_number": args[0],
				"owner_id":       ownerID,
				"currency":       currency,
				"nickname":       nickname,
			}
			doJSON(http.MethodPost, "/api/v1/accounts", body, false)
		},
	}
	createCmd.Flags().StringVar(&ownerID, "owner", "", "Owner identifier")
	createCmd.Flags().StringVar(&currency, "currency", "USD", "ISO 4217 currency code")
	createCmd.Flags().StringVar(&nickname, "nickname", "", "Account nickname")
	createCmd.MarkFlagRequired("owner")

	getCmd := &cobra.Command{
		Use:   "get <account-number>",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodGet, "/api/v1/accounts/"+args[0], nil, false)
		},
	}

	var amount, description string

	depositCmd := &cobra.Command{
		Use:   "deposit <account-number>",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]string{"amount": amount, "description": description}
			doJSON(http.MethodPost, "/api/v1/accounts/"+args[0]+"/deposit", body, false)
		},
	}
	depositCmd.Flags().StringVar(&amount, "amount", "", "Amount, up to two decimal places")
	depositCmd.Flags().StringVar(&description, "description", "", "Optional description")
	depositCmd.MarkFlagRequired("amount")

	withdrawCmd := &cobra.Command{
		Use:   "withdraw <account-number>",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]string{"amount": amount, "description": description}
			doJSON(http.MethodPost, "/api/v1/accounts/"+args[0]+"/withdraw", body, false)
		},
	}
	withdrawCmd.Flags().StringVar(&amount, "amount", "", "Amount, up to two decimal places")
	withdrawCmd.Flags().StringVar(&description, "description", "", "Optional description")
	withdrawCmd.MarkFlagRequired("amount")

	cmd.AddCommand(createCmd, getCmd, depositCmd, withdrawCmd)
	return cmd
}

func transferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer operations",
	}

	var amount, notes string

	createCmd := &cobra.Command{
		Use:   "create <source-account> <destination-account>",
		Short: "Transfer between two accounts",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]string{
				"source_account_number":      args[0],
				"destination_account_number": args[1],
				"amount":                     amount,
				"notes":                      notes,
			}
			doJSON(http.MethodPost, "/api/v1/transfers", body, true)
		},
	}
	createCmd.Flags().StringVar(&amount, "amount", "", "Amount, up to two decimal places")
	createCmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	createCmd.MarkFlagRequired("amount")

	getCmd := &cobra.Command{
		Use:   "get <transfer-id>",
		Short: "Show a transfer",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodGet, "/api/v1/transfers/"+args[0], nil, false)
		},
	}

	cmd.AddCommand(createCmd, getCmd)
	return cmd
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <account-number>",
		Short: "Replay an account's transaction log and verify its balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doJSON(http.MethodPost, "/api/v1/accounts/"+args[0]+"/reconcile", nil, false)
		},
	}
}

// doJSON performs a request and prints the response. When retryConflict is
// set, 409 responses are retried with exponential backoff under a fixed
// idempotency key, so a retried transfer can never execute twice.
func doJSON(method, path string, body any, retryConflict bool) {
	client := &http.Client{Timeout: timeout}
	idempotencyKey := uuid.NewString()

	var respBody []byte
	var status int

	request := func() error {
		var reader io.Reader
		if body != nil {
			data, err := json.Marshal(body)
			if err != nil {
				return backoff.Permanent(err)
			}
			reader = bytes.NewReader(data)
		}

		req, err := http.NewRequest(method, baseURL+path, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if retryConflict {
			req.Header.Set("Idempotency-Key", idempotencyKey)
		}

		resp, err := client.Do(req)
		if err != nil {
			return backoff.Permanent(err)
		}
		defer resp.Body.Close()

		respBody, _ = io.ReadAll(resp.Body)
		status = resp.StatusCode

		if retryConflict && status == http.StatusConflict {
			return fmt.Errorf("conflict, retrying")
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = timeout

	if err := backoff.Retry(request, b); err != nil && status != http.StatusConflict {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if json.Indent(&pretty, respBody, "", "  ") == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Println(string(respBody))
	}

	if status >= 400 {
		os.Exit(1)
	}
}
