package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"userctl/internal/storage"

	"github.com/spf13/cobra"
)

var changeEmailCmd = &cobra.Command{
	Use:   "change-email <username> <new_email>",
	Short: "Update the email address for an existing user",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := mustOpenStore()
		defer store.Close()
		if err := runChangeEmail(store, os.Stdout, args[0], args[1]); err != nil {
			log.Fatalf("Failed to update email: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(changeEmailCmd)
}

func runChangeEmail(store storage.Storage, out io.Writer, username, newEmail string) error {
	user, err := store.UpdateEmail(username, newEmail)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(out, "Error: %s not found! Unable to update email.\n", username)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Success: Updated %s's email to %s\n", user.Username, user.Email)
	return nil
}
