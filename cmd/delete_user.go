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

var deleteUserCmd = &cobra.Command{
	Use:   "delete-user <username>",
	Short: "Remove a user from the database",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := mustOpenStore()
		defer store.Close()
		if err := runDeleteUser(store, os.Stdout, args[0]); err != nil {
			log.Fatalf("Failed to delete user: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(deleteUserCmd)
}

func runDeleteUser(store storage.Storage, out io.Writer, username string) error {
	err := store.DeleteUser(username)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(out, "Error: %s not found! Unable to delete user.\n", username)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Success: %s deleted\n", username)
	return nil
}
