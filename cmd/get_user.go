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

var getUserCmd = &cobra.Command{
	Use:   "get-user <username>",
	Short: "Retrieve a single user's details by their username",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := mustOpenStore()
		defer store.Close()
		if err := runGetUser(store, os.Stdout, args[0]); err != nil {
			log.Fatalf("Failed to look up user: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(getUserCmd)
}

func runGetUser(store storage.Storage, out io.Writer, username string) error {
	user, err := store.GetUser(username)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(out, "Error: %s not found!\n", username)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, user)
	return nil
}
