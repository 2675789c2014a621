package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"userctl/internal/storage"

	"github.com/spf13/cobra"
)

var getAllUsersCmd = &cobra.Command{
	Use:   "get-all-users",
	Short: "List every user currently registered in the database",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := mustOpenStore()
		defer store.Close()
		if err := runGetAllUsers(store, os.Stdout); err != nil {
			log.Fatalf("Failed to list users: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(getAllUsersCmd)
}

func runGetAllUsers(store storage.Storage, out io.Writer) error {
	users, err := store.ListUsers()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(out, "No users found")
		return nil
	}
	for _, user := range users {
		fmt.Fprintln(out, user)
	}
	return nil
}
