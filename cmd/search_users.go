package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"userctl/internal/storage"

	"github.com/spf13/cobra"
)

var searchUsersCmd = &cobra.Command{
	Use:   "search-users <query>",
	Short: "Find users using a partial match on username or email (case-sensitive)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := mustOpenStore()
		defer store.Close()
		if err := runSearchUsers(store, os.Stdout, args[0]); err != nil {
			log.Fatalf("Failed to search users: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchUsersCmd)
}

func runSearchUsers(store storage.Storage, out io.Writer, query string) error {
	users, err := store.SearchUsers(query)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintf(out, "No matches found for: %s\n", query)
		return nil
	}
	for _, user := range users {
		fmt.Fprintln(out, user)
	}
	return nil
}
