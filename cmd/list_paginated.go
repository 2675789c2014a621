package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"userctl/internal/storage"

	"github.com/spf13/cobra"
)

var (
	listLimit  int
	listOffset int
)

var listPaginatedCmd = &cobra.Command{
	Use:   "list-paginated",
	Short: "List users using pagination (limit and offset)",
	Long: `List users using pagination (limit and offset).
Useful for large datasets to avoid loading everything at once.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := mustOpenStore()
		defer store.Close()
		if err := runListPaginated(store, os.Stdout, listLimit, listOffset); err != nil {
			log.Fatalf("Failed to list users: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listPaginatedCmd)
	listPaginatedCmd.Flags().IntVar(&listLimit, "limit", 10, "Maximum number of users to return")
	listPaginatedCmd.Flags().IntVar(&listOffset, "offset", 0, "Number of users to skip from the start")
}

func runListPaginated(store storage.Storage, out io.Writer, limit, offset int) error {
	users, err := store.ListPaginated(limit, offset)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(out, "No users found in this range.")
		return nil
	}
	fmt.Fprintf(out, "--- Results (Limit: %d, Offset: %d) ---\n", limit, offset)
	for _, user := range users {
		fmt.Fprintln(out, user)
	}
	return nil
}
