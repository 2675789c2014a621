package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"userctl/internal/models"
	"userctl/internal/storage"

	"github.com/spf13/cobra"
)

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Wipe the database and seed it with a default 'bob' user",
	Long: `Wipe the database and seed it with a default 'bob' user.
WARNING: This drops all existing data.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := mustOpenStore()
		defer store.Close()
		if err := runInitialize(store, os.Stdout); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(initializeCmd)
}

func runInitialize(store storage.Storage, out io.Writer) error {
	if err := store.DropAll(); err != nil {
		return err
	}
	if err := store.AutoMigrate(); err != nil {
		return err
	}

	bob := &models.User{Username: "bob", Email: "bob@mail.com", Password: "bobpass"}
	if err := store.CreateUser(bob); err != nil {
		return err
	}

	fmt.Fprintln(out, "Database Initialized")
	return nil
}
