package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"userctl/internal/models"
	"userctl/internal/storage"

	"github.com/spf13/cobra"
)

var createUserCmd = &cobra.Command{
	Use:   "create-user <username> <email> <password>",
	Short: "Register a new user in the system",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		store := mustOpenStore()
		defer store.Close()
		if err := runCreateUser(store, os.Stdout, args[0], args[1], args[2]); err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(createUserCmd)
}

func runCreateUser(store storage.Storage, out io.Writer, username, email, password string) error {
	user := &models.User{Username: username, Email: email, Password: password}
	err := store.CreateUser(user)
	if errors.Is(err, storage.ErrDuplicate) {
		fmt.Fprintln(out, "Error: Username or email already taken!")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Created: %s\n", user)
	return nil
}
