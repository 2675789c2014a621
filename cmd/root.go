package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"userctl/internal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "userctl",
	Short: "A database-backed user registry administration CLI",
	Long: `Userctl is an administrative tool for a single-table user registry:
- Create, read, update, delete and search user records
- Paginated listing for large tables
- SQLite by default, PostgreSQL when a database host is configured`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./userctl.yaml)")

	rootCmd.PersistentFlags().String("data-dir", "./data", "Directory holding the SQLite database file")

	// Database flags (PostgreSQL - if not set, SQLite is used)
	rootCmd.PersistentFlags().String("db-host", "", "PostgreSQL host (if empty, uses SQLite)")
	rootCmd.PersistentFlags().Int("db-port", 5432, "PostgreSQL port")
	rootCmd.PersistentFlags().String("db-user", "userctl", "PostgreSQL user")
	rootCmd.PersistentFlags().String("db-password", "", "PostgreSQL password")
	rootCmd.PersistentFlags().String("db-name", "userctl", "PostgreSQL database name")
	rootCmd.PersistentFlags().String("db-sslmode", "disable", "PostgreSQL SSL mode")

	// Bind flags to viper
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("db.host", rootCmd.PersistentFlags().Lookup("db-host"))
	viper.BindPFlag("db.port", rootCmd.PersistentFlags().Lookup("db-port"))
	viper.BindPFlag("db.user", rootCmd.PersistentFlags().Lookup("db-user"))
	viper.BindPFlag("db.password", rootCmd.PersistentFlags().Lookup("db-password"))
	viper.BindPFlag("db.name", rootCmd.PersistentFlags().Lookup("db-name"))
	viper.BindPFlag("db.sslmode", rootCmd.PersistentFlags().Lookup("db-sslmode"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/userctl/")
		viper.SetConfigType("yaml")
		viper.SetConfigName("userctl")
	}

	viper.SetEnvPrefix("USERCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openStore connects to the configured backend: PostgreSQL when db.host is
// set, otherwise a SQLite file under data_dir. Callers must Close the store.
func openStore() (storage.Storage, error) {
	if host := viper.GetString("db.host"); host != "" {
		return storage.NewPostgresStore(&storage.Config{
			Host:     host,
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		})
	}

	dataDir := viper.GetString("data_dir")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return storage.NewSQLiteStore(dataDir)
}

// mustOpenStore is the command entry point helper: connection failures are
// fatal, nothing in this tool recovers from an unreachable store.
func mustOpenStore() storage.Storage {
	store, err := openStore()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return store
}
