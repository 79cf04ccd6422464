// Package cli provides the testman maintenance CLI: schema migration and
// the snapshot/version inspection commands used by operators.
package cli

import (
	"database/sql"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite"
)

var flagConfigFile string

var rootCmd = &cobra.Command{
	Use:   "testman",
	Short: "Maintenance tooling for the test case management store",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: testman.yaml in the working directory)")
	rootCmd.PersistentFlags().String("db", "", "path to the sqlite database file")

	if err := viper.BindPFlag("db.path", rootCmd.PersistentFlags().Lookup("db")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(versionsCmd)
}

func loadConfig() error {
	viper.SetDefault("db.path", "testman.db")
	viper.SetEnvPrefix("TESTMAN")
	viper.AutomaticEnv()

	if flagConfigFile != "" {
		viper.SetConfigFile(flagConfigFile)
	} else {
		viper.SetConfigName("testman")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

func openDB() (*sql.DB, error) {
	return sql.Open("sqlite", viper.GetString("db.path"))
}

func Execute() error {
	return rootCmd.Execute()
}
