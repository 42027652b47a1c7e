package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/contractor-intake/internal/config"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Hash an admin password for ADMIN_PASSWORD_HASH",
	RunE:  runHashPassword,
}

var hashPasswordValue string

func init() {
	hashPasswordCmd.Flags().StringVar(&hashPasswordValue, "password", "", "Password to hash (required)")
	_ = hashPasswordCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(_ *cobra.Command, _ []string) error {
	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return err
	}

	hash, err := passwords.HashPassword(hashPasswordValue)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, hash)
	return nil
}
