package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/exodus/internal/profile"
)

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a player profile",
	Long: `Create a player profile in the database so scores can be recorded.

The password is read from the terminal without echo.

Examples:
  exodus register ripley
  exodus register ripley --db ./profiles.db`,
	Args: cobra.ExactArgs(1),
	Run:  runRegister,
}

func runRegister(cmd *cobra.Command, args []string) {
	username := args[0]

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}
	if len(password) == 0 {
		fmt.Fprintln(os.Stderr, "Error: password must not be empty")
		os.Exit(1)
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}
	if string(password) != string(confirm) {
		fmt.Fprintln(os.Stderr, "Error: passwords do not match")
		os.Exit(1)
	}

	repo, err := profile.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	if _, err := repo.Create(username, string(password)); err != nil {
		if errors.Is(err, profile.ErrExists) {
			fmt.Fprintf(os.Stderr, "Error: user %q already exists\n", username)
		} else {
			fmt.Fprintf(os.Stderr, "Error creating profile: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Profile %q created. Play with: exodus play --user %s\n", username, username)
}
