package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/exodus/internal/config"
	"github.com/arcadelab/exodus/internal/core"
	"github.com/arcadelab/exodus/internal/platform/tui"
	"github.com/arcadelab/exodus/internal/profile"
)

var (
	flagDifficulty string
	flagUser       string
	flagLogin      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a session in the current terminal.

Controls:
  W/A/S/D, Arrows - Move craft
  Space           - Fire
  1/2/3           - Pick difficulty on the start screen
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Without --user the session runs as a guest and no scores are recorded.
With --difficulty the start menu is skipped and a match begins directly.
With --login the session starts at the login/register screen instead.

Examples:
  exodus play
  exodus play --user ripley
  exodus play --login
  exodus play --difficulty hard
  exodus play --config ./my-exodus.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menu: easy, medium, hard")
	playCmd.Flags().StringVar(&flagUser, "user", "", "Player profile to record scores under")
	playCmd.Flags().BoolVar(&flagLogin, "login", false, "Start at the login/register screen")
}

func runPlay(cmd *cobra.Command, args []string) {
	matchCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var startTier config.Tier
	if flagDifficulty != "" {
		startTier = config.Tier(flagDifficulty)
		if !startTier.Valid() {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, medium or hard)\n", flagDifficulty)
			os.Exit(1)
		}
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open the profile store; degrade to in-memory when it fails so the
	// game still runs (scores just won't survive the session)
	var repo profile.Repository
	sqlRepo, err := profile.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open profile database: %v\n", err)
		repo = profile.NewMemoryRepository()
	} else {
		repo = sqlRepo
	}
	defer repo.Close()

	if flagLogin {
		if runErr := tui.RunWithLogin(matchCfg, cfg, repo); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	username := ""
	if flagUser != "" {
		username, err = authenticate(repo, flagUser)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if runErr := tui.Run(matchCfg, cfg, repo, username, startTier); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// authenticate prompts for the user's password and checks it against the
// store. Returns the confirmed username.
func authenticate(repo profile.Repository, username string) (string, error) {
	fmt.Printf("Password for %s: ", username)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("cannot read password: %w", err)
	}

	if _, err := repo.Authenticate(username, string(password)); err != nil {
		return "", err
	}
	return username, nil
}
