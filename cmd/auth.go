package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vibe-english-platform/vocabcli/internal/api"
	"github.com/vibe-english-platform/vocabcli/internal/app"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()

		creds, err := readCredentials(cmd, false)
		if err != nil {
			return err
		}
		user, err := container.Client.Login(cmd.Context(), creds)
		if err != nil {
			return err
		}
		if container.History != nil {
			// The guest nudge is moot once signed in.
			_ = container.History.ResetGuestLookups()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%d words learned, %d day streak)\n",
			user.Username, user.Progress.WordsLearned, user.Progress.StreakDays)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()

		creds, err := readCredentials(cmd, true)
		if err != nil {
			return err
		}
		user, err := container.Client.Register(cmd.Context(), creds)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", user.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()

		if err := container.Client.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user and learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer cleanup()

		if !container.Client.Authenticated() {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			return nil
		}
		user, err := container.Client.Profile(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s <%s>\n", user.Username, user.Email)
		fmt.Fprintf(out, "words learned: %d\ncards reviewed: %d\nstreak: %d days\n",
			user.Progress.WordsLearned, user.Progress.CardsReviewed, user.Progress.StreakDays)
		return nil
	},
}

func readCredentials(cmd *cobra.Command, withUsername bool) (api.Credentials, error) {
	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	var creds api.Credentials
	var ok bool
	if creds.Email, ok = p.ask("email: "); !ok {
		return creds, fmt.Errorf("aborted")
	}
	if withUsername {
		if creds.Username, ok = p.ask("username: "); !ok {
			return creds, fmt.Errorf("aborted")
		}
	}
	// Read the password without echo when attached to a terminal.
	if f, isFile := cmd.InOrStdin().(interface{ Fd() uintptr }); isFile && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), "password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return creds, fmt.Errorf("read password: %w", err)
		}
		creds.Password = string(raw)
	} else {
		if creds.Password, ok = p.ask("password: "); !ok {
			return creds, fmt.Errorf("aborted")
		}
	}
	return creds, nil
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
