package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in to the Contexta backend",
	Long: `Authenticate with the Contexta backend and persist the session.

The password is read from the terminal with echo disabled. Subsequent
commands reuse the stored session until it expires or you log out.

Examples:
  contexta login ada@example.com
  contexta login            # prompts for the email too`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup [email]",
	Short: "Create a new account",
	Long: `Register a new account with the Contexta backend.

Signup does not log you in; follow up with 'contexta login'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated identity",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	email, err := emailArg(cmd, args)
	if err != nil {
		return err
	}

	password, err := readPassword(cmd, "Password: ")
	if err != nil {
		return err
	}

	if err := authService.Login(cmd.Context(), email, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Printf("Logged in as %s\n", email)
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	email, err := emailArg(cmd, args)
	if err != nil {
		return err
	}

	name, err := readLine(cmd, "Name: ")
	if err != nil {
		return err
	}

	password, err := readPassword(cmd, "Password: ")
	if err != nil {
		return err
	}

	if err := authService.Signup(cmd.Context(), email, password, name); err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	cmd.Println("Account created. Log in with 'contexta login'.")
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	authService.Logout()
	cmd.Println("Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	if !authService.Authenticated() {
		cmd.Println("Not logged in")
		return nil
	}

	cmd.Println(authService.Identity())
	return nil
}

// emailArg takes the email from the arguments or prompts for it.
func emailArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return readLine(cmd, "Email: ")
}

// readLine prompts and reads one line from the command's input.
func readLine(cmd *cobra.Command, prompt string) (string, error) {
	cmd.Print(prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads a password with echo disabled when stdin is a
// terminal, falling back to a plain line read otherwise (tests, pipes).
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	stdin, isFile := cmd.InOrStdin().(*os.File)
	if isFile && term.IsTerminal(int(stdin.Fd())) {
		cmd.Print(prompt)
		password, err := term.ReadPassword(int(stdin.Fd()))
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(password), nil
	}
	return readLine(cmd, prompt)
}
