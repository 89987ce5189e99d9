package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ArowuTest/intern-dashboard/internal/dashboard"
	"github.com/ArowuTest/intern-dashboard/internal/logger"
	"github.com/ArowuTest/intern-dashboard/pkg/internapi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultAPIURL      = "http://localhost:3000/api"
	defaultSessionFile = ".intern-dashboard/session.json"
)

// newRootCmd builds the dashboard CLI. Each invocation hydrates the
// controller from the session file, runs one operation and prints the page.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("session_file", defaultSessionPath())
	_ = v.BindEnv("api_url", "DASHBOARD_API_URL")
	_ = v.BindEnv("session_file", "DASHBOARD_SESSION_FILE")

	var controller *dashboard.Controller

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Intern dashboard terminal client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New(v.GetString("log_level"), false)
			log.SetOutput(cmd.ErrOrStderr())

			api := internapi.NewClient(v.GetString("api_url"))
			store := dashboard.NewFileStore(v.GetString("session_file"))
			controller = dashboard.NewController(api, store, dashboard.WithLogger(log))
			return controller.Start()
		},
	}

	root.PersistentFlags().String("api-url", defaultAPIURL, "base URL of the intern API (env DASHBOARD_API_URL)")
	root.PersistentFlags().String("session-file", defaultSessionPath(), "file holding the signed-in participant (env DASHBOARD_SESSION_FILE)")
	root.PersistentFlags().String("log-level", "warn", "log level")
	_ = v.BindPFlag("api_url", root.PersistentFlags().Lookup("api-url"))
	_ = v.BindPFlag("session_file", root.PersistentFlags().Lookup("session-file"))
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	// render shows the page after an operation, including its banner
	render := func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.OutOrStdout(), controller.Render().String())
		return err
	}

	var email, password string
	login := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd, controller.Login(cmd.Context(), email, password))
		},
	}
	login.Flags().StringVar(&email, "email", "", "email address")
	login.Flags().StringVar(&password, "password", "", "password")

	var form dashboard.SignupForm
	signup := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd, controller.Signup(cmd.Context(), form))
		},
	}
	signup.Flags().StringVar(&form.Name, "name", "", "full name")
	signup.Flags().StringVar(&form.Email, "email", "", "email address")
	signup.Flags().StringVar(&form.Password, "password", "", "password")
	signup.Flags().StringVar(&form.ReferralCode, "referral-code", "", "referral code")

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Preview the dashboard with demo data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd, controller.LoadDemoData(cmd.Context()))
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd, nil)
		},
	}

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the saved session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			controller.Logout()
			return render(cmd, nil)
		},
	}

	root.AddCommand(login, signup, demo, show, logout)
	return root
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultSessionFile
	}
	return filepath.Join(home, defaultSessionFile)
}
