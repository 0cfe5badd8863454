package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cabanahq/sandbox/internal/api"
	"github.com/cabanahq/sandbox/internal/config"
	"github.com/cabanahq/sandbox/internal/fixtures"
	"github.com/cabanahq/sandbox/internal/logger"
	"github.com/cabanahq/sandbox/internal/server"
	"github.com/cabanahq/sandbox/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Cabana sandbox - local creator platform API simulator",
		Long: `A standalone local HTTP server that simulates the Cabana creator
platform backend for demos and frontend development.

The sandbox provides:
  - Seeded, reproducible demo data with four named personas
  - The full mock API surface: auth, feed, subscriptions, tips, messaging
  - Configurable network delay and transient error injection
  - State export for snapshot comparisons`,
	}

	rootCmd.AddCommand(createStartCmd())
	rootCmd.AddCommand(createStatusCmd())
	rootCmd.AddCommand(createPersonasCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func createStartCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the sandbox API server",
		Long: `Start a local HTTP server that simulates the Cabana backend.
The server seeds its demo data on startup and runs until interrupted (Ctrl+C).`,
		Run: func(cmd *cobra.Command, args []string) {
			// Missing .env is fine; the environment and defaults cover it.
			_ = godotenv.Load(envFile)

			cfg, err := config.Load()
			if err != nil {
				color.Red("Invalid configuration: %v", err)
				os.Exit(1)
			}
			log := logger.New("cabana-sandbox", cfg.LogLevel, cfg.LogPretty)

			st := store.New()
			fixtures.Seed(st, cfg.Seed)
			log.Info().Int64("seed", cfg.Seed).Int("users", st.CountUsers()).Msg("demo data seeded")

			a := api.New(st, cfg.APIConfig(), log, cfg.JWTSecret)
			srv := server.New(cfg.HTTPAddr(), a, st, log)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGTSTP)

			errChan := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil {
					errChan <- err
				}
			}()

			color.Green("Cabana sandbox listening on http://%s", cfg.HTTPAddr())
			color.Cyan("Personas: http://%s/demo/personas", cfg.HTTPAddr())

			select {
			case sig := <-sigChan:
				if sig == syscall.SIGTSTP {
					color.Yellow("\nReceived suspend signal (Ctrl+Z), shutting down gracefully...")
				} else {
					color.Yellow("\nReceived interrupt signal, shutting down...")
				}
				if err := srv.Stop(); err != nil {
					color.Red("Error shutting down server: %v", err)
					os.Exit(1)
				}
				color.Green("Sandbox server stopped gracefully")
			case err := <-errChan:
				color.Red("Server error: %v", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Path to an env file with CABANA_* settings")
	return cmd
}

func createStatusCmd() *cobra.Command {
	var addr string
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check sandbox server status",
		Long:  "Check whether a sandbox server is running and display its health",
		Run: func(cmd *cobra.Command, args []string) {
			client := resty.New().SetTimeout(2 * time.Second)
			url := fmt.Sprintf("http://%s/health", addr)

			check := func() error {
				resp, err := client.R().Get(url)
				if err != nil {
					return err
				}
				if resp.StatusCode() != 200 {
					return fmt.Errorf("unexpected status %d", resp.StatusCode())
				}
				return nil
			}

			var err error
			if wait > 0 {
				policy := backoff.NewExponentialBackOff()
				policy.MaxElapsedTime = wait
				err = backoff.Retry(check, policy)
			} else {
				err = check()
			}

			if err != nil {
				color.Red("No sandbox server responding at %s (%v)", addr, err)
				os.Exit(1)
			}
			color.Green("Sandbox server is running at %s", addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "Sandbox server address")
	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep retrying until the server responds or the duration elapses")
	return cmd
}

func createPersonasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "Print the demo personas and their logins",
		Run: func(cmd *cobra.Command, args []string) {
			bold := color.New(color.Bold)
			for _, cred := range fixtures.DemoCredentials() {
				bold.Println(cred.Persona.Name)
				fmt.Printf("  %s\n", cred.Persona.Description)
				fmt.Printf("  email: %s  password: %s\n\n", cred.Email, cred.Password)
			}
		},
	}
}
