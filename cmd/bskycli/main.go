package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/steelcutops/bskycli/bskycli/config"
	"github.com/steelcutops/bskycli/bskycli/credentials"
	"github.com/steelcutops/bskycli/logger"
)

const (
	Version = "0.1.0"
	appName = "bskycli"
)

type flags struct {
	ConfigPath     string
	Debug          bool
	EnvFile        string
	LogFileName    string
	Network        string
	PasswordPrompt bool
}

// app carries the state shared by every subcommand.
type app struct {
	flags     flags
	cfg       *config.Config
	log       *logger.LogrusLogger
	logFile   *os.File
	prompter  *credentials.Prompter
	lookupEnv credentials.LookupFunc
	stdout    io.Writer
}

func newApp() *app {
	return &app{
		log:       logger.New(),
		prompter:  credentials.NewPrompter(),
		lookupEnv: os.LookupEnv,
		stdout:    os.Stdout,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := newApp()
	err := rootCmd(a).ExecuteContext(ctx)
	a.close()
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Post and read Bluesky messages and list users from a file",
		Long: `bskycli posts and reads messages on a social network and lists
user identifiers kept in a local text file.

Credentials are read from BLUESKY_HANDLE and BLUESKY_APP_PASSWORD,
optionally via a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.configureLogger(); err != nil {
				return err
			}
			return a.loadConfig(cmd)
		},
	}
	cmd.SetOut(a.stdout)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.flags.ConfigPath, "config", "c", "", "Config file path (ini), defaults to ~/"+config.UserConfigDir+"/"+config.UserConfigFile)
	pf.BoolVar(&a.flags.Debug, "debug", false, "Enable debug log level")
	pf.StringVar(&a.flags.EnvFile, "env-file", config.DefaultEnvFile, "Dotenv file with credentials")
	pf.StringVar(&a.flags.LogFileName, "log", "", "Log file name (default stderr)")
	pf.StringVar(&a.flags.Network, "network", "", "Network to use (bluesky, command)")
	pf.BoolVar(&a.flags.PasswordPrompt, "password-prompt", false, "Prompt for the app password instead of reading "+credentials.AppPasswordEnv)

	cmd.AddCommand(listUsersCmd(a))
	cmd.AddCommand(postCmd(a))
	cmd.AddCommand(readCmd(a))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func (a *app) configureLogger() error {
	if a.flags.LogFileName != "" {
		file, err := os.OpenFile(a.flags.LogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = file
		a.log.SetOutput(file)
	}

	a.log.SetDebug(a.flags.Debug)
	if a.flags.Debug {
		a.log.Debug("Debug mode enabled")
	}
	return nil
}

// loadConfig layers defaults, the config file, the env file and BSKYCLI_*
// variables. Subcommand flags are applied by each subcommand.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()

	path, explicit := a.flags.ConfigPath, cmd.Flags().Changed("config")
	if path == "" {
		path = config.UserConfigPath()
	}
	if err := loadOptional(path, explicit, cfg.LoadFile); err != nil {
		return err
	}
	a.log.Debug("Config loaded", "path", path)

	err := loadOptional(a.flags.EnvFile, cmd.Flags().Changed("env-file"), func(p string) error {
		exported, err := config.LoadEnvFile(p)
		if err == nil {
			a.log.Debug("Env file loaded", "path", p, "exported", len(exported))
		}
		return err
	})
	if err != nil {
		return err
	}

	cfg.ApplyEnv(a.lookupEnv)
	if a.flags.Network != "" {
		cfg.Network = a.flags.Network
	}

	a.cfg = cfg
	return nil
}

// loadOptional runs load on path. A missing file is an error only when the
// user asked for it explicitly.
func loadOptional(path string, explicit bool, load func(string) error) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return err
	}
	return load(path)
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}
