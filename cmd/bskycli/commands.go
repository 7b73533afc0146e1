package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/steelcutops/bskycli/bskycli/client"
	"github.com/steelcutops/bskycli/bskycli/credentials"
	"github.com/steelcutops/bskycli/bskycli/networkmanager"
	"github.com/steelcutops/bskycli/bskycli/output"
	"github.com/steelcutops/bskycli/bskycli/usermanager"
)

func listUsersCmd(a *app) *cobra.Command {
	var (
		limit     uint
		filter    string
		file      string
		outFormat string
	)

	cmd := &cobra.Command{
		Use:   "list-users",
		Short: "List users from a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("file") {
				a.cfg.UsersFile = file
			}
			if cmd.Flags().Changed("output") {
				a.cfg.Output = outFormat
			}
			if cmd.Flags().Changed("limit") {
				a.cfg.Limit = clampLimit(limit)
			}
			if err := a.cfg.ValidateUsers(); err != nil {
				return err
			}

			renderer, err := output.NewRenderer(a.cfg.Output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var f usermanager.Filter
			if cmd.Flags().Changed("filter") {
				f = usermanager.Contains(filter)
			}

			manager := &usermanager.FileUserManager{Path: a.cfg.UsersFile, Logger: a.log}
			users, err := manager.ListUsers(f, a.cfg.Limit)
			if err != nil {
				return err
			}
			return renderer.Users(users)
		},
	}

	cmd.Flags().UintVarP(&limit, "limit", "l", 10, "Maximum number of users to list")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only list users containing this text")
	cmd.Flags().StringVar(&file, "file", "users.txt", "File with one user identifier per line")
	cmd.Flags().StringVarP(&outFormat, "output", "o", output.FormatText, "Output format (text, json, yaml)")
	return cmd
}

// clampLimit converts a --limit value to int, saturating at math.MaxInt.
func clampLimit(limit uint) int {
	if limit > math.MaxInt {
		return math.MaxInt
	}
	return int(limit)
}

func postCmd(a *app) *cobra.Command {
	var req networkmanager.PostRequest

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nm, closeCreds, err := a.newNetwork()
			if err != nil {
				return err
			}
			defer closeCreds()

			if err := nm.Post(cmd.Context(), req); err != nil {
				return fmt.Errorf("%s: %w", nm.Name(), err)
			}
			a.log.Info("Message posted", "network", nm.Name())
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Message, "message", "m", "", "Message to post")
	cmd.Flags().StringVarP(&req.Visibility, "visibility", "v", "", "Post visibility (public, followers, mentioned)")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func readCmd(a *app) *cobra.Command {
	var (
		limit     uint
		timeRange string
		outFormat string
	)

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("limit") {
				a.cfg.ReadLimit = clampLimit(limit)
			}
			if cmd.Flags().Changed("output") {
				a.cfg.Output = outFormat
			}
			if err := a.cfg.ValidateNetwork(); err != nil {
				return err
			}
			renderer, err := output.NewRenderer(a.cfg.Output, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			nm, closeCreds, err := a.newNetwork()
			if err != nil {
				return err
			}
			defer closeCreds()

			posts, err := nm.Read(cmd.Context(), networkmanager.ReadRequest{
				Limit:     a.cfg.ReadLimit,
				TimeRange: timeRange,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", nm.Name(), err)
			}
			return renderer.Posts(posts)
		},
	}

	cmd.Flags().UintVarP(&limit, "limit", "l", networkmanager.DefaultReadLimit, "Number of posts to read")
	cmd.Flags().StringVarP(&timeRange, "time-range", "t", "", "Only read posts newer than this duration, e.g. 24h")
	cmd.Flags().StringVarP(&outFormat, "output", "o", output.FormatText, "Output format (text, json, yaml)")
	return cmd
}

// newNetwork builds the configured network client. The returned func zeroes
// any credentials that were loaded.
func (a *app) newNetwork() (networkmanager.NetworkManager, func(), error) {
	options := []client.ClientOption{
		client.WithBaseURL(a.cfg.BaseURL),
		client.WithBinary(a.cfg.Binary),
		client.WithLogger(a.log),
	}

	closeCreds := func() {}
	if client.NeedsCredentials(a.cfg.Network) {
		creds, err := a.readCredentials()
		if err != nil {
			return nil, nil, err
		}
		closeCreds = func() {
			if err := creds.Close(); err != nil {
				a.log.Warn("Failed to clear credentials", "error", err)
			}
		}
		options = append(options, client.WithCredentials(creds))
	}

	nm, err := client.NewClient(a.cfg.Network, options...)
	if err != nil {
		closeCreds()
		return nil, nil, err
	}
	a.log.Debug("Network client ready", "network", nm.Name())
	return nm, closeCreds, nil
}

func (a *app) readCredentials() (credentials.Credentials, error) {
	if !a.flags.PasswordPrompt {
		return credentials.FromEnv(a.lookupEnv)
	}

	handle, ok := a.lookupEnv(credentials.HandleEnv)
	if !ok || handle == "" {
		return credentials.Credentials{}, fmt.Errorf("%s not set", credentials.HandleEnv)
	}
	password, err := a.prompter.PromptSecret("Enter the app password")
	if err != nil {
		return credentials.Credentials{}, err
	}
	return credentials.Credentials{
		Handle:      credentials.NewSecret(handle),
		AppPassword: password,
	}, nil
}
