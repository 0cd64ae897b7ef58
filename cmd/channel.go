package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// channelCmd represents the channel command
var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Channel operations",
	Long:  `Read channels stored in the database.`,
}

// channelListCmd lists saved channels
var channelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved channels",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		channels, err := a.services.Channels.List(ctx, listParamsFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("failed to list channels: %w", err)
		}
		return printJSON(cmd, channels)
	},
}

// channelGetCmd prints one channel with its videos
var channelGetCmd = &cobra.Command{
	Use:   "get [ID]",
	Short: "Show a channel with its videos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		channel, err := a.services.Channels.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get channel: %w", err)
		}
		return printJSON(cmd, channel)
	},
}

func init() {
	addListFlags(channelListCmd)

	channelCmd.AddCommand(channelListCmd)
	channelCmd.AddCommand(channelGetCmd)
	rootCmd.AddCommand(channelCmd)
}
