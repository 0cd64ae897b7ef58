package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// videoCmd represents the video command
var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Video operations",
	Long:  `Read videos stored in the database together with their comments and captions.`,
}

var videoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved videos",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVideoCommand(func(ctx context.Context, a *app) (any, error) {
			return a.services.Videos.List(ctx, listParamsFromFlags(cmd))
		}, cmd, "failed to list videos")
	},
}

var videoGetCmd = &cobra.Command{
	Use:   "get [ID]",
	Short: "Show a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVideoCommand(func(ctx context.Context, a *app) (any, error) {
			return a.services.Videos.Get(ctx, args[0])
		}, cmd, "failed to get video")
	},
}

var videoCommentsCmd = &cobra.Command{
	Use:   "comments [ID]",
	Short: "List the comments of a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVideoCommand(func(ctx context.Context, a *app) (any, error) {
			return a.services.Videos.Comments(ctx, args[0])
		}, cmd, "failed to list comments")
	},
}

var videoCaptionsCmd = &cobra.Command{
	Use:   "captions [ID]",
	Short: "List the captions of a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVideoCommand(func(ctx context.Context, a *app) (any, error) {
			return a.services.Videos.Captions(ctx, args[0])
		}, cmd, "failed to list captions")
	},
}

func runVideoCommand(fn func(ctx context.Context, a *app) (any, error), cmd *cobra.Command, failure string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := fn(ctx, a)
	if err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}
	return printJSON(cmd, result)
}

func init() {
	addListFlags(videoListCmd)

	videoCmd.AddCommand(videoListCmd)
	videoCmd.AddCommand(videoGetCmd)
	videoCmd.AddCommand(videoCommentsCmd)
	videoCmd.AddCommand(videoCaptionsCmd)
	rootCmd.AddCommand(videoCmd)
}
