package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/videominer/internal/config"
	"github.com/Taichi-iskw/videominer/internal/logging"
	"github.com/Taichi-iskw/videominer/internal/repository"
	"github.com/Taichi-iskw/videominer/internal/router"
	"github.com/Taichi-iskw/videominer/internal/service"
)

const serviceName = "videominer"

// app holds what every database-backed command needs
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	pool     *pgxpool.Pool
	services router.Services
}

// newApp loads configuration and connects to the database
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := logging.New(cfg.LogLevel, serviceName)

	pool, err := config.NewDatabasePool(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		services: router.Services{
			Channels: service.NewChannelService(repository.NewChannelRepository(pool)),
			Videos:   service.NewVideoService(repository.NewVideoRepository(pool)),
			Comments: service.NewCommentService(repository.NewCommentRepository(pool)),
			Captions: service.NewCaptionService(repository.NewCaptionRepository(pool)),
		},
	}, nil
}

func (a *app) Close() {
	config.CloseDatabasePool(a.pool)
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 0, "Page number, starting at 0")
	cmd.Flags().Int("size", service.DefaultPageSize, "Page size")
	cmd.Flags().String("name", "", "Exact name filter")
	cmd.Flags().String("containing", "", "Name fragment filter, ignored when --name is set")
	cmd.Flags().String("order", "", "Sort field, prefix with - for descending")
}

func listParamsFromFlags(cmd *cobra.Command) service.ListParams {
	params := service.DefaultListParams()
	params.Page, _ = cmd.Flags().GetInt("page")
	params.Size, _ = cmd.Flags().GetInt("size")
	params.Name, _ = cmd.Flags().GetString("name")
	params.Containing, _ = cmd.Flags().GetString("containing")
	params.Order, _ = cmd.Flags().GetString("order")
	return params
}

// printJSON writes v indented to the command's output
func printJSON(cmd *cobra.Command, v any) error {
	result, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(result))
	return nil
}
