package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	upsertChannelSQL = `INSERT INTO channels (id, name, description, created_time) VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, created_time = EXCLUDED.created_time`
	selectChannelSQL = "SELECT id, name, description, created_time FROM channels"
)

// channelRepository implements ChannelRepository using PostgreSQL
type channelRepository struct {
	pool Pool
}

// NewChannelRepository creates a new instance of ChannelRepository
func NewChannelRepository(pool Pool) ChannelRepository {
	return &channelRepository{
		pool: pool,
	}
}

// Save inserts or replaces a channel together with its videos
func (r *channelRepository) Save(ctx context.Context, channel *model.Channel) error {
	return inTx(ctx, r.pool, "failed to save channel", func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, upsertChannelSQL, channel.ID, channel.Name, channel.Description, channel.CreatedTime)
		if err != nil {
			return handlePostgreSQLError(err, "failed to save channel")
		}
		return saveChannelVideos(ctx, tx, channel.ID, channel.Videos)
	})
}

// GetByID retrieves a channel by its ID
func (r *channelRepository) GetByID(ctx context.Context, id string) (*model.Channel, error) {
	row := r.pool.QueryRow(ctx, selectChannelSQL+" WHERE id = $1", id)

	var channel model.Channel
	err := row.Scan(&channel.ID, &channel.Name, &channel.Description, &channel.CreatedTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, apperrors.ErrChannelNotFound.Message)
		}
		return nil, handlePostgreSQLError(err, "failed to get channel")
	}

	if err := loadChannelVideos(ctx, r.pool, []*model.Channel{&channel}); err != nil {
		return nil, err
	}
	return &channel, nil
}

// Exists reports whether a channel with the given ID is stored
func (r *channelRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM channels WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, handlePostgreSQLError(err, "failed to check channel")
	}
	return exists, nil
}

// Delete deletes a channel by its ID
func (r *channelRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM channels WHERE id = $1", id)
	if err != nil {
		return handlePostgreSQLError(err, "failed to delete channel")
	}
	return nil
}

// List retrieves one page of channels
func (r *channelRepository) List(ctx context.Context, page PageRequest) ([]*model.Channel, error) {
	return r.list(ctx, "", page)
}

// ListByName retrieves one page of channels whose name equals name
func (r *channelRepository) ListByName(ctx context.Context, name string, page PageRequest) ([]*model.Channel, error) {
	return r.list(ctx, "WHERE name = $1", page, name)
}

// ListByNameContaining retrieves one page of channels whose name contains fragment.
// strpos keeps the match case-sensitive and free of LIKE wildcards.
func (r *channelRepository) ListByNameContaining(ctx context.Context, fragment string, page PageRequest) ([]*model.Channel, error) {
	return r.list(ctx, "WHERE strpos(name, $1) > 0", page, fragment)
}

func (r *channelRepository) list(ctx context.Context, where string, page PageRequest, args ...any) ([]*model.Channel, error) {
	orderBy, err := channelSortColumns.orderBy(page.Sort)
	if err != nil {
		return nil, err
	}

	sql := pagedQuery(selectChannelSQL, where, orderBy, len(args))
	rows, err := r.pool.Query(ctx, sql, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to list channels")
	}
	defer rows.Close()

	channels := []*model.Channel{}
	for rows.Next() {
		var channel model.Channel
		err := rows.Scan(&channel.ID, &channel.Name, &channel.Description, &channel.CreatedTime)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan channel row")
		}
		channels = append(channels, &channel)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate channel rows")
	}

	if err := loadChannelVideos(ctx, r.pool, channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// pagedQuery appends the filter, order and LIMIT/OFFSET placeholders to selectSQL
func pagedQuery(selectSQL, where, orderBy string, nArgs int) string {
	sql := selectSQL
	if where != "" {
		sql += " " + where
	}
	return fmt.Sprintf("%s %s LIMIT $%d OFFSET $%d", sql, orderBy, nArgs+1, nArgs+2)
}
