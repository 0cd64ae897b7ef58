package repository

import (
	"context"

	apperrors "github.com/Taichi-iskw/videominer/internal/errors"
	"github.com/Taichi-iskw/videominer/internal/model"
)

// Owned collections follow list order through the position column.
// Rows dropped from a parent's list are detached (owner set to NULL), never deleted.
const (
	upsertOwnedVideoSQL = `INSERT INTO videos (id, channel_id, position, name, description, release_time, comments_disabled)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET channel_id = EXCLUDED.channel_id, position = EXCLUDED.position,
name = EXCLUDED.name, description = EXCLUDED.description, release_time = EXCLUDED.release_time,
comments_disabled = EXCLUDED.comments_disabled`

	upsertOwnedCommentSQL = `INSERT INTO comments (id, video_id, position, text, created_on, author)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET video_id = EXCLUDED.video_id, position = EXCLUDED.position,
text = EXCLUDED.text, created_on = EXCLUDED.created_on, author = EXCLUDED.author`

	upsertOwnedCaptionSQL = `INSERT INTO captions (id, video_id, position, name, language)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET video_id = EXCLUDED.video_id, position = EXCLUDED.position,
name = EXCLUDED.name, language = EXCLUDED.language`

	detachVideosSQL   = "UPDATE videos SET channel_id = NULL, position = 0 WHERE channel_id = $1 AND NOT (id = ANY($2))"
	detachCommentsSQL = "UPDATE comments SET video_id = NULL, position = 0 WHERE video_id = $1 AND NOT (id = ANY($2))"
	detachCaptionsSQL = "UPDATE captions SET video_id = NULL, position = 0 WHERE video_id = $1 AND NOT (id = ANY($2))"

	selectChannelVideosSQL = `SELECT id, channel_id, name, description, release_time, comments_disabled
FROM videos WHERE channel_id = ANY($1) ORDER BY position, id`
	selectVideoCommentsSQL = `SELECT id, video_id, text, created_on, author
FROM comments WHERE video_id = ANY($1) ORDER BY position, id`
	selectVideoCaptionsSQL = `SELECT id, video_id, name, language
FROM captions WHERE video_id = ANY($1) ORDER BY position, id`
)

// saveChannelVideos attaches videos to channelID in order and detaches the rest
func saveChannelVideos(ctx context.Context, q querier, channelID string, videos []model.Video) error {
	ids := make([]string, 0, len(videos))
	for i := range videos {
		v := &videos[i]
		_, err := q.Exec(ctx, upsertOwnedVideoSQL,
			v.ID, channelID, i, v.Name, v.Description, v.ReleaseTime, v.CommentsDisabled)
		if err != nil {
			return handlePostgreSQLError(err, "failed to save channel video")
		}
		if err := saveVideoChildren(ctx, q, v); err != nil {
			return err
		}
		ids = append(ids, v.ID)
	}

	if _, err := q.Exec(ctx, detachVideosSQL, channelID, ids); err != nil {
		return handlePostgreSQLError(err, "failed to detach channel videos")
	}
	return nil
}

// saveVideoChildren attaches the comments and captions of v and detaches the rest
func saveVideoChildren(ctx context.Context, q querier, v *model.Video) error {
	commentIDs := make([]string, 0, len(v.Comments))
	for i := range v.Comments {
		c := &v.Comments[i]
		if _, err := q.Exec(ctx, upsertOwnedCommentSQL, c.ID, v.ID, i, c.Text, c.CreatedOn, c.Author); err != nil {
			return handlePostgreSQLError(err, "failed to save video comment")
		}
		commentIDs = append(commentIDs, c.ID)
	}
	if _, err := q.Exec(ctx, detachCommentsSQL, v.ID, commentIDs); err != nil {
		return handlePostgreSQLError(err, "failed to detach video comments")
	}

	captionIDs := make([]string, 0, len(v.Captions))
	for i := range v.Captions {
		c := &v.Captions[i]
		_, err := q.Exec(ctx, upsertOwnedCaptionSQL, c.ID, v.ID, i, c.Name, c.Language)
		if err != nil {
			return handlePostgreSQLError(err, "failed to save video caption")
		}
		captionIDs = append(captionIDs, c.ID)
	}
	if _, err := q.Exec(ctx, detachCaptionsSQL, v.ID, captionIDs); err != nil {
		return handlePostgreSQLError(err, "failed to detach video captions")
	}
	return nil
}

// loadChannelVideos fills the videos of every channel, children included
func loadChannelVideos(ctx context.Context, q querier, channels []*model.Channel) error {
	if len(channels) == 0 {
		return nil
	}

	ids := make([]string, len(channels))
	byID := make(map[string]*model.Channel, len(channels))
	for i, c := range channels {
		ids[i] = c.ID
		byID[c.ID] = c
		c.Videos = []model.Video{}
	}

	rows, err := q.Query(ctx, selectChannelVideosSQL, ids)
	if err != nil {
		return handlePostgreSQLError(err, "failed to load channel videos")
	}
	defer rows.Close()

	for rows.Next() {
		var v model.Video
		var channelID string
		if err := rows.Scan(&v.ID, &channelID, &v.Name, &v.Description, &v.ReleaseTime, &v.CommentsDisabled); err != nil {
			return apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan video row")
		}
		if c, ok := byID[channelID]; ok {
			c.Videos = append(c.Videos, v)
		}
	}
	if err := rows.Err(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate video rows")
	}

	var videos []*model.Video
	for _, c := range channels {
		for i := range c.Videos {
			videos = append(videos, &c.Videos[i])
		}
	}
	return loadVideoChildren(ctx, q, videos)
}

// loadVideoChildren fills the comments and captions of every video
func loadVideoChildren(ctx context.Context, q querier, videos []*model.Video) error {
	if len(videos) == 0 {
		return nil
	}

	ids := make([]string, 0, len(videos))
	byID := make(map[string][]*model.Video, len(videos))
	for _, v := range videos {
		v.Comments = []model.Comment{}
		v.Captions = []model.Caption{}
		if _, seen := byID[v.ID]; !seen {
			ids = append(ids, v.ID)
		}
		byID[v.ID] = append(byID[v.ID], v)
	}

	comments, err := loadComments(ctx, q, ids)
	if err != nil {
		return err
	}
	for _, oc := range comments {
		for _, v := range byID[oc.videoID] {
			v.Comments = append(v.Comments, oc.comment)
		}
	}

	captions, err := loadCaptions(ctx, q, ids)
	if err != nil {
		return err
	}
	for _, oc := range captions {
		for _, v := range byID[oc.videoID] {
			v.Captions = append(v.Captions, oc.caption)
		}
	}
	return nil
}

type ownedComment struct {
	videoID string
	comment model.Comment
}

type ownedCaption struct {
	videoID string
	caption model.Caption
}

func loadComments(ctx context.Context, q querier, videoIDs []string) ([]ownedComment, error) {
	rows, err := q.Query(ctx, selectVideoCommentsSQL, videoIDs)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to load video comments")
	}
	defer rows.Close()

	var comments []ownedComment
	for rows.Next() {
		var oc ownedComment
		if err := rows.Scan(&oc.comment.ID, &oc.videoID, &oc.comment.Text, &oc.comment.CreatedOn, &oc.comment.Author); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan comment row")
		}
		comments = append(comments, oc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate comment rows")
	}
	return comments, nil
}

func loadCaptions(ctx context.Context, q querier, videoIDs []string) ([]ownedCaption, error) {
	rows, err := q.Query(ctx, selectVideoCaptionsSQL, videoIDs)
	if err != nil {
		return nil, handlePostgreSQLError(err, "failed to load video captions")
	}
	defer rows.Close()

	var captions []ownedCaption
	for rows.Next() {
		var oc ownedCaption
		if err := rows.Scan(&oc.caption.ID, &oc.videoID, &oc.caption.Name, &oc.caption.Language); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan caption row")
		}
		captions = append(captions, oc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate caption rows")
	}
	return captions, nil
}
