package model

// Channel represents a channel and the videos it owns
type Channel struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name" binding:"required"`
	Description string  `json:"description" db:"description"`
	CreatedTime string  `json:"createdTime" db:"created_time" binding:"required"`
	Videos      []Video `json:"videos"`
}

// Video represents a video with its comments and captions
type Video struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name" binding:"required"`
	Description      string    `json:"description" db:"description"`
	ReleaseTime      string    `json:"releaseTime" db:"release_time" binding:"required"`
	CommentsDisabled bool      `json:"commentsDisabled" db:"comments_disabled"`
	Comments         []Comment `json:"comments"`
	Captions         []Caption `json:"captions"`
}

// Comment represents a comment left on a video
type Comment struct {
	ID        string `json:"id" db:"id"`
	Text      string `json:"text" db:"text" binding:"required"`
	CreatedOn string `json:"createdOn" db:"created_on" binding:"required"`
	Author    *User  `json:"author" db:"author"`
}

// Caption represents a caption track of a video
type Caption struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Language string `json:"language" db:"language"`
}

// User is the author of a comment; stored inline with the comment
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UserLink    string `json:"user_link"`
	PictureLink string `json:"picture_link"`
}

// Replacement builds the record stored by a replace-update of channel id.
// Only name, description, createdTime and videos are taken from c.
func (c *Channel) Replacement(id string) *Channel {
	return &Channel{
		ID:          id,
		Name:        c.Name,
		Description: c.Description,
		CreatedTime: c.CreatedTime,
		Videos:      c.Videos,
	}
}

// Replacement builds the record stored by a replace-update of video id.
func (v *Video) Replacement(id string) *Video {
	return &Video{
		ID:               id,
		Name:             v.Name,
		Description:      v.Description,
		ReleaseTime:      v.ReleaseTime,
		CommentsDisabled: v.CommentsDisabled,
		Comments:         v.Comments,
		Captions:         v.Captions,
	}
}

// Replacement builds the record stored by a replace-update of comment id.
func (c *Comment) Replacement(id string) *Comment {
	return &Comment{
		ID:        id,
		Text:      c.Text,
		CreatedOn: c.CreatedOn,
		Author:    c.Author,
	}
}

// Replacement builds the record stored by a replace-update of caption id.
func (c *Caption) Replacement(id string) *Caption {
	return &Caption{
		ID:       id,
		Name:     c.Name,
		Language: c.Language,
	}
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (c *Channel) Normalize() {
	if c.Videos == nil {
		c.Videos = []Video{}
	}
	for i := range c.Videos {
		c.Videos[i].Normalize()
	}
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (v *Video) Normalize() {
	if v.Comments == nil {
		v.Comments = []Comment{}
	}
	if v.Captions == nil {
		v.Captions = []Caption{}
	}
}
