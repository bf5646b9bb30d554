package entity

import "time"

type CommentEntity struct {
	ID        string     `json:"id"`
	TaskID    string     `json:"task_id"`
	AuthorID  string     `json:"author_id"`
	Content   string     `json:"content"`
	Mentions  []string   `json:"mentions"`
	IsEdited  bool       `json:"is_edited"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type CommentDetail struct {
	CommentEntity
	Author         UserRef   `json:"author"`
	MentionedUsers []UserRef `json:"mentioned_users,omitempty"`
}
