package entity

import "time"

type AttachmentEntity struct {
	ID           string    `json:"id"`
	TaskID       string    `json:"task_id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	Path         string    `json:"-"`
	UploadedBy   string    `json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type AttachmentDetail struct {
	AttachmentEntity
	Uploader UserRef `json:"uploader"`
}
