package comment_dto

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}
