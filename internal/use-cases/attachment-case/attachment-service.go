package attachment_case

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/DevITJAX/FlowOps/internal/authz"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	attachment_repo "github.com/DevITJAX/FlowOps/internal/repo/attachment-repo"
	project_repo "github.com/DevITJAX/FlowOps/internal/repo/project-repo"
	task_repo "github.com/DevITJAX/FlowOps/internal/repo/task-repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const maxAttachmentSize = 10 << 20 // 10 MiB

type AttachmentService struct {
	repo      attachment_repo.AttachmentRepoContract
	tasks     task_repo.TaskRepoContract
	projects  project_repo.ProjectRepoContract
	uploadDir string
}

func NewAttachmentService(db *pgxpool.Pool, uploadDir string) AttachmentServiceContract {
	return &AttachmentService{
		repo:      attachment_repo.NewAttachmentRepo(db),
		tasks:     task_repo.NewTaskRepo(db),
		projects:  project_repo.NewProjectRepo(db),
		uploadDir: uploadDir,
	}
}

func (s *AttachmentService) authorizeTask(ctx context.Context, actor authz.Actor, taskID string, op authz.Operation) (*entity.TaskEntity, *app_errors.AppError) {
	task, appErr := s.tasks.FindTaskByID(ctx, taskID)
	if appErr != nil {
		return nil, appErr
	}

	project, appErr := s.projects.FindProjectByID(ctx, task.ProjectID)
	if appErr != nil {
		return nil, appErr
	}

	memberIDs, appErr := s.projects.ListMemberIDs(ctx, task.ProjectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, op, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	return task, nil
}

// UploadAttachment speichert die Datei unter einem generierten Namen im
// Upload-Verzeichnis und legt den Datensatz an. Schlägt das Anlegen fehl,
// wird die Datei wieder entfernt.
func (s *AttachmentService) UploadAttachment(ctx context.Context, actor authz.Actor, taskID string, file *multipart.FileHeader) (*entity.AttachmentEntity, *app_errors.AppError) {
	if _, appErr := s.authorizeTask(ctx, actor, taskID, authz.TaskCreate); appErr != nil {
		return nil, appErr
	}

	if file.Size > maxAttachmentSize {
		return nil, app_errors.BadRequest("attachment.too_large")
	}

	attachmentID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.Internal(idErr)
	}

	fileName := fmt.Sprintf("%s%s", attachmentID.String(), filepath.Ext(file.Filename))
	path := filepath.Join(s.uploadDir, fileName)

	if err := s.saveFile(file, path); err != nil {
		return nil, app_errors.Internal(err)
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	attachment, appErr := s.repo.CreateAttachment(ctx, &entity.AttachmentEntity{
		ID:           attachmentID.String(),
		TaskID:       taskID,
		FileName:     fileName,
		OriginalName: file.Filename,
		MimeType:     mimeType,
		Size:         file.Size,
		Path:         path,
		UploadedBy:   actor.ID,
		CreatedAt:    time.Now(),
	})
	if appErr != nil {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Fehler beim Aufräumen der Upload-Datei")
		}
		return nil, appErr
	}

	return attachment, nil
}

func (s *AttachmentService) saveFile(file *multipart.FileHeader, path string) error {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func (s *AttachmentService) ListAttachments(ctx context.Context, actor authz.Actor, taskID string) ([]entity.AttachmentDetail, *app_errors.AppError) {
	if _, appErr := s.authorizeTask(ctx, actor, taskID, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	return s.repo.ListAttachmentsByTask(ctx, taskID)
}

func (s *AttachmentService) GetAttachmentFile(ctx context.Context, actor authz.Actor, attachmentID string) (*entity.AttachmentEntity, *app_errors.AppError) {
	attachment, appErr := s.repo.FindAttachmentByID(ctx, attachmentID)
	if appErr != nil {
		return nil, appErr
	}

	if _, appErr := s.authorizeTask(ctx, actor, attachment.TaskID, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	return attachment, nil
}

func (s *AttachmentService) DeleteAttachment(ctx context.Context, actor authz.Actor, attachmentID string) *app_errors.AppError {
	attachment, appErr := s.repo.FindAttachmentByID(ctx, attachmentID)
	if appErr != nil {
		return appErr
	}

	if !authz.Authorize(actor, authz.AttachmentDelete, authz.Target{
		RecordOwnerID: attachment.UploadedBy,
	}) {
		return app_errors.Forbidden("forbidden")
	}

	if appErr := s.repo.DeleteAttachment(ctx, attachmentID); appErr != nil {
		return appErr
	}

	if err := os.Remove(attachment.Path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", attachment.Path).Msg("Fehler beim Löschen der Anhang-Datei")
	}

	return nil
}
