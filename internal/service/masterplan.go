package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"planregistry/internal/model"
	"planregistry/internal/repository"
	"planregistry/internal/storage"
)

// MaxUploadSize is the largest accepted file attachment.
const MaxUploadSize = 10 << 20 // 10 MiB

const (
	storagePrefix    = "master-plans"
	uploadsURLPrefix = "/uploads/"
	downloadURLBase  = "/api/master-plans/download"
)

// allowedContentTypes is the attachment MIME allow-list: PDF, the Office
// document family (legacy and OOXML), and plain text.
var allowedContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {},
	"application/vnd.ms-powerpoint": {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"text/plain": {},
}

var timeNow = time.Now

// UploadInput carries an attachment and the form fields that accompany it.
type UploadInput struct {
	Reader      io.Reader
	FileName    string
	ContentType string
	Size        int64
	DocID       string
	DocType     string
	RevisionNo  string
}

// UploadResult is returned to the client after a successful upload; the
// client passes StoragePath and DownloadURL along to the create call.
type UploadResult struct {
	FileName    string    `json:"fileName"`
	FileType    string    `json:"fileType"`
	FileSize    int64     `json:"fileSize"`
	StoragePath string    `json:"storagePath"`
	DownloadURL string    `json:"downloadUrl"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// MasterPlanService defines the use cases of the document registry.
//
// Uploading a file and creating the metadata record are deliberately two
// independent operations sequenced by the client: upload first, then create
// with the returned storage path. If create fails after a successful upload
// the file is orphaned on disk; that is the accepted failure mode.
type MasterPlanService interface {
	// CheckDocID reports whether the external doc_id is already registered.
	CheckDocID(ctx context.Context, docID string) (bool, error)

	// Create validates the request, stamps timestamps, and persists the record.
	// Returns *ValidationError naming every missing field, or ErrDocIDConflict.
	Create(ctx context.Context, req *model.CreateMasterPlanRequest) (*model.MasterPlan, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]model.MasterPlan, error)

	// Get returns one record by surrogate id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*model.MasterPlan, error)

	// UploadFile validates and stores an attachment. It never touches the
	// document store.
	UploadFile(ctx context.Context, in UploadInput) (*UploadResult, error)

	// DeleteFile removes a previously uploaded file by its storage path.
	DeleteFile(ctx context.Context, filePath, docID string) error

	// DownloadFile streams a stored file back, or ErrNotFound.
	DownloadFile(ctx context.Context, docID, fileName string) (io.ReadCloser, storage.FileInfo, error)
}

type masterPlanService struct {
	repo  repository.MasterPlanRepository
	files storage.FileStore
}

// NewMasterPlanService constructs a new MasterPlanService.
func NewMasterPlanService(repo repository.MasterPlanRepository, files storage.FileStore) MasterPlanService {
	return &masterPlanService{repo: repo, files: files}
}

func (s *masterPlanService) CheckDocID(ctx context.Context, docID string) (bool, error) {
	if docID == "" {
		return false, ErrDocIDRequired
	}
	return s.repo.ExistsByDocID(ctx, docID)
}

func (s *masterPlanService) Create(ctx context.Context, req *model.CreateMasterPlanRequest) (*model.MasterPlan, error) {
	var missing []string
	if req.DocID == "" {
		missing = append(missing, "doc_id")
	}
	if req.DocType == "" {
		missing = append(missing, "doc_type")
	}
	if req.DocTitle == "" {
		missing = append(missing, "doc_title")
	}
	if req.RevisionNo == "" {
		missing = append(missing, "revision_no")
	}
	if req.Year == 0 {
		missing = append(missing, "year")
	}
	if req.Owner == "" {
		missing = append(missing, "owner")
	}
	if req.Status == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	docStatus := req.DocStatus
	if docStatus == "" {
		docStatus = model.DefaultDocStatus
	}

	now := timeNow().UTC()
	doc := &model.MasterPlan{
		DocID:      req.DocID,
		DocType:    req.DocType,
		DocTitle:   req.DocTitle,
		RevisionNo: req.RevisionNo,
		Year:       req.Year,
		Quarter:    req.Quarter,
		Owner:      req.Owner,
		Status:     req.Status,
		DocStatus:  docStatus,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Attachment metadata from a preceding upload call. A record counts as
	// uploaded only when both the stored name and the storage path are known.
	if req.StoragePath != nil && *req.StoragePath != "" &&
		req.UploadedFile != nil && *req.UploadedFile != "" {
		doc.IsUploaded = true
		doc.UploadedFile = req.UploadedFile
		doc.FileType = req.FileType
		doc.FileSize = req.FileSize
		doc.StoragePath = req.StoragePath
		doc.DownloadURL = req.DownloadURL
		doc.UploadedAt = &now
	}

	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateDocID) {
			return nil, ErrDocIDConflict
		}
		return nil, fmt.Errorf("create document: %w", err)
	}
	return created, nil
}

func (s *masterPlanService) List(ctx context.Context) ([]model.MasterPlan, error) {
	return s.repo.List(ctx)
}

func (s *masterPlanService) Get(ctx context.Context, id int64) (*model.MasterPlan, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *masterPlanService) UploadFile(ctx context.Context, in UploadInput) (*UploadResult, error) {
	var missing []string
	if in.Reader == nil {
		missing = append(missing, "document")
	}
	if in.DocID == "" {
		missing = append(missing, "doc_id")
	}
	if in.DocType == "" {
		missing = append(missing, "doc_type")
	}
	if in.RevisionNo == "" {
		missing = append(missing, "revision_no")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	// Both checks run before the store sees a single byte.
	if in.Size > MaxUploadSize {
		return nil, &UploadError{Reason: fmt.Sprintf("file exceeds the %d MiB limit", MaxUploadSize>>20)}
	}
	contentType := normalizeContentType(in.ContentType)
	if _, ok := allowedContentTypes[contentType]; !ok {
		return nil, &UploadError{Reason: fmt.Sprintf("file type %q is not allowed", contentType)}
	}

	now := timeNow().UTC()
	fileName := generateFileName(in.DocID, in.FileName, now)
	key := path.Join(storagePrefix, in.DocID, fileName)

	info, err := s.files.Save(ctx, key, in.Reader, in.Size, contentType)
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	return &UploadResult{
		FileName:    fileName,
		FileType:    contentType,
		FileSize:    info.Size,
		StoragePath: uploadsURLPrefix + key,
		DownloadURL: downloadURLBase + "/" + in.DocID + "/" + fileName,
		UploadedAt:  now,
	}, nil
}

func (s *masterPlanService) DeleteFile(ctx context.Context, filePath, docID string) error {
	var missing []string
	if filePath == "" {
		missing = append(missing, "filePath")
	}
	if docID == "" {
		missing = append(missing, "doc_id")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	key := strings.TrimPrefix(filePath, uploadsURLPrefix)
	if err := s.files.Remove(ctx, key); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

func (s *masterPlanService) DownloadFile(ctx context.Context, docID, fileName string) (io.ReadCloser, storage.FileInfo, error) {
	if docID == "" || fileName == "" {
		return nil, storage.FileInfo{}, ErrNotFound
	}
	rc, info, err := s.files.Open(ctx, path.Join(storagePrefix, docID, fileName))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.FileInfo{}, ErrNotFound
		}
		return nil, storage.FileInfo{}, err
	}
	return rc, info, nil
}

// generateFileName builds "<doc_id>_<sanitized-base>_<unix-ms><ext>". The
// millisecond timestamp keeps concurrent uploads for the same doc_id from
// colliding.
func generateFileName(docID, originalName string, now time.Time) string {
	ext := path.Ext(originalName)
	base := strings.TrimSuffix(path.Base(originalName), ext)
	return docID + "_" + sanitizeBaseName(base) + "_" + strconv.FormatInt(now.UnixMilli(), 10) + ext
}

// sanitizeBaseName keeps letters, digits, dashes, and underscores; everything
// else collapses to a dash so the name is safe on disk and in URLs.
func sanitizeBaseName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "document"
	}
	return out
}

// normalizeContentType strips parameters such as "; charset=utf-8".
func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
