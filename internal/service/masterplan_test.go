package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"planregistry/internal/model"
	"planregistry/internal/repository"
	repoMocks "planregistry/internal/repository/mocks"
	"planregistry/internal/storage"
	storeMocks "planregistry/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() *model.CreateMasterPlanRequest {
	return &model.CreateMasterPlanRequest{
		DocID:      "DOC-1",
		DocType:    "Policy",
		DocTitle:   "X",
		RevisionNo: "1.0",
		Year:       2024,
		Owner:      "Ops",
		Status:     "Draft",
	}
}

func TestMasterPlanService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path defaults doc_status and is_uploaded", func(t *testing.T) {
		mRepo := new(repoMocks.MockMasterPlanRepository)
		svc := NewMasterPlanService(mRepo, nil)

		mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.MasterPlan) bool {
			return doc.DocID == "DOC-1" &&
				doc.DocStatus == "Open" &&
				!doc.IsUploaded &&
				doc.StoragePath == nil &&
				!doc.CreatedAt.IsZero() &&
				doc.CreatedAt.Equal(doc.UpdatedAt)
		})).Return(&model.MasterPlan{ID: 1, DocID: "DOC-1", DocStatus: "Open"}, nil)

		doc, err := svc.Create(ctx, validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(1), doc.ID)
		assert.Equal(t, "Open", doc.DocStatus)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		svc := NewMasterPlanService(nil, nil)

		doc, err := svc.Create(ctx, &model.CreateMasterPlanRequest{DocTitle: "X", Owner: "Ops"})

		assert.Nil(t, doc)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{"doc_id", "doc_type", "revision_no", "year", "status"}, vErr.Fields)
		assert.Contains(t, err.Error(), "doc_id")
	})

	t.Run("duplicate doc_id surfaces as conflict", func(t *testing.T) {
		mRepo := new(repoMocks.MockMasterPlanRepository)
		svc := NewMasterPlanService(mRepo, nil)

		mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicateDocID)

		doc, err := svc.Create(ctx, validCreateRequest())

		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrDocIDConflict)
		mRepo.AssertExpectations(t)
	})

	t.Run("attachment fields set is_uploaded and uploaded_at", func(t *testing.T) {
		mRepo := new(repoMocks.MockMasterPlanRepository)
		svc := NewMasterPlanService(mRepo, nil)

		req := validCreateRequest()
		storagePath := "/uploads/master-plans/DOC-1/DOC-1_plan_1718000000000.pdf"
		uploadedFile := "DOC-1_plan_1718000000000.pdf"
		fileType := "application/pdf"
		fileSize := int64(1024)
		req.StoragePath = &storagePath
		req.UploadedFile = &uploadedFile
		req.FileType = &fileType
		req.FileSize = &fileSize

		mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.MasterPlan) bool {
			return doc.IsUploaded &&
				doc.StoragePath != nil && *doc.StoragePath == storagePath &&
				doc.UploadedFile != nil && *doc.UploadedFile == uploadedFile &&
				doc.UploadedAt != nil
		})).Return(&model.MasterPlan{ID: 2, IsUploaded: true}, nil)

		doc, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.True(t, doc.IsUploaded)
		mRepo.AssertExpectations(t)
	})

	t.Run("storage path without uploaded_file does not flag upload", func(t *testing.T) {
		mRepo := new(repoMocks.MockMasterPlanRepository)
		svc := NewMasterPlanService(mRepo, nil)

		req := validCreateRequest()
		storagePath := "/uploads/master-plans/DOC-1/file.pdf"
		req.StoragePath = &storagePath

		mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.MasterPlan) bool {
			return !doc.IsUploaded && doc.UploadedAt == nil
		})).Return(&model.MasterPlan{ID: 3}, nil)

		_, err := svc.Create(ctx, req)

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error wrapped", func(t *testing.T) {
		mRepo := new(repoMocks.MockMasterPlanRepository)
		svc := NewMasterPlanService(mRepo, nil)

		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))

		doc, err := svc.Create(ctx, validCreateRequest())

		assert.Nil(t, doc)
		assert.ErrorContains(t, err, "create document: db fail")
	})
}

func TestMasterPlanService_CheckDocID(t *testing.T) {
	ctx := context.Background()

	t.Run("empty doc_id", func(t *testing.T) {
		svc := NewMasterPlanService(nil, nil)

		exists, err := svc.CheckDocID(ctx, "")

		assert.ErrorIs(t, err, ErrDocIDRequired)
		assert.False(t, exists)
	})

	t.Run("exists", func(t *testing.T) {
		mRepo := new(repoMocks.MockMasterPlanRepository)
		svc := NewMasterPlanService(mRepo, nil)

		mRepo.On("ExistsByDocID", ctx, "DOC-1").Return(true, nil)

		exists, err := svc.CheckDocID(ctx, "DOC-1")

		assert.NoError(t, err)
		assert.True(t, exists)
		mRepo.AssertExpectations(t)
	})
}

func TestMasterPlanService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mRepo := new(repoMocks.MockMasterPlanRepository)
		svc := NewMasterPlanService(mRepo, nil)

		mRepo.On("FindByID", ctx, int64(1)).Return(&model.MasterPlan{ID: 1, DocID: "DOC-1"}, nil)

		doc, err := svc.Get(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "DOC-1", doc.DocID)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockMasterPlanRepository)
		svc := NewMasterPlanService(mRepo, nil)

		mRepo.On("FindByID", ctx, int64(99)).Return(nil, sql.ErrNoRows)

		doc, err := svc.Get(ctx, 99)

		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMasterPlanService_UploadFile(t *testing.T) {
	ctx := context.Background()

	fixedNow := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	origNow := timeNow
	timeNow = func() time.Time { return fixedNow }
	defer func() { timeNow = origNow }()

	validInput := func(r io.Reader) UploadInput {
		return UploadInput{
			Reader:      r,
			FileName:    "annual plan.pdf",
			ContentType: "application/pdf",
			Size:        1024,
			DocID:       "DOC-1",
			DocType:     "Policy",
			RevisionNo:  "1.0",
		}
	}

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		r := strings.NewReader("%PDF-1.4")
		wantName := "DOC-1_annual-plan_" + "1718020800000" + ".pdf"
		wantKey := "master-plans/DOC-1/" + wantName

		mStore.On("Save", ctx, wantKey, r, int64(1024), "application/pdf").
			Return(storage.FileInfo{Key: wantKey, Size: 1024, ContentType: "application/pdf"}, nil)

		res, err := svc.UploadFile(ctx, validInput(r))

		require.NoError(t, err)
		assert.Equal(t, wantName, res.FileName)
		assert.Equal(t, "/uploads/"+wantKey, res.StoragePath)
		assert.True(t, strings.HasPrefix(res.StoragePath, "/uploads/master-plans/DOC-1/"))
		assert.Equal(t, "/api/master-plans/download/DOC-1/"+wantName, res.DownloadURL)
		assert.Equal(t, int64(1024), res.FileSize)
		mStore.AssertExpectations(t)
	})

	t.Run("missing fields reported together", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		res, err := svc.UploadFile(ctx, UploadInput{})

		assert.Nil(t, res)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{"document", "doc_id", "doc_type", "revision_no"}, vErr.Fields)
		mStore.AssertNotCalled(t, "Save")
	})

	t.Run("oversize rejected before any write", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		in := validInput(strings.NewReader("x"))
		in.Size = MaxUploadSize + 1

		res, err := svc.UploadFile(ctx, in)

		assert.Nil(t, res)
		var uErr *UploadError
		require.ErrorAs(t, err, &uErr)
		assert.Contains(t, uErr.Reason, "10 MiB")
		mStore.AssertNotCalled(t, "Save")
	})

	t.Run("size exactly at limit accepted", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		in := validInput(strings.NewReader("x"))
		in.Size = MaxUploadSize

		mStore.On("Save", ctx, mock.Anything, mock.Anything, int64(MaxUploadSize), "application/pdf").
			Return(storage.FileInfo{Size: MaxUploadSize}, nil)

		_, err := svc.UploadFile(ctx, in)

		assert.NoError(t, err)
		mStore.AssertExpectations(t)
	})

	t.Run("disallowed type rejected", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		in := validInput(strings.NewReader("MZ"))
		in.ContentType = "application/x-msdownload"

		res, err := svc.UploadFile(ctx, in)

		assert.Nil(t, res)
		var uErr *UploadError
		require.ErrorAs(t, err, &uErr)
		assert.Contains(t, uErr.Reason, "not allowed")
		mStore.AssertNotCalled(t, "Save")
	})

	t.Run("content type parameters are ignored", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		in := validInput(strings.NewReader("hello"))
		in.FileName = "notes.txt"
		in.ContentType = "text/plain; charset=utf-8"

		mStore.On("Save", ctx, mock.Anything, mock.Anything, int64(1024), "text/plain").
			Return(storage.FileInfo{Size: 5}, nil)

		_, err := svc.UploadFile(ctx, in)

		assert.NoError(t, err)
		mStore.AssertExpectations(t)
	})

	t.Run("storage error wrapped", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		mStore.On("Save", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.FileInfo{}, errors.New("disk full"))

		res, err := svc.UploadFile(ctx, validInput(strings.NewReader("x")))

		assert.Nil(t, res)
		assert.ErrorContains(t, err, "store file: disk full")
	})
}

func TestMasterPlanService_DeleteFile(t *testing.T) {
	ctx := context.Background()

	t.Run("strips uploads prefix", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		mStore.On("Remove", ctx, "master-plans/DOC-1/file.pdf").Return(nil)

		err := svc.DeleteFile(ctx, "/uploads/master-plans/DOC-1/file.pdf", "DOC-1")

		assert.NoError(t, err)
		mStore.AssertExpectations(t)
	})

	t.Run("missing file", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		mStore.On("Remove", ctx, mock.Anything).Return(storage.ErrNotFound)

		err := svc.DeleteFile(ctx, "/uploads/master-plans/DOC-1/missing.pdf", "DOC-1")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing arguments", func(t *testing.T) {
		svc := NewMasterPlanService(nil, nil)

		err := svc.DeleteFile(ctx, "", "")

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{"filePath", "doc_id"}, vErr.Fields)
	})
}

func TestMasterPlanService_DownloadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		rc := io.NopCloser(strings.NewReader("%PDF-1.4"))
		mStore.On("Open", ctx, "master-plans/DOC-1/file.pdf").
			Return(rc, storage.FileInfo{Size: 8, ContentType: "application/pdf"}, nil)

		got, info, err := svc.DownloadFile(ctx, "DOC-1", "file.pdf")

		require.NoError(t, err)
		assert.Equal(t, rc, got)
		assert.Equal(t, int64(8), info.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		svc := NewMasterPlanService(nil, mStore)

		mStore.On("Open", ctx, mock.Anything).
			Return(nil, storage.FileInfo{}, storage.ErrNotFound)

		rc, _, err := svc.DownloadFile(ctx, "DOC-1", "missing.pdf")

		assert.Nil(t, rc)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty arguments", func(t *testing.T) {
		svc := NewMasterPlanService(nil, nil)

		rc, _, err := svc.DownloadFile(ctx, "", "")

		assert.Nil(t, rc)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGenerateFileName(t *testing.T) {
	now := time.UnixMilli(1718000000000).UTC()

	assert.Equal(t, "DOC-1_annual-plan_1718000000000.pdf",
		generateFileName("DOC-1", "annual plan.pdf", now))
	assert.Equal(t, "DOC-1_document_1718000000000",
		generateFileName("DOC-1", "", now))
	assert.Equal(t, "DOC-2_q1-report-v2_1718000000000.xlsx",
		generateFileName("DOC-2", "q1 report(v2).xlsx", now))
}

func TestNormalizeContentType(t *testing.T) {
	assert.Equal(t, "text/plain", normalizeContentType("text/plain; charset=utf-8"))
	assert.Equal(t, "application/pdf", normalizeContentType("Application/PDF"))
	assert.Equal(t, "", normalizeContentType(""))
}
