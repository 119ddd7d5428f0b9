package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"planregistry/internal/model"
	"planregistry/internal/service"
)

// UploadFile stores a document attachment. The metadata record is created by
// a separate call; this endpoint only writes to the file store.
func UploadFile(svc service.MasterPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.UploadInput{
			DocID:      c.FormValue("doc_id"),
			DocType:    c.FormValue("doc_type"),
			RevisionNo: c.FormValue("revision_no"),
		}

		// A missing file is folded into the service's validation so every
		// missing field is reported in one response.
		fh, err := c.FormFile("document")
		if err == nil {
			f, openErr := fh.Open()
			if openErr != nil {
				return writeError(c, fiber.StatusBadRequest, "UPLOAD_ERROR", "cannot open uploaded file")
			}
			defer f.Close()

			ct := fh.Header.Get(fiber.HeaderContentType)
			if ct == "" {
				ct = "application/octet-stream"
			}

			in.Reader = f
			in.FileName = fh.Filename
			in.ContentType = ct
			in.Size = fh.Size
		}

		res, err := svc.UploadFile(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// DeleteFile removes a previously uploaded file by its storage path.
func DeleteFile(svc service.MasterPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.DeleteFileRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		}

		if err := svc.DeleteFile(c.UserContext(), req.FilePath, req.DocID); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"deleted": true, "filePath": req.FilePath})
	}
}

// DownloadFile streams a stored attachment back to the client.
func DownloadFile(svc service.MasterPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docID := c.Params("doc_id")
		fileName := c.Params("fileName")

		rc, info, err := svc.DownloadFile(c.UserContext(), docID, fileName)
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderContentType, info.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}
