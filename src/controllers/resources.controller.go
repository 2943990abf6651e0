package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"onboarding/src/types"
	"onboarding/src/utils"

	"github.com/gin-gonic/gin"
)

// UploadLimits bounds what POST /api/resources accepts.
type UploadLimits struct {
	MaxBytes    int64
	AllowedExts []string
}

// room for the non-file form fields
const formOverhead = 1 << 20

func (l UploadLimits) tooLarge() error {
	return fmt.Errorf("%w: file exceeds the %s limit", types.ErrValidation, humanSize(l.MaxBytes))
}

func humanSize(n int64) string {
	if n >= 1<<20 && n%(1<<20) == 0 {
		return fmt.Sprintf("%d MB", n>>20)
	}
	return fmt.Sprintf("%d bytes", n)
}

// ResourceFromForm decodes the multipart resource form. When a file part is
// present its opened reader and size are returned; the caller closes it.
func ResourceFromForm(ctx *gin.Context, limits UploadLimits) (*types.ResourceUpload, io.ReadCloser, int64, int, error) {
	if limits.MaxBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limits.MaxBytes+formOverhead)
	}
	if _, err := ctx.MultipartForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, 0, http.StatusBadRequest, limits.tooLarge()
		}
		return nil, nil, 0, http.StatusBadRequest, fmt.Errorf("%w: invalid multipart form", types.ErrValidation)
	}

	in := &types.ResourceUpload{
		Title:       strings.TrimSpace(ctx.PostForm("title")),
		Description: ctx.PostForm("description"),
		Link:        strings.TrimSpace(ctx.PostForm("file_path")),
	}
	projectID, err := utils.ParseID(ctx.PostForm("projectId"))
	if err != nil {
		return nil, nil, 0, http.StatusBadRequest, fmt.Errorf("%w: projectId is required", types.ErrValidation)
	}
	in.ProjectID = projectID
	if in.RoleID, err = utils.ParseOptionalID(ctx.PostForm("roleId")); err != nil {
		return nil, nil, 0, http.StatusBadRequest, err
	}

	header, err := ctx.FormFile("file")
	if err == http.ErrMissingFile {
		return in, nil, 0, http.StatusOK, nil
	}
	if err != nil {
		return nil, nil, 0, http.StatusBadRequest, fmt.Errorf("%w: %s", types.ErrValidation, err.Error())
	}
	file, status, err := openUpload(header, limits)
	if err != nil {
		return nil, nil, 0, status, err
	}
	in.FileName = utils.UploadName(header.Filename, time.Now())
	in.Extension = strings.ToLower(filepath.Ext(header.Filename))
	in.MimeType = header.Header.Get("Content-Type")
	if in.MimeType == "" {
		in.MimeType = "application/octet-stream"
	}
	return in, file, header.Size, http.StatusOK, nil
}

func openUpload(header *multipart.FileHeader, limits UploadLimits) (io.ReadCloser, int, error) {
	if !utils.AllowedExtension(header.Filename, limits.AllowedExts) {
		return nil, http.StatusBadRequest, fmt.Errorf("%w: file type not allowed, accepted: %s",
			types.ErrValidation, strings.Join(limits.AllowedExts, ", "))
	}
	if limits.MaxBytes > 0 && header.Size > limits.MaxBytes {
		return nil, http.StatusBadRequest, limits.tooLarge()
	}
	file, err := header.Open()
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return file, http.StatusOK, nil
}
