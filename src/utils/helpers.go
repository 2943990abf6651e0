package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"onboarding/src/types"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// StatusFromError maps domain errors onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, types.ErrValidation), errors.Is(err, types.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// ErrorMessage hides internal failures behind a generic message.
func ErrorMessage(status int, err error) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// RespondError logs err under action and writes {"success": false, "error": ...}.
func RespondError(ctx *gin.Context, action string, err error) {
	status := StatusFromError(err)
	log.Printf("Error %s: %s\n", action, err.Error())
	ctx.JSON(status, gin.H{"success": false, "error": ErrorMessage(status, err)})
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(ctx *gin.Context, name string) (uint, error) {
	return ParseID(ctx.Param(name))
}

func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid id %q", types.ErrValidation, s)
	}
	return uint(id), nil
}

// ParseOptionalID returns nil for "", "null" and "all".
func ParseOptionalID(s string) (*uint, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" || s == types.RoleFilterAll {
		return nil, nil
	}
	id, err := ParseID(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// UploadName builds the stored name for an uploaded file:
// <unix millis>-<slugged base name><extension>.
func UploadName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := slug.Make(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), base, ext)
}

func AllowedExtension(name string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext != "" && slices.Contains(allowed, ext)
}

// ParseDueDate parses YYYY-MM-DD, defaulting to now plus the standard lead time.
func ParseDueDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now.Add(types.DEFAULT_DUE_IN), nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid due date %q", types.ErrValidation, s)
	}
	return d, nil
}
