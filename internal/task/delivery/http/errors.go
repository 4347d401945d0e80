package http

import (
	"context"
	"errors"
	"net/http"

	"project-tracker/internal/task"
	pkgErrors "project-tracker/pkg/errors"
)

var (
	errIDInvalid     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Geçersiz görev id.")
	errUserIDInvalid = pkgErrors.NewHTTPError(http.StatusBadRequest, "Geçersiz kullanıcı id.")
)

// msgDeleteDisabled is returned for DELETE /tasks/:id.
const msgDeleteDisabled = "Silme devre dışı."

func fieldError(field, msg string) error {
	return &pkgErrors.ValidationError{Fields: map[string]string{field: msg}}
}

// mapError translates use-case errors into HTTP errors. Unknown errors pass through as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Görev bulunamadı.")
	case errors.Is(err, task.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "Bu görevi yalnızca proje sahibi veya atanan kişi düzenleyebilir.")
	case errors.Is(err, task.ErrProjectNotFound):
		return fieldError("project", "Proje bulunamadı.")
	case errors.Is(err, task.ErrAssigneeNotFound):
		return fieldError("assignee", "Kullanıcı bulunamadı.")
	case errors.Is(err, task.ErrInvalidStatus):
		return fieldError("status", "Geçersiz durum.")
	case errors.Is(err, task.ErrInvalidProgress):
		return fieldError("progress", "İlerleme 0-100 arasında olmalıdır.")
	case errors.Is(err, task.ErrInvalidDateRange):
		return fieldError("end_date", "Başlangıç tarihi, bitiş tarihinden büyük olamaz.")
	case errors.Is(err, task.ErrInvalidDependency):
		return fieldError("dependencies", "Bağımlılıklar mevcut başka görevler olmalıdır.")
	case errors.Is(err, task.ErrInvalidDateExpr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Tarih anlaşılamadı.")
	case errors.Is(err, task.ErrMissingDates):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Görevin tarihi yok.")
	case errors.Is(err, task.ErrCalendarDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Takvim senkronizasyonu yapılandırılmadı.")
	default:
		return err
	}
}

func isDomainError(err error) bool {
	for _, target := range []error{
		task.ErrNotFound, task.ErrForbidden, task.ErrProjectNotFound, task.ErrAssigneeNotFound,
		task.ErrInvalidStatus, task.ErrInvalidProgress, task.ErrInvalidDateRange,
		task.ErrInvalidDependency, task.ErrInvalidDateExpr, task.ErrMissingDates, task.ErrCalendarDisabled,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (h *handler) logError(ctx context.Context, op string, err error) {
	if isDomainError(err) {
		h.l.Warnf(ctx, "%s: %v", op, err)
		return
	}
	h.l.Errorf(ctx, "%s: %v", op, err)
}
