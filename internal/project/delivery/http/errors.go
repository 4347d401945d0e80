package http

import (
	"context"
	"errors"
	"net/http"

	"project-tracker/internal/project"
	pkgErrors "project-tracker/pkg/errors"
)

var errIDInvalid = pkgErrors.NewHTTPError(http.StatusBadRequest, "Geçersiz proje id.")

// mapError translates use-case errors into HTTP errors. Unknown errors pass through as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, project.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Proje bulunamadı.")
	case errors.Is(err, project.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "Bu projeyi yalnızca sahibi düzenleyebilir.")
	case errors.Is(err, project.ErrInvalidProgress):
		return &pkgErrors.ValidationError{Fields: map[string]string{"progress": "İlerleme 0-100 arasında olmalıdır."}}
	case errors.Is(err, project.ErrInvalidDateRange):
		return &pkgErrors.ValidationError{Fields: map[string]string{"end_date": "Başlangıç tarihi, bitiş tarihinden büyük olamaz."}}
	default:
		return err
	}
}

func (h *handler) logError(ctx context.Context, op string, err error) {
	switch {
	case errors.Is(err, project.ErrNotFound), errors.Is(err, project.ErrForbidden),
		errors.Is(err, project.ErrInvalidProgress), errors.Is(err, project.ErrInvalidDateRange):
		h.l.Warnf(ctx, "%s: %v", op, err)
	default:
		h.l.Errorf(ctx, "%s: %v", op, err)
	}
}
