package http

import (
	"context"
	"errors"
	"net/http"

	"project-tracker/internal/user"
	pkgErrors "project-tracker/pkg/errors"
)

var (
	errIDInvalid       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Geçersiz kullanıcı id.")
	errEmailRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "email parametresi gerekli.")
	errCredentialEmpty = pkgErrors.NewHTTPError(http.StatusBadRequest, "Google kimlik bilgisi eksik.")
)

const msgDeleteDisabled = "Kullanıcı silme devre dışı."

// mapError translates use-case errors into HTTP errors. Unknown errors pass through as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailExists):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Bu e-posta adresi zaten kayıtlı.")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "E-posta veya şifre hatalı.")
	case errors.Is(err, user.ErrInactive):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "Hesap aktif değil.")
	case errors.Is(err, user.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "Bu kullanıcıyı düzenleme yetkiniz yok.")
	case errors.Is(err, user.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Kullanıcı bulunamadı.")
	case errors.Is(err, user.ErrGoogleDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Google sağlayıcısı yapılandırılmadı.")
	case errors.Is(err, user.ErrInvalidGoogleToken):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Google kimlik doğrulaması başarısız.")
	case errors.Is(err, user.ErrInvalidRefreshToken):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Geçersiz yenileme anahtarı.")
	default:
		return err
	}
}

// isDomainError reports whether err is one of the user domain outcomes handled by mapError.
func isDomainError(err error) bool {
	for _, e := range []error{
		user.ErrEmailExists, user.ErrInvalidCredentials, user.ErrInactive, user.ErrForbidden,
		user.ErrNotFound, user.ErrGoogleDisabled, user.ErrInvalidGoogleToken, user.ErrInvalidRefreshToken,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// logError logs expected domain outcomes at warn level and everything else as an error.
func (h *handler) logError(ctx context.Context, op string, err error) {
	if isDomainError(err) {
		h.l.Warnf(ctx, "%s: %v", op, err)
		return
	}
	h.l.Errorf(ctx, "%s: %v", op, err)
}
