package http

import (
	"net/http"

	"videxcl-srv/internal/accounts"
	pkgErrors "videxcl-srv/pkg/errors"
)

var (
	errConfigSourceUnreachable = pkgErrors.NewHTTPError(http.StatusBadGateway, "Account config source unreachable")
	errPublishFailed           = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to publish one or more work units")
)

func (h *handler) mapError(err error) error {
	switch err {
	case accounts.ErrConfigSourceUnreachable:
		return errConfigSourceUnreachable
	case accounts.ErrPublishFailed:
		return errPublishFailed
	default:
		return err
	}
}
