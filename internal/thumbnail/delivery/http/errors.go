package http

import (
	"net/http"

	"videxcl-srv/internal/thumbnail"
	pkgErrors "videxcl-srv/pkg/errors"
)

var (
	errPersistFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to query unprocessed videos")
	errPublishFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to publish one or more process units")
)

func (h *handler) mapError(err error) error {
	switch err {
	case thumbnail.ErrPersistFailed:
		return errPersistFailed
	case thumbnail.ErrPublishFailed:
		return errPublishFailed
	default:
		return err
	}
}
