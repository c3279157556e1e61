package http

import (
	"net/http"

	"videxcl-srv/internal/keyword"
	pkgErrors "videxcl-srv/pkg/errors"
)

var (
	errConfigSourceUnreachable = pkgErrors.NewHTTPError(http.StatusBadGateway, "Keyword config source unreachable")
	errNoKeywords              = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "No keyword rules configured")
	errPersistFailed           = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to materialize keyword matches")
)

func (h *handler) mapError(err error) error {
	switch err {
	case keyword.ErrConfigSourceUnreachable:
		return errConfigSourceUnreachable
	case keyword.ErrNoKeywords:
		return errNoKeywords
	case keyword.ErrPersistFailed:
		return errPersistFailed
	default:
		return err
	}
}
