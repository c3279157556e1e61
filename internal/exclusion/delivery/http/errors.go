package http

import (
	"net/http"

	"videxcl-srv/internal/exclusion"
	pkgErrors "videxcl-srv/pkg/errors"
)

var (
	errExclusionQueryFailed = pkgErrors.NewHTTPError(http.StatusBadGateway, "Failed to query the account's exclusions")
	errCandidateQueryFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to query new exclusion candidates")
	errUnknownExclusionList = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "The account has no exclusion list with that name")
	errUploadFailed         = pkgErrors.NewHTTPError(http.StatusBadGateway, "Failed to upload exclusions to the account")
	errPersistFailed        = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to persist the exclusion snapshot")
)

func (h *handler) mapError(err error) error {
	switch err {
	case exclusion.ErrExclusionQueryFailed:
		return errExclusionQueryFailed
	case exclusion.ErrCandidateQueryFailed:
		return errCandidateQueryFailed
	case exclusion.ErrUnknownExclusionList:
		return errUnknownExclusionList
	case exclusion.ErrUploadFailed:
		return errUploadFailed
	case exclusion.ErrPersistFailed:
		return errPersistFailed
	default:
		return err
	}
}
