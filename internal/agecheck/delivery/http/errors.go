package http

import (
	"net/http"

	"videxcl-srv/internal/agecheck"
	pkgErrors "videxcl-srv/pkg/errors"
)

var (
	errConfigSourceUnreachable = pkgErrors.NewHTTPError(http.StatusBadGateway, "Failed to read the evaluation config sheet")
	errIncompleteConfig        = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Evaluation prompt or system instruction is missing from the config sheet")
	errPersistFailed           = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to query unevaluated videos")
	errPublishFailed           = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to publish one or more evaluation units")
)

func (h *handler) mapError(err error) error {
	switch err {
	case agecheck.ErrConfigSourceUnreachable:
		return errConfigSourceUnreachable
	case agecheck.ErrIncompleteConfig:
		return errIncompleteConfig
	case agecheck.ErrPersistFailed:
		return errPersistFailed
	case agecheck.ErrPublishFailed:
		return errPublishFailed
	default:
		return err
	}
}
