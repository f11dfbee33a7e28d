package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/yourorg/productsvc/internal/apperrors"
)

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		NotFound(w, r, notFoundErr.Kind(), err, err.Error())
		return
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		BadRequest(w, r, validationErr.Kind(), err, err.Error(), validationErr.Fields)
		return
	}

	var duplicateErr *apperrors.DuplicateNameError
	if errors.As(err, &duplicateErr) {
		BadRequest(w, r, duplicateErr.Kind(), err, err.Error(), nil)
		return
	}

	var versionErr *apperrors.InvalidAPIVersionError
	if errors.As(err, &versionErr) {
		BadRequest(w, r, versionErr.Kind(), err, err.Error(), nil)
		return
	}

	var unavailableErr *apperrors.ServiceUnavailableError
	if errors.As(err, &unavailableErr) {
		ServiceUnavailable(w, r, unavailableErr.Kind(), err, err.Error())
		return
	}

	var timeoutErr *apperrors.TimeoutError
	if errors.As(err, &timeoutErr) {
		GatewayTimeout(w, r, timeoutErr.Kind(), err, err.Error())
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		timeoutErr = apperrors.NewTimeoutError(r.Method + " " + r.URL.Path)
		GatewayTimeout(w, r, timeoutErr.Kind(), err, timeoutErr.Error())
		return
	}

	InternalError(w, r, err, "internal server error")
}
