package http

import (
	"errors"
	"net/http"

	"github.com/jaychenthinkfast/OneTabCloud/internal/service"
	"github.com/jaychenthinkfast/OneTabCloud/internal/store"
	"github.com/jaychenthinkfast/OneTabCloud/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrContainerNotFound:   http.StatusNotFound,

	validators.ErrInvalidContainerRequest: http.StatusUnprocessableEntity,
	validators.ErrUnsupportedType:         http.StatusInternalServerError,

	store.ErrContainerNotFound: http.StatusNotFound,
	store.ErrCorruptValue:      http.StatusInternalServerError,
	store.ErrStoreClosed:       http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
