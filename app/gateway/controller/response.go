package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-jose/go-jose/v4/json"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
	"github.com/vknowable/namada-ping-middleware/pkg/governance"
)

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto the Cosmos error body.
func (c *Controller) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, governance.ErrNotFound):
		writeJSON(w, http.StatusNotFound, cosmos.NewApiError(http.StatusNotFound, err.Error(), ""))
	case errors.Is(err, errBadRequest):
		writeJSON(w, http.StatusBadRequest, cosmos.NewApiError(http.StatusBadRequest, err.Error(), "invalid request"))
	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		// Client went away; nobody reads the body.
		c.App.Logger.Debug("request cancelled", zap.String("path", r.URL.Path))
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		c.App.Logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, cosmos.NewApiError(http.StatusInternalServerError, err.Error(), "An error occurred"))
	}
}

func (c *Controller) handleNotImplemented(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, cosmos.NewApiError(http.StatusNotImplemented, "Not Implemented", "endpoint "+r.URL.Path+" is not implemented"))
}

// uintVar parses the named path variable as an unsigned integer.
func uintVar(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, badRequest("%s %q is not an unsigned integer", name, raw)
	}
	return n, nil
}
