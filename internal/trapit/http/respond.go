package http

import (
	"net/http"

	"github.com/trapit/trapit/pkg/errutil"
	"github.com/trapit/trapit/pkg/httpx"
	"github.com/trapit/trapit/pkg/slogx"
	"github.com/trapit/trapit/pkg/trapitsdk"
)

const (
	msgInvalidBody = "Invalid request body"
	msgServerError = "Server error"
	msgUserMissing = "User not found"
)

func writeMessage(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, trapitsdk.MessageResponse{Message: msg})
}

// serverError logs err with its oops context and writes a 500 with msg.
func serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	errutil.LogError(slogx.FromContext(r.Context()), msg, err)
	writeMessage(w, http.StatusInternalServerError, msg)
}
