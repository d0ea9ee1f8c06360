package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simonvc/tripbudget/internal/tools"
)

// CallIDHeader lets a caller choose the call id of a tool invocation.
const CallIDHeader = "X-Call-ID"

const maxArgsBytes = 1 << 20

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tools.Definitions())
}

func (s *Server) callTool(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxArgsBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading arguments: "+err.Error())
		return
	}
	s.invoke(w, r, chi.URLParam(r, "name"), body)
}

func (s *Server) invoke(w http.ResponseWriter, r *http.Request, name string, args json.RawMessage) {
	ctx := r.Context()
	if id := r.Header.Get(CallIDHeader); id != "" {
		ctx = tools.WithCallID(ctx, id)
	}

	inv := tools.Call(ctx, s.tools, name, args)
	writeJSON(w, resultStatus(inv.Result), inv)
}
