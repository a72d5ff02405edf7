package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/util"
)

// Service is what the HTTP API exposes. auditor.Auditor implements it.
type Service interface {
	Audit(ctx context.Context, address, chainName string) (g7common.AuditDocument, error)
	Wallet(ctx context.Context, address, chainName string) (g7common.WalletRisk, error)
}

type Handler struct {
	service  Service
	registry *networks.Registry
	logger   *zap.Logger
}

func NewHandler(service Service, registry *networks.Registry, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, registry: registry, logger: logger}
}

// Routes:
//
//	GET /chains
//	GET /audit/{chain}/{address}   ?format=markdown for a markdown report
//	GET /wallet/{chain}/{address}
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/chains", h.handleChains)
	r.Get("/audit/{chain}/{address}", h.handleAudit)
	r.Get("/wallet/{chain}/{address}", h.handleWallet)
	return r
}

func (h *Handler) handleChains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, util.ChainDisplays(h.registry))
}

func (h *Handler) handleAudit(w http.ResponseWriter, r *http.Request) {
	chainName, address := chi.URLParam(r, "chain"), chi.URLParam(r, "address")
	doc, err := h.service.Audit(r.Context(), address, chainName)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if r.URL.Query().Get("format") == "markdown" {
		md, err := util.RenderMarkdown(doc)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(md))
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) handleWallet(w http.ResponseWriter, r *http.Request) {
	chainName, address := chi.URLParam(r, "chain"), chi.URLParam(r, "address")
	risk, err := h.service.Wallet(r.Context(), address, chainName)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, risk)
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// StatusFor maps a resolution error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, g7common.ErrUnknownChain), errors.Is(err, g7common.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, g7common.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error()}
	var qerr *g7common.QueryError
	if errors.As(err, &qerr) {
		resp.Kind = qerr.Kind.Error()
	}
	status := StatusFor(err)
	h.logger.Info("request failed",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// ListenAndServe serves h on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
