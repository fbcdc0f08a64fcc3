package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/goodnatureofminers/elias-federation/internal/dispatcher"
	"github.com/goodnatureofminers/elias-federation/internal/model"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// AdminHandler serves the component APIs as JSON under /api/v1.
type AdminHandler struct {
	logger      *zap.Logger
	dispatcher  Dispatcher
	distributor Distributor
	ledger      Ledger
	peers       PeerDirectory
	limiter     *rate.Limiter
}

// NewAdminHandler limits request submission to submitRate per second with the
// given burst; a non-positive rate disables the limit. Only nodes known to
// peers can be registered as rule subscribers.
func NewAdminHandler(d Dispatcher, dist Distributor, l Ledger, peers PeerDirectory, submitRate float64, burst int, logger *zap.Logger) *AdminHandler {
	limit := rate.Inf
	if submitRate > 0 {
		limit = rate.Limit(submitRate)
	}
	if burst <= 0 {
		burst = 1
	}
	return &AdminHandler{
		logger:      logger.Named("admin"),
		dispatcher:  d,
		distributor: dist,
		ledger:      l,
		peers:       peers,
		limiter:     rate.NewLimiter(limit, burst),
	}
}

func (h *AdminHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/requests", h.submit)
	mux.HandleFunc("GET /api/v1/requests/{id}", h.requestStatus)
	mux.HandleFunc("POST /api/v1/requests/{id}/complete", h.complete)
	mux.HandleFunc("POST /api/v1/requests/{id}/fail", h.fail)
	mux.HandleFunc("POST /api/v1/demand", h.demand)
	mux.HandleFunc("GET /api/v1/queue", h.queueStatus)

	mux.HandleFunc("POST /api/v1/clients", h.registerClient)
	mux.HandleFunc("GET /api/v1/clients", h.clients)
	mux.HandleFunc("POST /api/v1/rules/distribute", h.distribute)
	mux.HandleFunc("POST /api/v1/rules/sync", h.forceSync)
	mux.HandleFunc("GET /api/v1/rules/status", h.distributionStatus)
	mux.HandleFunc("GET /api/v1/rules/events", h.distributionEvents)

	mux.HandleFunc("POST /api/v1/ledger/events", h.recordEvent)
	mux.HandleFunc("POST /api/v1/ledger/mine", h.mine)
	mux.HandleFunc("GET /api/v1/ledger/status", h.chainStatus)
	mux.HandleFunc("GET /api/v1/ledger/chain", h.chain)
	mux.HandleFunc("GET /api/v1/ledger/blocks/{hash}", h.block)
	mux.HandleFunc("GET /api/v1/ledger/pending", h.pending)
	mux.HandleFunc("GET /api/v1/ledger/contributions", h.contributions)
	mux.HandleFunc("GET /api/v1/ledger/contributions/{node}", h.contribution)
}

type submitRequest struct {
	Type         string            `json:"type"`
	Payload      json.RawMessage   `json:"payload,omitempty"`
	Priority     model.Priority    `json:"priority,omitempty"`
	ClientNode   string            `json:"client_node,omitempty"`
	Requirements map[string]string `json:"requirements,omitempty"`
}

func (h *AdminHandler) submit(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow() {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate_limited", Message: "too many submissions"})
		return
	}
	var in submitRequest
	if !h.decode(w, r, &in) {
		return
	}
	id, err := h.dispatcher.Submit(r.Context(), in.Type, in.Payload, dispatcher.SubmitOptions{
		Priority:     in.Priority,
		ClientNode:   in.ClientNode,
		Requirements: in.Requirements,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"id": id})
}

func (h *AdminHandler) requestStatus(w http.ResponseWriter, r *http.Request) {
	req, err := h.dispatcher.Status(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *AdminHandler) complete(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Result json.RawMessage `json:"result"`
	}
	if !h.decode(w, r, &in) {
		return
	}
	h.finish(w, h.dispatcher.MarkCompleted(r.Context(), r.PathValue("id"), in.Result))
}

func (h *AdminHandler) fail(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Error string `json:"error"`
	}
	if !h.decode(w, r, &in) {
		return
	}
	h.finish(w, h.dispatcher.MarkFailed(r.Context(), r.PathValue("id"), in.Error))
}

func (h *AdminHandler) finish(w http.ResponseWriter, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) demand(w http.ResponseWriter, r *http.Request) {
	var in struct {
		N int `json:"n"`
	}
	if !h.decode(w, r, &in) {
		return
	}
	h.finish(w, h.dispatcher.SignalDemand(r.Context(), in.N))
}

func (h *AdminHandler) queueStatus(w http.ResponseWriter, r *http.Request) {
	qs, err := h.dispatcher.QueueStatus(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, qs)
}

func (h *AdminHandler) registerClient(w http.ResponseWriter, r *http.Request) {
	var in struct {
		NodeID    string   `json:"node_id"`
		RuleTypes []string `json:"rule_types"`
	}
	if !h.decode(w, r, &in) {
		return
	}
	if !slices.Contains(h.peers.Peers(), in.NodeID) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown_peer", Message: fmt.Sprintf("node %q has no configured peer address", in.NodeID)})
		return
	}
	reg, err := h.distributor.RegisterClient(in.NodeID, in.RuleTypes)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *AdminHandler) clients(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.distributor.Clients())
}

func (h *AdminHandler) distribute(w http.ResponseWriter, r *http.Request) {
	var in struct {
		RuleType string `json:"rule_type"`
		Path     string `json:"path"`
		Content  string `json:"content"`
	}
	if !h.decode(w, r, &in) {
		return
	}
	event, err := h.distributor.DistributeUpdate(r.Context(), in.RuleType, in.Path, in.Content)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, event)
}

type syncResponse struct {
	Events []model.DistributionEvent `json:"events"`
	Error  string                    `json:"error,omitempty"`
}

// forceSync reports unreadable files next to the events that did go out.
func (h *AdminHandler) forceSync(w http.ResponseWriter, r *http.Request) {
	events, err := h.distributor.ForceSync(r.Context())
	resp := syncResponse{Events: events}
	if resp.Events == nil {
		resp.Events = []model.DistributionEvent{}
	}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) distributionStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.distributor.Status())
}

func (h *AdminHandler) distributionEvents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.distributor.Events())
}

func (h *AdminHandler) recordEvent(w http.ResponseWriter, r *http.Request) {
	var in struct {
		EventType  string         `json:"event_type"`
		Data       map[string]any `json:"data"`
		OriginNode string         `json:"origin_node"`
	}
	if !h.decode(w, r, &in) {
		return
	}
	if in.EventType == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "event_type is required"})
		return
	}
	tx, err := h.ledger.RecordEvent(in.EventType, in.Data, in.OriginNode)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, tx)
}

func (h *AdminHandler) mine(w http.ResponseWriter, r *http.Request) {
	if !h.ledger.Status().MiningEnabled {
		writeJSON(w, http.StatusConflict, errorResponse{Error: "mining_disabled", Message: "this node does not mine"})
		return
	}
	block, err := h.ledger.MineOnce(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if block == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, block)
}

func (h *AdminHandler) chainStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Status())
}

func (h *AdminHandler) chain(w http.ResponseWriter, r *http.Request) {
	var from uint64
	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "from must be a block height"})
			return
		}
		from = v
	}
	writeJSON(w, http.StatusOK, h.ledger.BlocksFrom(from))
}

func (h *AdminHandler) block(w http.ResponseWriter, r *http.Request) {
	b, err := h.ledger.Block(r.PathValue("hash"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *AdminHandler) pending(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Pending())
}

func (h *AdminHandler) contributions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Contributions())
}

func (h *AdminHandler) contribution(w http.ResponseWriter, r *http.Request) {
	node := r.PathValue("node")
	writeJSON(w, http.StatusOK, map[string]any{"node_id": node, "score": h.ledger.Contribution(node)})
}

func (h *AdminHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: err.Error()})
		return false
	}
	return true
}

func (h *AdminHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: model.ErrNotFound.Error(), Message: err.Error()})
	case errors.Is(err, model.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: model.ErrInvalidTransition.Error(), Message: err.Error()})
	case errors.Is(err, model.ErrMiningExhausted):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: model.ErrMiningExhausted.Error(), Message: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.Is(err, dispatcher.ErrStopped):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "unavailable", Message: err.Error()})
	default:
		h.logger.Error("admin request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal", Message: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
