package contact

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
)

const MaxBodyBytes = 1 << 20

type Handler struct {
	repo   ContactMessageRepo
	logger apt.Logger
	config *apt.Config
	tlm    *telemetry.HTTP
}

type HandlerDeps struct {
	Repo ContactMessageRepo
}

func NewHandler(hd HandlerDeps, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		repo:   hd.Repo,
		logger: logger,
		config: config,
		tlm:    telemetry.NewHTTP(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.CreateContactMessage)
}

func (h *Handler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateContactMessage")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	req, ok := h.decodeContactMessageCreatePayload(w, r, log)
	if !ok {
		return
	}

	validationErrors := ValidateContactMessageCreate(ctx, req)
	if len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		apt.RespondError(w, http.StatusBadRequest, "Validation failed")
		return
	}

	message := NewContactMessage()
	message.Name = req.Name
	message.Email = req.Email
	message.Message = req.Message
	message.BeforeCreate()

	if err := h.repo.Create(ctx, message); err != nil {
		log.Error("cannot create contact message", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not create contact message")
		return
	}

	links := apt.RESTfulLinksFor(message)
	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, message, links...)
}

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}

func (h *Handler) decodeContactMessageCreatePayload(w http.ResponseWriter, r *http.Request, log apt.Logger) (ContactMessageCreateRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return ContactMessageCreateRequest{}, false
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		apt.RespondError(w, http.StatusBadRequest, "Request body is empty")
		return ContactMessageCreateRequest{}, false
	}

	var req ContactMessageCreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return ContactMessageCreateRequest{}, false
	}

	return req, true
}
