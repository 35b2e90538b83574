package content

import (
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
)

// Handler serves the static site content. There is no repository
// behind it; the document is decoded once from the embedded JSON.
type Handler struct {
	doc    *Document
	logger apt.Logger
	config *apt.Config
	tlm    *telemetry.HTTP
}

func NewHandler(config *apt.Config, logger apt.Logger) (*Handler, error) {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}

	doc, err := Load()
	if err != nil {
		return nil, err
	}

	return &Handler{
		doc:    doc,
		logger: logger,
		config: config,
		tlm:    telemetry.NewHTTP(),
	}, nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.GetMenu)
	r.Get("/reviews", h.GetReviews)
	r.Get("/info", h.GetInfo)
}

func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	w, _, finish := h.tlm.Start(w, r, "Handler.GetMenu")
	defer finish()

	apt.RespondSuccess(w, h.doc.Menu)
}

func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	w, _, finish := h.tlm.Start(w, r, "Handler.GetReviews")
	defer finish()

	apt.RespondSuccess(w, h.doc.Reviews)
}

func (h *Handler) GetInfo(w http.ResponseWriter, r *http.Request) {
	w, _, finish := h.tlm.Start(w, r, "Handler.GetInfo")
	defer finish()

	apt.RespondSuccess(w, h.doc.Info)
}
