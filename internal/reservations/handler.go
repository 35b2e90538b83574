package reservations

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const MaxBodyBytes = 1 << 20

const reservationEventSource = "legrosarbre-backend"

type Handler struct {
	repo      ReservationRepo
	logger    apt.Logger
	config    *apt.Config
	tlm       *telemetry.HTTP
	publisher events.Publisher
}

type HandlerDeps struct {
	Repo      ReservationRepo
	Publisher events.Publisher
}

func NewHandler(hd HandlerDeps, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		repo:      hd.Repo,
		logger:    logger,
		config:    config,
		tlm:       telemetry.NewHTTP(),
		publisher: hd.Publisher,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reservations", func(r chi.Router) {
		r.Post("/", h.CreateReservation)
		r.Get("/", h.ListReservations)
		r.Get("/{id}", h.GetReservation)
		r.Delete("/{id}", h.CancelReservation)
	})

	r.Get("/available-times", h.GetAvailableTimes)
}

func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateReservation")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	req, ok := h.decodeReservationCreatePayload(w, r, log)
	if !ok {
		return
	}

	validationErrors := ValidateReservationCreate(ctx, req)
	if len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		apt.RespondError(w, http.StatusBadRequest, "Validation failed")
		return
	}

	reservation := NewReservation()
	reservation.Name = req.Name
	reservation.Email = req.Email
	reservation.Phone = req.Phone
	reservation.Date = req.Date
	reservation.Time = req.Time
	reservation.Guests = req.Guests
	reservation.SpecialRequests = req.SpecialRequests
	reservation.BeforeCreate()

	if err := h.repo.Create(ctx, reservation); err != nil {
		log.Error("cannot create reservation", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not create reservation")
		return
	}

	h.publishReservationEvent(ctx, reservation, EventReservationCreated)

	links := apt.RESTfulLinksFor(reservation)
	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, reservation, links...)
}

func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetReservation")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	reservation, err := h.repo.Get(ctx, id)
	if err != nil {
		log.Error("error loading reservation", "error", err, "id", id.String())
		apt.RespondError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	if reservation == nil {
		apt.RespondError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	links := apt.RESTfulLinksFor(reservation)
	apt.RespondSuccess(w, reservation, links...)
}

func (h *Handler) ListReservations(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListReservations")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	date := r.URL.Query().Get("date")

	var reservations []*Reservation
	var err error

	if date != "" {
		reservations, err = h.repo.ListByDate(ctx, date)
	} else {
		reservations, err = h.repo.List(ctx)
	}

	if err != nil {
		log.Error("error retrieving reservations", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not retrieve reservations")
		return
	}

	apt.RespondCollection(w, reservations, "reservation")
}

func (h *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CancelReservation")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	// Cancellation is a hard delete, not a status transition.
	reservation, err := h.repo.Get(ctx, id)
	if err != nil {
		log.Error("error loading reservation", "error", err, "id", id.String())
		apt.RespondError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			apt.RespondError(w, http.StatusNotFound, "Reservation not found")
			return
		}
		log.Error("cannot cancel reservation", "error", err, "id", id.String())
		apt.RespondError(w, http.StatusInternalServerError, "Could not cancel reservation")
		return
	}

	h.publishReservationEvent(ctx, reservation, EventReservationCancelled)

	w.WriteHeader(http.StatusNoContent)
}

// GetAvailableTimes reports the still-bookable lunch and dinner slots
// for the date passed as a query parameter. An unknown or empty date
// matches no reservations and yields full availability. The result is
// advisory only: creation never re-checks occupancy, so concurrent
// bookings can still pass the cap.
func (h *Handler) GetAvailableTimes(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetAvailableTimes")
	defer finish()

	log := h.log(r)
	ctx := r.Context()

	date := r.URL.Query().Get("date")

	reservations, err := h.repo.ListByDate(ctx, date)
	if err != nil {
		log.Error("error retrieving reservations for date", "error", err, "date", date)
		apt.RespondError(w, http.StatusInternalServerError, "Could not retrieve available times")
		return
	}

	apt.RespondSuccess(w, AvailableSlots(reservations))
}

func (h *Handler) publishReservationEvent(ctx context.Context, reservation *Reservation, eventType string) {
	if h.publisher == nil || reservation == nil {
		return
	}

	event := ReservationEvent{
		EventType:     eventType,
		ReservationID: reservation.ID.String(),
		Date:          reservation.Date,
		Time:          reservation.Time,
		Guests:        reservation.Guests,
		Source:        reservationEventSource,
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("cannot marshal reservation event", "error", err, "reservation_id", reservation.ID.String())
		return
	}

	if err := h.publisher.Publish(ctx, ReservationTopic, payload); err != nil {
		h.logger.Error("cannot publish reservation event", "error", err, "reservation_id", reservation.ID.String())
	}
}

// Helper methods

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}

func (h *Handler) parseIDParam(w http.ResponseWriter, r *http.Request, log apt.Logger) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		log.Debug("missing id parameter")
		apt.RespondError(w, http.StatusBadRequest, "Missing id parameter")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Debug("invalid id parameter", "id", idStr, "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid id parameter")
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) decodeReservationCreatePayload(w http.ResponseWriter, r *http.Request, log apt.Logger) (ReservationCreateRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return ReservationCreateRequest{}, false
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		apt.RespondError(w, http.StatusBadRequest, "Request body is empty")
		return ReservationCreateRequest{}, false
	}

	var req ReservationCreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return ReservationCreateRequest{}, false
	}

	return req, true
}
