package analytics

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/gritboard/internal/config"
	"github.com/saulo-duarte/gritboard/internal/task"
	util "github.com/saulo-duarte/gritboard/internal/utils"
)

var (
	ErrInvalidNow  = errors.New("now must be an RFC3339 timestamp")
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
)

type Handler struct {
	service  AnalyticsService
	clock    func() time.Time
	location *time.Location
	defaults Options
}

// NewHandler reads the wall clock through clock and reports it in loc.
func NewHandler(service AnalyticsService, clock func() time.Time, loc *time.Location, defaults Options) *Handler {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = util.DefaultLocation()
	}
	return &Handler{
		service:  service,
		clock:    clock,
		location: loc,
		defaults: defaults,
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	now, err := h.resolveNow(r.URL.Query().Get("now"))
	if err != nil {
		log.WithError(err).Warn("Invalid now parameter")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := h.defaults
	if ws := r.URL.Query().Get("week_start"); ws != "" {
		day, err := config.ParseWeekday(ws)
		if err != nil {
			log.WithError(err).Warn("Invalid week_start parameter")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		opts.WeekStart = day
	}

	dashboard, err := h.service.Dashboard(r.Context(), now, opts)
	if err != nil {
		writeSnapshotError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, dashboard)
}

func (h *Handler) GetDayAgenda(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	dateStr := chi.URLParam(r, "date")
	date, ok := util.ParseDate(dateStr, h.location)
	if !ok {
		log.WithField("date", dateStr).Warn("Invalid agenda date")
		http.Error(w, ErrInvalidDate.Error(), http.StatusBadRequest)
		return
	}

	agenda, err := h.service.Agenda(r.Context(), date)
	if err != nil {
		writeSnapshotError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, agenda)
}

// resolveNow samples the clock once per request unless the caller pins it.
// Either way the instant is moved into the app location, so calendar days do
// not depend on the offset the caller wrote.
func (h *Handler) resolveNow(raw string) (time.Time, error) {
	if raw == "" {
		return h.clock().In(h.location), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidNow
	}
	return t.In(h.location), nil
}

func writeSnapshotError(w http.ResponseWriter, err error) {
	if errors.Is(err, task.ErrSnapshotUnavailable) {
		http.Error(w, "task snapshot unavailable", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
