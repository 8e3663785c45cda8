package handlers

import (
	"discgolf-session-service/internal/api/dto"
	"discgolf-session-service/internal/domain"
	"discgolf-session-service/internal/geodesy"
	"discgolf-session-service/internal/platform/obs"
	"discgolf-session-service/internal/session"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
)

const maxArcPoints = 360

// SessionHandler exposes one session machine over HTTP. Every access to the
// machine goes through mu, so HTTP requests and the GPS feed are serialized.
type SessionHandler struct {
	mu      sync.Mutex
	machine *session.Machine
}

func NewSessionHandler(m *session.Machine) *SessionHandler {
	return &SessionHandler{machine: m}
}

// OfferLocation applies a GPS fix through the machine's location gate.
func (h *SessionHandler) OfferLocation(p domain.Coordinate) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.machine.OfferLocation(p)
}

func (h *SessionHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	s := h.machine.State()
	h.mu.Unlock()

	writeJSON(w, r, http.StatusOK, dto.SessionResponse{State: s})
}

func (h *SessionHandler) Commands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.CommandListResponse{Commands: session.CommandNames()})
}

// Command decodes the command named in the path and dispatches it.
// Ignored commands still answer 200 with applied=false.
func (h *SessionHandler) Command(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid body")
		return
	}

	cmd, err := session.DecodeCommand(name, body)
	if errors.Is(err, session.ErrUnknownCommand) {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown command %q", name))
		return
	}
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res := h.dispatch(r, cmd)

	writeJSON(w, r, http.StatusOK, dto.CommandResponse{
		Command: cmd.CommandName(),
		Applied: res.Applied,
		Events:  res.Events,
		State:   res.State,
	})
}

func (h *SessionHandler) dispatch(r *http.Request, cmd session.Command) (res session.Result) {
	var err error
	defer obs.Time(r.Context(), "session.command", "cmd", cmd.CommandName())(&err)

	h.mu.Lock()
	defer h.mu.Unlock()

	res = h.machine.Dispatch(cmd)
	if !res.Applied {
		err = fmt.Errorf("%s ignored in mode %s", cmd.CommandName(), res.State.Mode)
	}
	return res
}

// Location accepts a position fix from the client. Fixes pass through the
// location gate unless force is set.
func (h *SessionHandler) Location(w http.ResponseWriter, r *http.Request) {
	var req dto.LocationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		writeError(w, r, http.StatusBadRequest, "latitude and longitude are required")
		return
	}
	if *req.Latitude < -90 || *req.Latitude > 90 || *req.Longitude < -180 || *req.Longitude > 180 {
		writeError(w, r, http.StatusBadRequest, "coordinate out of range")
		return
	}
	p := domain.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}

	var applied bool
	if req.Force {
		applied = h.dispatch(r, session.UpdateUserLocation{Point: p}).Applied
	} else {
		applied = h.OfferLocation(p)
	}

	h.mu.Lock()
	s := h.machine.State()
	h.mu.Unlock()

	writeJSON(w, r, http.StatusOK, dto.LocationResponse{Applied: applied, State: s})
}

func (h *SessionHandler) Route(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	route, ok := h.machine.Route()
	h.mu.Unlock()

	if !ok {
		writeError(w, r, http.StatusNotFound, "no active pickup route")
		return
	}
	writeJSON(w, r, http.StatusOK, dto.RouteResponse{Route: route})
}

func (h *SessionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	stats := h.machine.Stats()
	h.mu.Unlock()

	writeJSON(w, r, http.StatusOK, dto.StatsResponse{Stats: stats, Unit: domain.Imperial.Abbrev()})
}

func (h *SessionHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	tags := h.machine.Feedback()
	pending := h.machine.PendingFeedback()
	h.mu.Unlock()

	if tags == nil {
		tags = []domain.Tag{}
	}

	writeJSON(w, r, http.StatusOK, dto.FeedbackResponse{Tags: tags, Messages: domain.Messages(tags), Pending: pending})
}

// RangeLines returns the guide lines either side of the target bearing.
// The optional points query parameter sets the arc resolution.
func (h *SessionHandler) RangeLines(w http.ResponseWriter, r *http.Request) {
	n := 0
	if v := r.URL.Query().Get("points"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > maxArcPoints {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("points must be between 1 and %d", maxArcPoints))
			return
		}
		n = parsed
	}

	h.mu.Lock()
	s := h.machine.State()
	h.mu.Unlock()

	if s.UserLocation == nil || s.Target == nil || s.Bearing == nil {
		writeError(w, r, http.StatusNotFound, "no target line")
		return
	}

	user, bearing := *s.UserLocation, *s.Bearing
	dist := geodesy.DistanceMeters(user, *s.Target)
	lines := geodesy.ComputeRangeLines(user, bearing, dist)
	left := geodesy.Normalize(bearing - geodesy.RangeLineSpreadDegrees)
	right := geodesy.Normalize(bearing + geodesy.RangeLineSpreadDegrees)

	arc := geodesy.ArcPoints(user, dist, left, right, n)
	res := dto.RangeLinesResponse{
		Left:  dto.SegmentResponse{From: lines.Left.From, To: lines.Left.To, Bearing: left},
		Right: dto.SegmentResponse{From: lines.Right.From, To: lines.Right.To, Bearing: right},
		Arc:   make([][]float64, 0, len(arc)),
	}
	for _, p := range arc {
		res.Arc = append(res.Arc, p.CoordsToList())
	}

	writeJSON(w, r, http.StatusOK, res)
}
