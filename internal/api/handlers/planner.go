package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"round-trip-planner/internal/api/dto"
	"round-trip-planner/internal/domain"
	"round-trip-planner/internal/platform/obs"
	"round-trip-planner/internal/services"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// PlannerHandler exposes the stop set and best route of a single optimizer.
//
// The optimizer is not safe for concurrent use, so every request holds mu for
// the whole optimizer call. BestRoute is factorial in the number of stops;
// MaxStops keeps it bounded.
type PlannerHandler struct {
	mu        sync.Mutex
	optimizer *services.RouteOptimizer
	validate  *validator.Validate
	maxStops  int
}

func NewPlannerHandler(optimizer *services.RouteOptimizer, maxStops int) *PlannerHandler {
	return &PlannerHandler{
		optimizer: optimizer,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		maxStops:  maxStops,
	}
}

// Locations dispatches GET (list the stop set) and POST (add a location).
func (h *PlannerHandler) Locations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listLocations(w, r)
	case http.MethodPost:
		h.addLocation(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet+", "+http.MethodPost)
	}
}

func (h *PlannerHandler) addLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.AddLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	done := obs.Time(r.Context(), "locations.add")

	h.mu.Lock()
	placement, err := h.optimizer.AddLocationWithLimit(*req.Lng, *req.Lat, h.maxStops)
	h.mu.Unlock()

	done(&err)
	if errors.Is(err, services.ErrStopLimit) {
		writeError(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("stop limit of %d reached", h.maxStops))
		return
	}
	if err != nil {
		log.Printf("add location failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.AddLocationResponse{
		Role:     string(placement.Role),
		Index:    placement.Index,
		Location: toLocation(placement.Point),
	})
}

func (h *PlannerHandler) listLocations(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	home, ok := h.optimizer.Home()
	stops := h.optimizer.Stops()
	h.mu.Unlock()

	res := dto.ListLocationsResponse{
		Stops: make([]dto.LocationResponse, 0, len(stops)),
	}
	if ok {
		loc := toLocation(home)
		res.Home = &loc
	}
	for _, s := range stops {
		res.Stops = append(res.Stops, toLocation(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Route computes the selected round trip over the current stop set.
func (h *PlannerHandler) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	done := obs.Time(r.Context(), "route.best")

	h.mu.Lock()
	best, ok := h.optimizer.BestRoute()
	selection := h.optimizer.Selection()
	h.mu.Unlock()

	done(nil)
	if !ok {
		writeError(w, r, http.StatusNotFound, "no home location set")
		return
	}

	roles := best.Route.Roles()
	stops := make([]dto.RouteStopResponse, 0, len(best.Route))
	for i, p := range best.Route {
		stops = append(stops, dto.RouteStopResponse{
			Role: string(roles[i]),
			Lng:  p.Lon(),
			Lat:  p.Lat(),
		})
	}

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		Selection:       string(selection),
		TotalDistanceKm: best.TotalDistanceKm,
		Route:           stops,
		Geometry: dto.LineStringResponse{
			Type:        "LineString",
			Coordinates: best.Route.Coordinates(),
		},
	})
}

func toLocation(p domain.Point) dto.LocationResponse {
	return dto.LocationResponse{Lng: p.Lon(), Lat: p.Lat()}
}

// validationMessage turns validator errors into a short client-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gte", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be between %s", field, coordinateRange(field)))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

func coordinateRange(field string) string {
	if field == "lat" {
		return "-90 and 90"
	}
	return "-180 and 180"
}
