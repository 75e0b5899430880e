package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/animalspotter/internal/common"
	"github.com/gorilla/mux"
)

// maxBodyBytes caps credential payloads.
const maxBodyBytes = 1 << 16

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// sightingResponse is the detail wire shape; timeSeen is seconds since the
// Unix epoch.
type sightingResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	TimeSeen    float64 `json:"timeSeen"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageURL"`
}

func epochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return req, fmt.Errorf("%w: malformed body: %w", common.ErrorValidation, err)
	}
	return req, nil
}

func (s *Server) signUp(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	u, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: u.ID, Username: u.UserName})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) listSightings(w http.ResponseWriter, r *http.Request) {
	names, err := s.sightings.ListNames(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	writeJSON(w, http.StatusOK, names)
}

func (s *Server) getSighting(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: bad name: %w", common.ErrorValidation, err))
		return
	}

	userID, _ := userIDFromContext(r.Context())
	s.logger.Debug(r.Context(), "sighting requested", "user_id", userID, "name", name)

	v, err := s.sightings.Get(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sightingResponse{
		ID:          v.ID,
		Name:        v.Name,
		TimeSeen:    epochSeconds(v.ObservedAt),
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		Description: v.Description,
		ImageURL:    v.ImageURL,
	})
}
