package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/ezz105/ecommerce-analytics/internal/entity"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AuthToken string `json:"auth_token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "can't decode login request")
		return
	}
	token, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "wrong credentials")
		return
	}
	respondData(w, loginResponse{AuthToken: token})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	respondData(w, map[string]string{"status": "ok"})
}

func (s *Server) handleSalesAnalytics(w http.ResponseWriter, r *http.Request) {
	timeFrame := entity.ParseTimeFrame(r.URL.Query().Get("timeFrame"))
	res, err := s.analytics.GetSalesAnalytics(r.Context(), timeFrame)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, res)
}

func (s *Server) handleOrderAnalytics(w http.ResponseWriter, r *http.Request) {
	res, err := s.analytics.GetOrderAnalytics(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, res)
}

func (s *Server) handleProductAnalytics(w http.ResponseWriter, r *http.Request) {
	res, err := s.analytics.GetProductAnalytics(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, res)
}

func (s *Server) handleReviewAnalytics(w http.ResponseWriter, r *http.Request) {
	res, err := s.analytics.GetReviewAnalytics(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, res)
}

func (s *Server) handleDashboardOverview(w http.ResponseWriter, r *http.Request) {
	res, err := s.analytics.GetDashboardOverview(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, res)
}
