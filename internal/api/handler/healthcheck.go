package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		resp := healthResponse{
			Status:    "healthy",
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
