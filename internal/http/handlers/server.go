package handlers

import (
	"github.com/fleetflow/analytics-api/internal/analytics"
)

var (
	svc  *analytics.Service
	port = 8000
)

func SetAnalyticsService(s *analytics.Service) {
	svc = s
}

func SetPort(p int) {
	port = p
}
