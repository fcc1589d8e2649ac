package dto

import "time"

type HealthResponse struct {
	Status      string    `json:"status"`
	DBStatus    string    `json:"db_status"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
	Timestamp   time.Time `json:"timestamp"`
}
