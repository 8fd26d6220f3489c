package models

import (
	"time"

	"github.com/google/uuid"
)

// Receipt is the bill produced when a vehicle leaves the lot.
type Receipt struct {
	ID        uuid.UUID     `json:"id"`
	Plate     string        `json:"plate"`
	PassID    string        `json:"pass_id"`
	Tier      PassTier      `json:"tier"`
	Rate      float64       `json:"rate"`
	EntryTime time.Time     `json:"entry_time"`
	ExitTime  time.Time     `json:"exit_time"`
	Duration  time.Duration `json:"duration"`
	Hours     float64       `json:"hours"`
	Fee       float64       `json:"fee"`
}

type PassStatus struct {
	Plate      string   `json:"plate"`
	PassID     string   `json:"pass_id"`
	Tier       PassTier `json:"tier"`
	DriverName string   `json:"driver_name"`
	Parked     bool     `json:"parked"`
}

type Occupancy struct {
	LotName   string `json:"lot_name"`
	Capacity  int    `json:"capacity"`
	Parked    int    `json:"parked"`
	Available int    `json:"available"`
}
