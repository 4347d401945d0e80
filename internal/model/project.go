package model

import "time"

// ProjectStatusActive is the status of a newly created project.
const ProjectStatusActive = "Aktif"

// Project groups tasks under an owner. Geofence fields are stored and returned as is.
type Project struct {
	ID             int64
	Name           string
	Description    string
	OwnerID        int64
	OwnerName      string
	Status         string
	Progress       int
	StartDate      Date
	EndDate        Date
	LocationName   string
	Latitude       *float64
	Longitude      *float64
	GeofenceRadius *int
	CreatedAt      time.Time
}
