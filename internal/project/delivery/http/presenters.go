package http

import (
	"project-tracker/internal/model"
	"project-tracker/internal/project"
	"project-tracker/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name           string   `json:"name"            binding:"required,min=1,max=200"`
	Description    string   `json:"description"     binding:"max=5000"`
	Status         string   `json:"status"          binding:"max=50"`
	Progress       int      `json:"progress"        binding:"progress"`
	StartDate      string   `json:"start_date"      binding:"date"`
	EndDate        string   `json:"end_date"        binding:"date"`
	LocationName   string   `json:"location_name"   binding:"max=255"`
	Latitude       *float64 `json:"latitude"        binding:"omitempty,min=-90,max=90"`
	Longitude      *float64 `json:"longitude"       binding:"omitempty,min=-180,max=180"`
	GeofenceRadius *int     `json:"geofence_radius" binding:"omitempty,min=0"`
}

func (r createReq) toInput() project.CreateInput {
	start, _ := model.ParseDate(r.StartDate)
	end, _ := model.ParseDate(r.EndDate)
	return project.CreateInput{
		Name:           r.Name,
		Description:    r.Description,
		Status:         r.Status,
		Progress:       r.Progress,
		StartDate:      start,
		EndDate:        end,
		LocationName:   r.LocationName,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		GeofenceRadius: r.GeofenceRadius,
	}
}

// updateReq is a partial update. An empty string clears a date.
type updateReq struct {
	ID             int64    `json:"-"`
	Name           *string  `json:"name"            binding:"omitempty,min=1,max=200"`
	Description    *string  `json:"description"     binding:"omitempty,max=5000"`
	Status         *string  `json:"status"          binding:"omitempty,max=50"`
	Progress       *int     `json:"progress"        binding:"omitempty,progress"`
	StartDate      *string  `json:"start_date"      binding:"omitempty,date"`
	EndDate        *string  `json:"end_date"        binding:"omitempty,date"`
	LocationName   *string  `json:"location_name"   binding:"omitempty,max=255"`
	Latitude       *float64 `json:"latitude"        binding:"omitempty,min=-90,max=90"`
	Longitude      *float64 `json:"longitude"       binding:"omitempty,min=-180,max=180"`
	GeofenceRadius *int     `json:"geofence_radius" binding:"omitempty,min=0"`
}

func (r updateReq) toInput() project.UpdateInput {
	return project.UpdateInput{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Status:         r.Status,
		Progress:       r.Progress,
		StartDate:      parseDatePtr(r.StartDate),
		EndDate:        parseDatePtr(r.EndDate),
		LocationName:   r.LocationName,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		GeofenceRadius: r.GeofenceRadius,
	}
}

func parseDatePtr(s *string) *model.Date {
	if s == nil {
		return nil
	}
	d, _ := model.ParseDate(*s)
	return &d
}

type listReq struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

// --- Response DTOs ---

type projectResp struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Owner             int64             `json:"owner"`
	OwnerName         string            `json:"owner_name"`
	Status            string            `json:"status"`
	Progress          int               `json:"progress"`
	DynamicProgress   *int              `json:"dynamic_progress"`
	EffectiveProgress int               `json:"effective_progress"`
	StartDate         model.Date        `json:"start_date"`
	EndDate           model.Date        `json:"end_date"`
	LocationName      string            `json:"location_name"`
	Latitude          *float64          `json:"latitude"`
	Longitude         *float64          `json:"longitude"`
	GeofenceRadius    *int              `json:"geofence_radius"`
	TaskCount         int               `json:"task_count"`
	CreatedAt         response.DateTime `json:"created_at"`
}

func newProjectResp(out project.ProjectOutput) projectResp {
	p := out.Project
	return projectResp{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Owner:             p.OwnerID,
		OwnerName:         p.OwnerName,
		Status:            p.Status,
		Progress:          out.Progress.Manual,
		DynamicProgress:   out.Progress.Dynamic,
		EffectiveProgress: out.Progress.Effective,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		LocationName:      p.LocationName,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		GeofenceRadius:    p.GeofenceRadius,
		TaskCount:         out.TaskCount,
		CreatedAt:         response.DateTime(p.CreatedAt),
	}
}

func newProjectListResp(outs []project.ProjectOutput) []projectResp {
	items := make([]projectResp, len(outs))
	for i, out := range outs {
		items[i] = newProjectResp(out)
	}
	return items
}
