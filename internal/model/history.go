package model

import "time"

// SyncRun records one successful sync-icons invocation.
type SyncRun struct {
	ID         string           `json:"id"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Projects   []ProjectSummary `json:"projects"`
}

// ProjectSummary describes what a sync did for one project.
type ProjectSummary struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	Version     string `json:"version"`
	Icons       int    `json:"icons"`
	Added       int    `json:"added"`
}

// TotalIcons returns the number of icons synced across all projects.
func (r *SyncRun) TotalIcons() int {
	total := 0
	for _, p := range r.Projects {
		total += p.Icons
	}

	return total
}

// TotalAdded returns the number of newly tracked icons across all projects.
func (r *SyncRun) TotalAdded() int {
	total := 0
	for _, p := range r.Projects {
		total += p.Added
	}

	return total
}
