package job

import "time"

// Job is a single posting. At most one Job in the collection is active at a
// time; the active one answers job-description queries.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	IsActive    bool      `json:"isActive"`
}
