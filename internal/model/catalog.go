package model

import "context"

// Catalog reads book data from the upstream catalog.
type Catalog interface {
	GetWork(ctx context.Context, workID string) (Work, error)
	ListSubject(ctx context.Context, subject string, limit, offset int) ([]WorkSummary, error)
}

// Author is a resolved catalog author.
type Author struct {
	Name string `json:"name"`
}

// Work is a fully resolved catalog work.
type Work struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	Authors          []Author `json:"authors"`
	Subjects         []string `json:"subjects"`
	FirstPublishDate string   `json:"first_publish_date,omitempty"`
	Description      string   `json:"description"`
	Covers           []int    `json:"covers,omitempty"`
	CoverURL         string   `json:"coverUrl,omitempty"`
}

// WorkSummary is a work as listed under a subject.
type WorkSummary struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Authors  []Author `json:"authors"`
	Subject  []string `json:"subject"`
	CoverID  *int     `json:"cover_id,omitempty"`
	CoverURL string   `json:"coverUrl,omitempty"`
}
