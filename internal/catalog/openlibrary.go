// Package catalog reads book data from the Open Library HTTP API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Deba69/BookList/internal/model"
)

var _ model.Catalog = (*OpenLibrary)(nil)

// ErrUnexpectedStatus is returned for upstream responses other than 200 and 404.
var ErrUnexpectedStatus = errors.New("unexpected upstream status")

// maxBodyBytes bounds a single upstream response.
const maxBodyBytes = 4 << 20

type OpenLibrary struct {
	baseURL   string
	coversURL string
	client    *http.Client
}

// NewOpenLibrary creates a client against baseURL, deriving cover image links
// from coversURL.
func NewOpenLibrary(baseURL, coversURL string, timeout time.Duration) *OpenLibrary {
	return &OpenLibrary{
		baseURL:   strings.TrimRight(baseURL, "/"),
		coversURL: strings.TrimRight(coversURL, "/"),
		client:    &http.Client{Timeout: timeout},
	}
}

type workResponse struct {
	Key              string          `json:"key"`
	Title            string          `json:"title"`
	Subjects         []string        `json:"subjects"`
	FirstPublishDate string          `json:"first_publish_date"`
	Description      json.RawMessage `json:"description"`
	Covers           []int           `json:"covers"`
	Authors          []struct {
		Author struct {
			Key string `json:"key"`
		} `json:"author"`
	} `json:"authors"`
}

type authorResponse struct {
	Name string `json:"name"`
}

type subjectResponse struct {
	Works []struct {
		Key     string   `json:"key"`
		Title   string   `json:"title"`
		Subject []string `json:"subject"`
		CoverID *int     `json:"cover_id"`
		Authors []struct {
			Name string `json:"name"`
		} `json:"authors"`
	} `json:"works"`
}

// GetWork fetches a work and resolves its authors. Authors that fail to load
// are left out.
func (o *OpenLibrary) GetWork(ctx context.Context, workID string) (model.Work, error) {
	var resp workResponse
	if err := o.getJSON(ctx, "/works/"+url.PathEscape(workID)+".json", &resp); err != nil {
		return model.Work{}, err
	}

	work := model.Work{
		Key:              resp.Key,
		Title:            resp.Title,
		Subjects:         resp.Subjects,
		FirstPublishDate: resp.FirstPublishDate,
		Description:      description(resp.Description),
		Covers:           resp.Covers,
		Authors:          make([]model.Author, 0, len(resp.Authors)),
	}
	if work.Subjects == nil {
		work.Subjects = []string{}
	}
	if len(resp.Covers) > 0 {
		work.CoverURL = o.coverURL(resp.Covers[0], "L")
	}

	for _, a := range resp.Authors {
		if a.Author.Key == "" {
			continue
		}
		var author authorResponse
		if err := o.getJSON(ctx, a.Author.Key+".json", &author); err != nil {
			continue
		}
		work.Authors = append(work.Authors, model.Author{Name: author.Name})
	}

	return work, nil
}

// ListSubject fetches one page of works filed under subject.
func (o *OpenLibrary) ListSubject(ctx context.Context, subject string, limit, offset int) ([]model.WorkSummary, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var resp subjectResponse
	if err := o.getJSON(ctx, "/subjects/"+url.PathEscape(subject)+".json?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	works := make([]model.WorkSummary, 0, len(resp.Works))
	for _, w := range resp.Works {
		summary := model.WorkSummary{
			Key:     w.Key,
			Title:   w.Title,
			Subject: w.Subject,
			CoverID: w.CoverID,
			Authors: make([]model.Author, 0, len(w.Authors)),
		}
		if summary.Subject == nil {
			summary.Subject = []string{}
		}
		for _, a := range w.Authors {
			summary.Authors = append(summary.Authors, model.Author{Name: a.Name})
		}
		if w.CoverID != nil {
			summary.CoverURL = o.coverURL(*w.CoverID, "M")
		}
		works = append(works, summary)
	}

	return works, nil
}

func (o *OpenLibrary) coverURL(id int, size string) string {
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", o.coversURL, id, size)
}

func (o *OpenLibrary) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return model.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}

// description accepts both the plain string and the {"type","value"} text
// object forms.
func description(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value
	}
	return ""
}
