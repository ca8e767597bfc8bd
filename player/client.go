package player

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Client talks to the iLearn API for the two I/O operations the player
// needs: loading a course's ordered section list and persisting a newly
// authored section. Everything else the player does is in-memory.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for the given API base URL and bearer token
func NewClient(baseURL, token string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(token),
	}
}

type sectionRecord struct {
	ID          uint   `json:"ID"`
	Title       string `json:"title"`
	ContentType string `json:"content_type"`
	ContentData string `json:"content_data"`
}

type sectionsEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Sections []sectionRecord `json:"sections"`
	} `json:"data"`
}

// FetchSections loads the ordered section list for a course
func (c *Client) FetchSections(courseID uint) ([]Section, error) {
	var env sectionsEnvelope

	resp, err := c.http.R().
		SetResult(&env).
		Get(fmt.Sprintf("/api/courses/%d/sections", courseID))
	if err != nil {
		return nil, fmt.Errorf("failed to load course content: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to load course content: %s", resp.Status())
	}

	sections := make([]Section, 0, len(env.Data.Sections))
	for _, rec := range env.Data.Sections {
		sections = append(sections, Section{
			ID:          rec.ID,
			Title:       rec.Title,
			ContentType: rec.ContentType,
			ContentData: rec.ContentData,
		})
	}
	return sections, nil
}

// LoadCourse fetches a course's sections and opens a player session on them
func (c *Client) LoadCourse(courseID uint) (*Session, error) {
	sections, err := c.FetchSections(courseID)
	if err != nil {
		return nil, err
	}
	return NewSession(sections), nil
}

// SaveSection persists an authored section. Quiz content is expected to be
// already validated and serialized by the caller.
func (c *Client) SaveSection(courseID uint, title, contentType, contentData string) error {
	var env sectionsEnvelope

	resp, err := c.http.R().
		SetBody(map[string]string{
			"title":        title,
			"content_type": contentType,
			"content_data": contentData,
		}).
		SetError(&env).
		Post(fmt.Sprintf("/api/courses/%d/sections", courseID))
	if err != nil {
		return fmt.Errorf("failed to save section: %w", err)
	}
	if !resp.IsSuccess() {
		if env.Message != "" {
			return fmt.Errorf("failed to save section: %s", env.Message)
		}
		return fmt.Errorf("failed to save section: %s", resp.Status())
	}
	return nil
}
