package entity

import (
	"encoding/json"
	"errors"
	"time"
)

// Template validation errors.
var (
	ErrInvalidTemplateTitle  = errors.New("template title cannot be empty")
	ErrInvalidTemplateConfig = errors.New("template config must be a JSON object")
	ErrTemplateNotFound      = errors.New("template not found")
)

// Template is a saved combo design: a named snapshot of the full widget
// configuration. At most one template is active at a time.
type Template struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Config    json.RawMessage `json:"config"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewTemplate creates a template snapshot from the current design config.
func NewTemplate(title string, config json.RawMessage) *Template {
	return &Template{
		Title:     title,
		Config:    config,
		CreatedAt: time.Now(),
	}
}

// Validate checks the template is storable.
func (t *Template) Validate() error {
	if t.Title == "" {
		return ErrInvalidTemplateTitle
	}
	var probe map[string]any
	if err := json.Unmarshal(t.Config, &probe); err != nil {
		return ErrInvalidTemplateConfig
	}
	return nil
}
