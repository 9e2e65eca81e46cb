package domain

import "time"

// Project is the persistent record for one content-creation run. Each
// workflow step fills in its own section; the repository serializes the
// sections as JSON payload columns.
type Project struct {
	ID          string
	Title       string
	Status      ProjectStatus
	Brainstorms map[string]Brainstorm `json:"brainstorms"`
	Outline     *Outline              `json:"outline,omitempty"`
	Deck        *Deck                 `json:"deck,omitempty"`
	Formatting  *Formatting           `json:"formatting,omitempty"`
	Export      *ExportRecord         `json:"export,omitempty"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Brainstorm holds one model's brainstorming result for a topic.
type Brainstorm struct {
	Topic       string    `json:"topic"`
	Assumptions []string  `json:"assumptions,omitempty"`
	Result      string    `json:"result"`
	Model       string    `json:"model"`
	CreatedAt   time.Time `json:"created_at"`
}

// Outline is the intermediate text describing planned slide sections.
type Outline struct {
	Content   string        `json:"content"`
	Source    OutlineSource `json:"source"`
	Model     string        `json:"model,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// Formatting records the style options applied to the deck.
type Formatting struct {
	BoldKeyTerms   bool      `json:"bold_key_terms"`
	HighlightColor string    `json:"highlight_color,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ExportRecord records the most recent export of the deck.
type ExportRecord struct {
	Path      string       `json:"path"`
	Format    ExportFormat `json:"format"`
	CreatedAt time.Time    `json:"created_at"`
}

// DisplayID returns a short identifier for display, truncating the
// UUID to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
