package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/calebmoss/deckgen/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
// Workflow sections (brainstorms, outline, deck, formatting, export)
// are stored as JSON payload columns.
type SQLiteProjectRepo struct {
	db *sql.DB
}

func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

const projectColumns = `id, title, status, brainstorms, outline, deck, formatting, export, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	payloads, err := marshalPayloads(p)
	if err != nil {
		return err
	}
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Title,
		string(p.Status),
		payloads.brainstorms,
		payloads.outline,
		payloads.deck,
		payloads.formatting,
		payloads.export,
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) GetByIDPrefix(ctx context.Context, prefix string) (*domain.Project, error) {
	if prefix == "" {
		return nil, ErrProjectNotFound
	}
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id LIKE ? ORDER BY created_at LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("resolving project prefix: %w", err)
	}
	defer rows.Close()

	var matches []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	switch len(matches) {
	case 0:
		return nil, ErrProjectNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("ambiguous project id %q", prefix)
	}
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	payloads, err := marshalPayloads(p)
	if err != nil {
		return err
	}
	query := `UPDATE projects SET title = ?, status = ?, brainstorms = ?, outline = ?,
		deck = ?, formatting = ?, export = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Title,
		string(p.Status),
		payloads.brainstorms,
		payloads.outline,
		payloads.deck,
		payloads.formatting,
		payloads.export,
		p.UpdatedAt.UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

type projectPayloads struct {
	brainstorms interface{}
	outline     interface{}
	deck        interface{}
	formatting  interface{}
	export      interface{}
}

func marshalPayloads(p *domain.Project) (projectPayloads, error) {
	var out projectPayloads
	var err error

	if len(p.Brainstorms) > 0 {
		if out.brainstorms, err = marshalJSON(p.Brainstorms); err != nil {
			return out, fmt.Errorf("encoding brainstorms: %w", err)
		}
	}
	if p.Outline != nil {
		if out.outline, err = marshalJSON(p.Outline); err != nil {
			return out, fmt.Errorf("encoding outline: %w", err)
		}
	}
	if p.Deck != nil {
		if out.deck, err = marshalJSON(p.Deck); err != nil {
			return out, fmt.Errorf("encoding deck: %w", err)
		}
	}
	if p.Formatting != nil {
		if out.formatting, err = marshalJSON(p.Formatting); err != nil {
			return out, fmt.Errorf("encoding formatting: %w", err)
		}
	}
	if p.Export != nil {
		if out.export, err = marshalJSON(p.Export); err != nil {
			return out, fmt.Errorf("encoding export record: %w", err)
		}
	}
	return out, nil
}

func marshalJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var statusStr, createdAtStr, updatedAtStr string
	var brainstorms, outline, deckCol, formatting, export sql.NullString

	err := row.Scan(
		&p.ID, &p.Title, &statusStr,
		&brainstorms, &outline, &deckCol, &formatting, &export,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(statusStr)

	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	if brainstorms.Valid && brainstorms.String != "" {
		if err := json.Unmarshal([]byte(brainstorms.String), &p.Brainstorms); err != nil {
			return nil, fmt.Errorf("decoding brainstorms: %w", err)
		}
	}
	if err := unmarshalSection(outline, &p.Outline, "outline"); err != nil {
		return nil, err
	}
	if err := unmarshalSection(deckCol, &p.Deck, "deck"); err != nil {
		return nil, err
	}
	if err := unmarshalSection(formatting, &p.Formatting, "formatting"); err != nil {
		return nil, err
	}
	if err := unmarshalSection(export, &p.Export, "export record"); err != nil {
		return nil, err
	}

	return &p, nil
}

func unmarshalSection[T any](col sql.NullString, dst **T, name string) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	v := new(T)
	if err := json.Unmarshal([]byte(col.String), v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	*dst = v
	return nil
}
