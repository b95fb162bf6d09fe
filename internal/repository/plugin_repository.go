//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"plughub/internal/model"
	"plughub/pkg/snowflake"
)

// PluginRepository defines the interface for plugin catalog storage.
type PluginRepository interface {
	Create(ctx context.Context, name, version string, description *string, filePath string) (*model.Plugin, error)
	GetByID(ctx context.Context, id int64) (*model.Plugin, error)
	List(ctx context.Context) ([]model.Plugin, error)
}

type pluginRepository struct {
	db *sql.DB
}

// NewPluginRepository creates a new plugin repository.
func NewPluginRepository(db *sql.DB) PluginRepository {
	return &pluginRepository{db: db}
}

// Create inserts a new plugin row.
func (r *pluginRepository) Create(ctx context.Context, name, version string, description *string, filePath string) (*model.Plugin, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	nowStr := formatTime(now)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO plugins (id, name, version, description, file_path, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, name, version, nullableString(description), filePath, nowStr, nowStr)
	if err != nil {
		return nil, err
	}

	return &model.Plugin{
		ID:          id,
		Name:        name,
		Version:     version,
		Description: description,
		FilePath:    filePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetByID retrieves a plugin by id. Returns nil, nil when no row exists.
func (r *pluginRepository) GetByID(ctx context.Context, id int64) (*model.Plugin, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, version, description, file_path, created_at, updated_at FROM plugins WHERE id = ?
	`, id)

	plugin, err := scanPlugin(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return plugin, nil
}

// List retrieves all plugins ordered by name and version.
func (r *pluginRepository) List(ctx context.Context) ([]model.Plugin, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, version, description, file_path, created_at, updated_at FROM plugins ORDER BY name, version
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plugins []model.Plugin
	for rows.Next() {
		plugin, err := scanPlugin(rows.Scan)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, *plugin)
	}
	return plugins, rows.Err()
}

func scanPlugin(scan func(dest ...any) error) (*model.Plugin, error) {
	var p model.Plugin
	var description sql.NullString
	var createdAt, updatedAt string
	if err := scan(&p.ID, &p.Name, &p.Version, &description, &p.FilePath, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		p.Description = &description.String
	}
	p.CreatedAt, _ = parseTime(createdAt)
	p.UpdatedAt, _ = parseTime(updatedAt)
	return &p, nil
}
