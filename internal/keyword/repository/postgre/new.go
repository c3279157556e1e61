package postgre

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	repo "videxcl-srv/internal/keyword/repository"
)

// implRepository implements keyword.Repository
type implRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

// New creates a new PostgreSQL repository for the keyword domain
func New(db *sql.DB) repo.Repository {
	return &implRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}
