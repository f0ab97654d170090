package forms

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saluddigital/portal/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Form Repository ===========

type formRepoPG struct{ pool *pgxpool.Pool }

func NewFormRepoPG(pool *pgxpool.Pool) FormRepository {
	return &formRepoPG{pool: pool}
}

func (r *formRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const formCols = `id, title, description, schema_json, created_at`

func (r *formRepoPG) scanForm(row pgx.Row) (*Form, error) {
	var f Form
	err := row.Scan(&f.ID, &f.Title, &f.Description, &f.SchemaJSON, &f.CreatedAt)
	return &f, err
}

func (r *formRepoPG) List(ctx context.Context) ([]*Form, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+formCols+` FROM forms ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Form
	for rows.Next() {
		f, err := r.scanForm(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

func (r *formRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Form, error) {
	return r.scanForm(r.conn(ctx).QueryRow(ctx, `SELECT `+formCols+` FROM forms WHERE id = $1`, id))
}

// =========== Submission Repository ===========

type submissionRepoPG struct{ pool *pgxpool.Pool }

func NewSubmissionRepoPG(pool *pgxpool.Pool) SubmissionRepository {
	return &submissionRepoPG{pool: pool}
}

func (r *submissionRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *submissionRepoPG) Create(ctx context.Context, sub *Submission) error {
	sub.ID = uuid.New()
	// created_at is stamped by the database so chronological order matches
	// storage order.
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO submissions (id, user_id, form_id, answers_json)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		sub.ID, sub.UserID, sub.FormID, sub.Answers).Scan(&sub.CreatedAt)
}
