package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/hrboard/pkg/candidate"
)

// CandidateRepository хранит карточки кандидатов в таблице candidates.
// The schema is owned by the goose migrations in pkg/storage/postgres.
type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

const candidateColumns = `id, data, evaluation, overall_score, recommendation, applied_role, stage, created_at`

func (r *CandidateRepository) Create(ctx context.Context, rec candidate.Record) (int64, error) {
	data, err := json.Marshal(rec.Candidate)
	if err != nil {
		return 0, fmt.Errorf("%w: encode candidate: %v", candidate.ErrStoreIO, err)
	}
	var evaluation *string
	if rec.Evaluation != nil {
		b, err := json.Marshal(rec.Evaluation)
		if err != nil {
			return 0, fmt.Errorf("%w: encode evaluation: %v", candidate.ErrStoreIO, err)
		}
		s := string(b)
		evaluation = &s
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	c := rec.Candidate
	var id int64
	err = r.pool.QueryRow(ctx, `
INSERT INTO candidates (
	first_name, family_name, email, phone, summary, total_years_experience,
	data, evaluation, overall_score, recommendation, applied_role, stage, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id
`, c.Name.First, c.Name.Family, c.PrimaryEmail(), c.PrimaryPhone(), c.Summary, c.TotalYearsExperience,
		string(data), evaluation, rec.OverallScore, rec.Recommendation, rec.AppliedRole, string(rec.Stage), rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: insert candidate: %v", candidate.ErrStoreIO, err)
	}
	return id, nil
}

func (r *CandidateRepository) List(ctx context.Context, role string) ([]candidate.Record, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if role == "" {
		rows, err = r.pool.Query(ctx, `
SELECT `+candidateColumns+`
FROM candidates
ORDER BY created_at DESC, id DESC
`)
	} else {
		rows, err = r.pool.Query(ctx, `
SELECT `+candidateColumns+`
FROM candidates WHERE applied_role = $1
ORDER BY created_at DESC, id DESC
`, role)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list candidates: %v", candidate.ErrStoreIO, err)
	}
	return collect(rows)
}

func (r *CandidateRepository) Get(ctx context.Context, id int64) (candidate.Record, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Record{}, candidate.ErrNotFound
		}
		return candidate.Record{}, fmt.Errorf("%w: get candidate: %v", candidate.ErrStoreIO, err)
	}
	return rec, nil
}

func (r *CandidateRepository) UpdateStage(ctx context.Context, id int64, stage candidate.Stage) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE candidates SET stage = $1 WHERE id = $2`, string(stage), id)
	if err != nil {
		return fmt.Errorf("%w: update stage: %v", candidate.ErrStoreIO, err)
	}
	if cmd.RowsAffected() == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

func (r *CandidateRepository) Top(ctx context.Context, limit int) ([]candidate.Record, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+candidateColumns+`
FROM candidates
WHERE overall_score > 0
ORDER BY overall_score DESC, created_at DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: top candidates: %v", candidate.ErrStoreIO, err)
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]candidate.Record, error) {
	defer rows.Close()
	res := []candidate.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan candidate: %v", candidate.ErrStoreIO, err)
		}
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read candidates: %v", candidate.ErrStoreIO, err)
	}
	return res, nil
}

func scanRecord(row pgx.Row) (candidate.Record, error) {
	var (
		rec        candidate.Record
		data       string
		evaluation *string
		stage      string
		created    time.Time
	)
	if err := row.Scan(&rec.ID, &data, &evaluation, &rec.OverallScore, &rec.Recommendation, &rec.AppliedRole, &stage, &created); err != nil {
		return candidate.Record{}, err
	}
	if err := json.Unmarshal([]byte(data), &rec.Candidate); err != nil {
		return candidate.Record{}, fmt.Errorf("decode candidate %d: %w", rec.ID, err)
	}
	if evaluation != nil {
		var ev candidate.Evaluation
		if err := json.Unmarshal([]byte(*evaluation), &ev); err != nil {
			return candidate.Record{}, fmt.Errorf("decode evaluation %d: %w", rec.ID, err)
		}
		rec.Evaluation = &ev
	}
	rec.Stage = candidate.Stage(stage)
	if !rec.Stage.Valid() {
		rec.Stage = candidate.InitialStage()
	}
	rec.CreatedAt = created.UTC()
	return rec, nil
}
