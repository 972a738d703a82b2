package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/florentbo/umpire_manager/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrMatchNotFound      error = errors.New("match not found")
	ErrAssessmentNotFound error = errors.New("assessment not found")
	ErrReportNotFound     error = errors.New("report not found")
	// ErrDraftExists means a draft for the same (match, assessor) pair is
	// already stored. The invariant is enforced by a partial unique index.
	ErrDraftExists error = errors.New("a draft for this match and assessor already exists")
	// ErrReportExists means the match already has a published assessment.
	// A match is reported at most once; the invariant is enforced by a
	// partial unique index.
	ErrReportExists error = errors.New("a published assessment already exists for this match")
	// ErrAssessmentNotDraft means the assessment row exists but has left the
	// draft state, so draft-only writes can no longer touch it.
	ErrAssessmentNotDraft error = errors.New("assessment is no longer a draft")
)

func New(ctx context.Context, connString string) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool}, nil
}

type postgresDB struct {
	pool *pgxpool.Pool
}

func (db *postgresDB) SaveMatch(ctx context.Context, m *model.MatchInfo) error {
	const query = `INSERT INTO matches (
			id, home_team, away_team, division, match_date, match_time,
			umpire_a_id, umpire_a_name, umpire_b_id, umpire_b_name, manager_id
		) VALUES (
			@id, @homeTeam, @awayTeam, @division, @matchDate, @matchTime,
			@umpireAID, @umpireAName, @umpireBID, @umpireBName, @managerID
		) ON CONFLICT (id) DO UPDATE SET
			home_team=@homeTeam,
			away_team=@awayTeam,
			division=@division,
			match_date=@matchDate,
			match_time=@matchTime,
			umpire_a_id=@umpireAID,
			umpire_a_name=@umpireAName,
			umpire_b_id=@umpireBID,
			umpire_b_name=@umpireBName,
			manager_id=@managerID`

	args := pgx.NamedArgs{
		"id":          m.ID,
		"homeTeam":    m.HomeTeam,
		"awayTeam":    m.AwayTeam,
		"division":    m.Division,
		"matchDate":   m.Date,
		"matchTime":   m.Time,
		"umpireAID":   m.UmpireAID,
		"umpireAName": m.UmpireAName,
		"umpireBID":   m.UmpireBID,
		"umpireBName": m.UmpireBName,
		"managerID":   m.ManagerID,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving match (%s): %w", m.ID, err)
	}
	return nil
}

const matchColumns = `id, home_team, away_team, division, match_date, match_time,
			umpire_a_id, umpire_a_name, umpire_b_id, umpire_b_name, manager_id`

func (db *postgresDB) GetMatch(ctx context.Context, id string) (*model.MatchInfo, error) {
	query := fmt.Sprintf(`SELECT %s FROM matches WHERE id=@id`, matchColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("error scanning match %s: %w", id, err)
	}
	return m, nil
}

func (db *postgresDB) GetMatchesByManager(ctx context.Context, managerID string) ([]model.MatchInfo, error) {
	query := fmt.Sprintf(`SELECT %s FROM matches WHERE manager_id=@managerID`, matchColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"managerID": managerID})
	if err != nil {
		return nil, fmt.Errorf("error loading matches for manager %s: %w", managerID, err)
	}
	defer rows.Close()

	results := make([]model.MatchInfo, 0, 8)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *m)
	}
	return results, rows.Err()
}

func scanMatch(row pgx.Row) (*model.MatchInfo, error) {
	var m model.MatchInfo
	err := row.Scan(
		&m.ID,
		&m.HomeTeam,
		&m.AwayTeam,
		&m.Division,
		&m.Date,
		&m.Time,
		&m.UmpireAID,
		&m.UmpireAName,
		&m.UmpireBID,
		&m.UmpireBName,
		&m.ManagerID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (db *postgresDB) SaveDraft(ctx context.Context, a *model.Assessment) error {
	if err := db.insertAssessment(ctx, db.pool, a); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDraftExists
		}
		return fmt.Errorf("error saving draft for match %s: %w", a.MatchID, err)
	}
	return nil
}

const assessmentColumns = `id, match_id, assessor_id, level, status, umpire_a, umpire_b, created, updated`

func (db *postgresDB) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assessments WHERE id=@id`, assessmentColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	a, err := scanAssessment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("error scanning assessment %s: %w", id, err)
	}
	return a, nil
}

func (db *postgresDB) GetAssessmentForMatchByAssessor(ctx context.Context, matchID, assessorID string) (*model.Assessment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assessments
			WHERE match_id=@matchID AND assessor_id=@assessorID
			ORDER BY created DESC LIMIT 1`, assessmentColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"matchID": matchID, "assessorID": assessorID})
	a, err := scanAssessment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("error scanning assessment for match %s: %w", matchID, err)
	}
	return a, nil
}

func (db *postgresDB) GetDraftByMatchAndAssessor(ctx context.Context, matchID, assessorID string) (*model.Assessment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assessments
			WHERE match_id=@matchID AND assessor_id=@assessorID AND status='DRAFT'`, assessmentColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"matchID": matchID, "assessorID": assessorID})
	a, err := scanAssessment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("error scanning draft for match %s: %w", matchID, err)
	}
	return a, nil
}

func (db *postgresDB) UpdateDraft(ctx context.Context, a *model.Assessment) error {
	const query = `UPDATE assessments
		SET umpire_a=@umpireA,
			umpire_b=@umpireB,
			updated=@updated
		WHERE id=@id AND status='DRAFT'`

	args, err := namedArgsForAssessmentUpdate(a)
	if err != nil {
		return err
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating draft (%s): %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return db.missingDraftErr(ctx, a.ID)
	}
	return nil
}

func (db *postgresDB) DeleteDraft(ctx context.Context, id string) error {
	const query = `DELETE FROM assessments WHERE id=@id AND status='DRAFT'`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting draft (%s): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return db.missingDraftErr(ctx, id)
	}
	return nil
}

// missingDraftErr distinguishes why a draft-only write touched no rows. A
// draft that raced with a publish must surface as a conflict, not as a
// missing record.
func (db *postgresDB) missingDraftErr(ctx context.Context, id string) error {
	var status string
	err := db.pool.QueryRow(ctx, `SELECT status FROM assessments WHERE id=@id`,
		pgx.NamedArgs{"id": id}).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAssessmentNotFound
		}
		return fmt.Errorf("error checking assessment %s: %w", id, err)
	}
	return ErrAssessmentNotDraft
}

func (db *postgresDB) ListPublishedAssessments(ctx context.Context) ([]model.Assessment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assessments WHERE status='PUBLISHED' ORDER BY created`, assessmentColumns)
	return db.listAssessments(ctx, query, pgx.NamedArgs{})
}

func (db *postgresDB) ListPublishedAssessmentsByAssessor(ctx context.Context, assessorID string) ([]model.Assessment, error) {
	query := fmt.Sprintf(`SELECT %s FROM assessments
			WHERE status='PUBLISHED' AND assessor_id=@assessorID ORDER BY created`, assessmentColumns)
	return db.listAssessments(ctx, query, pgx.NamedArgs{"assessorID": assessorID})
}

func (db *postgresDB) listAssessments(ctx context.Context, query string, args pgx.NamedArgs) ([]model.Assessment, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing assessments: %w", err)
	}
	defer rows.Close()

	results := make([]model.Assessment, 0, 16)
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *a)
	}
	return results, rows.Err()
}

func (db *postgresDB) PublishDraft(ctx context.Context, a *model.Assessment, r *model.MatchReport) error {
	const query = `UPDATE assessments
		SET status='PUBLISHED',
			umpire_a=@umpireA,
			umpire_b=@umpireB,
			updated=@updated
		WHERE id=@id AND status='DRAFT'`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args, err := namedArgsForAssessmentUpdate(a)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, query, args)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrReportExists
		}
		return fmt.Errorf("error publishing draft (%s): %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return db.missingDraftErr(ctx, a.ID)
	}

	if err := insertReport(ctx, tx, r); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing publish transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) SavePublished(ctx context.Context, a *model.Assessment, r *model.MatchReport) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := db.insertAssessment(ctx, tx, a); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrReportExists
		}
		return fmt.Errorf("error saving published assessment for match %s: %w", a.MatchID, err)
	}
	if err := insertReport(ctx, tx, r); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing publish transaction: %w", err)
	}
	return nil
}

const reportQuery = `SELECT r.id, r.match_snapshot, r.submitted,
			a.id, a.match_id, a.assessor_id, a.level, a.status, a.umpire_a, a.umpire_b, a.created, a.updated
		FROM match_reports r JOIN assessments a ON a.id = r.assessment_id`

func (db *postgresDB) GetReport(ctx context.Context, id string) (*model.MatchReport, error) {
	row := db.pool.QueryRow(ctx, reportQuery+` WHERE r.id=@id`, pgx.NamedArgs{"id": id})
	r, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("error scanning report %s: %w", id, err)
	}
	return r, nil
}

func (db *postgresDB) GetReportByMatch(ctx context.Context, matchID string) (*model.MatchReport, error) {
	row := db.pool.QueryRow(ctx, reportQuery+` WHERE a.match_id=@matchID`, pgx.NamedArgs{"matchID": matchID})
	r, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("error scanning report for match %s: %w", matchID, err)
	}
	return r, nil
}

func (db *postgresDB) ListReports(ctx context.Context) ([]model.MatchReport, error) {
	return db.listReports(ctx, reportQuery, pgx.NamedArgs{})
}

func (db *postgresDB) ListReportsByAssessor(ctx context.Context, assessorID string) ([]model.MatchReport, error) {
	return db.listReports(ctx, reportQuery+` WHERE a.assessor_id=@assessorID`, pgx.NamedArgs{"assessorID": assessorID})
}

func (db *postgresDB) listReports(ctx context.Context, query string, args pgx.NamedArgs) ([]model.MatchReport, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", err)
	}
	defer rows.Close()

	results := make([]model.MatchReport, 0, 16)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, rows.Err()
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func (db *postgresDB) insertAssessment(ctx context.Context, e execer, a *model.Assessment) error {
	const query = `INSERT INTO assessments (
			id, match_id, assessor_id, level, status, umpire_a, umpire_b, created, updated
		) VALUES (
			@id, @matchID, @assessorID, @level, @status, @umpireA, @umpireB, @created, @updated
		)`

	umpireA, umpireB, err := marshalUmpires(a)
	if err != nil {
		return err
	}
	args := pgx.NamedArgs{
		"id":         a.ID,
		"matchID":    a.MatchID,
		"assessorID": a.AssessorID,
		"level":      a.Level,
		"status":     string(a.Status),
		"umpireA":    umpireA,
		"umpireB":    umpireB,
		"created": pgtype.Timestamptz{
			Time:  a.Created,
			Valid: true,
		},
		"updated": pgtype.Timestamptz{
			Time:  a.Updated,
			Valid: !a.Updated.IsZero(),
		},
	}
	_, err = e.Exec(ctx, query, args)
	return err
}

func insertReport(ctx context.Context, e execer, r *model.MatchReport) error {
	const query = `INSERT INTO match_reports (
			id, assessment_id, match_snapshot, submitted
		) VALUES (
			@id, @assessmentID, @matchSnapshot, @submitted
		)`

	snapshot, err := json.Marshal(r.Match)
	if err != nil {
		return fmt.Errorf("error encoding match snapshot: %w", err)
	}
	args := pgx.NamedArgs{
		"id":            r.ID,
		"assessmentID":  r.Assessment.ID,
		"matchSnapshot": string(snapshot),
		"submitted": pgtype.Timestamptz{
			Time:  r.Submitted,
			Valid: true,
		},
	}
	if _, err := e.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting report (%s): %w", r.ID, err)
	}
	return nil
}

func namedArgsForAssessmentUpdate(a *model.Assessment) (pgx.NamedArgs, error) {
	umpireA, umpireB, err := marshalUmpires(a)
	if err != nil {
		return nil, err
	}
	return pgx.NamedArgs{
		"id":      a.ID,
		"umpireA": umpireA,
		"umpireB": umpireB,
		"updated": pgtype.Timestamptz{
			Time:  a.Updated,
			Valid: !a.Updated.IsZero(),
		},
	}, nil
}

func marshalUmpires(a *model.Assessment) (string, string, error) {
	umpireA, err := json.Marshal(a.UmpireA)
	if err != nil {
		return "", "", fmt.Errorf("error encoding umpire A assessment: %w", err)
	}
	umpireB, err := json.Marshal(a.UmpireB)
	if err != nil {
		return "", "", fmt.Errorf("error encoding umpire B assessment: %w", err)
	}
	return string(umpireA), string(umpireB), nil
}

func scanAssessment(row pgx.Row) (*model.Assessment, error) {
	var a model.Assessment
	var status string
	var umpireA, umpireB []byte
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&a.ID,
		&a.MatchID,
		&a.AssessorID,
		&a.Level,
		&status,
		&umpireA,
		&umpireB,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	a.Status = model.AssessmentStatus(status)
	a.Created = created.Time
	if updated.Valid {
		a.Updated = updated.Time
	}
	if err := json.Unmarshal(umpireA, &a.UmpireA); err != nil {
		return nil, fmt.Errorf("error decoding umpire A assessment: %w", err)
	}
	if err := json.Unmarshal(umpireB, &a.UmpireB); err != nil {
		return nil, fmt.Errorf("error decoding umpire B assessment: %w", err)
	}
	return &a, nil
}

func scanReport(row pgx.Row) (*model.MatchReport, error) {
	var r model.MatchReport
	var snapshot []byte
	var submitted pgtype.Timestamptz
	var a model.Assessment
	var status string
	var umpireA, umpireB []byte
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&r.ID,
		&snapshot,
		&submitted,
		&a.ID,
		&a.MatchID,
		&a.AssessorID,
		&a.Level,
		&status,
		&umpireA,
		&umpireB,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	r.Submitted = submitted.Time
	if err := json.Unmarshal(snapshot, &r.Match); err != nil {
		return nil, fmt.Errorf("error decoding match snapshot: %w", err)
	}
	a.Status = model.AssessmentStatus(status)
	a.Created = created.Time
	if updated.Valid {
		a.Updated = updated.Time
	}
	if err := json.Unmarshal(umpireA, &a.UmpireA); err != nil {
		return nil, fmt.Errorf("error decoding umpire A assessment: %w", err)
	}
	if err := json.Unmarshal(umpireB, &a.UmpireB); err != nil {
		return nil, fmt.Errorf("error decoding umpire B assessment: %w", err)
	}
	r.Assessment = a
	return &r, nil
}
