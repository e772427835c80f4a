package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bidding-platform/internal/auctionerrors"
	model "bidding-platform/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const (
	opportunityColumns = "opportunity_id, title, lpa, nca, bng_unit_type, units_required, closing_date, status, winning_bid_id, winning_bid_amount, closed_at, created_at"
	bidColumns         = "bid_id, opportunity_id, user_id, amount, status, is_winning, created_at, updated_at"
	userColumns        = "user_id, first_name, last_name, company, email, is_admin"
)

// PostgresRepo is a Postgres-backed implementation of AuctionDB
type PostgresRepo struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewPostgresRepo opens a connection pool against the given database URL
func NewPostgresRepo(databaseURL string) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Migrate applies schema migrations from the given source, e.g.
// "file://migrations"
func (r *PostgresRepo) Migrate(sourceURL string) error {
	driver, err := pgmigrate.WithInstance(r.db, &pgmigrate.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	migrations, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	if err := migrations.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Close releases the connection pool
func (r *PostgresRepo) Close() error {
	return r.db.Close()
}

// CreateOpportunity stores a new opportunity
func (r *PostgresRepo) CreateOpportunity(opp model.Opportunity) error {
	query, args, err := r.sb.
		Insert("opportunities").
		Columns("opportunity_id", "title", "lpa", "nca", "bng_unit_type", "units_required", "closing_date", "status", "created_at").
		Values(opp.OpportunityID, opp.Title, opp.LPA, opp.NCA, opp.BNGUnitType, opp.UnitsRequired, opp.ClosingDate, opp.Status, opp.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create opportunity query: %w", err)
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("create opportunity %s: %w", opp.OpportunityID, err)
	}
	return nil
}

// GetOpportunity returns a single opportunity by id
func (r *PostgresRepo) GetOpportunity(opportunityID string) (model.Opportunity, error) {
	query, args, err := r.sb.
		Select(opportunityColumns).
		From("opportunities").
		Where(squirrel.Eq{"opportunity_id": opportunityID}).
		ToSql()
	if err != nil {
		return model.Opportunity{}, fmt.Errorf("build get opportunity query: %w", err)
	}

	opp, err := scanOpportunity(r.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Opportunity{}, fmt.Errorf("get opportunity %s: %w", opportunityID, auctionerrors.ErrOpportunityNotFound)
		}
		return model.Opportunity{}, fmt.Errorf("get opportunity %s: %w", opportunityID, err)
	}
	return opp, nil
}

// ListOpportunitiesByStatus returns all opportunities in the given status,
// or all opportunities when status is empty
func (r *PostgresRepo) ListOpportunitiesByStatus(status string) ([]model.Opportunity, error) {
	builder := r.sb.
		Select(opportunityColumns).
		From("opportunities").
		OrderBy("closing_date", "opportunity_id")
	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list opportunities query: %w", err)
	}
	return r.queryOpportunities(query, args...)
}

// ListOverdueOpportunities returns active opportunities whose closing date
// is at or before now
func (r *PostgresRepo) ListOverdueOpportunities(now time.Time) ([]model.Opportunity, error) {
	query, args, err := r.sb.
		Select(opportunityColumns).
		From("opportunities").
		Where(squirrel.Eq{"status": model.OpportunityStatusActive}).
		Where(squirrel.LtOrEq{"closing_date": now}).
		OrderBy("closing_date", "opportunity_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overdue opportunities query: %w", err)
	}
	return r.queryOpportunities(query, args...)
}

// ListOpportunitiesClosingBetween returns active opportunities closing
// within [from, to]
func (r *PostgresRepo) ListOpportunitiesClosingBetween(from, to time.Time) ([]model.Opportunity, error) {
	query, args, err := r.sb.
		Select(opportunityColumns).
		From("opportunities").
		Where(squirrel.Eq{"status": model.OpportunityStatusActive}).
		Where(squirrel.GtOrEq{"closing_date": from}).
		Where(squirrel.LtOrEq{"closing_date": to}).
		OrderBy("closing_date", "opportunity_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build closing-between query: %w", err)
	}
	return r.queryOpportunities(query, args...)
}

// ConditionalCloseOpportunity closes the opportunity iff it is still active.
// The WHERE clause carries the status guard, so exactly one concurrent
// caller can match the row.
func (r *PostgresRepo) ConditionalCloseOpportunity(opportunityID string, closedAt time.Time, winningBidID *string, winningBidAmount *int64) error {
	query, args, err := r.sb.
		Update("opportunities").
		Set("status", model.OpportunityStatusClosed).
		Set("closed_at", closedAt).
		Set("winning_bid_id", winningBidID).
		Set("winning_bid_amount", winningBidAmount).
		Where(squirrel.Eq{
			"opportunity_id": opportunityID,
			"status":         model.OpportunityStatusActive,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build conditional close query: %w", err)
	}

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("close opportunity %s: %w", opportunityID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("close opportunity %s: %w", opportunityID, err)
	}
	if affected == 0 {
		// distinguish a lost race from a missing row
		if _, err := r.GetOpportunity(opportunityID); err != nil {
			return err
		}
		return fmt.Errorf("close opportunity %s: %w", opportunityID, auctionerrors.ErrOpportunityClosed)
	}
	return nil
}

// RecordBidForOpportunity records a new bid against an opportunity
func (r *PostgresRepo) RecordBidForOpportunity(bid model.Bid) error {
	query, args, err := r.sb.
		Insert("bids").
		Columns("bid_id", "opportunity_id", "user_id", "amount", "status", "is_winning", "created_at", "updated_at").
		Values(bid.BidID, bid.OpportunityID, bid.UserID, bid.Amount, bid.Status, bid.IsWinning, bid.CreatedAt, bid.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build record bid query: %w", err)
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("record bid for opportunity %s: %w", bid.OpportunityID, err)
	}
	return nil
}

// GetBid returns a single bid by id
func (r *PostgresRepo) GetBid(bidID string) (model.Bid, error) {
	query, args, err := r.sb.
		Select(bidColumns).
		From("bids").
		Where(squirrel.Eq{"bid_id": bidID}).
		ToSql()
	if err != nil {
		return model.Bid{}, fmt.Errorf("build get bid query: %w", err)
	}

	bid, err := scanBid(r.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
		}
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}
	return bid, nil
}

// GetBidsByOpportunity returns all bids for an opportunity, including
// withdrawn ones, reflecting current status rather than a cached snapshot
func (r *PostgresRepo) GetBidsByOpportunity(opportunityID string) ([]model.Bid, error) {
	query, args, err := r.sb.
		Select(bidColumns).
		From("bids").
		Where(squirrel.Eq{"opportunity_id": opportunityID}).
		OrderBy("created_at", "bid_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bids by opportunity query: %w", err)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("get bids for opportunity %s: %w", opportunityID, err)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid for opportunity %s: %w", opportunityID, err)
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

// GetActiveBidByUser returns the user's live bid on an opportunity, if any
func (r *PostgresRepo) GetActiveBidByUser(opportunityID, userID string) (model.Bid, error) {
	query, args, err := r.sb.
		Select(bidColumns).
		From("bids").
		Where(squirrel.Eq{
			"opportunity_id": opportunityID,
			"user_id":        userID,
			"status":         model.BidStatusActive,
		}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Bid{}, fmt.Errorf("build active bid query: %w", err)
	}

	bid, err := scanBid(r.db.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bid{}, fmt.Errorf("get active bid for user %s on opportunity %s: %w", userID, opportunityID, auctionerrors.ErrBidNotFound)
		}
		return model.Bid{}, fmt.Errorf("get active bid for user %s on opportunity %s: %w", userID, opportunityID, err)
	}
	return bid, nil
}

// UpdateBidAmount replaces the amount of an existing bid
func (r *PostgresRepo) UpdateBidAmount(bidID string, amount int64, updatedAt time.Time) error {
	return r.updateBid(bidID, map[string]interface{}{
		"amount":     amount,
		"updated_at": updatedAt,
	})
}

// WithdrawBid flips a bid's status to withdrawn
func (r *PostgresRepo) WithdrawBid(bidID string, updatedAt time.Time) error {
	return r.updateBid(bidID, map[string]interface{}{
		"status":     model.BidStatusWithdrawn,
		"updated_at": updatedAt,
	})
}

// MarkBidWinning flags the selected bid after a closure
func (r *PostgresRepo) MarkBidWinning(bidID string, updatedAt time.Time) error {
	return r.updateBid(bidID, map[string]interface{}{
		"is_winning": true,
		"updated_at": updatedAt,
	})
}

func (r *PostgresRepo) updateBid(bidID string, fields map[string]interface{}) error {
	query, args, err := r.sb.
		Update("bids").
		SetMap(fields).
		Where(squirrel.Eq{"bid_id": bidID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update bid query: %w", err)
	}

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("update bid %s: %w", bidID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update bid %s: %w", bidID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return nil
}

// GetUser returns a single user by id
func (r *PostgresRepo) GetUser(userID string) (model.User, error) {
	query, args, err := r.sb.
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return model.User{}, fmt.Errorf("build get user query: %w", err)
	}

	var user model.User
	err = r.db.QueryRow(query, args...).Scan(&user.UserID, &user.FirstName, &user.LastName, &user.Company, &user.Email, &user.IsAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// ListUsers returns users, optionally filtered by their admin flag
func (r *PostgresRepo) ListUsers(isAdmin *bool) ([]model.User, error) {
	builder := r.sb.
		Select(userColumns).
		From("users").
		OrderBy("user_id")
	if isAdmin != nil {
		builder = builder.Where(squirrel.Eq{"is_admin": *isAdmin})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.UserID, &user.FirstName, &user.LastName, &user.Company, &user.Email, &user.IsAdmin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// RecordEmailLog appends a delivery attempt to the audit trail
func (r *PostgresRepo) RecordEmailLog(entry model.EmailLog) error {
	query, args, err := r.sb.
		Insert("email_logs").
		Columns("log_id", "type", "recipient_email", "subject", "opportunity_id", "bid_id", "status", "error", "sent_at").
		Values(entry.LogID, entry.Type, entry.RecipientEmail, entry.Subject, nullIfEmpty(entry.OpportunityID), nullIfEmpty(entry.BidID), entry.Status, entry.Error, entry.SentAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build email log query: %w", err)
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("record email log for %s: %w", entry.RecipientEmail, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOpportunity(row rowScanner) (model.Opportunity, error) {
	var opp model.Opportunity
	var winningBidID sql.NullString
	var winningBidAmount sql.NullInt64
	var closedAt sql.NullTime

	err := row.Scan(&opp.OpportunityID, &opp.Title, &opp.LPA, &opp.NCA, &opp.BNGUnitType,
		&opp.UnitsRequired, &opp.ClosingDate, &opp.Status, &winningBidID, &winningBidAmount,
		&closedAt, &opp.CreatedAt)
	if err != nil {
		return model.Opportunity{}, err
	}

	if winningBidID.Valid {
		opp.WinningBidID = &winningBidID.String
	}
	if winningBidAmount.Valid {
		opp.WinningBidAmount = &winningBidAmount.Int64
	}
	if closedAt.Valid {
		opp.ClosedAt = &closedAt.Time
	}
	return opp, nil
}

func scanBid(row rowScanner) (model.Bid, error) {
	var bid model.Bid
	err := row.Scan(&bid.BidID, &bid.OpportunityID, &bid.UserID, &bid.Amount,
		&bid.Status, &bid.IsWinning, &bid.CreatedAt, &bid.UpdatedAt)
	return bid, err
}

func (r *PostgresRepo) queryOpportunities(query string, args ...interface{}) ([]model.Opportunity, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query opportunities: %w", err)
	}
	defer rows.Close()

	opps := make([]model.Opportunity, 0)
	for rows.Next() {
		opp, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		opps = append(opps, opp)
	}
	return opps, rows.Err()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
