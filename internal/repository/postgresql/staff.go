package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/simon1400/barbitch-admin/internal/domain/staff"
	"github.com/simon1400/barbitch-admin/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `id, name, noona_employee_id, excess_threshold, primary_track, excluded_categories, created_at, updated_at`

func scanMember(row pgx.Row) (staff.Member, error) {
	var m staff.Member
	var categories []string
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.NoonaEmployeeID,
		&m.ExcessThreshold,
		&m.PrimaryTrack,
		&categories,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return staff.Member{}, err
	}
	for _, c := range categories {
		m.ExcludedCategories = append(m.ExcludedCategories, staff.Category(c))
	}
	return m, nil
}

func categoryStrings(categories []staff.Category) []string {
	result := make([]string, 0, len(categories))
	for _, c := range categories {
		result = append(result, string(c))
	}
	return result
}

// List implements staff.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context) ([]staff.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM staff_members
		ORDER BY name ASC
	`, staffColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff members: %w", err)
	}
	defer rows.Close()

	var members []staff.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list staff members: %w", err)
	}

	return members, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM staff_members
		WHERE id = $1
	`, staffColumns)

	m, err := scanMember(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return staff.Member{}, staff.ErrMemberNotFound
	}
	if err != nil {
		return staff.Member{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return m, nil
}

// GetByName implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByName(ctx context.Context, name string) (staff.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM staff_members
		WHERE name = $1
	`, staffColumns)

	m, err := scanMember(q.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return staff.Member{}, staff.ErrMemberNotFound
	}
	if err != nil {
		return staff.Member{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return m, nil
}

// Create implements staff.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, m staff.Member) (staff.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO staff_members (id, name, noona_employee_id, excess_threshold, primary_track, excluded_categories, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s
	`, staffColumns)

	created, err := scanMember(q.QueryRow(ctx, query,
		m.Name,
		m.NoonaEmployeeID,
		m.ExcessThreshold,
		string(m.PrimaryTrack),
		categoryStrings(m.ExcludedCategories),
	))
	if isUniqueViolation(err) {
		return staff.Member{}, staff.ErrNameExists
	}
	if err != nil {
		return staff.Member{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return created, nil
}

// Update implements staff.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, m staff.Member) (staff.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE staff_members
		SET name = $2,
			noona_employee_id = $3,
			excess_threshold = $4,
			primary_track = $5,
			excluded_categories = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, staffColumns)

	updated, err := scanMember(q.QueryRow(ctx, query,
		m.ID,
		m.Name,
		m.NoonaEmployeeID,
		m.ExcessThreshold,
		string(m.PrimaryTrack),
		categoryStrings(m.ExcludedCategories),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return staff.Member{}, staff.ErrMemberNotFound
	}
	if isUniqueViolation(err) {
		return staff.Member{}, staff.ErrNameExists
	}
	if err != nil {
		return staff.Member{}, fmt.Errorf("failed to update staff member: %w", err)
	}

	return updated, nil
}

// Delete implements staff.StaffRepository.
func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM staff_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrMemberNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
