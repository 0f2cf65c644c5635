package report

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employeeRepoPG struct{ pool *pgxpool.Pool }

func NewEmployeeRepoPG(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepoPG{pool: pool}
}

const employeeCols = `id, first_name, surname, id_number, date_of_birth, gender,
	company, job_title, email, phone, created_at`

func (r *employeeRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var e Employee
	err := r.pool.QueryRow(ctx,
		`SELECT `+employeeCols+` FROM employees WHERE id = $1`, id,
	).Scan(&e.ID, &e.FirstName, &e.Surname, &e.IDNumber, &e.DateOfBirth, &e.Gender,
		&e.Company, &e.JobTitle, &e.Email, &e.Phone, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

type reportRepoPG struct{ pool *pgxpool.Pool }

func NewReportRepoPG(pool *pgxpool.Pool) ReportRepository {
	return &reportRepoPG{pool: pool}
}

const reportCols = `id, employee_id, report_date, doctor_name, nurse_name, report_type, created_at`

func scanReport(row pgx.Row) (*MedicalReport, error) {
	var m MedicalReport
	err := row.Scan(&m.ID, &m.EmployeeID, &m.ReportDate, &m.DoctorName, &m.NurseName,
		&m.ReportType, &m.CreatedAt)
	return &m, err
}

func (r *reportRepoPG) LatestByEmployee(ctx context.Context, employeeID uuid.UUID) (*MedicalReport, error) {
	m, err := scanReport(r.pool.QueryRow(ctx,
		`SELECT `+reportCols+` FROM medical_reports
		 WHERE employee_id = $1
		 ORDER BY report_date DESC, id DESC
		 LIMIT 1`, employeeID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *reportRepoPG) ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]*MedicalReport, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM medical_reports WHERE employee_id = $1`, employeeID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+reportCols+` FROM medical_reports
		 WHERE employee_id = $1
		 ORDER BY report_date DESC, id DESC
		 LIMIT $2 OFFSET $3`, employeeID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*MedicalReport
	for rows.Next() {
		m, err := scanReport(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
