package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/db"
	"github.com/emrekoc/studentdesk/internal/pkg/apperrors"
	"github.com/emrekoc/studentdesk/internal/pkg/dberrors"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// studentColumns is the canonical column order used by every student
// SELECT; scanStudent must stay in sync with it.
const studentColumns = `id, student_id, full_name, date_of_birth, gender, address, phone, email,
	guardian_name, guardian_phone, guardian_email,
	enrollment_status, academic_program, department, semester, credit_hours, gpa, cgpa,
	attendance_percentage, classes_attended, total_classes,
	internal_marks, quiz_marks, semester_marks, total_marks, grade,
	total_fees, fees_paid, pending_dues, payment_status, scholarship_amount, scholarship_type,
	admission_date, admission_form_submitted, id_proof_submitted, certificates_submitted,
	library_card_number, books_issued, disciplinary_remarks, club_memberships, extracurricular_activities,
	created_at, updated_at`

// StudentRepository handles student database operations
type StudentRepository struct {
	db *db.PostgresDB
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{db: database}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.StudentID, &s.FullName, &s.DateOfBirth, &s.Gender, &s.Address, &s.Phone, &s.Email,
		&s.GuardianName, &s.GuardianPhone, &s.GuardianEmail,
		&s.EnrollmentStatus, &s.AcademicProgram, &s.Department, &s.Semester, &s.CreditHours, &s.GPA, &s.CGPA,
		&s.AttendancePercentage, &s.ClassesAttended, &s.TotalClasses,
		&s.InternalMarks, &s.QuizMarks, &s.SemesterMarks, &s.TotalMarks, &s.Grade,
		&s.TotalFees, &s.FeesPaid, &s.PendingDues, &s.PaymentStatus, &s.ScholarshipAmount, &s.ScholarshipType,
		&s.AdmissionDate, &s.AdmissionFormSubmitted, &s.IDProofSubmitted, &s.CertificatesSubmitted,
		&s.LibraryCardNumber, &s.BooksIssued, &s.DisciplinaryRemarks, &s.ClubMemberships, &s.ExtracurricularActivities,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts one student row with all derived fields already computed
// by the caller, and fills in the store-assigned id and timestamps. A
// unique violation on student_id surfaces as apperrors.ErrStudentIDExists;
// the store's constraint is the only safety net under concurrent creates.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	query := `
		INSERT INTO students (
			student_id, full_name, date_of_birth, gender, address, phone, email,
			guardian_name, guardian_phone, guardian_email,
			enrollment_status, academic_program, department, semester, credit_hours, gpa, cgpa,
			attendance_percentage, classes_attended, total_classes,
			internal_marks, quiz_marks, semester_marks, total_marks, grade,
			total_fees, fees_paid, pending_dues, payment_status, scholarship_amount, scholarship_type,
			admission_date, admission_form_submitted, id_proof_submitted, certificates_submitted,
			library_card_number, books_issued, disciplinary_remarks, club_memberships, extracurricular_activities
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20,
			$21, $22, $23, $24, $25,
			$26, $27, $28, $29, $30, $31,
			$32, $33, $34, $35,
			$36, $37, $38, $39, $40
		) RETURNING ` + studentColumns

	row := r.db.Pool.QueryRow(ctx, query,
		student.StudentID,
		student.FullName,
		student.DateOfBirth,
		student.Gender,
		student.Address,
		student.Phone,
		student.Email,
		student.GuardianName,
		student.GuardianPhone,
		student.GuardianEmail,
		student.EnrollmentStatus,
		student.AcademicProgram,
		student.Department,
		student.Semester,
		student.CreditHours,
		student.GPA,
		student.CGPA,
		student.AttendancePercentage,
		student.ClassesAttended,
		student.TotalClasses,
		student.InternalMarks,
		student.QuizMarks,
		student.SemesterMarks,
		student.TotalMarks,
		student.Grade,
		student.TotalFees,
		student.FeesPaid,
		student.PendingDues,
		student.PaymentStatus,
		student.ScholarshipAmount,
		student.ScholarshipType,
		student.AdmissionDate,
		student.AdmissionFormSubmitted,
		student.IDProofSubmitted,
		student.CertificatesSubmitted,
		student.LibraryCardNumber,
		student.BooksIssued,
		student.DisciplinaryRemarks,
		student.ClubMemberships,
		student.ExtracurricularActivities,
	)

	created, err := scanStudent(row)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			logger.Warn().Str("studentID", student.StudentID).Msg("Attempted to create student with duplicate student ID")
			return nil, apperrors.ErrStudentIDExists
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing create student query")
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Int64("id", created.ID).Str("studentID", created.StudentID).Msg("Student created")
	return created, nil
}

// GetAll retrieves every student ordered by creation time, most recent
// first. The id tie-break keeps the ordering stable when concurrent
// creates land in the same instant.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching students")
		return nil, fmt.Errorf("error fetching students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Recent retrieves the newest students, capped at limit
func (r *StudentRepository) Recent(ctx context.Context, limit int) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching recent students")
		return nil, fmt.Errorf("error fetching recent students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// GetByID retrieves one student by internal id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error retrieving student")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// DeleteByID removes one student row; a miss is a distinct not-found
// condition and leaves the collection untouched.
func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	logger.Info().Int64("id", id).Msg("Student deleted")
	return nil
}

// Count returns the total number of student rows
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
