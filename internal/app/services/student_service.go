package services

import (
	"context"
	"strings"
	"time"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/repositories"
	"github.com/emrekoc/studentdesk/internal/pkg/apperrors"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

const dateLayout = "2006-01-02"

// StudentService handles student record business logic
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// ComputeAttendancePercentage derives attendance from raw class counts.
// A student with no classes on record has 0%, not a division error.
func ComputeAttendancePercentage(attended, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(attended) / float64(total) * 100
}

// ComputePendingDues derives the outstanding balance, floored at zero:
// overpayment or a generous scholarship never yields negative dues.
func ComputePendingDues(totalFees, feesPaid, scholarship float64) float64 {
	dues := totalFees - feesPaid - scholarship
	if dues < 0 {
		return 0
	}
	return dues
}

// PaymentStatusFor maps a dues balance to its display status
func PaymentStatusFor(pendingDues float64) string {
	if pendingDues == 0 {
		return models.PaymentStatusPaid
	}
	return models.PaymentStatusPending
}

func optionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// optionalDate accepts the date-only form the UI submits and the
// RFC3339 form exported documents carry, so a re-imported export keeps
// its dates.
func optionalDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}

// buildStudent coerces the raw request into a model and fills the
// derived fields. Derived values are computed here once and stored.
func buildStudent(req *dto.CreateStudentRequest) *models.Student {
	status := strings.TrimSpace(req.EnrollmentStatus)
	if status == "" {
		status = string(models.EnrollmentActive)
	}

	pendingDues := ComputePendingDues(float64(req.TotalFees), float64(req.FeesPaid), float64(req.ScholarshipAmount))

	return &models.Student{
		StudentID:     strings.TrimSpace(req.StudentID),
		FullName:      strings.TrimSpace(req.FullName),
		DateOfBirth:   optionalDate(req.DateOfBirth),
		Gender:        optionalString(req.Gender),
		Address:       optionalString(req.Address),
		Phone:         optionalString(req.Phone),
		Email:         optionalString(req.Email),
		GuardianName:  optionalString(req.GuardianName),
		GuardianPhone: optionalString(req.GuardianPhone),
		GuardianEmail: optionalString(req.GuardianEmail),

		EnrollmentStatus: status,
		AcademicProgram:  optionalString(req.AcademicProgram),
		Department:       optionalString(req.Department),
		Semester:         optionalString(req.Semester),
		CreditHours:      int(req.CreditHours),
		GPA:              float64(req.GPA),
		CGPA:             float64(req.CGPA),

		AttendancePercentage: ComputeAttendancePercentage(int(req.ClassesAttended), int(req.TotalClasses)),
		ClassesAttended:      int(req.ClassesAttended),
		TotalClasses:         int(req.TotalClasses),

		InternalMarks: float64(req.InternalMarks),
		QuizMarks:     float64(req.QuizMarks),
		SemesterMarks: float64(req.SemesterMarks),
		TotalMarks:    float64(req.TotalMarks),
		Grade:         optionalString(req.Grade),

		TotalFees:         float64(req.TotalFees),
		FeesPaid:          float64(req.FeesPaid),
		PendingDues:       pendingDues,
		PaymentStatus:     PaymentStatusFor(pendingDues),
		ScholarshipAmount: float64(req.ScholarshipAmount),
		ScholarshipType:   optionalString(req.ScholarshipType),

		AdmissionDate:          optionalDate(req.AdmissionDate),
		AdmissionFormSubmitted: bool(req.AdmissionFormSubmitted),
		IDProofSubmitted:       bool(req.IDProofSubmitted),
		CertificatesSubmitted:  bool(req.CertificatesSubmitted),

		LibraryCardNumber:         optionalString(req.LibraryCardNumber),
		BooksIssued:               int(req.BooksIssued),
		DisciplinaryRemarks:       optionalString(req.DisciplinaryRemarks),
		ClubMemberships:           optionalString(req.ClubMemberships),
		ExtracurricularActivities: optionalString(req.ExtracurricularActivities),
	}
}

// CreateStudent validates the request, computes the derived fields and
// persists a new student record.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if strings.TrimSpace(req.StudentID) == "" {
		return nil, apperrors.ErrInvalidStudentID
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, apperrors.NewValidationError("full_name is required")
	}

	student, err := s.studentRepo.Create(ctx, buildStudent(req))
	if err != nil {
		return nil, err
	}

	logger.Info().Str("studentID", student.StudentID).Int64("id", student.ID).Msg("Student record created")
	return student, nil
}

// GetAllStudents returns every student record, newest first
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetStudentByID returns a single student record
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// DeleteStudent removes a student record
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("id", id).Msg("Student record deleted")
	return nil
}

// CountStudents returns the total number of student records
func (s *StudentService) CountStudents(ctx context.Context) (int64, error) {
	return s.studentRepo.Count(ctx)
}

// ImportStudents creates records one at a time with the same
// validation and duplicate semantics as a single create. A failed
// record is reported and skipped; it never aborts the batch.
func (s *StudentService) ImportStudents(ctx context.Context, records []dto.CreateStudentRequest) *dto.ImportResult {
	result := &dto.ImportResult{}
	for i := range records {
		if _, err := s.CreateStudent(ctx, &records[i]); err != nil {
			result.Failed++
			result.Failures = append(result.Failures, dto.ImportFailure{
				Index:     i,
				StudentID: records[i].StudentID,
				Reason:    err.Error(),
			})
			continue
		}
		result.Created++
	}
	logger.Info().Int("created", result.Created).Int("failed", result.Failed).Msg("Student import finished")
	return result
}
