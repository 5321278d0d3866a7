package models

import "time"

// Student defines the student model based on the 'students' table.
// It is the central entity: one row per student, keyed by the
// user-supplied student_id (unique) and a store-assigned internal id.
type Student struct {
	ID int64 `json:"id" db:"id"`

	// Personal and demographic data
	StudentID     string     `json:"student_id" db:"student_id"`
	FullName      string     `json:"full_name" db:"full_name"`
	DateOfBirth   *time.Time `json:"date_of_birth" db:"date_of_birth"`
	Gender        *string    `json:"gender" db:"gender"`
	Address       *string    `json:"address" db:"address"`
	Phone         *string    `json:"phone" db:"phone"`
	Email         *string    `json:"email" db:"email"`
	GuardianName  *string    `json:"guardian_name" db:"guardian_name"`
	GuardianPhone *string    `json:"guardian_phone" db:"guardian_phone"`
	GuardianEmail *string    `json:"guardian_email" db:"guardian_email"`

	// Academic records
	EnrollmentStatus string  `json:"enrollment_status" db:"enrollment_status"`
	AcademicProgram  *string `json:"academic_program" db:"academic_program"`
	Department       *string `json:"department" db:"department"`
	Semester         *string `json:"semester" db:"semester"`
	CreditHours      int     `json:"credit_hours" db:"credit_hours"`
	GPA              float64 `json:"gpa" db:"gpa"`
	CGPA             float64 `json:"cgpa" db:"cgpa"`

	// Attendance. AttendancePercentage is derived once at creation time
	// and stored, never recomputed on read.
	AttendancePercentage float64 `json:"attendance_percentage" db:"attendance_percentage"`
	ClassesAttended      int     `json:"classes_attended" db:"classes_attended"`
	TotalClasses         int     `json:"total_classes" db:"total_classes"`

	// Assessment and examination
	InternalMarks float64 `json:"internal_marks" db:"internal_marks"`
	QuizMarks     float64 `json:"quiz_marks" db:"quiz_marks"`
	SemesterMarks float64 `json:"semester_marks" db:"semester_marks"`
	TotalMarks    float64 `json:"total_marks" db:"total_marks"`
	Grade         *string `json:"grade" db:"grade"`

	// Financial records. PendingDues and PaymentStatus are derived at
	// creation time; PendingDues is never negative.
	TotalFees         float64 `json:"total_fees" db:"total_fees"`
	FeesPaid          float64 `json:"fees_paid" db:"fees_paid"`
	PendingDues       float64 `json:"pending_dues" db:"pending_dues"`
	PaymentStatus     string  `json:"payment_status" db:"payment_status"`
	ScholarshipAmount float64 `json:"scholarship_amount" db:"scholarship_amount"`
	ScholarshipType   *string `json:"scholarship_type" db:"scholarship_type"`

	// Document and compliance
	AdmissionDate          *time.Time `json:"admission_date" db:"admission_date"`
	AdmissionFormSubmitted bool       `json:"admission_form_submitted" db:"admission_form_submitted"`
	IDProofSubmitted       bool       `json:"id_proof_submitted" db:"id_proof_submitted"`
	CertificatesSubmitted  bool       `json:"certificates_submitted" db:"certificates_submitted"`

	// Administrative and activity records
	LibraryCardNumber         *string `json:"library_card_number" db:"library_card_number"`
	BooksIssued               int     `json:"books_issued" db:"books_issued"`
	DisciplinaryRemarks       *string `json:"disciplinary_remarks" db:"disciplinary_remarks"`
	ClubMemberships           *string `json:"club_memberships" db:"club_memberships"`
	ExtracurricularActivities *string `json:"extracurricular_activities" db:"extracurricular_activities"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
