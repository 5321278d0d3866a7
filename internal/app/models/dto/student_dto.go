package dto

// CreateStudentRequest carries the raw field-bag submitted for a new
// student record. Only student_id and full_name are required; every other
// field coerces to its type's neutral default when missing or blank.
// The same shape is accepted one record at a time during bulk import.
type CreateStudentRequest struct {
	StudentID     string `json:"student_id" binding:"required"`
	FullName      string `json:"full_name" binding:"required"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	GuardianEmail string `json:"guardian_email"`

	EnrollmentStatus string    `json:"enrollment_status"`
	AcademicProgram  string    `json:"academic_program"`
	Department       string    `json:"department"`
	Semester         string    `json:"semester"`
	CreditHours      FlexInt   `json:"credit_hours"`
	GPA              FlexFloat `json:"gpa"`
	CGPA             FlexFloat `json:"cgpa"`

	ClassesAttended FlexInt `json:"classes_attended"`
	TotalClasses    FlexInt `json:"total_classes"`

	InternalMarks FlexFloat `json:"internal_marks"`
	QuizMarks     FlexFloat `json:"quiz_marks"`
	SemesterMarks FlexFloat `json:"semester_marks"`
	TotalMarks    FlexFloat `json:"total_marks"`
	Grade         string    `json:"grade"`

	TotalFees         FlexFloat `json:"total_fees"`
	FeesPaid          FlexFloat `json:"fees_paid"`
	ScholarshipAmount FlexFloat `json:"scholarship_amount"`
	ScholarshipType   string    `json:"scholarship_type"`

	AdmissionDate          string   `json:"admission_date"`
	AdmissionFormSubmitted FlexBool `json:"admission_form_submitted"`
	IDProofSubmitted       FlexBool `json:"id_proof_submitted"`
	CertificatesSubmitted  FlexBool `json:"certificates_submitted"`

	LibraryCardNumber         string  `json:"library_card_number"`
	BooksIssued               FlexInt `json:"books_issued"`
	DisciplinaryRemarks       string  `json:"disciplinary_remarks"`
	ClubMemberships           string  `json:"club_memberships"`
	ExtracurricularActivities string  `json:"extracurricular_activities"`
}

// ImportFailure records why one imported record was rejected
type ImportFailure struct {
	Index     int    `json:"index"`
	StudentID string `json:"student_id"`
	Reason    string `json:"reason"`
}

// ImportResult summarizes a bulk import: records are created one at a
// time with the same duplicate/validation semantics as a single create.
type ImportResult struct {
	Created  int             `json:"created"`
	Failed   int             `json:"failed"`
	Failures []ImportFailure `json:"failures,omitempty"`
}
