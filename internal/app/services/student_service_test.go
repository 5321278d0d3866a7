package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/pkg/exchange"
)

func TestComputeAttendancePercentage(t *testing.T) {
	tests := []struct {
		name     string
		attended int
		total    int
		want     float64
	}{
		{"zero classes on record", 0, 0, 0},
		{"attended but none recorded", 10, 0, 0},
		{"perfect attendance", 30, 30, 100},
		{"three quarters", 30, 40, 75},
		{"none attended", 0, 25, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeAttendancePercentage(tt.attended, tt.total); got != tt.want {
				t.Errorf("ComputeAttendancePercentage(%d, %d) = %v, want %v", tt.attended, tt.total, got, tt.want)
			}
		})
	}
}

func TestComputePendingDues(t *testing.T) {
	tests := []struct {
		name        string
		fees        float64
		paid        float64
		scholarship float64
		want        float64
	}{
		{"unpaid", 50000, 0, 0, 50000},
		{"partially paid", 50000, 20000, 0, 30000},
		{"scholarship covers part", 50000, 20000, 10000, 20000},
		{"exactly settled", 50000, 40000, 10000, 0},
		{"overpayment floors at zero", 50000, 60000, 0, 0},
		{"scholarship exceeds fees", 10000, 0, 25000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePendingDues(tt.fees, tt.paid, tt.scholarship); got != tt.want {
				t.Errorf("ComputePendingDues(%v, %v, %v) = %v, want %v", tt.fees, tt.paid, tt.scholarship, got, tt.want)
			}
		})
	}
}

func TestPaymentStatusFor(t *testing.T) {
	if got := PaymentStatusFor(0); got != models.PaymentStatusPaid {
		t.Errorf("PaymentStatusFor(0) = %q, want %q", got, models.PaymentStatusPaid)
	}
	if got := PaymentStatusFor(0.01); got != models.PaymentStatusPending {
		t.Errorf("PaymentStatusFor(0.01) = %q, want %q", got, models.PaymentStatusPending)
	}
}

func TestBuildStudentDerivedFields(t *testing.T) {
	req := &dto.CreateStudentRequest{
		StudentID:         "STU-001",
		FullName:          "Ayşe Yılmaz",
		ClassesAttended:   18,
		TotalClasses:      24,
		TotalFees:         45000,
		FeesPaid:          30000,
		ScholarshipAmount: 15000,
	}

	student := buildStudent(req)

	if student.AttendancePercentage != 75 {
		t.Errorf("AttendancePercentage = %v, want 75", student.AttendancePercentage)
	}
	if student.PendingDues != 0 {
		t.Errorf("PendingDues = %v, want 0", student.PendingDues)
	}
	if student.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("PaymentStatus = %q, want %q", student.PaymentStatus, models.PaymentStatusPaid)
	}
	if student.EnrollmentStatus != string(models.EnrollmentActive) {
		t.Errorf("EnrollmentStatus = %q, want %q", student.EnrollmentStatus, models.EnrollmentActive)
	}
}

func TestBuildStudentCoercesBlankOptionals(t *testing.T) {
	req := &dto.CreateStudentRequest{
		StudentID:     "STU-002",
		FullName:      "Mehmet Demir",
		Email:         "",
		DateOfBirth:   "",
		AdmissionDate: "not-a-date",
	}

	student := buildStudent(req)

	if student.Email != nil {
		t.Errorf("Email = %v, want nil", *student.Email)
	}
	if student.DateOfBirth != nil {
		t.Errorf("DateOfBirth = %v, want nil", student.DateOfBirth)
	}
	if student.AdmissionDate != nil {
		t.Errorf("AdmissionDate = %v, want nil for unparseable input", student.AdmissionDate)
	}
	if student.GPA != 0 || student.CreditHours != 0 || student.BooksIssued != 0 {
		t.Error("numeric fields should default to zero when absent")
	}
}

func TestBuildStudentParsesDates(t *testing.T) {
	tests := []struct {
		name          string
		dateOfBirth   string
		admissionDate string
	}{
		{"date-only form", "2002-05-14", "2020-09-01"},
		{"exported RFC3339 form", "2002-05-14T00:00:00Z", "2020-09-01T00:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.CreateStudentRequest{
				StudentID:     "STU-003",
				FullName:      "Zeynep Kaya",
				DateOfBirth:   tt.dateOfBirth,
				AdmissionDate: tt.admissionDate,
			}

			student := buildStudent(req)

			if student.DateOfBirth == nil || student.DateOfBirth.Format(dateLayout) != "2002-05-14" {
				t.Errorf("DateOfBirth = %v, want 2002-05-14", student.DateOfBirth)
			}
			if student.AdmissionDate == nil || student.AdmissionDate.Format(dateLayout) != "2020-09-01" {
				t.Errorf("AdmissionDate = %v, want 2020-09-01", student.AdmissionDate)
			}
		})
	}
}

func TestExportedStudentKeepsDatesOnReimport(t *testing.T) {
	dob := time.Date(2001, 3, 9, 0, 0, 0, 0, time.UTC)
	admitted := time.Date(2019, 9, 2, 0, 0, 0, 0, time.UTC)
	original := &models.Student{
		StudentID:     "STU-020",
		FullName:      "Elif Şahin",
		DateOfBirth:   &dob,
		AdmissionDate: &admitted,
	}

	out, err := exchange.ExportJSON([]*models.Student{original})
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	records, err := exchange.ImportJSON(out)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	student := buildStudent(&records[0])

	if student.DateOfBirth == nil || !student.DateOfBirth.Equal(dob) {
		t.Errorf("DateOfBirth = %v, want %v", student.DateOfBirth, dob)
	}
	if student.AdmissionDate == nil || !student.AdmissionDate.Equal(admitted) {
		t.Errorf("AdmissionDate = %v, want %v", student.AdmissionDate, admitted)
	}
}

func TestCreateStudentRequestCoercion(t *testing.T) {
	// Clients send numerics and booleans as strings or numbers
	// interchangeably; both shapes must land on the same values.
	payload := `{
		"student_id": "STU-010",
		"full_name": "Ali Veli",
		"gpa": "3.52",
		"credit_hours": 18,
		"total_fees": "42000",
		"classes_attended": "12",
		"total_classes": 16,
		"admission_form_submitted": "true",
		"id_proof_submitted": false
	}`

	var req dto.CreateStudentRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	student := buildStudent(&req)

	if student.GPA != 3.52 {
		t.Errorf("GPA = %v, want 3.52", student.GPA)
	}
	if student.CreditHours != 18 {
		t.Errorf("CreditHours = %v, want 18", student.CreditHours)
	}
	if student.TotalFees != 42000 {
		t.Errorf("TotalFees = %v, want 42000", student.TotalFees)
	}
	if student.AttendancePercentage != 75 {
		t.Errorf("AttendancePercentage = %v, want 75", student.AttendancePercentage)
	}
	if !student.AdmissionFormSubmitted || student.IDProofSubmitted {
		t.Error("boolean coercion mismatch")
	}
}
