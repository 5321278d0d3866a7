// Package exchange moves student records across JSON, CSV and XLSX so
// collections can be backed up and restored or edited in a spreadsheet.
package exchange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
)

const dateLayout = "2006-01-02"

// exportHeaders lists every exported column in table order. The same
// names round-trip back in as import field-bags.
var exportHeaders = []string{
	"id", "student_id", "full_name", "date_of_birth", "gender", "address",
	"phone", "email", "guardian_name", "guardian_phone", "guardian_email",
	"enrollment_status", "academic_program", "department", "semester",
	"credit_hours", "gpa", "cgpa",
	"attendance_percentage", "classes_attended", "total_classes",
	"internal_marks", "quiz_marks", "semester_marks", "total_marks", "grade",
	"total_fees", "fees_paid", "pending_dues", "payment_status",
	"scholarship_amount", "scholarship_type",
	"admission_date", "admission_form_submitted", "id_proof_submitted",
	"certificates_submitted",
	"library_card_number", "books_issued", "disciplinary_remarks",
	"club_memberships", "extracurricular_activities",
	"created_at", "updated_at",
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// studentRow renders one student in exportHeaders order
func studentRow(s *models.Student) []string {
	return []string{
		strconv.FormatInt(s.ID, 10), s.StudentID, s.FullName,
		dateOrEmpty(s.DateOfBirth), strOrEmpty(s.Gender), strOrEmpty(s.Address),
		strOrEmpty(s.Phone), strOrEmpty(s.Email), strOrEmpty(s.GuardianName),
		strOrEmpty(s.GuardianPhone), strOrEmpty(s.GuardianEmail),
		s.EnrollmentStatus, strOrEmpty(s.AcademicProgram), strOrEmpty(s.Department),
		strOrEmpty(s.Semester),
		strconv.Itoa(s.CreditHours), formatFloat(s.GPA), formatFloat(s.CGPA),
		formatFloat(s.AttendancePercentage), strconv.Itoa(s.ClassesAttended),
		strconv.Itoa(s.TotalClasses),
		formatFloat(s.InternalMarks), formatFloat(s.QuizMarks),
		formatFloat(s.SemesterMarks), formatFloat(s.TotalMarks), strOrEmpty(s.Grade),
		formatFloat(s.TotalFees), formatFloat(s.FeesPaid),
		formatFloat(s.PendingDues), s.PaymentStatus,
		formatFloat(s.ScholarshipAmount), strOrEmpty(s.ScholarshipType),
		dateOrEmpty(s.AdmissionDate), strconv.FormatBool(s.AdmissionFormSubmitted),
		strconv.FormatBool(s.IDProofSubmitted), strconv.FormatBool(s.CertificatesSubmitted),
		strOrEmpty(s.LibraryCardNumber), strconv.Itoa(s.BooksIssued),
		strOrEmpty(s.DisciplinaryRemarks), strOrEmpty(s.ClubMemberships),
		strOrEmpty(s.ExtracurricularActivities),
		s.CreatedAt.Format(time.RFC3339), s.UpdatedAt.Format(time.RFC3339),
	}
}

// ExportJSON renders the collection as an indented JSON array. An empty
// collection exports as [], never null.
func ExportJSON(students []*models.Student) ([]byte, error) {
	if students == nil {
		students = []*models.Student{}
	}
	return json.MarshalIndent(students, "", "  ")
}

// ExportCSV renders the collection as CSV: a plain comma-joined header
// line, then one line per record with every value wrapped in double
// quotes and embedded quotes doubled. Lines end in LF. encoding/csv
// only quotes on demand, so the writer is spelled out here.
func ExportCSV(students []*models.Student) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(exportHeaders, ","))
	buf.WriteByte('\n')
	for _, s := range students {
		writeCSVRow(&buf, studentRow(s))
	}
	return buf.Bytes()
}

func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

// ExportXLSX renders the collection as a single-sheet workbook
func ExportXLSX(students []*models.Student) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Students"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("error writing header row: %w", err)
	}

	for i, s := range students {
		row := studentRow(s)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportJSON decodes an uploaded document into import field-bags. Both
// a JSON array and a single object are accepted.
func ImportJSON(data []byte) ([]dto.CreateStudentRequest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty import document")
	}

	if trimmed[0] == '[' {
		var records []dto.CreateStudentRequest
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("invalid import document: %w", err)
		}
		return records, nil
	}

	var record dto.CreateStudentRequest
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, fmt.Errorf("invalid import document: %w", err)
	}
	return []dto.CreateStudentRequest{record}, nil
}
