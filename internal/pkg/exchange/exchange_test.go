package exchange

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emrekoc/studentdesk/internal/app/models"
)

func strPtr(s string) *string { return &s }

func sampleStudent() *models.Student {
	dob := time.Date(2001, 3, 9, 0, 0, 0, 0, time.UTC)
	return &models.Student{
		ID:                   1,
		StudentID:            "STU-001",
		FullName:             `Ayşe "Ace" Yılmaz`,
		DateOfBirth:          &dob,
		Email:                strPtr("ayse@example.edu"),
		EnrollmentStatus:     string(models.EnrollmentActive),
		AttendancePercentage: 87.5,
		ClassesAttended:      35,
		TotalClasses:         40,
		TotalFees:            45000,
		FeesPaid:             45000,
		PaymentStatus:        models.PaymentStatusPaid,
		CreatedAt:            time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		UpdatedAt:            time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestExportCSVShape(t *testing.T) {
	students := []*models.Student{sampleStudent(), sampleStudent()}

	out := string(ExportCSV(students))
	if strings.Contains(out, "\r") {
		t.Error("export should use LF line endings")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != len(students)+1 {
		t.Fatalf("got %d lines, want %d (header + one per record)", len(lines), len(students)+1)
	}

	// Header is plain comma-joined field names, unquoted.
	if !strings.HasPrefix(lines[0], "id,student_id,full_name") {
		t.Errorf("header = %q, want it to open with id,student_id,full_name", lines[0])
	}
	if strings.Contains(lines[0], `"`) {
		t.Errorf("header should not be quoted: %q", lines[0])
	}
	if got := len(strings.Split(lines[0], ",")); got != len(exportHeaders) {
		t.Errorf("header has %d fields, want %d", got, len(exportHeaders))
	}

	// Every data value is quoted.
	for i, line := range lines[1:] {
		fields := strings.Split(line, `","`)
		if len(fields) != len(exportHeaders) {
			t.Errorf("record %d has %d fields, want %d", i, len(fields), len(exportHeaders))
		}
		if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
			t.Errorf("record %d is not fully quoted: %q", i, line)
		}
	}
}

func TestExportCSVDoublesEmbeddedQuotes(t *testing.T) {
	out := string(ExportCSV([]*models.Student{sampleStudent()}))
	if !strings.Contains(out, `"Ayşe ""Ace"" Yılmaz"`) {
		t.Errorf("embedded quotes not doubled in %q", out)
	}
}

func TestExportCSVEmptyCollection(t *testing.T) {
	out := ExportCSV(nil)
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("empty export should still carry the header, got %d lines", len(lines))
	}
}

func TestExportJSONEmptyCollectionIsArray(t *testing.T) {
	out, err := ExportJSON(nil)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if !bytes.Equal(bytes.TrimSpace(out), []byte("[]")) {
		t.Errorf("empty export = %q, want []", out)
	}
}

func TestJSONExportImportRoundTrip(t *testing.T) {
	student := sampleStudent()

	out, err := ExportJSON([]*models.Student{student})
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	records, err := ImportJSON(out)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	got := records[0]
	if got.StudentID != student.StudentID {
		t.Errorf("StudentID = %q, want %q", got.StudentID, student.StudentID)
	}
	if got.FullName != student.FullName {
		t.Errorf("FullName = %q, want %q", got.FullName, student.FullName)
	}
	if int(got.ClassesAttended) != student.ClassesAttended {
		t.Errorf("ClassesAttended = %d, want %d", int(got.ClassesAttended), student.ClassesAttended)
	}
	if float64(got.TotalFees) != student.TotalFees {
		t.Errorf("TotalFees = %v, want %v", float64(got.TotalFees), student.TotalFees)
	}
	if got.DateOfBirth == "" {
		t.Error("DateOfBirth did not survive the round trip")
	}
}

func TestImportJSONSingleObject(t *testing.T) {
	records, err := ImportJSON([]byte(`{"student_id": "STU-002", "full_name": "Mehmet Demir"}`))
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(records) != 1 || records[0].StudentID != "STU-002" {
		t.Errorf("records = %+v, want one STU-002 entry", records)
	}
}

func TestImportJSONRejectsGarbage(t *testing.T) {
	for _, payload := range []string{"", "   ", "not json", `[{"student_id": 1}]`} {
		if _, err := ImportJSON([]byte(payload)); err == nil {
			t.Errorf("ImportJSON(%q) accepted invalid input", payload)
		}
	}
}
