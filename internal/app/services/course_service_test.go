package services

import (
	"testing"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
)

func TestCourseFromRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.CreateCourseRequest
		wantCredits int
	}{
		{
			name:        "omitted credits default to 3",
			req:         dto.CreateCourseRequest{Code: "CS101", Name: "Intro to Computing"},
			wantCredits: 3,
		},
		{
			name:        "explicit credits pass through",
			req:         dto.CreateCourseRequest{Code: "CS201", Name: "Data Structures", Credits: 4},
			wantCredits: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := courseFromRequest(&tt.req)
			if course.Credits != tt.wantCredits {
				t.Errorf("Credits = %d, want %d", course.Credits, tt.wantCredits)
			}
		})
	}

	t.Run("blank description stays null", func(t *testing.T) {
		course := courseFromRequest(&dto.CreateCourseRequest{Code: "CS301", Name: "Databases"})
		if course.Description != nil {
			t.Errorf("Description = %v, want nil", *course.Description)
		}
	})
}
