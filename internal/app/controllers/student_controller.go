package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/services"
	"github.com/emrekoc/studentdesk/internal/middleware"
	"github.com/emrekoc/studentdesk/internal/pkg/exchange"
)

// maxImportBytes caps uploaded import documents
const maxImportBytes = 16 << 20

// StudentController handles student record operations
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent handles student record creation
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, "Invalid student data", err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMutationResponse(student))
}

// GetAllStudents lists every student record, newest first
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// GetStudentByID retrieves a student record by internal id
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// DeleteStudent removes a student record
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMutationResponse(gin.H{"id": id}))
}

// CountStudents returns the total number of student records
func (c *StudentController) CountStudents(ctx *gin.Context) {
	count, err := c.studentService.CountStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"count": count}))
}

// ImportStudents accepts a JSON document (array or single object) and
// creates the records one by one; per-record failures are reported in
// the result, not as a request failure.
func (c *StudentController) ImportStudents(ctx *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxImportBytes))
	if err != nil {
		respondInvalidBody(ctx, "Could not read import document", err)
		return
	}

	records, err := exchange.ImportJSON(body)
	if err != nil {
		respondInvalidBody(ctx, "Invalid import document", err)
		return
	}

	result := c.studentService.ImportStudents(ctx, records)
	ctx.JSON(http.StatusOK, dto.NewMutationResponse(result))
}

// ExportStudents streams the collection in the requested format.
// Supported formats: json (default), csv, xlsx.
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	switch ctx.DefaultQuery("format", "json") {
	case "json":
		out, err := exchange.ExportJSON(students)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.Header("Content-Disposition", `attachment; filename="students.json"`)
		ctx.Data(http.StatusOK, "application/json", out)
	case "csv":
		ctx.Header("Content-Disposition", `attachment; filename="students.csv"`)
		ctx.Data(http.StatusOK, "text/csv", exchange.ExportCSV(students))
	case "xlsx":
		out, err := exchange.ExportXLSX(students)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.Header("Content-Disposition", `attachment; filename="students.xlsx"`)
		ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unsupported export format")
		errorDetail = errorDetail.WithField("format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	}
}
