package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sugang/internal/domain"
	"sugang/internal/port"
	"sugang/internal/service"
)

// CourseHandler handles course catalog query endpoints.
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List handles GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	filter := port.CourseFilter{
		Keyword:      c.Query("q"),
		Code:         c.Query("code"),
		MainCategory: c.Query("category"),
		CourseGroup:  c.Query("group"),
		Department:   c.Query("department"),
		TrackMajor:   c.Query("track"),
		Grade:        c.Query("grade"),
		Professor:    c.Query("professor"),
		Credit:       c.Query("credit"),
		OnlineHours:  c.Query("online_hours"),
		Day:          domain.DayCode(c.Query("day")),
		TimeStart:    c.Query("time_start"),
		TimeEnd:      c.Query("time_end"),
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.courseService.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, result.Courses, PagMeta{
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	})
}

// GetByID handles GET /api/v1/courses/:id
func (h *CourseHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid course id")
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, course)
}

// Export handles GET /api/v1/courses/export
func (h *CourseHandler) Export(c *gin.Context) {
	data, filename, err := h.courseService.Export(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
