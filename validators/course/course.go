package courseValidator

import (
	"ilearn/middleware"
	"ilearn/models"
	"ilearn/quiz"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// videoHostPattern accepts the video hosts the player can embed
var videoHostPattern = regexp.MustCompile(`^https?://(www\.)?(youtube\.com/watch\?v=[\w-]+|youtu\.be/[\w-]+|vimeo\.com/\d+)`)

// ============ Course Validators ============

// CreateCourse validates the instructor course creation form
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := strings.TrimSpace(c.FormValue("title"))
		description := strings.TrimSpace(c.FormValue("description"))

		errors := make(map[string]string)

		if title == "" {
			errors["title"] = "Title is required!"
		} else if len(title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if description == "" {
			errors["description"] = "Description is required!"
		} else if len(description) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if _, err := c.FormFile("banner"); err != nil {
			errors["banner"] = "Banner image is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTitle", title)
		c.Locals("validatedDescription", description)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return courseIDParam("id")
}

// CourseIDParam validates a named course ID route parameter
func CourseIDParam(name string) fiber.Handler {
	return courseIDParam(name)
}

func courseIDParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(name))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}

// UpdateCourseStatus validates the publish/draft toggle request
func UpdateCourseStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.TrimSpace(reqData.Status)
		if reqData.Status != models.CourseDraft && reqData.Status != models.CoursePublished {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status must be draft or published!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedStatus", reqData.Status)
		return c.Next()
	}
}

// ============ Section Validators ============

// CreateSection validates a new section payload against its content type.
// Quiz content must parse and pass document validation before it is stored;
// the serialized form saved to the database is exactly what the quiz
// package produced, so the player can parse it back.
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			ContentType string `json:"content_type"`
			ContentData string `json:"content_data"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ContentType = strings.TrimSpace(reqData.ContentType)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		switch reqData.ContentType {
		case models.ContentVideo:
			url := strings.TrimSpace(reqData.ContentData)
			if url == "" {
				errors["content_data"] = "Video URL is required!"
			} else if !videoHostPattern.MatchString(url) {
				errors["content_data"] = "Video URL must be a YouTube or Vimeo link!"
			} else {
				reqData.ContentData = url
			}
		case models.ContentReading:
			if strings.TrimSpace(reqData.ContentData) == "" {
				errors["content_data"] = "Reading content is required!"
			}
		case models.ContentQuiz:
			doc, err := quiz.Parse(reqData.ContentData)
			if err != nil {
				errors["content_data"] = "Invalid quiz format!"
				break
			}
			if err := doc.Validate(); err != nil {
				errors["content_data"] = err.Error()
				break
			}
			serialized, err := doc.Serialize()
			if err != nil {
				errors["content_data"] = "Invalid quiz format!"
				break
			}
			reqData.ContentData = serialized
		case "":
			errors["content_type"] = "Content type is required!"
		default:
			errors["content_type"] = "Content type must be video, reading, or quiz!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// SectionID validates the :id route parameter for section routes
func SectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Section ID!", nil)
		}

		c.Locals("sectionID", id)
		return c.Next()
	}
}
