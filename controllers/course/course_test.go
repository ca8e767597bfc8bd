package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ilearn/config"
	"ilearn/database"
	"ilearn/middleware"
	"ilearn/models"
	"ilearn/quiz"
	courseRoutes "ilearn/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

const validQuizJSON = `[
	{
		"prompt": "What does := do?",
		"choices": [
			{"text": "Declares and assigns", "is_correct": true},
			{"text": "Compares values", "explanation": "That is ==."}
		]
	}
]`

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
		UploadDir: t.TempDir(),
	}

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func createCourse(t *testing.T, instructorID uint, title, status string) models.Course {
	t.Helper()

	course := models.Course{
		InstructorID: instructorID,
		Title:        title,
		Description:  "A test course",
		Status:       status,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (*http.Response, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func courseForm(t *testing.T, title, description, bannerName string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("title", title))
	require.NoError(t, writer.WriteField("description", description))
	if bannerName != "" {
		part, err := writer.CreateFormFile("banner", bannerName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestCreateCourseStoresBannerAndNotifies(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")

	body, contentType := courseForm(t, "Go Basics", "Learn Go from scratch", "banner.png")
	req := httptest.NewRequest(http.MethodPost, "/api/courses/", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var course models.Course
	require.NoError(t, database.Database.Db.
		Where("instructor_id = ?", instructor.ID).
		First(&course).Error)
	assert.Equal(t, "Go Basics", course.Title)
	assert.Equal(t, models.CourseDraft, course.Status)
	assert.True(t, strings.HasPrefix(course.BannerURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(course.BannerURL, ".png"))

	saved := filepath.Join(config.AppConfig.UploadDir, strings.TrimPrefix(course.BannerURL, "/uploads/"))
	_, err = os.Stat(saved)
	assert.NoError(t, err)

	var notification models.Notification
	require.NoError(t, database.Database.Db.
		Where("user_id = ?", instructor.ID).
		First(&notification).Error)
	assert.Equal(t, `Course "Go Basics" has been created successfully.`, notification.Message)
}

func TestCreateCourseRejectsNonImageBanner(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "Ada", "ada@example.com", "instructor")

	body, contentType := courseForm(t, "Go Basics", "Learn Go from scratch", "banner.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/courses/", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateCourseRequiresInstructorRole(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "Linus", "linus@example.com", "student")

	body, contentType := courseForm(t, "Go Basics", "Learn Go from scratch", "banner.png")
	req := httptest.NewRequest(http.MethodPost, "/api/courses/", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUpdateCourseStatusPublishNotifies(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	resp, _ := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/courses/%d/status", course.ID), token,
		map[string]string{"status": "published"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Course
	require.NoError(t, database.Database.Db.First(&stored, course.ID).Error)
	assert.Equal(t, models.CoursePublished, stored.Status)

	var notification models.Notification
	require.NoError(t, database.Database.Db.
		Where("user_id = ?", instructor.ID).
		Order("created_at desc").
		First(&notification).Error)
	assert.Equal(t, "Your course has been published.", notification.Message)
}

func TestUpdateCourseStatusRejectsUnknownStatus(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	resp, _ := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/courses/%d/status", course.ID), token,
		map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateCourseStatusScopedToOwner(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "Ada", "ada@example.com", "instructor")
	_, otherToken := createUser(t, "Grace", "grace@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	resp, _ := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/courses/%d/status", course.ID), otherToken,
		map[string]string{"status": "published"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCourseArchivesWhenStudentsEnrolled(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	student, _ := createUser(t, "Linus", "linus@example.com", "student")
	course := createCourse(t, instructor.ID, "Go Basics", models.CoursePublished)

	require.NoError(t, database.Database.Db.Create(&models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
	}).Error)

	resp, env := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/courses/%d", course.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Archived bool `json:"archived"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Archived)

	var stored models.Course
	require.NoError(t, database.Database.Db.First(&stored, course.ID).Error)
	assert.Equal(t, models.CourseArchived, stored.Status)
}

func TestDeleteCourseRemovesWhenNoEnrollments(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	resp, env := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/courses/%d", course.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Deleted bool `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Deleted)

	err := database.Database.Db.First(&models.Course{}, course.ID).Error
	assert.Error(t, err)
}

func TestCreateSectionAcceptsValidQuiz(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/courses/%d/sections", course.ID), token,
		map[string]string{
			"title":        "Checkpoint",
			"content_type": "quiz",
			"content_data": validQuizJSON,
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var section models.Section
	require.NoError(t, database.Database.Db.
		Where("course_id = ?", course.ID).
		First(&section).Error)
	assert.Equal(t, models.ContentQuiz, section.ContentType)

	// the stored payload is the canonical serialized form and parses back
	doc, err := quiz.Parse(section.ContentData)
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, 0, doc[0].CorrectChoice())
}

func TestCreateSectionRejectsQuizWithTwoCorrectChoices(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	badQuiz := `[{"prompt":"Pick one","choices":[{"text":"a","is_correct":true},{"text":"b","is_correct":true}]}]`
	resp, env := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/courses/%d/sections", course.ID), token,
		map[string]string{
			"title":        "Checkpoint",
			"content_type": "quiz",
			"content_data": badQuiz,
		})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Contains(t, fieldErrors["content_data"], "2 correct choices")
}

func TestCreateSectionRejectsMalformedQuiz(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	resp, env := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/courses/%d/sections", course.ID), token,
		map[string]string{
			"title":        "Checkpoint",
			"content_type": "quiz",
			"content_data": "not json at all",
		})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Equal(t, "Invalid quiz format!", fieldErrors["content_data"])
}

func TestCreateSectionRejectsUnknownVideoHost(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	resp, env := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/courses/%d/sections", course.ID), token,
		map[string]string{
			"title":        "Intro",
			"content_type": "video",
			"content_data": "https://example.com/video.mp4",
		})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Contains(t, fieldErrors["content_data"], "YouTube or Vimeo")
}

func TestCreateSectionAcceptsYouTubeVideo(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/courses/%d/sections", course.ID), token,
		map[string]string{
			"title":        "Intro",
			"content_type": "video",
			"content_data": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateSectionScopedToOwner(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "Ada", "ada@example.com", "instructor")
	_, otherToken := createUser(t, "Grace", "grace@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/courses/%d/sections", course.ID), otherToken,
		map[string]string{
			"title":        "Welcome",
			"content_type": "reading",
			"content_data": "<p>hello</p>",
		})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteSection(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	_, otherToken := createUser(t, "Grace", "grace@example.com", "instructor")
	course := createCourse(t, instructor.ID, "Go Basics", models.CourseDraft)

	section := models.Section{
		CourseID:    course.ID,
		Title:       "Welcome",
		ContentType: models.ContentReading,
		ContentData: "<p>hello</p>",
	}
	require.NoError(t, database.Database.Db.Create(&section).Error)

	// other instructors cannot delete it
	resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/sections/%d", section.ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/sections/%d", section.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	err := database.Database.Db.First(&models.Section{}, section.ID).Error
	assert.Error(t, err)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/sections/%d", section.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboard(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")

	resp, env := doJSON(t, app, http.MethodGet, "/api/instructor/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		TotalCourses int64           `json:"totalCourses"`
		TopCourse    string          `json:"topCourse"`
		Courses      []models.Course `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(0), data.TotalCourses)
	assert.Equal(t, "No courses yet", data.TopCourse)

	createCourse(t, instructor.ID, "Go Basics", models.CoursePublished)
	createCourse(t, instructor.ID, "Advanced Go", models.CourseDraft)

	resp, env = doJSON(t, app, http.MethodGet, "/api/instructor/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(2), data.TotalCourses)
	assert.Len(t, data.Courses, 2)
}

func TestStudentEngagementCountsEnrollments(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	student, _ := createUser(t, "Linus", "linus@example.com", "student")
	popular := createCourse(t, instructor.ID, "Go Basics", models.CoursePublished)
	createCourse(t, instructor.ID, "Advanced Go", models.CoursePublished)

	require.NoError(t, database.Database.Db.Create(&models.Enrollment{
		StudentID: student.ID,
		CourseID:  popular.ID,
	}).Error)

	resp, env := doJSON(t, app, http.MethodGet, "/api/instructor/student-engagement", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Engagement []struct {
			CourseID      uint  `json:"course_id"`
			TotalEnrolled int64 `json:"total_enrolled"`
		} `json:"engagement"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Engagement, 2)

	counts := make(map[uint]int64)
	for _, e := range data.Engagement {
		counts[e.CourseID] = e.TotalEnrolled
	}
	assert.Equal(t, int64(1), counts[popular.ID])
}

func TestCourseStudentsListsEnrolledUsers(t *testing.T) {
	app := setupApp(t)
	instructor, token := createUser(t, "Ada", "ada@example.com", "instructor")
	student, _ := createUser(t, "Linus", "linus@example.com", "student")
	course := createCourse(t, instructor.ID, "Go Basics", models.CoursePublished)

	require.NoError(t, database.Database.Db.Create(&models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
	}).Error)

	resp, env := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/instructor/course/%d/students", course.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Students []struct {
			UserID uint   `json:"user_id"`
			Name   string `json:"name"`
			Email  string `json:"email"`
		} `json:"students"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Students, 1)
	assert.Equal(t, student.ID, data.Students[0].UserID)
	assert.Equal(t, "Linus", data.Students[0].Name)
}
