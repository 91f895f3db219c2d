package controller

import (
	"errors"
	"io"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dtuportal_backend/internals/testutil"
)

var resultsSQL = regexp.QuoteMeta(
	`SELECT r.semester, s.code AS subject_code, s.name AS subject_name, s.credits, r.grade ` +
		`FROM results r JOIN subjects s ON r.subject_id = s.id ` +
		`WHERE r.student_id = $1 ORDER BY r.semester, s.code`)

var resultColumns = []string{"semester", "subject_code", "subject_name", "credits", "grade"}

func newResultApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Get("/api/results/:student_id", NewResultController(db).GetResultsByStudent)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestGetResultsByStudent_OrderedBySemesterThenCode(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(resultsSQL).WithArgs("1").WillReturnRows(
		sqlmock.NewRows(resultColumns).
			AddRow(1, "CS100", "Programming Fundamentals", 3, "B").
			AddRow(1, "CS101", "Discrete Mathematics", 4, "A").
			AddRow(2, "CS201", "Data Structures", 4, nil),
	)

	status, body := get(t, newResultApp(db), "/api/results/1")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[
		{"semester":1,"subject_code":"CS100","subject_name":"Programming Fundamentals","credits":3,"grade":"B"},
		{"semester":1,"subject_code":"CS101","subject_name":"Discrete Mathematics","credits":4,"grade":"A"},
		{"semester":2,"subject_code":"CS201","subject_name":"Data Structures","credits":4,"grade":null}
	]`, body)
}

func TestGetResultsByStudent_NoResultsIsEmptyArray(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(resultsSQL).WithArgs("42").WillReturnRows(sqlmock.NewRows(resultColumns))

	status, body := get(t, newResultApp(db), "/api/results/42")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, body)
}

func TestGetResultsByStudent_QueryError(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(resultsSQL).WithArgs("abc").
		WillReturnError(errors.New(`invalid input syntax for type integer: "abc"`))

	status, body := get(t, newResultApp(db), "/api/results/abc")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Server Error", body)
}
