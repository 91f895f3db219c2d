package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dtuportal_backend/internals/features/academics/students/service"
	helper "dtuportal_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/students
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	students, err := service.ListStudents(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.QueryError(c, err, "Error fetching students")
	}
	return c.JSON(students)
}

// GET /api/students/roll/:roll_no
func (ctrl *StudentController) GetStudentByRollNo(c *fiber.Ctx) error {
	rollNo := c.Params("roll_no")

	student, found, err := service.GetStudentByRollNo(c.UserContext(), ctrl.DB, rollNo)
	if err != nil {
		return helper.QueryError(c, err, "Error fetching student by roll_no")
	}
	if !found {
		return helper.NotFound(c, helper.MsgStudentNotFound)
	}
	return c.JSON(student)
}
