package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dtuportal_backend/internals/features/academics/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	studentCtrl := controller.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", studentCtrl.GetAllStudents)
	students.Get("/roll/:roll_no", studentCtrl.GetStudentByRollNo)
}
