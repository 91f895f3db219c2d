package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dtuportal_backend/internals/features/academics/results/controller"
)

func ResultRoutes(api fiber.Router, db *gorm.DB) {
	resultCtrl := controller.NewResultController(db)

	api.Get("/results/:student_id", resultCtrl.GetResultsByStudent)
}
