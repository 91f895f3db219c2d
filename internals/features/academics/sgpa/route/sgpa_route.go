package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dtuportal_backend/internals/features/academics/sgpa/controller"
)

func SGPARoutes(api fiber.Router, db *gorm.DB) {
	sgpaCtrl := controller.NewSGPAController(db)

	api.Get("/sgpa/:student_id", sgpaCtrl.GetSGPAByStudent)
}
