package details

import (
	ResultRoutes "dtuportal_backend/internals/features/academics/results/route"
	SGPARoutes "dtuportal_backend/internals/features/academics/sgpa/route"
	StudentRoutes "dtuportal_backend/internals/features/academics/students/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Read-only academic record endpoints, mounted under /api.
func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	StudentRoutes.StudentRoutes(api, db)
	ResultRoutes.ResultRoutes(api, db)
	SGPARoutes.SGPARoutes(api, db)
}
