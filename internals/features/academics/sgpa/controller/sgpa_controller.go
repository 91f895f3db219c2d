package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dtuportal_backend/internals/features/academics/sgpa/dto"
	"dtuportal_backend/internals/features/academics/sgpa/service"
	helper "dtuportal_backend/internals/helpers"
)

type SGPAController struct {
	DB *gorm.DB
}

func NewSGPAController(db *gorm.DB) *SGPAController {
	return &SGPAController{DB: db}
}

// GET /api/sgpa/:student_id
func (ctrl *SGPAController) GetSGPAByStudent(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	rows, err := service.ListSGPAByStudent(c.UserContext(), ctrl.DB, studentID)
	if err != nil {
		return helper.QueryError(c, err, "Error fetching SGPA")
	}
	return c.JSON(dto.ToSGPADTOs(rows))
}
