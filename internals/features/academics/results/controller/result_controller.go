package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dtuportal_backend/internals/features/academics/results/dto"
	"dtuportal_backend/internals/features/academics/results/service"
	helper "dtuportal_backend/internals/helpers"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

// GET /api/results/:student_id
func (ctrl *ResultController) GetResultsByStudent(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	rows, err := service.ListResultsByStudent(c.UserContext(), ctrl.DB, studentID)
	if err != nil {
		return helper.QueryError(c, err, "Error fetching results")
	}
	return c.JSON(dto.ToResultDTOs(rows))
}
