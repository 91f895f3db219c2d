package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dtuportal_backend/internals/features/academics/results/model"
)

const resultsByStudentSQL = `
SELECT r.semester, s.code AS subject_code, s.name AS subject_name, s.credits, r.grade
FROM results r
JOIN subjects s ON r.subject_id = s.id
WHERE r.student_id = ?
ORDER BY r.semester, s.code`

// ListResultsByStudent returns a student's results ordered by semester, then
// subject code. A student without results yields an empty slice.
func ListResultsByStudent(ctx context.Context, db *gorm.DB, studentID string) ([]model.ResultModel, error) {
	rows := make([]model.ResultModel, 0)
	if err := db.WithContext(ctx).Raw(resultsByStudentSQL, studentID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("results for student %s: %w", studentID, err)
	}
	return rows, nil
}
