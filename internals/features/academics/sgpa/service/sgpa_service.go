package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dtuportal_backend/internals/features/academics/sgpa/model"
)

// ListSGPAByStudent returns the per-semester SGPA history, oldest first.
func ListSGPAByStudent(ctx context.Context, db *gorm.DB, studentID string) ([]model.SGPAModel, error) {
	rows := make([]model.SGPAModel, 0)
	err := db.WithContext(ctx).
		Model(&model.SGPAModel{}).
		Select("semester, sgpa, total_credits").
		Where("student_id = ?", studentID).
		Order("semester").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("sgpa for student %s: %w", studentID, err)
	}
	return rows, nil
}
