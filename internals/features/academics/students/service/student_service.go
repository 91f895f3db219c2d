package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dtuportal_backend/internals/features/academics/students/model"
)

const (
	listStudentsSQL    = `SELECT * FROM students`
	studentByRollNoSQL = `SELECT * FROM students WHERE roll_no = ? LIMIT 1`
)

// ListStudents returns every student in database order.
func ListStudents(ctx context.Context, db *gorm.DB) ([]model.StudentModel, error) {
	rows := make([]map[string]interface{}, 0)
	if err := db.WithContext(ctx).Raw(listStudentsSQL).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	students := make([]model.StudentModel, 0, len(rows))
	for _, r := range rows {
		students = append(students, model.StudentModel(r))
	}
	return students, nil
}

// GetStudentByRollNo returns the first student with rollNo, or found=false.
// Uniqueness of roll_no is assumed, not checked.
func GetStudentByRollNo(ctx context.Context, db *gorm.DB, rollNo string) (student model.StudentModel, found bool, err error) {
	rows := make([]map[string]interface{}, 0, 1)
	if err := db.WithContext(ctx).Raw(studentByRollNoSQL, rollNo).Scan(&rows).Error; err != nil {
		return nil, false, fmt.Errorf("student by roll_no: %w", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return model.StudentModel(rows[0]), true, nil
}
