package model

// ResultModel is one results row joined with its subject.
type ResultModel struct {
	Semester    int     `gorm:"column:semester"`
	SubjectCode string  `gorm:"column:subject_code"`
	SubjectName string  `gorm:"column:subject_name"`
	Credits     int     `gorm:"column:credits"`
	Grade       *string `gorm:"column:grade"` // nullable until graded
}
