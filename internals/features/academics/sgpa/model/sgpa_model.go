package model

type SGPAModel struct {
	StudentID    int64   `gorm:"column:student_id"`
	Semester     int     `gorm:"column:semester"`
	SGPA         float64 `gorm:"column:sgpa;type:numeric"`
	TotalCredits int     `gorm:"column:total_credits"`
}

func (SGPAModel) TableName() string {
	return "sgpa"
}
