package dto

import "dtuportal_backend/internals/features/academics/results/model"

// ============================
// Response DTO
// ============================

type ResultDTO struct {
	Semester    int     `json:"semester"`
	SubjectCode string  `json:"subject_code"`
	SubjectName string  `json:"subject_name"`
	Credits     int     `json:"credits"`
	Grade       *string `json:"grade"`
}

// ============================
// Converter
// ============================

func ToResultDTO(m model.ResultModel) ResultDTO {
	return ResultDTO{
		Semester:    m.Semester,
		SubjectCode: m.SubjectCode,
		SubjectName: m.SubjectName,
		Credits:     m.Credits,
		Grade:       m.Grade,
	}
}

func ToResultDTOs(rows []model.ResultModel) []ResultDTO {
	out := make([]ResultDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToResultDTO(r))
	}
	return out
}
