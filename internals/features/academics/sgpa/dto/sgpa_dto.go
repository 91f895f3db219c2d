package dto

import "dtuportal_backend/internals/features/academics/sgpa/model"

type SGPADTO struct {
	Semester     int     `json:"semester"`
	SGPA         float64 `json:"sgpa"`
	TotalCredits int     `json:"total_credits"`
}

func ToSGPADTOs(rows []model.SGPAModel) []SGPADTO {
	out := make([]SGPADTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, SGPADTO{
			Semester:     r.Semester,
			SGPA:         r.SGPA,
			TotalCredits: r.TotalCredits,
		})
	}
	return out
}
