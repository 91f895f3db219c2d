package model

// StudentModel is one row of the students table. Profile columns belong to
// the loaders that own the schema, so rows stay column-for-column maps.
type StudentModel map[string]interface{}
