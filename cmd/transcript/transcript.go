package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gorm.io/gorm"

	resultService "dtuportal_backend/internals/features/academics/results/service"
	sgpaService "dtuportal_backend/internals/features/academics/sgpa/service"
	studentService "dtuportal_backend/internals/features/academics/students/service"
)

var errStudentNotFound = errors.New("student not found")

func printTranscript(ctx context.Context, w io.Writer, db *gorm.DB, rollNo string) error {
	student, found, err := studentService.GetStudentByRollNo(ctx, db, rollNo)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", errStudentNotFound, rollNo)
	}

	id, ok := student["id"]
	if !ok || id == nil {
		return fmt.Errorf("student %s has no id column", rollNo)
	}
	studentID := fmt.Sprint(id)

	heading := color.New(color.FgCyan, color.Bold)
	name, _ := student["name"].(string)
	heading.Fprintf(w, "\n=== %s %s (id %s) ===\n", rollNo, name, studentID)

	results, err := resultService.ListResultsByStudent(ctx, db, studentID)
	if err != nil {
		return err
	}
	heading.Fprintln(w, "\nResults")
	if len(results) == 0 {
		color.New(color.FgYellow).Fprintln(w, "no results recorded")
	} else {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Semester", "Code", "Subject", "Credits", "Grade"})
		for _, r := range results {
			grade := "-"
			if r.Grade != nil {
				grade = *r.Grade
			}
			table.Append([]string{
				strconv.Itoa(r.Semester),
				r.SubjectCode,
				r.SubjectName,
				strconv.Itoa(r.Credits),
				grade,
			})
		}
		table.Render()
	}

	history, err := sgpaService.ListSGPAByStudent(ctx, db, studentID)
	if err != nil {
		return err
	}
	heading.Fprintln(w, "\nSGPA")
	if len(history) == 0 {
		color.New(color.FgYellow).Fprintln(w, "no SGPA recorded")
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Semester", "SGPA", "Credits"})
	for _, s := range history {
		table.Append([]string{
			strconv.Itoa(s.Semester),
			strconv.FormatFloat(s.SGPA, 'f', 2, 64),
			strconv.Itoa(s.TotalCredits),
		})
	}
	table.Render()
	return nil
}
