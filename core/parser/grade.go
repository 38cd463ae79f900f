package parser

import (
	"github.com/trezcool/roster/core/command"
	"github.com/trezcool/roster/core/student"
)

// ParseGrade parses `INDEX g/GRADE a/ASSIGNMENT`. An empty g/ clears the grade.
func ParseGrade(args string) (command.Command, error) {
	am := Tokenize(args, PrefixGrade, PrefixAssignment)

	if err := checkIndexAndPrefixes(am, command.GradeUsage, PrefixGrade, PrefixAssignment); err != nil {
		return nil, err
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixGrade, PrefixAssignment); err != nil {
		return nil, err
	}

	index, err := student.ParseIndex(am.Preamble())
	if err != nil {
		return nil, err
	}
	gradeVal, _ := am.Value(PrefixGrade)
	grade, err := student.ParseGrade(gradeVal)
	if err != nil {
		return nil, err
	}
	assignmentVal, _ := am.Value(PrefixAssignment)
	assignment, err := student.ParseAssignment(assignmentVal)
	if err != nil {
		return nil, err
	}
	return command.Grade{Index: index, Grade: grade, Assignment: assignment}, nil
}
