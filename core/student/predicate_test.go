package student

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func filter(students []Student, pred func(Student) bool) []Name {
	var names []Name
	for _, s := range students {
		if pred(s) {
			names = append(names, s.Name)
		}
	}
	return names
}

func TestKeywordPredicate_Test(t *testing.T) {
	students := []Student{
		newStudent("Alice Pauline", "TG1"),
		newStudent("Benson Meier", "TG1"),
		newStudent("Carl Kurz", "TG2"),
		newStudent("Daniel Meier", ""),
	}

	tests := []struct {
		name string
		pred KeywordPredicate
		want []Name
	}{
		{name: "empty predicate matches nothing", pred: KeywordPredicate{}},
		{name: "name substring ignores case", pred: KeywordPredicate{Names: []string{"meI"}}, want: []Name{"Benson Meier", "Daniel Meier"}},
		{name: "names or", pred: KeywordPredicate{Names: []string{"alice", "carl"}}, want: []Name{"Alice Pauline", "Carl Kurz"}},
		{name: "tutorial group", pred: KeywordPredicate{TutorialGroups: []string{"TG1"}}, want: []Name{"Alice Pauline", "Benson Meier"}},
		{name: "unassigned never matches", pred: KeywordPredicate{TutorialGroups: []string{"TG"}}, want: []Name{"Alice Pauline", "Benson Meier", "Carl Kurz"}},
		{name: "email", pred: KeywordPredicate{Emails: []string{"kurz@"}}, want: []Name{"Carl Kurz"}},
		{name: "handle", pred: KeywordPredicate{Handles: []string{"@daniel"}}, want: []Name{"Daniel Meier"}},
		{name: "or across fields", pred: KeywordPredicate{Names: []string{"Alice"}, TutorialGroups: []string{"TG2"}}, want: []Name{"Alice Pauline", "Carl Kurz"}},
		{name: "empty field list does not match all", pred: KeywordPredicate{Names: []string{}, Emails: []string{"nobody"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter(students, tt.pred.Test))
		})
	}
}

func TestComparator(t *testing.T) {
	students := []Student{
		newStudent("carl", "TG2").WithGrade(Q1, "60.00").WithAttendance(T1, true),
		newStudent("Alice", "").WithGrade(Q1, "90.00"),
		newStudent("bob", "TG1").WithGrade(Q1, "75.00").WithAttendance(T1, true).WithAttendance(T2, true),
		newStudent("Dan", "TG1"),
	}

	tests := []struct {
		field SortField
		order SortOrder
		want  []Name
	}{
		{field: SortByName, order: Ascending, want: []Name{"Alice", "bob", "carl", "Dan"}},
		{field: SortByName, order: Descending, want: []Name{"Dan", "carl", "bob", "Alice"}},
		{field: SortByTutorial, order: Ascending, want: []Name{"bob", "Dan", "carl", "Alice"}},
		{field: SortByGrade, order: Ascending, want: []Name{"Dan", "carl", "bob", "Alice"}},
		{field: SortByGrade, order: Descending, want: []Name{"Alice", "bob", "carl", "Dan"}},
		{field: SortByAttendance, order: Descending, want: []Name{"bob", "carl", "Alice", "Dan"}},
	}
	for _, tt := range tests {
		t.Run(tt.field.String()+" "+tt.order.String(), func(t *testing.T) {
			sorted := make([]Student, len(students))
			copy(sorted, students)
			less := Comparator(tt.field, tt.order)
			sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
			assert.Equal(t, tt.want, filter(sorted, ShowAll))
		})
	}
}

func TestParseSortFieldAndOrder(t *testing.T) {
	f, ok := ParseSortField("Grade")
	assert.True(t, ok)
	assert.Equal(t, SortByGrade, f)
	_, ok = ParseSortField("phone")
	assert.False(t, ok)

	o, ok := ParseSortOrder("DESC")
	assert.True(t, ok)
	assert.Equal(t, Descending, o)
	_, ok = ParseSortOrder("up")
	assert.False(t, ok)
}
