package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/employee-directory/internal/domain"
)

func sampleEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: 1, FullName: "Ann", Gender: domain.GenderFemale, Active: true},
		{ID: 2, FullName: "Bob", Gender: domain.GenderMale, Active: false},
		{ID: 3, FullName: "Annabel Lee", Gender: domain.GenderOther, Active: false},
		{ID: 4, FullName: "Joanne", Gender: domain.GenderFemale, Active: true},
	}
}

func ids(employees []domain.Employee) []int64 {
	out := make([]int64, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterInactiveScenario(t *testing.T) {
	records := []domain.Employee{
		{ID: 1, FullName: "Ann", Active: true},
		{ID: 2, FullName: "Bob", Active: false},
	}

	got := FilterEmployees(records, Criteria{Search: "", Gender: SelectorAll, Status: StatusInactive})
	assert.Equal(t, []domain.Employee{records[1]}, got)
}

func TestFilterWildcardsReturnEverythingInOrder(t *testing.T) {
	records := sampleEmployees()

	assert.Equal(t, records, FilterEmployees(records, Criteria{Gender: SelectorAll, Status: SelectorAll}))
	assert.Equal(t, records, FilterEmployees(records, Criteria{}))
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := FilterEmployees(sampleEmployees(), Criteria{Search: "ANN"})
	assert.Equal(t, []int64{1, 3, 4}, ids(got))

	got = FilterEmployees(sampleEmployees(), Criteria{Search: "zed"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFilterCombinesPredicates(t *testing.T) {
	got := FilterEmployees(sampleEmployees(), Criteria{Search: "ann", Gender: "Female", Status: StatusActive})
	assert.Equal(t, []int64{1, 4}, ids(got))

	got = FilterEmployees(sampleEmployees(), Criteria{Gender: "Other", Status: StatusActive})
	assert.Empty(t, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	criteria := []Criteria{
		{Search: "an"},
		{Gender: "Female"},
		{Status: StatusInactive},
		{Search: "b", Gender: "Male", Status: StatusInactive},
	}
	for _, c := range criteria {
		once := FilterEmployees(sampleEmployees(), c)
		assert.Equal(t, once, FilterEmployees(once, c), "%+v", c)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := sampleEmployees()
	_ = FilterEmployees(records, Criteria{Status: StatusActive})
	assert.Equal(t, sampleEmployees(), records)
}

func TestCriteriaValidate(t *testing.T) {
	assert.Empty(t, Criteria{}.Validate())
	assert.Empty(t, Criteria{Gender: "all", Status: "all"}.Validate())
	assert.Empty(t, Criteria{Gender: "Other", Status: "inactive"}.Validate())

	errs := Criteria{Gender: "male", Status: "gone"}.Validate()
	assert.Contains(t, errs, "gender")
	assert.Contains(t, errs, "status")
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{Total: 4, Active: 2, Inactive: 2}, Summarize(sampleEmployees()))
	assert.Equal(t, Summary{}, Summarize(nil))
}
