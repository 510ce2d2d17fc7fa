package repository

import (
	"fmt"
	"time"

	"github.com/spec-kit/employee-directory/internal/domain"
)

const seedCount = 10

var (
	seedStates     = []string{"California", "Texas", "New York", "Florida", "Illinois", "Pennsylvania", "Ohio", "Georgia"}
	seedFirstNames = []string{"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Jessica", "William", "Ashley"}
	seedLastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
)

// SeedEmployees returns the deterministic sample collection used when no
// stored collection exists.
func SeedEmployees() []domain.Employee {
	out := make([]domain.Employee, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		dob := time.Date(1980+i%30, time.Month(i%12+1), i%28+1, 0, 0, 0, 0, time.UTC)
		out = append(out, domain.Employee{
			ID:           int64(i + 1),
			FullName:     seedFirstNames[i%len(seedFirstNames)] + " " + seedLastNames[i%len(seedLastNames)],
			Gender:       domain.Genders[i%len(domain.Genders)],
			DateOfBirth:  dob.Format(domain.DateLayout),
			State:        seedStates[i%len(seedStates)],
			ProfileImage: fmt.Sprintf("https://i.pravatar.cc/150?img=%d", i+1),
			Active:       i%3 != 0,
		})
	}
	return out
}
