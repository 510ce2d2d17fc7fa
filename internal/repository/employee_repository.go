package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/persistence"
)

// EmployeeRepository owns the employee collection and its persisted copy.
// Lookups by an unknown id are no-ops reported through the bool result.
type EmployeeRepository interface {
	Load(ctx context.Context) error
	List(ctx context.Context) []domain.Employee
	Get(ctx context.Context, id int64) (domain.Employee, bool)
	Add(ctx context.Context, draft domain.Draft) (domain.Employee, error)
	Update(ctx context.Context, id int64, draft domain.Draft) (domain.Employee, bool, error)
	Delete(ctx context.Context, id int64) (domain.Employee, bool, error)
	ToggleStatus(ctx context.Context, id int64) (domain.Employee, bool, error)
}

type employeeRepository struct {
	blobs persistence.BlobStore
	key   string

	// mu is held across persist+commit so the stored blob and the in-memory
	// slice never diverge.
	mu        sync.RWMutex
	employees []domain.Employee
	lastID    int64
}

// NewEmployeeRepository returns a repository that persists the whole
// collection under key. Call Load before use.
func NewEmployeeRepository(blobs persistence.BlobStore, key string) EmployeeRepository {
	return &employeeRepository{blobs: blobs, key: key}
}

func (r *employeeRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.blobs.Get(ctx, r.key)
	if errors.Is(err, persistence.ErrBlobNotFound) {
		seed := SeedEmployees()
		if err := r.persist(ctx, seed); err != nil {
			return fmt.Errorf("persist seed employees: %w", err)
		}
		r.employees = seed
		r.lastID = maxID(seed)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}

	var stored []domain.Employee
	if err := json.Unmarshal(raw, &stored); err != nil {
		return fmt.Errorf("decode employees: %w", err)
	}
	seen := make(map[int64]struct{}, len(stored))
	for _, e := range stored {
		if e.ID <= 0 {
			return fmt.Errorf("decode employees: invalid id %d", e.ID)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("decode employees: duplicate id %d", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	if stored == nil {
		stored = []domain.Employee{}
	}
	r.employees = stored
	r.lastID = maxID(stored)
	return nil
}

func (r *employeeRepository) List(_ context.Context) []domain.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Employee(nil), r.employees...)
}

func (r *employeeRepository) Get(_ context.Context, id int64) (domain.Employee, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if idx := r.indexOf(id); idx >= 0 {
		return r.employees[idx], true
	}
	return domain.Employee{}, false
}

func (r *employeeRepository) Add(ctx context.Context, draft domain.Draft) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee := draft.WithID(r.lastID + 1)
	next := make([]domain.Employee, 0, len(r.employees)+1)
	next = append(next, r.employees...)
	next = append(next, employee)

	if err := r.persist(ctx, next); err != nil {
		return domain.Employee{}, err
	}
	r.employees = next
	r.lastID = employee.ID
	return employee, nil
}

func (r *employeeRepository) Update(ctx context.Context, id int64, draft domain.Draft) (domain.Employee, bool, error) {
	return r.replace(ctx, id, func(domain.Employee) domain.Employee {
		return draft.WithID(id)
	})
}

func (r *employeeRepository) ToggleStatus(ctx context.Context, id int64) (domain.Employee, bool, error) {
	return r.replace(ctx, id, func(e domain.Employee) domain.Employee {
		e.Active = !e.Active
		return e
	})
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) (domain.Employee, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return domain.Employee{}, false, nil
	}
	removed := r.employees[idx]
	next := make([]domain.Employee, 0, len(r.employees)-1)
	next = append(next, r.employees[:idx]...)
	next = append(next, r.employees[idx+1:]...)

	if err := r.persist(ctx, next); err != nil {
		return domain.Employee{}, true, err
	}
	r.employees = next
	return removed, true, nil
}

func (r *employeeRepository) replace(ctx context.Context, id int64, fn func(domain.Employee) domain.Employee) (domain.Employee, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return domain.Employee{}, false, nil
	}
	next := append([]domain.Employee(nil), r.employees...)
	next[idx] = fn(next[idx])

	if err := r.persist(ctx, next); err != nil {
		return domain.Employee{}, true, err
	}
	r.employees = next
	return next[idx], true, nil
}

func (r *employeeRepository) persist(ctx context.Context, employees []domain.Employee) error {
	raw, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}
	if err := r.blobs.Put(ctx, r.key, raw); err != nil {
		return fmt.Errorf("persist employees: %w", err)
	}
	return nil
}

func (r *employeeRepository) indexOf(id int64) int {
	for i := range r.employees {
		if r.employees[i].ID == id {
			return i
		}
	}
	return -1
}

func maxID(employees []domain.Employee) int64 {
	var highest int64
	for _, e := range employees {
		if e.ID > highest {
			highest = e.ID
		}
	}
	return highest
}
