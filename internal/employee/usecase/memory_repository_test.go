package usecase

import (
	"context"
	"sync"

	"github.com/xenosis/employees/internal/employee/domain"
	apperrors "github.com/xenosis/employees/internal/errors"
)

// memoryRepository is an EmployeeRepository backed by a map, used to run
// whole scenarios without a database.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Employee
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: make(map[int64]domain.Employee)}
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound(id)
	}
	return &e, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.rows {
		if e.Email == email {
			return &e, nil
		}
	}
	return nil, apperrors.Wrapf(apperrors.ErrNotFound, "employee not found with email: %s", email)
}

func (r *memoryRepository) FindAll(_ context.Context) ([]*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Employee, 0, len(r.rows))
	for _, e := range r.rows {
		out = append(out, &e)
	}
	return out, nil
}

func (r *memoryRepository) Save(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.rows {
		if e.Email == employee.Email && id != employee.ID {
			return domain.ErrDuplicateEmail(employee.Email)
		}
	}
	if employee.ID == 0 {
		r.nextID++
		employee.ID = r.nextID
	}
	r.rows[employee.ID] = *employee
	return nil
}

func (r *memoryRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *memoryRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *memoryRepository) DepartmentCounts(_ context.Context) ([]domain.DepartmentCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int64)
	for _, e := range r.rows {
		counts[e.Department]++
	}
	out := make([]domain.DepartmentCount, 0, len(counts))
	for dept, n := range counts {
		out = append(out, domain.DepartmentCount{Department: dept, Count: n})
	}
	return out, nil
}

var _ EmployeeRepository = (*memoryRepository)(nil)
