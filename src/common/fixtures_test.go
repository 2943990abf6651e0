package common

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"

	"onboarding/src/db"
	"onboarding/src/lib"
	"onboarding/src/models"
	"onboarding/src/types"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	manager  models.Role
	employee models.Role
	boss     *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{db: db.CreateTestDB()}
	f.manager = models.Role{RoleName: types.ROLE_MANAGER}
	f.employee = models.Role{RoleName: types.ROLE_EMPLOYEE}
	require.NoError(t, f.db.Create(&f.manager).Error)
	require.NoError(t, f.db.Create(&f.employee).Error)
	f.boss = f.user(t, "manager@example.com", f.manager)
	return f
}

func (f *fixture) user(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()
	u := models.User{Email: email, PasswordHash: "unused", RoleID: role.ID}
	require.NoError(t, f.db.Create(&u).Error)
	u.Role = role
	return &u
}

func (f *fixture) project(t *testing.T, name string) *models.Project {
	t.Helper()
	p := models.Project{ProjectName: name}
	require.NoError(t, f.db.Create(&p).Error)
	return &p
}

func (f *fixture) task(t *testing.T, projectID uint, description string, roleID *uint, assignedTo *uint) *models.Task {
	t.Helper()
	task := models.Task{
		Description: description,
		ProjectID:   projectID,
		RoleID:      roleID,
		AssignedTo:  assignedTo,
		Status:      types.TASK_PENDING,
	}
	require.NoError(t, f.db.Create(&task).Error)
	return &task
}

func (f *fixture) count(t *testing.T, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func ref(id uint) *uint {
	return &id
}

// memStorage keeps objects in memory.
type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

var _ lib.Storage = (*memStorage)(nil)

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (m *memStorage) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[name]; ok {
		return fmt.Errorf("object %s exists", name)
	}
	m.objects[name] = b
	return nil
}

func (m *memStorage) Remove(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[name]; !ok {
		return fmt.Errorf("object %s missing", name)
	}
	delete(m.objects, name)
	return nil
}

func (m *memStorage) Serve(w http.ResponseWriter, r *http.Request, name string) {
	m.mu.Lock()
	b, ok := m.objects[name]
	m.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Write(b)
}

func (m *memStorage) has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[name]
	return ok
}
