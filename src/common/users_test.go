package common

import (
	"testing"

	"onboarding/src/lib"
	"onboarding/src/models"
	"onboarding/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	onboarding := f.project(t, "Onboarding")
	security := f.project(t, "Security")
	f.task(t, onboarding.ID, "Read handbook", ref(f.employee.ID), nil)
	f.task(t, security.ID, "Enable 2FA", nil, nil)
	f.task(t, security.ID, "Audit access", ref(f.manager.ID), nil)

	user, err := CreateUser(f.db, types.CreateUserRequestBody{
		Email:      " New.Hire@Example.com ",
		Password:   "password123",
		RoleID:     f.employee.ID,
		ProjectIDs: []uint{onboarding.ID, security.ID, onboarding.ID},
	}, f.boss.ID)
	require.NoError(t, err)
	assert.Equal(t, "new.hire@example.com", user.Email)
	assert.Equal(t, types.ROLE_EMPLOYEE, user.Role.RoleName)

	ok, err := lib.VerifyPassword("password123", user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.EqualValues(t, 2, f.count(t, &models.UserProject{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 2, f.count(t, &models.UserChecklist{}, "user_id = ? AND assigned_by = ?", user.ID, f.boss.ID))
}

func TestCreateUserRejects(t *testing.T) {
	f := newFixture(t)
	project := f.project(t, "Onboarding")
	body := func(email string, roleID uint, projects ...uint) types.CreateUserRequestBody {
		return types.CreateUserRequestBody{Email: email, Password: "password123", RoleID: roleID, ProjectIDs: projects}
	}

	_, err := CreateUser(f.db, body("a@example.com", f.employee.ID), f.boss.ID)
	assert.ErrorIs(t, err, types.ErrValidation)
	_, err = CreateUser(f.db, body("a@example.com", 999, project.ID), f.boss.ID)
	assert.ErrorIs(t, err, types.ErrValidation)
	_, err = CreateUser(f.db, body("a@example.com", f.employee.ID, project.ID, 999), f.boss.ID)
	assert.ErrorIs(t, err, types.ErrValidation)
	_, err = CreateUser(f.db, body("MANAGER@example.com", f.employee.ID, project.ID), f.boss.ID)
	assert.ErrorIs(t, err, types.ErrConflict)

	assert.EqualValues(t, 0, f.count(t, &models.User{}, "email = ?", "a@example.com"))
	assert.EqualValues(t, 0, f.count(t, &models.UserProject{}, "project_id = ?", project.ID))
}

func TestUpdateUserReconcilesProjects(t *testing.T) {
	f := newFixture(t)
	keep := f.project(t, "Keep")
	drop := f.project(t, "Drop")
	add := f.project(t, "Add")
	for _, p := range []*models.Project{keep, drop, add} {
		f.task(t, p.ID, "Task in "+p.ProjectName, nil, nil)
	}
	user, err := CreateUser(f.db, types.CreateUserRequestBody{
		Email:      "employee1@example.com",
		Password:   "password123",
		RoleID:     f.employee.ID,
		ProjectIDs: []uint{keep.ID, drop.ID},
	}, f.boss.ID)
	require.NoError(t, err)
	oldHash := user.PasswordHash

	var kept models.UserChecklist
	require.NoError(t, f.db.Where("user_id = ? AND project_id = ?", user.ID, keep.ID).First(&kept).Error)
	_, err = UpdateChecklistItem(f.db, f.boss, kept.ID, types.TASK_COMPLETED, nil)
	require.NoError(t, err)

	updated, err := UpdateUser(f.db, user.ID, types.UpdateUserRequestBody{
		Email:      "employee1@example.com",
		RoleID:     f.employee.ID,
		ProjectIDs: []uint{keep.ID, add.ID},
	}, f.boss.ID)
	require.NoError(t, err)
	assert.Equal(t, oldHash, updated.PasswordHash, "blank password keeps the hash")

	projects, err := ListUserProjects(f.db, user.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Add", projects[0].ProjectName)
	assert.Equal(t, "Keep", projects[1].ProjectName)

	assert.EqualValues(t, 0, f.count(t, &models.UserChecklist{}, "user_id = ? AND project_id = ?", user.ID, drop.ID))
	assert.EqualValues(t, 1, f.count(t, &models.UserChecklist{}, "user_id = ? AND project_id = ?", user.ID, add.ID))
	assert.EqualValues(t, 1, f.count(t, &models.UserChecklist{}, "user_id = ? AND project_id = ? AND status = ?", user.ID, keep.ID, types.TASK_COMPLETED), "kept projects are untouched")

	updated, err = UpdateUser(f.db, user.ID, types.UpdateUserRequestBody{
		Email:    "employee.one@example.com",
		Password: "new-password",
		RoleID:   f.manager.ID,
	}, f.boss.ID)
	require.NoError(t, err)
	assert.Equal(t, "employee.one@example.com", updated.Email)
	assert.True(t, updated.IsManager())
	ok, err := lib.VerifyPassword("new-password", updated.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 2, f.count(t, &models.UserProject{}, "user_id = ?", user.ID), "nil project list leaves assignments alone")
}

func TestUpdateUserRejects(t *testing.T) {
	f := newFixture(t)
	employee := f.user(t, "employee1@example.com", f.employee)

	_, err := UpdateUser(f.db, 999, types.UpdateUserRequestBody{Email: "x@example.com", RoleID: f.employee.ID}, f.boss.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = UpdateUser(f.db, employee.ID, types.UpdateUserRequestBody{Email: "manager@example.com", RoleID: f.employee.ID}, f.boss.ID)
	assert.ErrorIs(t, err, types.ErrConflict)

	// own email is not a conflict
	_, err = UpdateUser(f.db, employee.ID, types.UpdateUserRequestBody{Email: "employee1@example.com", RoleID: f.employee.ID}, f.boss.ID)
	assert.NoError(t, err)
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	project := f.project(t, "Onboarding")
	employee := f.user(t, "employee1@example.com", f.employee)
	f.task(t, project.ID, "Pair with mentor", nil, ref(employee.ID))
	f.task(t, project.ID, "Read handbook", ref(f.employee.ID), nil)
	require.NoError(t, AssignProject(f.db, employee.ID, project.ID, f.boss.ID))

	assert.ErrorIs(t, DeleteUser(f.db, f.boss.ID, f.boss.ID), types.ErrValidation)

	require.NoError(t, DeleteUser(f.db, employee.ID, f.boss.ID))
	assert.EqualValues(t, 0, f.count(t, &models.User{}, "id = ?", employee.ID))
	assert.EqualValues(t, 0, f.count(t, &models.UserProject{}, "user_id = ?", employee.ID))
	assert.EqualValues(t, 0, f.count(t, &models.UserChecklist{}, "user_id = ?", employee.ID))
	assert.EqualValues(t, 0, f.count(t, &models.Task{}, "assigned_to = ?", employee.ID))
	assert.EqualValues(t, 1, f.count(t, &models.Task{}, "project_id = ?", project.ID))

	assert.ErrorIs(t, DeleteUser(f.db, employee.ID, f.boss.ID), types.ErrNotFound)
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)
	a := f.project(t, "Security")
	b := f.project(t, "Onboarding")
	employee := f.user(t, "employee1@example.com", f.employee)
	require.NoError(t, AssignProject(f.db, employee.ID, a.ID, f.boss.ID))
	require.NoError(t, AssignProject(f.db, employee.ID, b.ID, f.boss.ID))

	users, err := ListUsers(f.db)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, employee.ID, users[0].ID, "newest first")
	assert.Equal(t, types.ROLE_EMPLOYEE, users[0].RoleName)
	assert.Equal(t, "Onboarding, Security", users[0].AssignedProjects)
	assert.Equal(t, []uint{b.ID, a.ID}, users[0].ProjectIDs)

	assert.Equal(t, "manager@example.com", users[1].Email)
	assert.Equal(t, "", users[1].AssignedProjects)
	assert.Equal(t, []uint{}, users[1].ProjectIDs)
}
