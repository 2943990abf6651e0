package boot

import (
	"testing"

	"onboarding/src/common"
	"onboarding/src/db"
	"onboarding/src/lib"
	"onboarding/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDbSeedsRolesOnce(t *testing.T) {
	gdb := db.CreateTestDB()
	require.NoError(t, InitDb(gdb))
	require.NoError(t, InitDb(gdb))

	roles, err := common.ListRoles(gdb)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "EMPLOYEE", roles[0].RoleName)
	assert.Equal(t, "MANAGER", roles[1].RoleName)
}

func TestSeedDemo(t *testing.T) {
	gdb := db.CreateTestDB()
	require.NoError(t, SeedDemo(gdb))
	require.NoError(t, SeedDemo(gdb))

	var users int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 3, users)

	manager, err := common.FindUserByEmail(gdb, DemoManager.Email)
	require.NoError(t, err)
	assert.True(t, manager.IsManager())
	ok, err := lib.VerifyPassword(DemoManager.Password, manager.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	employee, err := common.FindUserByEmail(gdb, DemoEmployees[0].Email)
	require.NoError(t, err)
	items, err := common.ListUserTasks(gdb, employee.ID)
	require.NoError(t, err)
	// 3 onboarding tasks + 2 security tasks visible to employees
	assert.Len(t, items, 5)
}
