package common

import (
	"testing"

	"onboarding/src/models"
	"onboarding/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStatusReport(t *testing.T) {
	f := newFixture(t)
	project := f.project(t, "Onboarding")
	handbook := f.task(t, project.ID, "Read handbook", ref(f.employee.ID), nil)
	f.task(t, project.ID, "Set up laptop", ref(f.employee.ID), nil)
	f.task(t, project.ID, "Plan first week", ref(f.manager.ID), nil)
	f.task(t, project.ID, "Book one-on-ones", ref(f.manager.ID), nil)
	employee := f.user(t, "employee1@example.com", f.employee)
	require.NoError(t, AssignProject(f.db, employee.ID, project.ID, f.boss.ID))
	assert.EqualValues(t, 2, f.count(t, &models.UserChecklist{}, "user_id = ?", employee.ID))

	_, err := UpdateTaskStatus(f.db, f.boss, handbook.ID, types.TASK_COMPLETED)
	require.NoError(t, err)

	report, err := ProjectStatusReport(f.db, project.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, report.ProjectStatus.TotalTasks)
	assert.Equal(t, 1, report.ProjectStatus.CompletedTasks)
	assert.Equal(t, 25.0, report.ProjectStatus.Progress)
	require.Len(t, report.ProjectStatus.Tasks, 4)
	assert.Equal(t, "Read handbook", report.ProjectStatus.Tasks[0].Task)
	require.NotNil(t, report.ProjectStatus.Tasks[0].RoleName)
	assert.Equal(t, types.ROLE_EMPLOYEE, *report.ProjectStatus.Tasks[0].RoleName)
	assert.Nil(t, report.ProjectStatus.Tasks[0].AssignedToEmail)

	require.Len(t, report.UserProgress, 1, "managers are not reported")
	p := report.UserProgress[0]
	assert.Equal(t, employee.ID, p.UserID)
	assert.Equal(t, types.ROLE_EMPLOYEE, p.RoleName)
	assert.Equal(t, 2, p.TotalTasks)
	assert.Equal(t, 1, p.CompletedTasks)
	assert.Equal(t, 1, p.PendingTasks)
	require.Len(t, p.PendingTasksList, 1)
	assert.Equal(t, "Set up laptop", p.PendingTasksList[0].TaskDescription)
	assert.Equal(t, "Via role: EMPLOYEE", p.PendingTasksList[0].AssignmentType)
}

func TestProjectStatusReportDirectAssignments(t *testing.T) {
	f := newFixture(t)
	project := f.project(t, "Onboarding")
	zed := f.user(t, "zed@example.com", f.employee)
	amy := f.user(t, "amy@example.com", f.employee)
	mentor := f.task(t, project.ID, "Pair with mentor", nil, ref(zed.ID))
	f.task(t, project.ID, "Read handbook", ref(f.employee.ID), ref(zed.ID))
	f.task(t, project.ID, "Everyone task", nil, nil)

	report, err := ProjectStatusReport(f.db, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, report.ProjectStatus.TotalTasks)
	assert.Equal(t, 0.0, report.ProjectStatus.Progress)
	require.NotNil(t, report.ProjectStatus.Tasks[0].AssignedToEmail)
	assert.Equal(t, "zed@example.com", *report.ProjectStatus.Tasks[0].AssignedToEmail)

	require.Len(t, report.UserProgress, 2)
	assert.Equal(t, amy.ID, report.UserProgress[0].UserID, "ordered by email")
	assert.Equal(t, 1, report.UserProgress[0].TotalTasks)

	z := report.UserProgress[1]
	assert.Equal(t, 2, z.TotalTasks)
	require.Len(t, z.PendingTasksList, 2)
	assert.Equal(t, mentor.ID, z.PendingTasksList[0].ID)
	assert.Equal(t, "Assigned directly", z.PendingTasksList[0].AssignmentType)
	assert.Equal(t, "Assigned directly", z.PendingTasksList[1].AssignmentType)

	for _, p := range report.UserProgress {
		assert.Equal(t, p.TotalTasks, p.CompletedTasks+p.PendingTasks)
	}
}

func TestProjectStatusReportEmpty(t *testing.T) {
	f := newFixture(t)
	project := f.project(t, "Empty")
	f.user(t, "employee1@example.com", f.employee)

	report, err := ProjectStatusReport(f.db, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, report.ProjectStatus.TotalTasks)
	assert.Equal(t, 0.0, report.ProjectStatus.Progress)
	assert.Empty(t, report.ProjectStatus.Tasks)
	assert.Empty(t, report.UserProgress, "users without tasks are left out")

	_, err = ProjectStatusReport(f.db, 999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(0, 0))
	assert.Equal(t, 50.0, Progress(1, 2))
	assert.InDelta(t, 33.333333, Progress(1, 3), 0.0001)
	assert.Equal(t, 100.0, Progress(4, 4))
}
