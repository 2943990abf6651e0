package boot

import (
	"errors"
	"log"

	"onboarding/src/common"
	"onboarding/src/lib"
	"onboarding/src/models"
	"onboarding/src/types"

	"gorm.io/gorm"
)

// InitDb migrates every table and makes sure the fixed roles exist.
func InitDb(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Printf("error migration: %s\n", err.Error())
		return err
	}
	return SeedRoles(db)
}

func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{types.ROLE_MANAGER, types.ROLE_EMPLOYEE} {
		role := models.Role{RoleName: name}
		if err := db.Where(&role).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

type DemoUser struct {
	Email    string
	Password string
	Role     string
}

var DemoManager = DemoUser{Email: "manager@example.com", Password: "manager123", Role: types.ROLE_MANAGER}

var DemoEmployees = []DemoUser{
	{Email: "employee1@example.com", Password: "employee123", Role: types.ROLE_EMPLOYEE},
	{Email: "employee2@example.com", Password: "employee123", Role: types.ROLE_EMPLOYEE},
}

type demoTask struct {
	description string
	role        string
}

var demoProjects = map[string][]demoTask{
	"Employee Onboarding": {
		{"Complete HR paperwork", types.ROLE_EMPLOYEE},
		{"Set up development environment", types.ROLE_EMPLOYEE},
		{"Meet your team", ""},
		{"Schedule first-week check-ins", types.ROLE_MANAGER},
	},
	"Security Training": {
		{"Enable two-factor authentication", ""},
		{"Complete security awareness course", types.ROLE_EMPLOYEE},
	},
}

// SeedDemo creates a manager, two employees and two projects with template
// tasks. It does nothing when the demo manager already exists.
func SeedDemo(db *gorm.DB) error {
	if err := SeedRoles(db); err != nil {
		return err
	}
	if _, err := common.FindUserByEmail(db, DemoManager.Email); err == nil {
		log.Println("Demo data already present")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	roles := map[string]uint{}
	for _, name := range []string{types.ROLE_MANAGER, types.ROLE_EMPLOYEE} {
		role, err := common.GetRoleByName(db, name)
		if err != nil {
			return err
		}
		roles[name] = role.ID
	}

	hash, err := lib.HashPassword(DemoManager.Password)
	if err != nil {
		return err
	}
	manager := models.User{Email: DemoManager.Email, PasswordHash: hash, RoleID: roles[types.ROLE_MANAGER]}
	if err := db.Create(&manager).Error; err != nil {
		return err
	}

	var projectIDs []uint
	for _, name := range []string{"Employee Onboarding", "Security Training"} {
		project, err := common.CreateProject(db, types.ProjectRequestBody{ProjectName: name})
		if err != nil {
			return err
		}
		projectIDs = append(projectIDs, project.ID)
		for _, task := range demoProjects[name] {
			body := types.CreateTaskRequestBody{Task: task.description, ProjectID: project.ID}
			if task.role != "" {
				roleID := roles[task.role]
				body.RoleID = &roleID
			}
			if _, err := common.CreateTask(db, body); err != nil {
				return err
			}
		}
	}

	for _, employee := range DemoEmployees {
		if _, err := common.CreateUser(db, types.CreateUserRequestBody{
			Email:      employee.Email,
			Password:   employee.Password,
			RoleID:     roles[employee.Role],
			ProjectIDs: projectIDs,
		}, manager.ID); err != nil {
			return err
		}
	}
	log.Printf("Seeded demo data: %d projects, %d employees\n", len(projectIDs), len(DemoEmployees))
	return nil
}
