package models

// All lists every table in migration order.
func All() []any {
	return []any{
		&Role{},
		&User{},
		&Project{},
		&UserProject{},
		&Task{},
		&UserChecklist{},
		&Resource{},
	}
}
