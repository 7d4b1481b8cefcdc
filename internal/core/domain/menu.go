package domain

// MenuChild is a nested navigation entry.
type MenuChild struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// MenuItem is one entry of the role-based navigation tree. Key is stable so
// consumers can persist expand/collapse state per item; Icon is a symbolic
// reference resolved by the front end. An item carries either a direct Path
// or a list of Children, never both.
type MenuItem struct {
	Key      string      `json:"key"`
	Label    string      `json:"label"`
	Icon     string      `json:"icon"`
	Path     string      `json:"path,omitempty"`
	Children []MenuChild `json:"children,omitempty"`
}

// BuildMenu maps an effective (post-normalization) role to its navigation
// tree. The first matching branch wins: company_admin gets its own tree and
// never falls through to the hr or admin branches. Unknown roles get an empty
// tree.
func BuildMenu(role string) []MenuItem {
	switch role {
	case RoleCompanyAdmin:
		return companyAdminMenu()
	case RoleHR:
		return hrMenu()
	case RoleAdmin:
		return adminMenu()
	}
	return nil
}

func companyAdminMenu() []MenuItem {
	return []MenuItem{
		{Key: "dashboard", Label: "Dashboard", Icon: "dashboard", Path: "/dashboard"},
		{Key: "organization", Label: "Organization", Icon: "team", Children: []MenuChild{
			{Label: "Employees", Path: "/employees"},
			{Label: "Departments", Path: "/departments"},
		}},
		{Key: "projects", Label: "Projects", Icon: "project", Path: "/projects"},
		{Key: "communication", Label: "Communication", Icon: "mail", Children: []MenuChild{
			{Label: "Announcements", Path: "/announcements"},
			{Label: "Email Templates", Path: "/email-templates"},
		}},
		{Key: "notifications", Label: "Notifications", Icon: "bell", Path: "/notifications"},
		{Key: "activity", Label: "Activity History", Icon: "history", Path: "/activity"},
		{Key: "settings", Label: "Settings", Icon: "setting", Path: "/settings"},
	}
}

func hrMenu() []MenuItem {
	return []MenuItem{
		{Key: "dashboard", Label: "Dashboard", Icon: "dashboard", Path: "/dashboard"},
		{Key: "employees", Label: "Employees", Icon: "team", Path: "/employees"},
		{Key: "departments", Label: "Departments", Icon: "apartment", Path: "/departments"},
		{Key: "announcements", Label: "Announcements", Icon: "notification", Path: "/announcements"},
		{Key: "notifications", Label: "Notifications", Icon: "bell", Path: "/notifications"},
	}
}

func adminMenu() []MenuItem {
	return []MenuItem{
		{Key: "dashboard", Label: "Dashboard", Icon: "dashboard", Path: "/dashboard"},
		{Key: "projects", Label: "Projects", Icon: "project", Path: "/projects"},
		{Key: "employees", Label: "Employees", Icon: "team", Path: "/employees"},
		{Key: "activity", Label: "Activity History", Icon: "history", Path: "/activity"},
	}
}
