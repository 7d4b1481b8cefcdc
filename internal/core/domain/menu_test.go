package domain

import "testing"

func TestBuildMenu_CompanyAdminGetsOwnTree(t *testing.T) {
	menu := BuildMenu(RoleCompanyAdmin)
	if len(menu) == 0 {
		t.Fatalf("expected non-empty menu")
	}
	// company_admin must not fall through to the hr tree: its tree carries
	// the settings entry, the hr tree does not.
	found := false
	for _, item := range menu {
		if item.Key == "settings" {
			found = true
		}
	}
	if !found {
		t.Fatalf("company admin menu missing settings entry: %+v", menu)
	}
}

func TestBuildMenu_DistinctTreesPerRole(t *testing.T) {
	hr := BuildMenu(RoleHR)
	admin := BuildMenu(RoleAdmin)
	if len(hr) == 0 || len(admin) == 0 {
		t.Fatalf("expected trees for hr and admin")
	}
	if len(hr) == len(admin) {
		// Tree lengths differing is the cheap proof the branches are distinct.
		t.Fatalf("hr and admin menus should differ, both have %d items", len(hr))
	}
}

func TestBuildMenu_UnknownRolesGetEmptyTree(t *testing.T) {
	for _, role := range []string{RoleManager, RoleEmployee, "guest", ""} {
		if menu := BuildMenu(role); len(menu) != 0 {
			t.Fatalf("expected empty menu for role %q, got %d items", role, len(menu))
		}
	}
}

func TestBuildMenu_StableKeysAndExclusivePathOrChildren(t *testing.T) {
	for _, role := range []string{RoleCompanyAdmin, RoleHR, RoleAdmin} {
		seen := make(map[string]struct{})
		for _, item := range BuildMenu(role) {
			if item.Key == "" {
				t.Fatalf("role %s: item %q has empty key", role, item.Label)
			}
			if _, dup := seen[item.Key]; dup {
				t.Fatalf("role %s: duplicate key %q", role, item.Key)
			}
			seen[item.Key] = struct{}{}
			if (item.Path == "") == (len(item.Children) == 0) {
				t.Fatalf("role %s: item %q must carry either a path or children", role, item.Key)
			}
		}
	}
}
