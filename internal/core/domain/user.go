package domain

import (
	"strings"
	"time"
)

// Roles recognised by the HRMS backend. RoleAdmin is a legacy tag: accounts
// created before RoleCompanyAdmin existed still carry it, and NormalizeRole
// repairs them wherever a user object enters the gateway.
const (
	RoleCompanyAdmin = "company_admin"
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleHR           = "hr"
	RoleEmployee     = "employee"
)

// Employee is the optional personnel profile linked to a user account.
type Employee struct {
	ID         string `json:"id,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
}

// ProjectRef is a lightweight reference to a project the user belongs to.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User models an authenticated actor as served by the HRMS backend. Field
// names follow the backend's JSON contract (camelCase), which is fixed.
type User struct {
	ID                   string       `json:"id"`
	Email                string       `json:"email"`
	Role                 string       `json:"role"`
	Employee             *Employee    `json:"employee,omitempty"`
	HasProjectAssignment bool         `json:"hasProjectAssignment"`
	Projects             []ProjectRef `json:"projects,omitempty"`
	CreatedAt            time.Time    `json:"createdAt,omitempty"`
}

// DisplayName prefers the linked employee profile over the raw email.
func (u *User) DisplayName() string {
	if u.Employee != nil && u.Employee.FirstName != "" {
		return strings.TrimSpace(u.Employee.FirstName + " " + u.Employee.LastName)
	}
	return u.Email
}

// HumanRole renders a role tag for display: underscores become spaces and the
// result is upper-cased ("company_admin" → "COMPANY ADMIN").
func HumanRole(role string) string {
	return strings.ToUpper(strings.ReplaceAll(role, "_", " "))
}
