package domain

import "strings"

// companyAdminEmailHints identify legacy "admin" accounts that actually
// belong to a company administrator.
var companyAdminEmailHints = []string{"admin", "@spc", "@company"}

// NormalizeRole repairs the ambiguous legacy "admin" role: when the user's
// email matches one of the company-admin hints, the role becomes
// "company_admin". Any other role passes through untouched.
//
// The function is pure, total, and idempotent; callers that persist users must
// write back the corrected value when changed is true so the fix is durable.
func NormalizeRole(u User) (normalized User, changed bool) {
	if u.Role != RoleAdmin {
		return u, false
	}

	email := strings.ToLower(u.Email)
	for _, hint := range companyAdminEmailHints {
		if strings.Contains(email, hint) {
			u.Role = RoleCompanyAdmin
			return u, true
		}
	}
	return u, false
}
