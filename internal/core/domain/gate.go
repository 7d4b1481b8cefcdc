package domain

// GateDecision is the outcome of a protected-route check.
type GateDecision int

const (
	DecideLoading GateDecision = iota
	DecideRedirectToLogin
	DecideForbidden
	DecideRedirectNoProject
	DecideAllow
)

func (d GateDecision) String() string {
	switch d {
	case DecideLoading:
		return "loading"
	case DecideRedirectToLogin:
		return "redirect_to_login"
	case DecideForbidden:
		return "forbidden"
	case DecideRedirectNoProject:
		return "redirect_no_project"
	case DecideAllow:
		return "allow"
	}
	return "unknown"
}

// GateInput is everything the route gate consults for one navigation.
type GateInput struct {
	Loading                  bool
	User                     *User
	AllowedRoles             []string
	RequireProjectAssignment bool
	RequestedLocation        string
}

// GateResult carries the decision plus the data the caller needs to act on
// it: the original location for a post-login redirect, or the forbidden
// message including the user's role in human-readable form.
type GateResult struct {
	Decision   GateDecision
	RedirectTo string
	Reason     string
}

// Decide evaluates the protected-route checks in their fixed order:
// loading → authentication → role → project assignment → allow. Each check
// short-circuits; later checks never run when an earlier one fails.
func Decide(in GateInput) GateResult {
	if in.Loading {
		return GateResult{Decision: DecideLoading}
	}

	if in.User == nil {
		return GateResult{
			Decision:   DecideRedirectToLogin,
			RedirectTo: in.RequestedLocation,
		}
	}

	if len(in.AllowedRoles) > 0 && !roleAllowed(in.User.Role, in.AllowedRoles) {
		return GateResult{
			Decision: DecideForbidden,
			Reason:   "access denied for role " + HumanRole(in.User.Role),
		}
	}

	if in.RequireProjectAssignment && !in.User.HasProjectAssignment {
		return GateResult{Decision: DecideRedirectNoProject}
	}

	return GateResult{Decision: DecideAllow}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
