package domain

// Session is the client-held pair of credential token and user profile
// representing the current login. Exactly one session exists per gateway
// process; it is created on login or registration, restored from the session
// store at startup, and destroyed on logout.
//
// The token is an opaque credential minted by the HRMS backend. The gateway
// never validates it locally; staleness is accepted until the backend rejects
// a call.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
	Theme string `json:"theme,omitempty"`
}
