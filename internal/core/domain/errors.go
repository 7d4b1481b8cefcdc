package domain

import "errors"

var ErrSessionNotFound = errors.New("no stored session")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("access forbidden")
var ErrNoProjectAssignment = errors.New("no project assignment")
var ErrNotificationNotFound = errors.New("notification not found")
