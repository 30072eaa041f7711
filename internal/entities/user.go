package entities

import "errors"

// User is read-only here, consumed for payment fields and the email destination
type User struct {
	UserID    string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
}

const RoleAdmin = "admin"

var ErrUserNotFound = errors.New("user not found")
