package model

import "time"

// UserRole limits what endpoints an authenticated user may call.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// User represents a registered shop customer or operator.
type User struct {
	ID            int64
	Name          string
	Email         string
	PasswordHash  string
	Role          UserRole
	IsVerified    bool
	VerifyToken   string
	VerifyExpires *time.Time
	ResetToken    string
	ResetExpires  *time.Time
	CreatedAt     time.Time
}
