package model

import "time"

// User represents a staff account able to operate the admin API.
//
// Fields:
//  ID           – numeric identifier, assigned on creation.
//  FullName     – display name.
//  Username     – unique login name.
//  PasswordHash – bcrypt hash of the password; never serialized.
//  Email        – unique email address.
//  Role         – role name, defaults to "admin".
//  LastLogin    – set on each successful login, nil before the first one.
type User struct {
    ID           uint64     `json:"id"`
    FullName     string     `json:"fullName"`
    Username     string     `json:"username"`
    PasswordHash string     `json:"-"`
    Email        string     `json:"email"`
    Role         string     `json:"role"`
    LastLogin    *time.Time `json:"lastLogin"`
}
