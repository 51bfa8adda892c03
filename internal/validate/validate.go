// Package validate holds the presence and format checks applied to inbound
// fields before any store access. All functions are pure.
package validate

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/georgemunganga/stockroom-api/internal/apperr"
)

// Validation codes.
const (
	CodeUsernameEmpty   = "username_empty"
	CodeEmailEmpty      = "email_empty"
	CodeEmailInvalid    = "email_invalid"
	CodePasswordEmpty   = "password_empty"
	CodePasswordInvalid = "password_invalid"
	CodeIDsNotArray     = "ids_not_array"
	CodeIDInvalid       = "id_invalid"
	CodeCredentials     = "credentials_missing"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.+_-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Only letters, digits and ! # @ % $ & are accepted.
	passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9!#@%$&]+$`)
)

// Username fails when s is empty.
func Username(s string) error {
	if s == "" {
		return apperr.Validation(CodeUsernameEmpty)
	}
	return nil
}

// Email fails when s is empty or not of the form local@domain.tld.
func Email(s string) error {
	if s == "" {
		return apperr.Validation(CodeEmailEmpty)
	}
	if !emailPattern.MatchString(s) {
		return apperr.Validation(CodeEmailInvalid)
	}
	return nil
}

// Password fails when s is empty or contains characters outside the allowed set.
func Password(s string) error {
	if s == "" {
		return apperr.Validation(CodePasswordEmpty)
	}
	if !passwordPattern.MatchString(s) {
		return apperr.Validation(CodePasswordInvalid)
	}
	return nil
}

// Registration checks username, email and password in that order and
// returns only the first failure.
func Registration(username, email, password string) error {
	if err := Username(username); err != nil {
		return err
	}
	if err := Email(email); err != nil {
		return err
	}
	return Password(password)
}

// Credentials fails when either login field is empty.
func Credentials(username, password string) error {
	if username == "" || password == "" {
		return apperr.Validation(CodeCredentials)
	}
	return nil
}

// IDs decodes raw as a JSON array of integer identifiers. An absent value,
// null, or anything other than an array of integers is rejected. An empty
// array yields an empty, non-nil slice.
func IDs(raw json.RawMessage) ([]int64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, apperr.Validation(CodeIDsNotArray)
	}
	ids := []int64{}
	if err := json.Unmarshal(trimmed, &ids); err != nil {
		return nil, apperr.Validation(CodeIDsNotArray)
	}
	return ids, nil
}

// ProductID parses a path segment as a base-10 integer identifier. Any
// well-formed integer is accepted; the store decides whether it exists.
func ProductID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, apperr.Validation(CodeIDInvalid)
	}
	return id, nil
}
