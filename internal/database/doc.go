// Package database owns the PostgreSQL connection pool.
//
// The pool is opened once at startup and injected into every repository.
// Repositories bind all values as statement parameters and bound each
// statement with WithTimeout; unique constraint violations are recognised
// by SQLSTATE through IsUniqueViolation rather than by message text.
package database
