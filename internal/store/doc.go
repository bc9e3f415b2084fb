// Package store persists design records in a local SQLite database.
//
// Records are schemaless JSON documents grouped into collections; the tools
// server uses one collection per school to hold uniform designs and their
// annotation documents. The database file location comes from configuration
// (UNIFORM_DB_PATH) and ":memory:" works for tests.
package store
