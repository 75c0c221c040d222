// Package migrations embeds the SQL schema of the users, campaign drafts and
// contribution attempts store.
package migrations

import "embed"

// FS holds the migration files read by golang-migrate through iofs.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
