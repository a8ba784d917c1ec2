// Package assets embeds the default word list and the SQLite migrations.
package assets

import "embed"

// WordsFile is the embedded default word list.
const WordsFile = "words.txt"

// MigrationsDir holds the *.sql files applied by the SQLite store, in lexical order.
const MigrationsDir = "sql"

//go:embed words.txt sql/*.sql
var FS embed.FS
