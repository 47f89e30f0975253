// Package db embeds the SQL migration files for production builds.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
