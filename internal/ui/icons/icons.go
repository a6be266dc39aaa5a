// Package icons holds the glyphs shown in the status bar.
package icons

const (
	// Database icons (Nerd Font)
	IconPostgres = "\ue76e"
	IconMySQL    = "\ue704"
	IconSQLite   = "\U000f01bc"

	IconSuccess = "✓"
	IconError   = "⚠"
)

// GetDatabaseIcon returns the icon for a profile type
func GetDatabaseIcon(dbType string) string {
	switch dbType {
	case "postgres", "postgresql":
		return IconPostgres
	case "mysql":
		return IconMySQL
	default:
		return IconSQLite
	}
}
