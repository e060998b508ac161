// Package constants provides shared constants for the hypersql driver adapter
package constants

const (
	// DriverName is the identifier the host framework uses to select this driver
	DriverName = "Hypersql"

	// DriverClassName is the native JDBC driver the host loads for HyperSQL connections
	DriverClassName = "org.hsqldb.jdbc.JDBCDriver"

	// URLPrefix starts every HyperSQL JDBC connection URL
	URLPrefix = "jdbc:hsqldb:"

	// DefaultDelimiter separates connection parameters in the URL and in custom parameter strings
	DefaultDelimiter = ";"
)
