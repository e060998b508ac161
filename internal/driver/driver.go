// Package driver adapts generic datasource properties into JDBC connection URLs.
//
// A Driver is what the host framework talks to: it exposes the driver's name,
// its family tag, the class name of the native JDBC driver the host must load,
// and BuildConnectionURL, which turns datasource properties into a URL or a
// *ValidationError. Drivers perform no I/O.
package driver

// Type identifies the database family a driver belongs to
type Type int

const (
	TypeGeneric Type = iota
	TypeHypersonic
	TypeDerby
	TypeSQLite
	TypeMySQL
	TypePostgreSQL
)

var typeNames = map[Type]string{
	TypeGeneric:    "GENERIC",
	TypeHypersonic: "HYPERSONIC",
	TypeDerby:      "DERBY",
	TypeSQLite:     "SQLITE",
	TypeMySQL:      "MYSQL",
	TypePostgreSQL: "POSTGRESQL",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Driver is the contract the host framework uses to turn a datasource into a connection URL
type Driver interface {
	// Name returns the identifier datasources use to select the driver
	Name() string
	// Type returns the database family
	Type() Type
	// ClassName returns the fully-qualified class of the native JDBC driver
	ClassName() string
	// BuildConnectionURL builds the JDBC URL for the datasource properties
	BuildConnectionURL(props Properties) (string, error)
}
