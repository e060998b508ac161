package driver

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/belphemur/hypersql/internal/constants"
	"github.com/belphemur/hypersql/internal/logging"
)

// HyperSQL builds connection URLs for the HyperSQL (HSQLDB) engine.
// See https://hsqldb.org/doc/2.0/guide/dbproperties-chapt.html#dpc_connection_url
type HyperSQL struct {
	logger zerolog.Logger
}

// NewHyperSQL creates the HyperSQL driver
func NewHyperSQL() *HyperSQL {
	return &HyperSQL{logger: logging.GetLogger("hypersql-driver")}
}

// Name implements Driver
func (d *HyperSQL) Name() string {
	return constants.DriverName
}

// Type implements Driver
func (d *HyperSQL) Type() Type {
	return TypeHypersonic
}

// ClassName implements Driver
func (d *HyperSQL) ClassName() string {
	return constants.DriverClassName
}

// defaultParams returns the parameters every HyperSQL URL starts with
func defaultParams() *Params {
	return NewParams("create", "true")
}

// BuildConnectionURL implements Driver. Local protocols produce
// jdbc:hsqldb:{protocol}:{database};{params} and networked ones
// jdbc:hsqldb:{protocol}://{host[:port]}/{database};{params}.
func (d *HyperSQL) BuildConnectionURL(props Properties) (string, error) {
	database, _ := props.String(PropDatabase)
	if database == "" {
		return "", &ValidationError{Kind: KindMissingDatabase}
	}

	protocol, ok := props.String(PropProtocol)
	if !ok {
		protocol = constants.DefaultProtocol
	}
	if !constants.IsValidProtocol(protocol) {
		return "", &ValidationError{
			Kind:     KindInvalidProtocol,
			Protocol: protocol,
			Allowed:  constants.AvailableProtocols(),
		}
	}

	params, err := d.resolveParams(props)
	if err != nil {
		return "", err
	}
	query := params.Encode(constants.DefaultDelimiter)

	var url string
	if constants.IsNetworkProtocol(protocol) {
		hostAndPort, _ := props.String(PropHost)
		if hostAndPort == "" {
			return "", &ValidationError{Kind: KindMissingHost, Protocol: protocol}
		}

		port, _, err := props.Int(PropPort)
		if err != nil {
			return "", err
		}
		if port > 0 {
			hostAndPort += ":" + strconv.Itoa(port)
		}

		url = fmt.Sprintf("%s%s://%s/%s;%s", constants.URLPrefix, protocol, hostAndPort, database, query)
	} else {
		url = fmt.Sprintf("%s%s:%s;%s", constants.URLPrefix, protocol, database, query)
	}

	d.logger.Debug().
		Str("protocol", protocol).
		Str("database", database).
		Str("url", RedactURL(url)).
		Msg("Built connection URL")
	return url, nil
}

// resolveParams merges, in order, the defaults, the custom parameters and the credentials.
// Credentials go last so they win over a custom entry with the same name.
func (d *HyperSQL) resolveParams(props Properties) (*Params, error) {
	params := defaultParams()

	custom, err := props.Custom(constants.DefaultDelimiter)
	if err != nil {
		return nil, err
	}
	params.Merge(custom)

	if username, _ := props.String(PropUsername); username != "" {
		params.Set("user", username)
	}
	if password, ok := props.String(PropPassword); ok {
		params.Set("password", password)
	}

	return params, nil
}
