package constants

import "sort"

// DefaultProtocol is used when a datasource does not name a protocol
const DefaultProtocol = "mem"

// Protocols lists every protocol HyperSQL understands in a connection URL.
// The value reports whether the protocol is networked (needs a host and optional port).
var Protocols = map[string]bool{
	"file":  false,
	"mem":   false,
	"res":   false,
	"hsql":  true,
	"hsqls": true,
	"http":  true,
	"https": true,
}

// IsValidProtocol checks if the protocol is one HyperSQL accepts
func IsValidProtocol(protocol string) bool {
	_, ok := Protocols[protocol]
	return ok
}

// IsNetworkProtocol reports whether the protocol connects to a server by host
func IsNetworkProtocol(protocol string) bool {
	return Protocols[protocol]
}

// AvailableProtocols returns the known protocols in sorted order
func AvailableProtocols() []string {
	protocols := make([]string, 0, len(Protocols))
	for p := range Protocols {
		protocols = append(protocols, p)
	}
	sort.Strings(protocols)
	return protocols
}
