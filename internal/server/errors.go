package server

import "errors"

// errNoAddressConfigured is returned by NewServer when the configuration
// carries no HTTP listen address.
var errNoAddressConfigured = errors.New("no HTTP address configured")
