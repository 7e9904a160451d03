package config

import _ "embed"

// DefaultConfiguration is written to the configuration path on first run.
//
//go:embed samples/sssh.toml
var DefaultConfiguration string

// DefaultScript is written to the script path on first run.
//
//go:embed samples/sssh.sh
var DefaultScript string
