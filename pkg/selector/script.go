package selector

import (
	"strconv"

	"sssh/pkg/config"
	"sssh/pkg/runner"
)

// Environment variables handed to the connect script.
const (
	EnvAddress  = "SSSH_ADDRESS"
	EnvUsername = "SSSH_USERNAME"
	EnvHostname = "SSSH_HOSTNAME"
	EnvPort     = "SSSH_PORT"
	EnvDebug    = "SSSH_DEBUG"
)

// ScriptCommand composes the script call for a confirmed choice.
//
// Positional arguments are address, username, hostname, port and "1" or "0" for verbose.
// The same values are exported through the environment, plus SSSH_DEBUG=1 when verbose.
func ScriptCommand(path string, srv config.Server, username string, verbose bool) runner.Command {
	address := srv.Address(username)
	port := strconv.Itoa(srv.Port)

	debug := "0"
	env := []string{
		EnvAddress + "=" + address,
		EnvUsername + "=" + username,
		EnvHostname + "=" + srv.Hostname,
		EnvPort + "=" + port,
	}
	if verbose {
		debug = "1"
		env = append(env, EnvDebug+"=1")
	}

	return runner.Command{
		Title: "Script",
		Path:  path,
		Args:  []string{address, username, srv.Hostname, port, debug},
		Env:   env,
	}
}
