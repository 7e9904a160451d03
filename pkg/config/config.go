// Package config contains configuration types and helpers for sssh.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultUsername is used for servers that do not declare any username.
	DefaultUsername = "root"

	// DefaultPort is the well-known SSH port.
	DefaultPort = 22

	// appTable is the reserved top-level table holding application settings.
	// It is never treated as a server.
	appTable = "sssh"
)

// Config is one parsed snapshot of the configuration file.
//
// Example TOML:
//
//	[db1]
//	hostname = "10.0.0.1"
//	port = 22
//	username_list = ["root", "alice"]
//	description = "Primary database"
//
// Every top-level table except [sssh] is a server keyed by its table name.
// Files ending in .yaml or .yml are decoded as YAML with the same shape.
type Config struct {
	// Servers maps a unique server name to its settings.
	Servers map[string]Server

	// Raw is the file content exactly as read.
	Raw string

	// Path is the file the snapshot was read from.
	Path string
}

// Server is one selectable remote-access target.
type Server struct {
	Name        string
	Hostname    string
	Port        int
	Description string

	// Usernames is never empty after decoding; it falls back to DefaultUsername.
	Usernames []string
}

// Address returns "username@hostname".
func (s Server) Address(username string) string {
	return username + "@" + s.Hostname
}

// HostPort renders the hostname with the port appended only when it is not DefaultPort.
func (s Server) HostPort() string {
	if s.Port == DefaultPort || s.Port == 0 {
		return s.Hostname
	}
	return fmt.Sprintf("%s:%d", s.Hostname, s.Port)
}

// rawServer is the on-disk shape of one server table.
type rawServer struct {
	Hostname     string   `toml:"hostname" yaml:"hostname"`
	Port         *int     `toml:"port,omitempty" yaml:"port,omitempty"`
	Description  string   `toml:"description,omitempty" yaml:"description,omitempty"`
	UsernameList []string `toml:"username_list,omitempty" yaml:"username_list,omitempty"`
	Users        []string `toml:"users,omitempty" yaml:"users,omitempty"`
}

// Empty returns a snapshot without servers. It is what the selector shows while a
// configuration error is displayed.
func Empty(path string) *Config {
	return &Config{Servers: map[string]Server{}, Path: path}
}

// Load reads and decodes the configuration file at path.
//
// A decoding or validation problem is returned as *SyntaxError, any I/O problem as *FileError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Title: "configuration", Op: "read", Path: path, Err: err}
	}
	cfg, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	log.Debug("Loaded configuration", "file", path, "servers", len(cfg.Servers))
	return cfg, nil
}

// Decode parses data according to the extension of path (TOML unless .yaml/.yml).
func Decode(path string, data []byte) (*Config, error) {
	raw := map[string]rawServer{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) > 0 {
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return nil, &SyntaxError{Path: path, Err: err}
			}
		}
	default:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, &SyntaxError{Path: path, Err: err}
		}
	}

	cfg := &Config{
		Servers: make(map[string]Server, len(raw)),
		Raw:     string(data),
		Path:    path,
	}
	for name, rs := range raw {
		if name == appTable {
			continue
		}
		srv, err := rs.server(name)
		if err != nil {
			return nil, &SyntaxError{Path: path, Err: err}
		}
		cfg.Servers[name] = srv
	}
	return cfg, nil
}

func (rs rawServer) server(name string) (Server, error) {
	if strings.TrimSpace(name) == "" {
		return Server{}, fmt.Errorf("server name is required")
	}
	host := strings.TrimSpace(rs.Hostname)
	if host == "" {
		return Server{}, fmt.Errorf("%s: hostname is required", name)
	}
	port := DefaultPort
	if rs.Port != nil {
		port = *rs.Port
	}
	if port < 1 || port > 65535 {
		return Server{}, fmt.Errorf("%s: port %d out of range (1..65535)", name, port)
	}

	if rs.UsernameList != nil && rs.Users != nil {
		return Server{}, fmt.Errorf("%s: duplicate field `username_list` (users is an alias of it)", name)
	}
	list := rs.UsernameList
	if list == nil {
		list = rs.Users
	}
	var users []string
	for _, u := range list {
		u = strings.TrimSpace(u)
		if u == "" {
			return Server{}, fmt.Errorf("%s: empty username", name)
		}
		users = append(users, u)
	}
	if len(users) == 0 {
		log.Debug("Use default username for server", "server", name, "username", DefaultUsername)
		users = []string{DefaultUsername}
	}

	return Server{
		Name:        name,
		Hostname:    host,
		Port:        port,
		Description: rs.Description,
		Usernames:   users,
	}, nil
}

// IsDefaultServers reports whether the file still holds the shipped sample.
func (c *Config) IsDefaultServers() bool {
	return c != nil && c.Raw == DefaultConfiguration
}

// SortedServers returns the servers ordered by name.
func (c *Config) SortedServers() []Server {
	if c == nil {
		return nil
	}
	out := make([]Server, 0, len(c.Servers))
	for _, s := range c.Servers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
