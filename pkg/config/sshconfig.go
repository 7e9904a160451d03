package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DefaultSSHConfigPath returns ~/.ssh/config.
func DefaultSSHConfigPath() string {
	return ExpandPath("~/.ssh/config")
}

// ImportSSHConfig reads an OpenSSH client config and returns one server per literal
// Host alias. Settings are resolved the way ssh does: every Host block whose patterns
// match the alias contributes, in file order, and the first value of each keyword wins.
// Include directives are followed in place; Match sections are skipped.
func ImportSSHConfig(file string) ([]Server, error) {
	file = ExpandPath(file)
	p := &sshConfigParser{
		visited: map[string]struct{}{},
		current: &sshHostBlock{patterns: []string{"*"}, settings: map[string]string{}, source: file},
	}
	if err := p.parseFile(file); err != nil {
		return nil, err
	}
	p.flush()

	var out []Server
	seen := map[string]struct{}{}
	for _, b := range p.blocks {
		for _, alias := range b.patterns {
			if _, ok := seen[alias]; ok || !isLiteralHostPattern(alias) {
				continue
			}
			seen[alias] = struct{}{}
			srv, err := p.resolve(alias, b)
			if err != nil {
				return nil, &SyntaxError{Path: b.source, Err: err}
			}
			out = append(out, srv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	log.Debug("Imported ssh config", "file", file, "servers", len(out))
	return out, nil
}

// EncodeServers renders servers as a configuration file in TOML.
func EncodeServers(servers []Server) ([]byte, error) {
	raw := make(map[string]rawServer, len(servers))
	for _, s := range servers {
		rs := rawServer{
			Hostname:     s.Hostname,
			Description:  s.Description,
			UsernameList: s.Usernames,
		}
		if s.Port != 0 && s.Port != DefaultPort {
			port := s.Port
			rs.Port = &port
		}
		raw[s.Name] = rs
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type sshHostBlock struct {
	patterns []string
	settings map[string]string
	source   string
	line     int
}

// set keeps the first value of each keyword.
func (b *sshHostBlock) set(key, val string) {
	if _, ok := b.settings[key]; !ok {
		b.settings[key] = val
	}
}

// matches applies ssh pattern rules: any negated match excludes, otherwise one
// positive match is enough.
func (b *sshHostBlock) matches(alias string) bool {
	matched := false
	for _, pat := range b.patterns {
		neg := strings.HasPrefix(pat, "!")
		ok, err := path.Match(strings.TrimPrefix(pat, "!"), alias)
		if err != nil || !ok {
			continue
		}
		if neg {
			return false
		}
		matched = true
	}
	return matched
}

type sshConfigParser struct {
	visited map[string]struct{}
	blocks  []*sshHostBlock
	current *sshHostBlock
}

// resolve builds the server for alias. decl is the block that names it, which
// provides the description.
func (p *sshConfigParser) resolve(alias string, decl *sshHostBlock) (Server, error) {
	settings := map[string]string{}
	for _, b := range p.blocks {
		if !b.matches(alias) {
			continue
		}
		for k, v := range b.settings {
			if _, ok := settings[k]; !ok {
				settings[k] = v
			}
		}
	}

	srv := Server{
		Name:        alias,
		Hostname:    alias,
		Port:        DefaultPort,
		Description: fmt.Sprintf("%s:%d", filepath.Base(decl.source), decl.line),
		Usernames:   []string{DefaultUsername},
	}
	if h := settings["hostname"]; h != "" {
		srv.Hostname = h
	}
	if u := settings["user"]; u != "" {
		srv.Usernames = []string{u}
	}
	if v := settings["port"]; v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return Server{}, fmt.Errorf("%s: invalid port %q", alias, v)
		}
		srv.Port = port
	}
	return srv, nil
}

func (p *sshConfigParser) flush() {
	if p.current != nil {
		p.blocks = append(p.blocks, p.current)
		p.current = nil
	}
}

// parseFile reads one file into p. Lines before the first Host of the top file apply to every host.
func (p *sshConfigParser) parseFile(name string) error {
	abs, err := filepath.Abs(name)
	if err != nil {
		abs = name
	}
	if _, ok := p.visited[abs]; ok {
		return nil
	}
	p.visited[abs] = struct{}{}

	f, err := os.Open(abs)
	if err != nil {
		return &FileError{Title: "ssh config", Op: "open", Path: abs, Err: err}
	}
	defer f.Close()

	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		key, val, ok := splitSSHLine(stripSSHComment(sc.Text()))
		if !ok {
			continue
		}
		switch key {
		case "host":
			p.flush()
			p.current = &sshHostBlock{
				patterns: strings.Fields(val),
				settings: map[string]string{},
				source:   abs,
				line:     lineNo,
			}
		case "match":
			// Match conditions are not evaluated; the section is dropped.
			p.flush()
		case "include":
			// Included lines belong to the enclosing block until they open their own.
			enclosing := p.current
			for _, inc := range includeFiles(abs, val) {
				if err := p.parseFile(inc); err != nil {
					return err
				}
			}
			if p.current != enclosing {
				p.flush()
				if enclosing != nil {
					// Settings after the Include extend the enclosing block in a later slot.
					p.current = &sshHostBlock{
						patterns: enclosing.patterns,
						settings: map[string]string{},
						source:   enclosing.source,
						line:     enclosing.line,
					}
				}
			}
		default:
			if p.current != nil {
				p.current.set(key, val)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return &FileError{Title: "ssh config", Op: "read", Path: abs, Err: err}
	}
	return nil
}

// stripSSHComment cuts a '#' comment that is not inside quotes.
func stripSSHComment(s string) string {
	var single, double bool
	for i, r := range s {
		switch r {
		case '\'':
			if !double {
				single = !single
			}
		case '"':
			if !single {
				double = !double
			}
		case '#':
			if !single && !double {
				return s[:i]
			}
		}
	}
	return s
}

// splitSSHLine accepts "Key Value" and "Key=Value". The key is lower-cased.
func splitSSHLine(line string) (key, val string, ok bool) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t=")
	if i <= 0 {
		return "", "", false
	}
	val = strings.TrimSpace(line[i+1:])
	val = strings.TrimSpace(strings.TrimPrefix(val, "="))
	return strings.ToLower(line[:i]), strings.Trim(val, `"`), true
}

// includeFiles resolves an Include pattern relative to the including file's directory.
func includeFiles(base, pattern string) []string {
	var out []string
	for _, p := range strings.Fields(pattern) {
		p = ExpandPath(p)
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(base), p)
		}
		matches, err := filepath.Glob(p)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if fi, err := os.Stat(m); err == nil && !fi.IsDir() {
				out = append(out, m)
			}
		}
	}
	return out
}

func isLiteralHostPattern(p string) bool {
	return p != "" && !strings.HasPrefix(p, "!") && !strings.ContainsAny(p, "*?[]")
}
