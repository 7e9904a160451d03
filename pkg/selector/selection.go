package selector

import (
	"fmt"

	"sssh/pkg/config"
)

// Panel is the list that receives Up/Down.
type Panel int

const (
	PanelServers Panel = iota
	PanelUsernames
)

func (p Panel) String() string {
	if p == PanelUsernames {
		return "usernames"
	}
	return "servers"
}

// none marks an unset index.
const none = -1

// Selection is the in-memory state of the picker: the sorted servers, which one
// and which username are highlighted, and which panel has focus.
//
// It is built once per configuration load and never does I/O. Mutators are total
// as long as navigation is only attempted while Enabled() allows it.
type Selection struct {
	servers  []config.Server
	focus    Panel
	server   int
	username int
	enabled  ActionSet
}

// NewSelection builds a Selection from a configuration snapshot. A nil snapshot
// behaves like an empty one.
func NewSelection(cfg *config.Config) Selection {
	s := Selection{
		servers:  cfg.SortedServers(),
		focus:    PanelServers,
		server:   none,
		username: none,
		enabled:  alwaysEnabled,
	}
	if len(s.servers) > 0 {
		s.enabled |= navigation
		s.AdvanceServer(+1)
	}
	return s
}

// Servers returns the servers in display order.
func (s *Selection) Servers() []config.Server { return s.servers }

// Focus returns the focused panel.
func (s *Selection) Focus() Panel { return s.focus }

// Enabled returns the actions usable in the current state.
func (s *Selection) Enabled() ActionSet { return s.enabled }

// ServerIndex returns the highlighted server position, or false when there are no servers.
func (s *Selection) ServerIndex() (int, bool) {
	return s.server, s.server != none
}

// UsernameIndex returns the highlighted username position, or false when none is highlighted.
func (s *Selection) UsernameIndex() (int, bool) {
	return s.username, s.username != none
}

// Current returns the highlighted server.
func (s *Selection) Current() (config.Server, bool) {
	if s.server == none || s.server >= len(s.servers) {
		return config.Server{}, false
	}
	return s.servers[s.server], true
}

// Chosen returns the highlighted server and username, if a username is highlighted.
func (s *Selection) Chosen() (config.Server, string, bool) {
	srv, ok := s.Current()
	if !ok || s.username == none || s.username >= len(srv.Usernames) {
		return config.Server{}, "", false
	}
	return srv, srv.Usernames[s.username], true
}

// AdvanceServer moves the server highlight by dir (+1 down, -1 up), wrapping around
// both ends. It is a no-op without servers.
func (s *Selection) AdvanceServer(dir int) { s.server = wrap(s.server, dir, len(s.servers)) }

// AdvanceUsername moves the username highlight by dir within the highlighted server,
// wrapping around both ends.
func (s *Selection) AdvanceUsername(dir int) { s.username = wrap(s.username, dir, s.usernameCount()) }

// EnterUsernames focuses the username panel, highlighting the first username if none is.
func (s *Selection) EnterUsernames() {
	if len(s.servers) == 0 {
		return
	}
	s.focus = PanelUsernames
	if s.username == none {
		s.AdvanceUsername(+1)
	}
}

// LeaveUsernames focuses the server panel again and clears the username highlight.
func (s *Selection) LeaveUsernames() {
	s.focus = PanelServers
	s.username = none
}

func (s *Selection) usernameCount() int {
	srv, ok := s.Current()
	if !ok {
		return 0
	}
	return len(srv.Usernames)
}

func (s *Selection) String() string {
	return fmt.Sprintf("Selection{servers:%d focus:%s server:%d username:%d enabled:%s}",
		len(s.servers), s.focus, s.server, s.username, s.enabled)
}

// wrap steps index by dir over n items circularly. An unset index lands on 0.
// With no items the index stays unset.
func wrap(index, dir, n int) int {
	if n == 0 {
		return none
	}
	if index == none {
		return 0
	}
	return ((index+dir)%n + n) % n
}
