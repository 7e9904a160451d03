package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestImportSSHConfig(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "config")
	writeFile(t, root, `
# global defaults
ServerAliveInterval 30

Host db1 db1-alias
  HostName 10.0.0.1
  User alice # trailing comment
  Port 2222

Host *.internal !bastion
  User ignored

Include conf.d/*.conf

Match host web
  User matched

Host web
  HostName=web.example.com

Host *
  User fallback
  HostName never-used-for-db1
`)
	writeFile(t, filepath.Join(dir, "conf.d", "extra.conf"), `
Host jump
  Hostname "jump.example.com"
`)

	servers, err := ImportSSHConfig(root)
	require.NoError(t, err)

	names := make([]string, 0, len(servers))
	for _, s := range servers {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"db1", "db1-alias", "jump", "web"}, names)

	db := servers[0]
	assert.Equal(t, "10.0.0.1", db.Hostname)
	assert.Equal(t, 2222, db.Port)
	assert.Equal(t, []string{"alice"}, db.Usernames)

	jump := servers[2]
	assert.Equal(t, "jump.example.com", jump.Hostname)
	assert.Equal(t, DefaultPort, jump.Port)
	assert.Equal(t, []string{"fallback"}, jump.Usernames, "Host * fills unset keywords")

	web := servers[3]
	assert.Equal(t, "web.example.com", web.Hostname)
	assert.Equal(t, []string{"fallback"}, web.Usernames)
}

func TestImportSSHConfig_FirstValueWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	writeFile(t, path, "Host a\n  HostName first\n  HostName again\nHost a\n  HostName second\n  Port 2200\n")

	servers, err := ImportSSHConfig(path)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, "first", servers[0].Hostname)
	assert.Equal(t, 2200, servers[0].Port, "later blocks still fill unset keywords")
	assert.Equal(t, "config:1", servers[0].Description)
}

func TestImportSSHConfig_IncludeInsideHostBlock(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "config")
	writeFile(t, root, `
Host db
  HostName db.lan
  Include extra.conf
  User ops

Host a
  Include hosts.conf
  User alice
`)
	writeFile(t, filepath.Join(dir, "extra.conf"), "Port 2200\nHostName ignored\n")
	writeFile(t, filepath.Join(dir, "hosts.conf"), "Host b\n  HostName b.lan\n")

	servers, err := ImportSSHConfig(root)
	require.NoError(t, err)
	require.Len(t, servers, 3)

	a, b, db := servers[0], servers[1], servers[2]
	assert.Equal(t, "db.lan", db.Hostname)
	assert.Equal(t, 2200, db.Port)
	assert.Equal(t, []string{"ops"}, db.Usernames, "settings after Include stay in the block")

	assert.Equal(t, []string{"alice"}, a.Usernames)
	assert.Equal(t, "b.lan", b.Hostname)
	assert.Equal(t, []string{DefaultUsername}, b.Usernames)
}

func TestImportSSHConfig_IncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), "Include b\nHost a\n  HostName a.example.com\n")
	writeFile(t, filepath.Join(dir, "b"), "Include a\nHost b\n")

	servers, err := ImportSSHConfig(filepath.Join(dir, "a"))
	require.NoError(t, err)
	assert.Len(t, servers, 2)
}

func TestImportSSHConfig_Errors(t *testing.T) {
	_, err := ImportSSHConfig(filepath.Join(t.TempDir(), "missing"))
	var ferr *FileError
	require.True(t, errors.As(err, &ferr))

	path := filepath.Join(t.TempDir(), "config")
	writeFile(t, path, "Host bad\n  Port http\n")
	_, err = ImportSSHConfig(path)
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Contains(t, err.Error(), `invalid port "http"`)
}

func TestEncodeServers_DecodesBack(t *testing.T) {
	in := []Server{
		{Name: "db1", Hostname: "10.0.0.1", Port: 2222, Usernames: []string{"alice"}, Description: "primary"},
		{Name: "web", Hostname: "web.example.com", Port: DefaultPort, Usernames: []string{"root", "deploy"}},
	}
	data, err := EncodeServers(in)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "port = 22\n")

	cfg, err := Decode("out.toml", data)
	require.NoError(t, err)
	assert.Equal(t, in, cfg.SortedServers())
}

func TestStripSSHComment(t *testing.T) {
	assert.Equal(t, "User a ", stripSSHComment("User a # note"))
	assert.Equal(t, `ProxyCommand "a#b"`, stripSSHComment(`ProxyCommand "a#b"`))
	assert.Equal(t, "", stripSSHComment("# only"))
}
