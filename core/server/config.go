package server

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds configuration for the static file server and the launch sequence.
type Config struct {
	// Port is the TCP port the server listens on, on all interfaces.
	Port int `mapstructure:"port" default:"8000"`
	// Host is the loopback address used to probe the port before binding.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Root is the directory served. Empty means the directory of the executable.
	Root string `mapstructure:"root" default:""`
	// Document is the file name preferred over every other HTML file.
	Document string `mapstructure:"document" default:"focus-writer.html"`
	// Keywords are matched case-insensitively against HTML file names.
	Keywords []string `mapstructure:"keywords" default:"focus,writer"`
	// BrowserDelay is how long after startup the browser is opened.
	BrowserDelay time.Duration `mapstructure:"browser_delay" default:"2s"`
	// OpenBrowser controls whether the launcher opens a browser at all.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// PauseOnError makes failures wait for Enter before the process exits.
	PauseOnError bool `mapstructure:"pause_on_error" default:"true"`
}

// Addr is the listen address covering all local interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// BaseURL is the address the operator opens in a browser.
func (c Config) BaseURL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

// DocumentURL returns the browser URL of a file under the served root.
func (c Config) DocumentURL(file string) string {
	return c.BaseURL() + "/" + url.PathEscape(file)
}

// ProbeAddr is the loopback address checked by Probe.
func (c Config) ProbeAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ResolveRoot returns the absolute directory to serve.
//
// An explicit Root wins. Otherwise the directory holding the executable is
// used, unless it lives in the temp dir (go run), where the working
// directory is the better guess.
func (c Config) ResolveRoot() (string, error) {
	if c.Root != "" {
		return filepath.Abs(c.Root)
	}

	if exe, err := os.Executable(); err == nil {
		if exe, err = filepath.EvalSymlinks(exe); err == nil {
			dir := filepath.Dir(exe)
			if !isUnder(dir, os.TempDir()) {
				return dir, nil
			}
		}
	}

	return os.Getwd()
}

func isUnder(dir, parent string) bool {
	parent, err := filepath.EvalSymlinks(parent)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(parent, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
