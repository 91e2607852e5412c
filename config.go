package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultPort = 8000
	walletPage  = "wallet-approval.html"
)

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Port int
	Dir  string
}

// loadConfig builds the server configuration from the optional positional
// port argument, environment overrides, and the program's own location.
// Port precedence: positional argument > PORT env > 8000.
func loadConfig(args []string) Config {
	// A .env file is a dev convenience; absence is fine.
	godotenv.Load()

	return Config{
		Port: resolvePort(args),
		Dir:  resolveServeDir(),
	}
}

func resolvePort(args []string) int {
	if len(args) > 0 {
		port, err := parsePort(args[0])
		if err != nil {
			logrus.WithField("arg", args[0]).Warnf("invalid port number, using default port %d", defaultPort)
			return defaultPort
		}
		return port
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := parsePort(v)
		if err != nil {
			logrus.WithField("PORT", v).Warnf("invalid PORT value, using default port %d", defaultPort)
			return defaultPort
		}
		return port
	}
	return defaultPort
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range", port)
	}
	return port, nil
}

// resolveServeDir roots the file server at the program's own directory so
// serving does not depend on where the binary was invoked from. SERVE_DIR
// overrides it, which also helps under `go run` where the executable lives
// in a temp dir.
func resolveServeDir() string {
	if v := os.Getenv("SERVE_DIR"); v != "" {
		if abs, err := filepath.Abs(v); err == nil {
			return abs
		}
		return v
	}

	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}

	dir, err := os.Getwd()
	if err != nil {
		logrus.WithError(err).Fatal("cannot determine serving directory")
	}
	return dir
}
