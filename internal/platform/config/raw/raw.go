// Package raw reads environment variables for code that runs before the
// logger exists, so it must not import logger or config
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Env is a snapshot of the variables under one prefix, keyed without it
type Env map[string]string

// Load snapshots every variable starting with prefix; blank values are dropped
func Load(prefix string) Env {
	env := Env{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, prefix) {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			env[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return env
}

// Str returns the value for key or def
func (e Env) Str(key, def string) string {
	if v, ok := e[key]; ok {
		return v
	}
	return def
}

// Bool accepts anything strconv.ParseBool does plus yes and no; other values give def
func (e Env) Bool(key string, def bool) bool {
	v, ok := e[key]
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "yes":
		return true
	case "no":
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return def
}

// Int returns a non negative integer for key; anything else gives def
func (e Env) Int(key string, def int) int {
	n, err := strconv.Atoi(e[key])
	if err != nil || n < 0 {
		return def
	}
	return n
}
