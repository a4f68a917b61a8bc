package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS    = ""             // e.g. "example.com,example2.com"
	MYSQL_DSN      = ""             // MySQL will be used if this is set
	SQLITE_FILE    = "postboard.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS   = "0.0.0.0:8080"
	DEBUG_MODE     = true
	TEMPLATES_GLOB = "templates/*.tmpl"
	// Session cookie settings
	SESSION_KEY     = "this is a long key" // TODO: refuse to start in production with the default key
	SESSION_COOKIE  = "token"
	SESSION_MAX_AGE = 30 * 86400 // 30 days
	// Number of posts per page on the index, group and profile listings
	PAGE_SIZE = 10
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("TEMPLATES_GLOB", &TEMPLATES_GLOB)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvString("SESSION_COOKIE", &SESSION_COOKIE)
	readEnvInt("SESSION_MAX_AGE", &SESSION_MAX_AGE)
	readEnvInt("PAGE_SIZE", &PAGE_SIZE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
