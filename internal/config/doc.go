// Package config loads project configuration from seldom.json. The
// file is optional; every field has a working default so a project
// can run with no configuration at all.
package config
