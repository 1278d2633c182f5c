// Package confloader loads configuration with koanf and watches the
// configuration file with fsnotify.
//
// Sources, later ones overriding earlier ones: the target struct as
// passed in (defaults), a YAML file, environment variables, and a flag
// map. Environment variables take the form RODENT_SECTION_KEY; only the
// first underscore after the prefix separates section from key, so
// RODENT_SERVER_RATE_LIMIT maps to server.rate_limit.
package confloader
