// Package secret resolves configuration values that reference secrets.
//
// Values are first expanded with strict ${ENV} substitution, then any
// secretref:<provider>:<ref> references are resolved through registered
// providers. Backend credentials (Redis passwords, DSNs) flow through this
// package so they never appear verbatim in configuration.
package secret
