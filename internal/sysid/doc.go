// Package sysid exposes per-platform system identifiers used in
// diagnostic output.
package sysid
