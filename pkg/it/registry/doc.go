// Package registry names pipeline operations so they can be looked up and
// chained at run time, for example from command line arguments.
//
// A Registry is an explicit value: there is no shared global table. Builtin
// returns a registry holding every operation of package it under its own name
// and its historical aliases; callers add more with Register.
//
// Key operations:
// - New/Builtin: create an empty or pre-populated registry
// - Register/Alias: add an operation or another name for one
// - Lookup/Names/Entries: inspect what is registered
// - Extend/Build: append named operations to a pipeline
// - ParseCall: read "name arg, arg" text into a Call
package registry
