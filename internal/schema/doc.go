// Package schema reads container declarations from YAML files.
//
// A schema file lists containers, their fields and the directives attached
// to each, as an alternative to annotating Go source:
//
//	version: "1"
//	package: settings
//	imports:
//	  - path: example.com/settings/durations
//	containers:
//	  - name: Server
//	    directives: [{rename_all: snake_case}, default]
//	    fields:
//	      - name: Port
//	        type: int
//	        directives: [{rename: listen_port}, {default: {path: settings.DefaultPort}}]
//	      - name: Debug
//	        type: bool
//	        directives: "skip"
//
// Directive items are either a bare name (a word) or a single-key mapping.
// A mapping value is a bool, a string, {path: a.b.C}, or a sequence holding
// a nested list. A plain string in place of the sequence is parsed with the
// struct-tag syntax of package directive.
package schema
