// Package diagnostic collects structured errors and warnings produced while
// resolving many containers, so they can be reported together.
//
// Each diagnostic carries a stable code (e.g. "unknown_directive"), a
// message, and the container, field and directive it concerns.
package diagnostic
