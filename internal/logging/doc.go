// Package logging builds the zerolog logger the client components share.
package logging
