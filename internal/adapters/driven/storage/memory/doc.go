// Package memory provides in-memory implementations of the driven storage ports.
package memory
