// Package seed loads the initial hearing records from JSON.
//
// The built-in set is compiled into the binary. A file path configured under
// data.seed_file replaces it. Seeds are read once at start-up.
package seed
