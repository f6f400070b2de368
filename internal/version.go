// Package internal defines the values shared by all mmr executables.
package internal

// Version is the software version of the mmr tools.
const Version = "0.1.0"
