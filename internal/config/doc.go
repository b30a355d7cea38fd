// Package config provides configuration structures and utilities for
// ffreport. It defines the run options populated from CLI flags, the
// .ffreport league file format, and ESPN credential loading from the
// environment.
package config
