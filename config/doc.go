// Package config loads converter settings from .env files and the
// environment.
//
//	HANFONT_BYTES_PER_LINE=16
//	HANFONT_TARGET=plain
//	HANFONT_LOG_LEVEL=debug
//	HANFONT_PREVIEW_SCALE=3
//
// Without an explicit file, .env.local is used if present, otherwise .env.
// Environment variables override file values.
package config
