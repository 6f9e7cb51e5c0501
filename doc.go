// Package main implements aoc2021, a CLI that fetches an Advent of Code 2021
// puzzle input and prints the answer computed by the registered solver.
//
// # Usage
//
//	aoc2021 DAY STAGE [TOKEN] [--config PATH] [--input PATH] [-v]
//	aoc2021 list
//
// STAGE is 0 or first, 1 or second. TOKEN is the site's session cookie.
// When it is omitted the TOKEN environment variable is used (a .env file in
// the working directory is loaded first), then the token key of the config
// file.
//
// # Configuration
//
// config.json is optional. Recognised keys: base_url, year, user_agent,
// token, timeout_seconds, retry_attempts.
//
// # Environment
//
//	TOKEN     Session cookie
//	NO_COLOR  Disable colored log output
package main
