// Package config loads the .grelease release configuration.
//
// It handles:
//   - Branch roles (development and master branch)
//   - Manifest paths that receive the release version
//   - Remote and GitHub release publishing options
package config
