// Package models provides shared data models and types for the plugin scaffolder.
//
// # Plugin Types
//
// LiteLoaderQQNT plugins come in three flavours:
//   - Extension: the regular plugin (default)
//   - Theme: restyles the host client
//   - Framework: provides APIs for other plugins
//
// # Platforms
//
// A plugin declares the platforms it supports using Node's process.platform
// identifiers: win32, linux and darwin.
//
// # Answers
//
// [AnswerSet] carries the wizard answers keyed by the Key* constants:
//
//	answers := models.NewAnswerSet()
//	_ = answers.Set(models.KeyProjectName, "MyCoolPlugin")
//	name := answers.String(models.KeyProjectName)
package models
