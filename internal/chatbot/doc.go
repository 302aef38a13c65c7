// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatbot implements the keyword chatbot for hospital staff.
//
// The package has three parts:
//
//   - Static tables: the common and role command tables and the small-talk
//     phrase sets (tables.go). Table order is match priority.
//   - Classifier: maps one lowercased input line to a Kind by substring
//     containment, first match wins (classifier.go).
//   - Engine: holds the login state and turns classifications into bot
//     replies and front-end actions (engine.go).
//
// The engine is front-end agnostic. The TUI and the line-oriented REPL both
// feed input to Engine.Handle and append Outcome.Replies to the
// conversation; the StartLogin and Farewell flags tell the front end to run
// its login form or end the session.
package chatbot
