// File: doc.go
// Title: log Package Documentation
// Description: Documents the structured logging package used by the mRW
//              parser, engine, and CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial documentation

/*
Package log provides structured logging for mRW.

A Logger carries a minimum Level, an output Format (text or JSON), and a set
of context fields that are attached to every entry. Loggers are immutable;
the With* methods return derived loggers:

	logger := log.GetDefault().WithName("mrw").WithField("component", "parser")
	logger.Debug("tokenizing input", log.Fields{"length": len(text)})

The package default logger (GetDefault/SetDefault) writes text entries to
stderr at info level until it is reconfigured by the CLI.
*/
package log
