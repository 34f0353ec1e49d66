// File: doc.go
// Title: stringx Package Documentation
// Description: Documents the string utility package used across mRW for
//              validation and display formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial documentation

/*
Package stringx provides small string helpers that extend the Go standard
library for the needs of mRW.

The helpers cover blank-string validation (IsBlank, IsNotBlank), display
truncation (Truncate), and diagnostic formatting (Quote, FirstLine). They
are deliberately minimal; anything beyond these cases should use the
standard library directly.
*/
package stringx
