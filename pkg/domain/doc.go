/*
Package domain contains the core domain models for the Dialogic portrait engine.

It defines the layered-portrait directive language (Commands and their
Operations), the diagnostics surfaced by parsing and evaluation, and the
portrait data (Profiles, Layer definitions, Visibility state). This package is
kept pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Command: One step of a layer directive (show/hide/set plus a target path).
  - Diagnostic: A non-fatal problem reported by the parser or evaluator.
  - Profile: A character's declarative layer tree as authored.
  - State: The visibility snapshot of a portrait preview session.
*/
package domain
