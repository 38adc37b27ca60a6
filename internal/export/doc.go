// Package export provides the mind-map encoders and artifact naming for canopy.
//
// This package turns an immutable mindmap.Snapshot into textual artifacts
// for delivery. Encoding is pure: no I/O, no clock reads, no mutation of
// the input snapshot. The same snapshot always produces byte-identical
// output for a given format.
//
// # Supported formats
//
//   - json: a lossless, round-trippable serialization of the snapshot
//   - markdown: a human-readable outline of the full tree
//   - plan-feature: a planning document scoped to a selected subtree,
//     meant to seed a downstream planning workflow
//
// # Markdown outline
//
// The outline renders the project name as the document title and every
// node as a list item indented two spaces per depth level, so nesting
// stays unambiguous at any depth:
//
//	# Release Planning
//
//	- Authentication
//	  Everything around login
//	  - Session tokens
//	- Billing
//
// # Plan document
//
// The plan document covers the selected node and its descendants; the
// selected node becomes the effective root. A missing or unresolvable
// selection falls back to the whole snapshot. Structure:
//
//	# Plan: Authentication
//
//	## Problem
//
//	Everything around login
//
//	## Breakdown
//
//	### Session tokens
//
// # File naming
//
// Artifact names derive from the project name, format, and export date:
//
//	DeriveFileName("My Project", FormatJSON, date)  // my-project-2024-01-08.json
//	DeriveFileName("My Project", FormatPlan, date)  // my-project-plan-2024-01-08.md
//
// Snapshots are assumed well-formed (acyclic, unique ids); validation is
// the loader's responsibility, not the encoders'. See mindmap.Validate.
package export
