// ABOUTME: Package documentation for the host-agnostic dropdown widget
// ABOUTME: Describes the controller, position calculator and Host contract

// Package dropdown implements a host-agnostic dropdown widget: a visibility
// state machine for hover, click and controlled triggers, and a pure position
// calculator that anchors the overlay below its trigger and clamps it to the
// viewport width.
//
// A host supplies geometry through the Host interface and forwards
// viewport-level scroll, resize and pointer notifications through a shared
// Window. The terminal host in internal/btea is one such host.
package dropdown
