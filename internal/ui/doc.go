// Package ui renders the profile screen with Bubble Tea.
//
// Core abstractions:
//   - View: a screen or region with its own Init/Update/View (Elm-style)
//   - OverlayStack: modal views drawn over the screen; the top one gets input
//   - KeybindRegistry/KeyHandler: single keys and SPC-prefixed sequences
//   - ViewBridge: the presenter's view, forwarding calls into the program
//
// The presenter never touches Bubble Tea types. It talks to a ViewBridge, which
// turns ShowErrorAlert and Render into messages for the program's update loop.
package ui
