// Package viz shows a fireworks show live in the terminal.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: ticks the show once per frame and redraws
//   - [Canvas]: Braille-based pixel canvas with a color per cell, sampled
//     from the show's framebuffer
//   - Theme selection for the side panel
//
// # Frames
//
// Each [TickMsg] advances the show by one frame and schedules the next one
// through tea.Tick, so the frame rate is best effort. Window resizes
// reallocate the framebuffer; new launches pick up the new size.
//
// # Key Bindings
//
//	Q, Esc, Ctrl+C - Quit
package viz
