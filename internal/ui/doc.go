// Package ui hosts the carousel in a Bubble Tea terminal program.
//
// # Architecture Overview
//
// Model owns a carousel.Carousel[source.Item] and supplies its collaborators:
//
//   - animator: the Transitioner. Each transition is driven by tea.Tick frames
//     and completes the carousel's move when its duration has elapsed.
//   - loopScheduler: the autoplay Scheduler. Timers are delivered as messages
//     so their callbacks run on the update loop, never concurrently with it.
//   - renderItem: the RenderFunc that lays an item out inside a pane template.
//
// Collaborators push the commands they need into a shared cmdQueue, which
// Update drains after handling every message.
//
// # Rendering
//
// Cube mode shows the front pane. While a move animates, the outgoing and
// incoming faces are projected side by side and cut to the carousel width.
// Inline mode joins all five panes into a strip and slides a viewport across
// it. Pane borders are drawn at view time in the theme's colors.
//
// # Event Flow
//
//  1. New builds the carousel and emits init
//  2. Init starts the spinner and fetches items from the source
//  3. itemsMsg loads the carousel (or records the failure)
//  4. Keys, autoplay timers and focus changes request moves
//  5. frameMsg advances the animation until the move completes
//
// # Key Bindings
//
//   - ←/h, →/l: Previous / next item
//   - home, end: First / last item
//   - g: Go to an item by number or title
//   - space: Toggle autoplay
//   - L: Lock or unlock the carousel
//   - e: Toggle the event log
//   - T: Cycle theme
//   - q or Ctrl+C: Exit
package ui
