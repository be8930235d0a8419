// Package ui contains the Bubble Tea program that browses a dialogue dataset.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, type-ahead input, dataset reloads, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse wheel, resizes, dataset reload events).
//   - Key handling (internal/ui/navigation.go) moves focus between the three
//     sidebar pickers, applies the highlighted option, and steps between
//     records. Keys that are not bindings feed the focused picker's search
//     (internal/ui/input.go).
//
// State ownership:
//   - Picker state (options, search query, highlighted row, applied value)
//     lives in internal/ui/state.Picker.
//   - The applied filter, the remembered selection and the record cursor live
//     in a browse.Session. Every change goes through the session, so the
//     screen always shows the frame of one browse pass.
//
// Dataset reloads:
//   - When a backend.Watcher is supplied, Update waits on its channel and hands
//     each event to applyDatasetEvent, which refreshes the picker options and
//     reloads the session with the cursor clamped to the new view.
package ui
