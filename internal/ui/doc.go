// Package ui contains the Bubble Tea program that powers the catalog
// browser. The Model type focuses on message orchestration while the node
// types (Root, Shelf, Tile) own the browsing tree's behavior.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - When the search overlay is open, key presses go to it first. All
//     other messages are routed through a typed handler registry so each
//     tea.Msg is handled by a focused function.
//   - Key presses become host key events and reach the focused node.
//     Background completions arrive over the task runner's channel, are
//     re-wrapped as promise events and broadcast through the tree.
//     Animation frames tick only while some node keeps requesting them.
//
// Tree ownership:
//   - Root owns the selection cursor and the column of shelves. It
//     launches the catalog fetch when it joins the tree and splices the
//     loading placeholder out when the result lands.
//   - Each Shelf launches its own thumbnail fetch on attach and splices
//     in its tile row, or an error line when the fetch failed.
//   - Tiles are leaves with a fixed grid position. Selection reaches
//     them as a broadcast command; the highlight animation is local
//     state advanced one step per frame.
//
// The host (internal/widget) serializes all of this onto the update
// goroutine: nodes never see concurrent passes, and background work only
// re-enters the tree as completion values.
package ui
