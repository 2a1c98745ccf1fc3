package game

// Package game implements the session state machine: the elapsed-time timer,
// per-tile marked state, and the LIFO undo history. Every transition returns
// a Change value describing what the presentation layer must re-render, so
// state never reaches into widgets directly.
