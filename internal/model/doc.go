package model

// Package model defines the domain data structures shared across the app:
// track records and the fixed-size track collection backing the barrel grid.
// Structures are designed for direct use in the UI and JSON persistence.
