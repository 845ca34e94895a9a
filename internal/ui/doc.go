// Package ui draws the viewer's control panel: the simulation's current
// parameters and +/- buttons for the integer controls it exposes. Everything
// here needs the ebiten build tag.
package ui
