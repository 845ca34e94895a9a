package main

// windowTitle is the viewer window caption for the named sim.
func windowTitle(sim string) string {
	return "tri-ca: " + sim
}
