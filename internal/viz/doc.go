// Package viz renders the live terminal dashboard: temperature and fan
// gauges, status coloring and scrolling history charts, with key
// bindings for load presets, PID toggling, reset and report export.
package viz
