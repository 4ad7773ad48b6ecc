// Package plant models the thermal behavior of a heat-generating
// device: a first-order balance between load-proportional generated
// power and delta-T-proportional passive and fan-driven cooling, plus a
// damage state machine for sustained or instantaneous overheat.
package plant
