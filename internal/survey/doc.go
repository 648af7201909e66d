// Package survey runs batches of scenarios over parameter grids.
//
// A [Scan] maps the final mean fast indicator over an
// eccentricity-position grid, and a [Bifurcation] collects stroboscopic
// positions along an eccentricity sweep. Both fan their independent
// cells out over a fixed pool of workers, since every cell carries a
// full trajectory history.
package survey
