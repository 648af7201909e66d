// Package analysis provides diagnostics for integrated trajectories.
//
//   - [Energy], [EnergyDrift]: conservation of the vertical Hamiltonian
//   - [PowerSpectrum], [DominantPeriods]: periodogram of a coordinate row
//   - [Stroboscopic]: surface-of-section sampling in the (z, v) plane
//   - [Lyapunov]: maximal exponent fitted to the mean fast indicator
//
// # Chaos Detection
//
// A mean indicator saturating near 2 marks quasi-periodic motion; linear
// growth marks chaos, and the exponent follows from the slope:
//
//	lambda := analysis.Lyapunov(times, megno)
package analysis
