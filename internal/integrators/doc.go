// Package integrators provides fixed-step integration of ordinary
// differential equations with dense trajectory storage.
//
// The package defines the core types shared by every numerical run:
//
//   - [State]: vector representing an instantaneous system state
//   - [System]: interface for first-order ODE systems (dx/dt = f(t, x))
//   - [SecondOrder]: interface for systems driven by accelerations
//   - [Buffer]: column-per-step trajectory storage
//
// Three methods are implemented: the classic 4th-order Runge-Kutta
// scheme for general systems, and the velocity-Verlet (leapfrog) and
// 4th-order Yoshida schemes for second-order systems. The symplectic
// schemes keep the state as [positions | velocities] halves.
//
// # Example
//
//	sys := integrators.SecondOrderFunc(accelerations)
//	buf, err := integrators.Yoshida4(sys, x0, 0, 1e-2, 4000)
//
// Integration with a negative step runs backwards in time; the
// symplectic methods retrace their own trajectories this way.
package integrators
