package integrators

// Registered method names.
const (
	MethodRK4      = "rk4"
	MethodLeapfrog = "leapfrog"
	MethodYoshida4 = "yoshida4"
)

// SecondOrderIntegrator advances a second-order system over n steps and
// returns the filled trajectory buffer.
type SecondOrderIntegrator func(sys SecondOrder, x0 State, t0, h float64, n int) (*Buffer, error)

// SecondOrderMethods maps method names to their symplectic drivers.
var SecondOrderMethods = map[string]SecondOrderIntegrator{
	MethodLeapfrog: Leapfrog,
	MethodYoshida4: Yoshida4,
}

// Methods lists the registered method names in display order.
func Methods() []string {
	return []string{MethodRK4, MethodLeapfrog, MethodYoshida4}
}

// Known reports whether name is a registered method. RK4 integrates
// the first-order form of a system, so it has no entry in
// SecondOrderMethods; callers switch on the name instead.
func Known(name string) bool {
	if name == MethodRK4 {
		return true
	}
	_, ok := SecondOrderMethods[name]
	return ok
}
