//go:build !cfftdebug

package cfft

func assertLen(a []Complex, n int) {}

func assertReduced(elems ...*Complex) {}
