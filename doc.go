/*
Package bigfloat implements arbitrary-precision floating-point numbers in an
arbitrary integer radix, and the transcendental and algebraic functions that
operate on them: roots, logarithms, exponentials, the trigonometric and
hyperbolic families, and π.

# Representation

[Number] is the value type of this package. A Number carries three attributes:

  - Coefficient: an arbitrary-size signed integer, whose sign is the
    Number's sign.
  - Scale: a signed exponent of the radix, so that the numeric value is
    coefficient * radix^scale.
  - Precision: the number of radix digits of the coefficient that are
    significant. Precision may be [Infinite], meaning the value is treated
    as exact.

Unlike a fixed-width decimal type, Number's coefficient is not bounded to a
fixed digit count and its radix is a runtime parameter in the range 2..36,
not fixed at 10.

# Precision propagation

Every arithmetic and transcendental function takes its target precision
either explicitly or from its argument(s) and rounds its result to that many
significant radix digits. [InverseRoot]'s Newton iteration doubles its working
precision on each step and repeats the last, full-precision step once (the
"precising" iteration) to absorb round-off. [Exp] range-reduces its argument,
sums a Taylor series, squares back up, and finishes with one Newton
correction against [Log].

# Caches

[Pi] and [LogRadix] maintain a process-wide, per-radix, never-evicted cache.
A later [Pi] call at higher precision extends the cached series by only the
missing terms instead of recomputing it from scratch; the cached ln(radix) is
reused while it is precise enough and recomputed at the higher precision
otherwise. See the package-level
cache documentation in cache.go for the concurrency discipline.

# Errors

Operations fail in two distinct ways, see [ArithmeticError] and
[OperationalError].

# Scope

This package does not implement rounding-mode selection, monotonicity
guarantees across precisions, complex results for functions given an
out-of-domain real argument, symbolic evaluation, or interval arithmetic.
*/
package bigfloat
