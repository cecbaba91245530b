// Package poly provides a complex-coefficient polynomial type with
// evaluation, multiplication, construction from roots and root finding.
//
// Coefficients are stored in ascending power order: c[0] + c[1]*x + ...
// Trailing zero coefficients are trimmed on construction by exact
// comparison, so the zero polynomial has no coefficients and degree -1.
//
// Roots of real-coefficient polynomials are computed as eigenvalues of the
// companion matrix using gonum. Polynomials with non-real coefficients fall
// back to Durand-Kerner simultaneous iteration.
package poly
