// Values are the Gaunt integrals of the real SH basis, evaluated in closed form
// from Wigner 3j symbols and rounded to the nearest float64. Entries are checked
// against sphere quadrature in product_test.go.

package sh

// gaunt2 lists the nonzero integrals of Y_k*Y_i*Y_j (i <= j) for order 2.
var gaunt2 = [...]gauntTerm{
	{0, 0, 0, 0.28209479177387814},
	{1, 0, 1, 0.28209479177387814},
	{2, 0, 2, 0.28209479177387814},
	{3, 0, 3, 0.28209479177387814},
	{0, 1, 1, 0.28209479177387814},
	{0, 2, 2, 0.28209479177387814},
	{0, 3, 3, 0.28209479177387814},
}
