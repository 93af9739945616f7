// Values are the Gaunt integrals of the real SH basis, evaluated in closed form
// from Wigner 3j symbols and rounded to the nearest float64. Entries are checked
// against sphere quadrature in product_test.go.

package sh

// gaunt3 lists the nonzero integrals of Y_k*Y_i*Y_j (i <= j) for order 3.
var gaunt3 = [...]gauntTerm{
	{0, 0, 0, 0.28209479177387814},
	{1, 0, 1, 0.28209479177387814},
	{2, 0, 2, 0.28209479177387814},
	{3, 0, 3, 0.28209479177387814},
	{4, 0, 4, 0.28209479177387814},
	{5, 0, 5, 0.28209479177387814},
	{6, 0, 6, 0.28209479177387814},
	{7, 0, 7, 0.28209479177387814},
	{8, 0, 8, 0.28209479177387814},
	{0, 1, 1, 0.28209479177387814},
	{6, 1, 1, -0.126156626101008},
	{8, 1, 1, -0.2185096861184158},
	{5, 1, 2, 0.2185096861184158},
	{4, 1, 3, 0.2185096861184158},
	{3, 1, 4, 0.2185096861184158},
	{2, 1, 5, 0.2185096861184158},
	{1, 1, 6, -0.126156626101008},
	{1, 1, 8, -0.2185096861184158},
	{0, 2, 2, 0.28209479177387814},
	{6, 2, 2, 0.252313252202016},
	{7, 2, 3, 0.2185096861184158},
	{1, 2, 5, 0.2185096861184158},
	{2, 2, 6, 0.252313252202016},
	{3, 2, 7, 0.2185096861184158},
	{0, 3, 3, 0.28209479177387814},
	{6, 3, 3, -0.126156626101008},
	{8, 3, 3, 0.2185096861184158},
	{1, 3, 4, 0.2185096861184158},
	{3, 3, 6, -0.126156626101008},
	{2, 3, 7, 0.2185096861184158},
	{3, 3, 8, 0.2185096861184158},
	{0, 4, 4, 0.28209479177387814},
	{6, 4, 4, -0.18022375157286857},
	{7, 4, 5, 0.15607834722743988},
	{4, 4, 6, -0.18022375157286857},
	{5, 4, 7, 0.15607834722743988},
	{0, 5, 5, 0.28209479177387814},
	{6, 5, 5, 0.09011187578643429},
	{8, 5, 5, -0.15607834722743988},
	{5, 5, 6, 0.09011187578643429},
	{4, 5, 7, 0.15607834722743988},
	{5, 5, 8, -0.15607834722743988},
	{0, 6, 6, 0.28209479177387814},
	{6, 6, 6, 0.18022375157286857},
	{7, 6, 7, 0.09011187578643429},
	{8, 6, 8, -0.18022375157286857},
	{0, 7, 7, 0.28209479177387814},
	{6, 7, 7, 0.09011187578643429},
	{8, 7, 7, 0.15607834722743988},
	{7, 7, 8, 0.15607834722743988},
	{0, 8, 8, 0.28209479177387814},
	{6, 8, 8, -0.18022375157286857},
}
