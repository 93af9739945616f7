// Values are the Gaunt integrals of the real SH basis, evaluated in closed form
// from Wigner 3j symbols and rounded to the nearest float64. Entries are checked
// against sphere quadrature in product_test.go.

package sh

// gaunt4 lists the nonzero integrals of Y_k*Y_i*Y_j (i <= j) for order 4.
var gaunt4 = [...]gauntTerm{
	{0, 0, 0, 0.28209479177387814},
	{1, 0, 1, 0.28209479177387814},
	{2, 0, 2, 0.28209479177387814},
	{3, 0, 3, 0.28209479177387814},
	{4, 0, 4, 0.28209479177387814},
	{5, 0, 5, 0.28209479177387814},
	{6, 0, 6, 0.28209479177387814},
	{7, 0, 7, 0.28209479177387814},
	{8, 0, 8, 0.28209479177387814},
	{9, 0, 9, 0.28209479177387814},
	{10, 0, 10, 0.28209479177387814},
	{11, 0, 11, 0.28209479177387814},
	{12, 0, 12, 0.28209479177387814},
	{13, 0, 13, 0.28209479177387814},
	{14, 0, 14, 0.28209479177387814},
	{15, 0, 15, 0.28209479177387814},
	{0, 1, 1, 0.28209479177387814},
	{6, 1, 1, -0.126156626101008},
	{8, 1, 1, -0.2185096861184158},
	{5, 1, 2, 0.2185096861184158},
	{4, 1, 3, 0.2185096861184158},
	{3, 1, 4, 0.2185096861184158},
	{13, 1, 4, -0.05839917008190185},
	{15, 1, 4, -0.22617901315954028},
	{2, 1, 5, 0.2185096861184158},
	{12, 1, 5, -0.14304816810266882},
	{14, 1, 5, -0.1846743909223718},
	{1, 1, 6, -0.126156626101008},
	{11, 1, 6, 0.20230065940342062},
	{10, 1, 7, 0.1846743909223718},
	{1, 1, 8, -0.2185096861184158},
	{9, 1, 8, 0.22617901315954028},
	{11, 1, 8, 0.05839917008190185},
	{8, 1, 9, 0.22617901315954028},
	{7, 1, 10, 0.1846743909223718},
	{6, 1, 11, 0.20230065940342062},
	{8, 1, 11, 0.05839917008190185},
	{5, 1, 12, -0.14304816810266882},
	{4, 1, 13, -0.05839917008190185},
	{5, 1, 14, -0.1846743909223718},
	{4, 1, 15, -0.22617901315954028},
	{0, 2, 2, 0.28209479177387814},
	{6, 2, 2, 0.252313252202016},
	{7, 2, 3, 0.2185096861184158},
	{10, 2, 4, 0.1846743909223718},
	{1, 2, 5, 0.2185096861184158},
	{11, 2, 5, 0.2335966803276074},
	{2, 2, 6, 0.252313252202016},
	{12, 2, 6, 0.24776669508347607},
	{3, 2, 7, 0.2185096861184158},
	{13, 2, 7, 0.2335966803276074},
	{14, 2, 8, 0.1846743909223718},
	{4, 2, 10, 0.1846743909223718},
	{5, 2, 11, 0.2335966803276074},
	{6, 2, 12, 0.24776669508347607},
	{7, 2, 13, 0.2335966803276074},
	{8, 2, 14, 0.1846743909223718},
	{0, 3, 3, 0.28209479177387814},
	{6, 3, 3, -0.126156626101008},
	{8, 3, 3, 0.2185096861184158},
	{1, 3, 4, 0.2185096861184158},
	{9, 3, 4, 0.22617901315954028},
	{11, 3, 4, -0.05839917008190185},
	{10, 3, 5, 0.1846743909223718},
	{3, 3, 6, -0.126156626101008},
	{13, 3, 6, 0.20230065940342062},
	{2, 3, 7, 0.2185096861184158},
	{12, 3, 7, -0.14304816810266882},
	{14, 3, 7, 0.1846743909223718},
	{3, 3, 8, 0.2185096861184158},
	{13, 3, 8, -0.05839917008190185},
	{15, 3, 8, 0.22617901315954028},
	{4, 3, 9, 0.22617901315954028},
	{5, 3, 10, 0.1846743909223718},
	{4, 3, 11, -0.05839917008190185},
	{7, 3, 12, -0.14304816810266882},
	{6, 3, 13, 0.20230065940342062},
	{8, 3, 13, -0.05839917008190185},
	{7, 3, 14, 0.1846743909223718},
	{8, 3, 15, 0.22617901315954028},
	{0, 4, 4, 0.28209479177387814},
	{6, 4, 4, -0.18022375157286857},
	{7, 4, 5, 0.15607834722743988},
	{4, 4, 6, -0.18022375157286857},
	{5, 4, 7, 0.15607834722743988},
	{3, 4, 9, 0.22617901315954028},
	{13, 4, 9, -0.09403159725795938},
	{2, 4, 10, 0.1846743909223718},
	{12, 4, 10, -0.18806319451591877},
	{3, 4, 11, -0.05839917008190185},
	{13, 4, 11, 0.14567312407894387},
	{15, 4, 11, 0.09403159725795938},
	{10, 4, 12, -0.18806319451591877},
	{1, 4, 13, -0.05839917008190185},
	{9, 4, 13, -0.09403159725795938},
	{11, 4, 13, 0.14567312407894387},
	{1, 4, 15, -0.22617901315954028},
	{11, 4, 15, 0.09403159725795938},
	{0, 5, 5, 0.28209479177387814},
	{6, 5, 5, 0.09011187578643429},
	{8, 5, 5, -0.15607834722743988},
	{5, 5, 6, 0.09011187578643429},
	{4, 5, 7, 0.15607834722743988},
	{5, 5, 8, -0.15607834722743988},
	{14, 5, 9, 0.1486770096793976},
	{3, 5, 10, 0.1846743909223718},
	{13, 5, 10, 0.11516471649044516},
	{15, 5, 10, -0.1486770096793976},
	{2, 5, 11, 0.2335966803276074},
	{12, 5, 11, 0.059470803871759036},
	{14, 5, 11, -0.11516471649044516},
	{1, 5, 12, -0.14304816810266882},
	{11, 5, 12, 0.059470803871759036},
	{10, 5, 13, 0.11516471649044516},
	{1, 5, 14, -0.1846743909223718},
	{9, 5, 14, 0.1486770096793976},
	{11, 5, 14, -0.11516471649044516},
	{10, 5, 15, -0.1486770096793976},
	{0, 6, 6, 0.28209479177387814},
	{6, 6, 6, 0.18022375157286857},
	{7, 6, 7, 0.09011187578643429},
	{8, 6, 8, -0.18022375157286857},
	{9, 6, 9, -0.21026104350168},
	{1, 6, 11, 0.20230065940342062},
	{11, 6, 11, 0.126156626101008},
	{2, 6, 12, 0.24776669508347607},
	{12, 6, 12, 0.168208834801344},
	{3, 6, 13, 0.20230065940342062},
	{13, 6, 13, 0.126156626101008},
	{15, 6, 15, -0.21026104350168},
	{0, 7, 7, 0.28209479177387814},
	{6, 7, 7, 0.09011187578643429},
	{8, 7, 7, 0.15607834722743988},
	{7, 7, 8, 0.15607834722743988},
	{10, 7, 9, 0.1486770096793976},
	{1, 7, 10, 0.1846743909223718},
	{9, 7, 10, 0.1486770096793976},
	{11, 7, 10, 0.11516471649044516},
	{10, 7, 11, 0.11516471649044516},
	{3, 7, 12, -0.14304816810266882},
	{13, 7, 12, 0.059470803871759036},
	{2, 7, 13, 0.2335966803276074},
	{12, 7, 13, 0.059470803871759036},
	{14, 7, 13, 0.11516471649044516},
	{3, 7, 14, 0.1846743909223718},
	{13, 7, 14, 0.11516471649044516},
	{15, 7, 14, 0.1486770096793976},
	{14, 7, 15, 0.1486770096793976},
	{0, 8, 8, 0.28209479177387814},
	{6, 8, 8, -0.18022375157286857},
	{1, 8, 9, 0.22617901315954028},
	{11, 8, 9, -0.09403159725795938},
	{1, 8, 11, 0.05839917008190185},
	{9, 8, 11, -0.09403159725795938},
	{11, 8, 11, -0.14567312407894387},
	{14, 8, 12, -0.18806319451591877},
	{3, 8, 13, -0.05839917008190185},
	{13, 8, 13, 0.14567312407894387},
	{15, 8, 13, -0.09403159725795938},
	{2, 8, 14, 0.1846743909223718},
	{12, 8, 14, -0.18806319451591877},
	{3, 8, 15, 0.22617901315954028},
	{13, 8, 15, -0.09403159725795938},
	{0, 9, 9, 0.28209479177387814},
	{6, 9, 9, -0.21026104350168},
	{7, 9, 10, 0.1486770096793976},
	{8, 9, 11, -0.09403159725795938},
	{4, 9, 13, -0.09403159725795938},
	{5, 9, 14, 0.1486770096793976},
	{0, 10, 10, 0.28209479177387814},
	{7, 10, 11, 0.11516471649044516},
	{4, 10, 12, -0.18806319451591877},
	{5, 10, 13, 0.11516471649044516},
	{5, 10, 15, -0.1486770096793976},
	{0, 11, 11, 0.28209479177387814},
	{6, 11, 11, 0.126156626101008},
	{8, 11, 11, -0.14567312407894387},
	{5, 11, 12, 0.059470803871759036},
	{4, 11, 13, 0.14567312407894387},
	{5, 11, 14, -0.11516471649044516},
	{4, 11, 15, 0.09403159725795938},
	{0, 12, 12, 0.28209479177387814},
	{6, 12, 12, 0.168208834801344},
	{7, 12, 13, 0.059470803871759036},
	{8, 12, 14, -0.18806319451591877},
	{0, 13, 13, 0.28209479177387814},
	{6, 13, 13, 0.126156626101008},
	{8, 13, 13, 0.14567312407894387},
	{7, 13, 14, 0.11516471649044516},
	{8, 13, 15, -0.09403159725795938},
	{0, 14, 14, 0.28209479177387814},
	{7, 14, 15, 0.1486770096793976},
	{0, 15, 15, 0.28209479177387814},
	{6, 15, 15, -0.21026104350168},
}
