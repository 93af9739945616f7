// Values are the Gaunt integrals of the real SH basis, evaluated in closed form
// from Wigner 3j symbols and rounded to the nearest float64. Entries are checked
// against sphere quadrature in product_test.go.

package sh

// gaunt5 lists the nonzero integrals of Y_k*Y_i*Y_j (i <= j) for order 5.
var gaunt5 = [...]gauntTerm{
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
	{16, 0, 16, 0.28209479177387814},
	{17, 0, 17, 0.28209479177387814},
	{18, 0, 18, 0.28209479177387814},
	{19, 0, 19, 0.28209479177387814},
	{20, 0, 20, 0.28209479177387814},
	{21, 0, 21, 0.28209479177387814},
	{22, 0, 22, 0.28209479177387814},
	{23, 0, 23, 0.28209479177387814},
	{24, 0, 24, 0.28209479177387814},
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
	{22, 1, 9, -0.04352817137756817},
	{24, 1, 9, -0.23032943298089031},
	{7, 1, 10, 0.1846743909223718},
	{21, 1, 10, -0.07539300438651343},
	{23, 1, 10, -0.19947114020071635},
	{6, 1, 11, 0.20230065940342062},
	{8, 1, 11, 0.05839917008190185},
	{20, 1, 11, -0.15078600877302686},
	{22, 1, 11, -0.16858388283618386},
	{5, 1, 12, -0.14304816810266882},
	{19, 1, 12, 0.19466390027300617},
	{4, 1, 13, -0.05839917008190185},
	{18, 1, 13, 0.16858388283618386},
	{5, 1, 14, -0.1846743909223718},
	{17, 1, 14, 0.19947114020071635},
	{19, 1, 14, 0.07539300438651343},
	{4, 1, 15, -0.22617901315954028},
	{16, 1, 15, 0.23032943298089031},
	{18, 1, 15, 0.04352817137756817},
	{15, 1, 16, 0.23032943298089031},
	{14, 1, 17, 0.19947114020071635},
	{13, 1, 18, 0.16858388283618386},
	{15, 1, 18, 0.04352817137756817},
	{12, 1, 19, 0.19466390027300617},
	{14, 1, 19, 0.07539300438651343},
	{11, 1, 20, -0.15078600877302686},
	{10, 1, 21, -0.07539300438651343},
	{9, 1, 22, -0.04352817137756817},
	{11, 1, 22, -0.16858388283618386},
	{10, 1, 23, -0.19947114020071635},
	{9, 1, 24, -0.23032943298089031},
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
	{17, 2, 9, 0.16286750396763996},
	{4, 2, 10, 0.1846743909223718},
	{18, 2, 10, 0.21324361862292307},
	{5, 2, 11, 0.2335966803276074},
	{19, 2, 11, 0.23841361350444806},
	{6, 2, 12, 0.24776669508347607},
	{20, 2, 12, 0.24623252122982908},
	{7, 2, 13, 0.2335966803276074},
	{21, 2, 13, 0.23841361350444806},
	{8, 2, 14, 0.1846743909223718},
	{22, 2, 14, 0.21324361862292307},
	{23, 2, 15, 0.16286750396763996},
	{9, 2, 17, 0.16286750396763996},
	{10, 2, 18, 0.21324361862292307},
	{11, 2, 19, 0.23841361350444806},
	{12, 2, 20, 0.24623252122982908},
	{13, 2, 21, 0.23841361350444806},
	{14, 2, 22, 0.21324361862292307},
	{15, 2, 23, 0.16286750396763996},
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
	{16, 3, 9, 0.23032943298089031},
	{18, 3, 9, -0.04352817137756817},
	{5, 3, 10, 0.1846743909223718},
	{17, 3, 10, 0.19947114020071635},
	{19, 3, 10, -0.07539300438651343},
	{4, 3, 11, -0.05839917008190185},
	{18, 3, 11, 0.16858388283618386},
	{7, 3, 12, -0.14304816810266882},
	{21, 3, 12, 0.19466390027300617},
	{6, 3, 13, 0.20230065940342062},
	{8, 3, 13, -0.05839917008190185},
	{20, 3, 13, -0.15078600877302686},
	{22, 3, 13, 0.16858388283618386},
	{7, 3, 14, 0.1846743909223718},
	{21, 3, 14, -0.07539300438651343},
	{23, 3, 14, 0.19947114020071635},
	{8, 3, 15, 0.22617901315954028},
	{22, 3, 15, -0.04352817137756817},
	{24, 3, 15, 0.23032943298089031},
	{9, 3, 16, 0.23032943298089031},
	{10, 3, 17, 0.19947114020071635},
	{9, 3, 18, -0.04352817137756817},
	{11, 3, 18, 0.16858388283618386},
	{10, 3, 19, -0.07539300438651343},
	{13, 3, 20, -0.15078600877302686},
	{12, 3, 21, 0.19466390027300617},
	{14, 3, 21, -0.07539300438651343},
	{13, 3, 22, 0.16858388283618386},
	{15, 3, 22, -0.04352817137756817},
	{14, 3, 23, 0.19947114020071635},
	{15, 3, 24, 0.23032943298089031},
	{0, 4, 4, 0.28209479177387814},
	{6, 4, 4, -0.18022375157286857},
	{20, 4, 4, 0.04029925596769688},
	{24, 4, 4, -0.23841361350444806},
	{7, 4, 5, 0.15607834722743988},
	{21, 4, 5, -0.06371871843402754},
	{23, 4, 5, -0.16858388283618386},
	{4, 4, 6, -0.18022375157286857},
	{18, 4, 6, 0.15607834722743988},
	{5, 4, 7, 0.15607834722743988},
	{17, 4, 7, 0.16858388283618386},
	{19, 4, 7, -0.06371871843402754},
	{16, 4, 8, 0.23841361350444806},
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
	{8, 4, 16, 0.23841361350444806},
	{22, 4, 16, -0.07508081669196244},
	{7, 4, 17, 0.16858388283618386},
	{21, 4, 17, -0.11262122503794367},
	{6, 4, 18, 0.15607834722743988},
	{20, 4, 18, -0.19036461502711166},
	{24, 4, 18, 0.07508081669196244},
	{7, 4, 19, -0.06371871843402754},
	{21, 4, 19, 0.1418894065703999},
	{23, 4, 19, 0.11262122503794367},
	{4, 4, 20, 0.04029925596769688},
	{18, 4, 20, -0.19036461502711166},
	{5, 4, 21, -0.06371871843402754},
	{17, 4, 21, -0.11262122503794367},
	{19, 4, 21, 0.1418894065703999},
	{16, 4, 22, -0.07508081669196244},
	{5, 4, 23, -0.16858388283618386},
	{19, 4, 23, 0.11262122503794367},
	{4, 4, 24, -0.23841361350444806},
	{18, 4, 24, 0.07508081669196244},
	{0, 5, 5, 0.28209479177387814},
	{6, 5, 5, 0.09011187578643429},
	{8, 5, 5, -0.15607834722743988},
	{20, 5, 5, -0.16119702387078752},
	{22, 5, 5, -0.18022375157286857},
	{5, 5, 6, 0.09011187578643429},
	{19, 5, 6, 0.2207281154418226},
	{4, 5, 7, 0.15607834722743988},
	{18, 5, 7, 0.18022375157286857},
	{5, 5, 8, -0.15607834722743988},
	{17, 5, 8, 0.16858388283618386},
	{19, 5, 8, 0.06371871843402754},
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
	{23, 5, 16, 0.14046334619025075},
	{8, 5, 17, 0.16858388283618386},
	{22, 5, 17, 0.13272538654977692},
	{24, 5, 17, -0.14046334619025075},
	{7, 5, 18, 0.18022375157286857},
	{21, 5, 18, 0.09029786540801835},
	{23, 5, 18, -0.13272538654977692},
	{6, 5, 19, 0.2207281154418226},
	{8, 5, 19, 0.06371871843402754},
	{20, 5, 19, 0.0448693700612124},
	{22, 5, 19, -0.09029786540801835},
	{5, 5, 20, -0.16119702387078752},
	{19, 5, 20, 0.0448693700612124},
	{4, 5, 21, -0.06371871843402754},
	{18, 5, 21, 0.09029786540801835},
	{5, 5, 22, -0.18022375157286857},
	{17, 5, 22, 0.13272538654977692},
	{19, 5, 22, -0.09029786540801835},
	{4, 5, 23, -0.16858388283618386},
	{16, 5, 23, 0.14046334619025075},
	{18, 5, 23, -0.13272538654977692},
	{17, 5, 24, -0.14046334619025075},
	{0, 6, 6, 0.28209479177387814},
	{6, 6, 6, 0.18022375157286857},
	{20, 6, 6, 0.24179553580618127},
	{7, 6, 7, 0.09011187578643429},
	{21, 6, 7, 0.2207281154418226},
	{8, 6, 8, -0.18022375157286857},
	{22, 6, 8, 0.15607834722743988},
	{9, 6, 9, -0.21026104350168},
	{1, 6, 11, 0.20230065940342062},
	{11, 6, 11, 0.126156626101008},
	{2, 6, 12, 0.24776669508347607},
	{12, 6, 12, 0.168208834801344},
	{3, 6, 13, 0.20230065940342062},
	{13, 6, 13, 0.126156626101008},
	{15, 6, 15, -0.21026104350168},
	{16, 6, 16, -0.22937568382001455},
	{17, 6, 17, -0.05734392095500364},
	{4, 6, 18, 0.15607834722743988},
	{18, 6, 18, 0.0655359096628613},
	{5, 6, 19, 0.2207281154418226},
	{19, 6, 19, 0.13926380803358027},
	{6, 6, 20, 0.24179553580618127},
	{20, 6, 20, 0.16383977415715326},
	{7, 6, 21, 0.2207281154418226},
	{21, 6, 21, 0.13926380803358027},
	{8, 6, 22, 0.15607834722743988},
	{22, 6, 22, 0.0655359096628613},
	{23, 6, 23, -0.05734392095500364},
	{24, 6, 24, -0.22937568382001455},
	{0, 7, 7, 0.28209479177387814},
	{6, 7, 7, 0.09011187578643429},
	{8, 7, 7, 0.15607834722743988},
	{20, 7, 7, -0.16119702387078752},
	{22, 7, 7, 0.18022375157286857},
	{7, 7, 8, 0.15607834722743988},
	{21, 7, 8, -0.06371871843402754},
	{23, 7, 8, 0.16858388283618386},
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
	{17, 7, 16, 0.14046334619025075},
	{4, 7, 17, 0.16858388283618386},
	{16, 7, 17, 0.14046334619025075},
	{18, 7, 17, 0.13272538654977692},
	{5, 7, 18, 0.18022375157286857},
	{17, 7, 18, 0.13272538654977692},
	{19, 7, 18, 0.09029786540801835},
	{4, 7, 19, -0.06371871843402754},
	{18, 7, 19, 0.09029786540801835},
	{7, 7, 20, -0.16119702387078752},
	{21, 7, 20, 0.0448693700612124},
	{6, 7, 21, 0.2207281154418226},
	{8, 7, 21, -0.06371871843402754},
	{20, 7, 21, 0.0448693700612124},
	{22, 7, 21, 0.09029786540801835},
	{7, 7, 22, 0.18022375157286857},
	{21, 7, 22, 0.09029786540801835},
	{23, 7, 22, 0.13272538654977692},
	{8, 7, 23, 0.16858388283618386},
	{22, 7, 23, 0.13272538654977692},
	{24, 7, 23, 0.14046334619025075},
	{23, 7, 24, 0.14046334619025075},
	{0, 8, 8, 0.28209479177387814},
	{6, 8, 8, -0.18022375157286857},
	{20, 8, 8, 0.04029925596769688},
	{24, 8, 8, 0.23841361350444806},
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
	{4, 8, 16, 0.23841361350444806},
	{18, 8, 16, -0.07508081669196244},
	{5, 8, 17, 0.16858388283618386},
	{19, 8, 17, -0.11262122503794367},
	{16, 8, 18, -0.07508081669196244},
	{5, 8, 19, 0.06371871843402754},
	{17, 8, 19, -0.11262122503794367},
	{19, 8, 19, -0.1418894065703999},
	{8, 8, 20, 0.04029925596769688},
	{22, 8, 20, -0.19036461502711166},
	{7, 8, 21, -0.06371871843402754},
	{21, 8, 21, 0.1418894065703999},
	{23, 8, 21, -0.11262122503794367},
	{6, 8, 22, 0.15607834722743988},
	{20, 8, 22, -0.19036461502711166},
	{24, 8, 22, -0.07508081669196244},
	{7, 8, 23, 0.16858388283618386},
	{21, 8, 23, -0.11262122503794367},
	{8, 8, 24, 0.23841361350444806},
	{22, 8, 24, -0.07508081669196244},
	{0, 9, 9, 0.28209479177387814},
	{6, 9, 9, -0.21026104350168},
	{20, 9, 9, 0.07693494321105768},
	{7, 9, 10, 0.1486770096793976},
	{21, 9, 10, -0.09932258459927991},
	{8, 9, 11, -0.09403159725795938},
	{22, 9, 11, 0.13325523051897817},
	{24, 9, 11, 0.11752006695060024},
	{17, 9, 12, -0.20355072686733566},
	{4, 9, 13, -0.09403159725795938},
	{16, 9, 13, -0.11752006695060024},
	{18, 9, 13, 0.13325523051897817},
	{5, 9, 14, 0.1486770096793976},
	{19, 9, 14, -0.09932258459927991},
	{3, 9, 16, 0.23032943298089031},
	{13, 9, 16, -0.11752006695060024},
	{2, 9, 17, 0.16286750396763996},
	{12, 9, 17, -0.20355072686733566},
	{3, 9, 18, -0.04352817137756817},
	{13, 9, 18, 0.13325523051897817},
	{14, 9, 19, -0.09932258459927991},
	{9, 9, 20, 0.07693494321105768},
	{10, 9, 21, -0.09932258459927991},
	{1, 9, 22, -0.04352817137756817},
	{11, 9, 22, 0.13325523051897817},
	{1, 9, 24, -0.23032943298089031},
	{11, 9, 24, 0.11752006695060024},
	{0, 10, 10, 0.28209479177387814},
	{20, 10, 10, -0.17951486749246792},
	{24, 10, 10, -0.15171775404828514},
	{7, 10, 11, 0.11516471649044516},
	{21, 10, 11, 0.10257992428141023},
	{23, 10, 11, -0.06785024228911189},
	{4, 10, 12, -0.18806319451591877},
	{18, 10, 12, -0.04441841017299272},
	{5, 10, 13, 0.11516471649044516},
	{17, 10, 13, 0.06785024228911189},
	{19, 10, 13, 0.10257992428141023},
	{16, 10, 14, 0.15171775404828514},
	{5, 10, 15, -0.1486770096793976},
	{19, 10, 15, 0.09932258459927991},
	{14, 10, 16, 0.15171775404828514},
	{3, 10, 17, 0.19947114020071635},
	{13, 10, 17, 0.06785024228911189},
	{2, 10, 18, 0.21324361862292307},
	{12, 10, 18, -0.04441841017299272},
	{3, 10, 19, -0.07539300438651343},
	{13, 10, 19, 0.10257992428141023},
	{15, 10, 19, 0.09932258459927991},
	{10, 10, 20, -0.17951486749246792},
	{1, 10, 21, -0.07539300438651343},
	{9, 10, 21, -0.09932258459927991},
	{11, 10, 21, 0.10257992428141023},
	{1, 10, 23, -0.19947114020071635},
	{11, 10, 23, -0.06785024228911189},
	{10, 10, 24, -0.15171775404828514},
	{0, 11, 11, 0.28209479177387814},
	{6, 11, 11, 0.126156626101008},
	{8, 11, 11, -0.14567312407894387},
	{20, 11, 11, 0.025644981070352558},
	{22, 11, 11, -0.11468784191000728},
	{5, 11, 12, 0.059470803871759036},
	{19, 11, 12, 0.09932258459927991},
	{4, 11, 13, 0.14567312407894387},
	{18, 11, 13, 0.11468784191000728},
	{5, 11, 14, -0.11516471649044516},
	{17, 11, 14, 0.06785024228911189},
	{19, 11, 14, -0.10257992428141023},
	{4, 11, 15, 0.09403159725795938},
	{16, 11, 15, -0.11752006695060024},
	{18, 11, 15, -0.13325523051897817},
	{15, 11, 16, -0.11752006695060024},
	{14, 11, 17, 0.06785024228911189},
	{3, 11, 18, 0.16858388283618386},
	{13, 11, 18, 0.11468784191000728},
	{15, 11, 18, -0.13325523051897817},
	{2, 11, 19, 0.23841361350444806},
	{12, 11, 19, 0.09932258459927991},
	{14, 11, 19, -0.10257992428141023},
	{1, 11, 20, -0.15078600877302686},
	{11, 11, 20, 0.025644981070352558},
	{10, 11, 21, 0.10257992428141023},
	{1, 11, 22, -0.16858388283618386},
	{9, 11, 22, 0.13325523051897817},
	{11, 11, 22, -0.11468784191000728},
	{10, 11, 23, -0.06785024228911189},
	{9, 11, 24, 0.11752006695060024},
	{0, 12, 12, 0.28209479177387814},
	{6, 12, 12, 0.168208834801344},
	{20, 12, 12, 0.15386988642211535},
	{7, 12, 13, 0.059470803871759036},
	{21, 12, 13, 0.09932258459927991},
	{8, 12, 14, -0.18806319451591877},
	{22, 12, 14, -0.04441841017299272},
	{23, 12, 15, -0.20355072686733566},
	{9, 12, 17, -0.20355072686733566},
	{10, 12, 18, -0.04441841017299272},
	{1, 12, 19, 0.19466390027300617},
	{11, 12, 19, 0.09932258459927991},
	{2, 12, 20, 0.24623252122982908},
	{12, 12, 20, 0.15386988642211535},
	{3, 12, 21, 0.19466390027300617},
	{13, 12, 21, 0.09932258459927991},
	{14, 12, 22, -0.04441841017299272},
	{15, 12, 23, -0.20355072686733566},
	{0, 13, 13, 0.28209479177387814},
	{6, 13, 13, 0.126156626101008},
	{8, 13, 13, 0.14567312407894387},
	{20, 13, 13, 0.025644981070352558},
	{22, 13, 13, 0.11468784191000728},
	{7, 13, 14, 0.11516471649044516},
	{21, 13, 14, 0.10257992428141023},
	{23, 13, 14, 0.06785024228911189},
	{8, 13, 15, -0.09403159725795938},
	{22, 13, 15, 0.13325523051897817},
	{24, 13, 15, -0.11752006695060024},
	{9, 13, 16, -0.11752006695060024},
	{10, 13, 17, 0.06785024228911189},
	{1, 13, 18, 0.16858388283618386},
	{9, 13, 18, 0.13325523051897817},
	{11, 13, 18, 0.11468784191000728},
	{10, 13, 19, 0.10257992428141023},
	{3, 13, 20, -0.15078600877302686},
	{13, 13, 20, 0.025644981070352558},
	{2, 13, 21, 0.23841361350444806},
	{12, 13, 21, 0.09932258459927991},
	{14, 13, 21, 0.10257992428141023},
	{3, 13, 22, 0.16858388283618386},
	{13, 13, 22, 0.11468784191000728},
	{15, 13, 22, 0.13325523051897817},
	{14, 13, 23, 0.06785024228911189},
	{15, 13, 24, -0.11752006695060024},
	{0, 14, 14, 0.28209479177387814},
	{20, 14, 14, -0.17951486749246792},
	{24, 14, 14, 0.15171775404828514},
	{7, 14, 15, 0.1486770096793976},
	{21, 14, 15, -0.09932258459927991},
	{10, 14, 16, 0.15171775404828514},
	{1, 14, 17, 0.19947114020071635},
	{11, 14, 17, 0.06785024228911189},
	{1, 14, 19, 0.07539300438651343},
	{9, 14, 19, -0.09932258459927991},
	{11, 14, 19, -0.10257992428141023},
	{14, 14, 20, -0.17951486749246792},
	{3, 14, 21, -0.07539300438651343},
	{13, 14, 21, 0.10257992428141023},
	{15, 14, 21, -0.09932258459927991},
	{2, 14, 22, 0.21324361862292307},
	{12, 14, 22, -0.04441841017299272},
	{3, 14, 23, 0.19947114020071635},
	{13, 14, 23, 0.06785024228911189},
	{14, 14, 24, 0.15171775404828514},
	{0, 15, 15, 0.28209479177387814},
	{6, 15, 15, -0.21026104350168},
	{20, 15, 15, 0.07693494321105768},
	{1, 15, 16, 0.23032943298089031},
	{11, 15, 16, -0.11752006695060024},
	{1, 15, 18, 0.04352817137756817},
	{11, 15, 18, -0.13325523051897817},
	{10, 15, 19, 0.09932258459927991},
	{15, 15, 20, 0.07693494321105768},
	{14, 15, 21, -0.09932258459927991},
	{3, 15, 22, -0.04352817137756817},
	{13, 15, 22, 0.13325523051897817},
	{2, 15, 23, 0.16286750396763996},
	{12, 15, 23, -0.20355072686733566},
	{3, 15, 24, 0.23032943298089031},
	{13, 15, 24, -0.11752006695060024},
	{0, 16, 16, 0.28209479177387814},
	{6, 16, 16, -0.22937568382001455},
	{20, 16, 16, 0.1065253059845414},
	{7, 16, 17, 0.14046334619025075},
	{21, 16, 17, -0.11909891275269986},
	{8, 16, 18, -0.07508081669196244},
	{22, 16, 18, 0.1350454733836384},
	{23, 16, 19, -0.11909891275269986},
	{16, 16, 20, 0.1065253059845414},
	{17, 16, 21, -0.11909891275269986},
	{4, 16, 22, -0.07508081669196244},
	{18, 16, 22, 0.1350454733836384},
	{5, 16, 23, 0.14046334619025075},
	{19, 16, 23, -0.11909891275269986},
	{0, 17, 17, 0.28209479177387814},
	{6, 17, 17, -0.05734392095500364},
	{20, 17, 17, -0.15978795897681208},
	{7, 17, 18, 0.13272538654977692},
	{21, 17, 18, 0.04501515779454614},
	{8, 17, 19, -0.11262122503794367},
	{22, 17, 19, 0.04501515779454614},
	{24, 17, 19, 0.11909891275269986},
	{17, 17, 20, -0.15978795897681208},
	{4, 17, 21, -0.11262122503794367},
	{16, 17, 21, -0.11909891275269986},
	{18, 17, 21, 0.04501515779454614},
	{5, 17, 22, 0.13272538654977692},
	{19, 17, 22, 0.04501515779454614},
	{5, 17, 24, -0.14046334619025075},
	{19, 17, 24, 0.11909891275269986},
	{0, 18, 18, 0.28209479177387814},
	{6, 18, 18, 0.0655359096628613},
	{20, 18, 18, -0.08369845470213967},
	{24, 18, 18, -0.1350454733836384},
	{7, 18, 19, 0.09029786540801835},
	{21, 18, 19, 0.10208478235945702},
	{23, 18, 19, -0.04501515779454614},
	{4, 18, 20, -0.19036461502711166},
	{18, 18, 20, -0.08369845470213967},
	{5, 18, 21, 0.09029786540801835},
	{17, 18, 21, 0.04501515779454614},
	{19, 18, 21, 0.10208478235945702},
	{16, 18, 22, 0.1350454733836384},
	{5, 18, 23, -0.13272538654977692},
	{19, 18, 23, -0.04501515779454614},
	{4, 18, 24, 0.07508081669196244},
	{18, 18, 24, -0.1350454733836384},
	{0, 19, 19, 0.28209479177387814},
	{6, 19, 19, 0.13926380803358027},
	{8, 19, 19, -0.1418894065703999},
	{20, 19, 19, 0.06848055384720518},
	{22, 19, 19, -0.10208478235945702},
	{5, 19, 20, 0.0448693700612124},
	{19, 19, 20, 0.06848055384720518},
	{4, 19, 21, 0.1418894065703999},
	{18, 19, 21, 0.10208478235945702},
	{5, 19, 22, -0.09029786540801835},
	{17, 19, 22, 0.04501515779454614},
	{19, 19, 22, -0.10208478235945702},
	{4, 19, 23, 0.11262122503794367},
	{16, 19, 23, -0.11909891275269986},
	{18, 19, 23, -0.04501515779454614},
	{17, 19, 24, 0.11909891275269986},
	{0, 20, 20, 0.28209479177387814},
	{6, 20, 20, 0.16383977415715326},
	{20, 20, 20, 0.13696110769441036},
	{7, 20, 21, 0.0448693700612124},
	{21, 20, 21, 0.06848055384720518},
	{8, 20, 22, -0.19036461502711166},
	{22, 20, 22, -0.08369845470213967},
	{23, 20, 23, -0.15978795897681208},
	{24, 20, 24, 0.1065253059845414},
	{0, 21, 21, 0.28209479177387814},
	{6, 21, 21, 0.13926380803358027},
	{8, 21, 21, 0.1418894065703999},
	{20, 21, 21, 0.06848055384720518},
	{22, 21, 21, 0.10208478235945702},
	{7, 21, 22, 0.09029786540801835},
	{21, 21, 22, 0.10208478235945702},
	{23, 21, 22, 0.04501515779454614},
	{8, 21, 23, -0.11262122503794367},
	{22, 21, 23, 0.04501515779454614},
	{24, 21, 23, -0.11909891275269986},
	{23, 21, 24, -0.11909891275269986},
	{0, 22, 22, 0.28209479177387814},
	{6, 22, 22, 0.0655359096628613},
	{20, 22, 22, -0.08369845470213967},
	{24, 22, 22, 0.1350454733836384},
	{7, 22, 23, 0.13272538654977692},
	{21, 22, 23, 0.04501515779454614},
	{8, 22, 24, -0.07508081669196244},
	{22, 22, 24, 0.1350454733836384},
	{0, 23, 23, 0.28209479177387814},
	{6, 23, 23, -0.05734392095500364},
	{20, 23, 23, -0.15978795897681208},
	{7, 23, 24, 0.14046334619025075},
	{21, 23, 24, -0.11909891275269986},
	{0, 24, 24, 0.28209479177387814},
	{6, 24, 24, -0.22937568382001455},
	{20, 24, 24, 0.1065253059845414},
}
