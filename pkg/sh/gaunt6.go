// Values are the Gaunt integrals of the real SH basis, evaluated in closed form
// from Wigner 3j symbols and rounded to the nearest float64. Entries are checked
// against sphere quadrature in product_test.go.

package sh

// gaunt6 lists the nonzero integrals of Y_k*Y_i*Y_j (i <= j) for order 6.
var gaunt6 = [...]gauntTerm{
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
	{25, 0, 25, 0.28209479177387814},
	{26, 0, 26, 0.28209479177387814},
	{27, 0, 27, 0.28209479177387814},
	{28, 0, 28, 0.28209479177387814},
	{29, 0, 29, 0.28209479177387814},
	{30, 0, 30, 0.28209479177387814},
	{31, 0, 31, 0.28209479177387814},
	{32, 0, 32, 0.28209479177387814},
	{33, 0, 33, 0.28209479177387814},
	{34, 0, 34, 0.28209479177387814},
	{35, 0, 35, 0.28209479177387814},
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
	{33, 1, 16, -0.034723468516951066},
	{35, 1, 16, -0.2329321080554292},
	{14, 1, 17, 0.19947114020071635},
	{32, 1, 17, -0.060142811686377584},
	{34, 1, 17, -0.2083408111017064},
	{13, 1, 18, 0.16858388283618386},
	{15, 1, 18, 0.04352817137756817},
	{31, 1, 18, -0.08505477996612625},
	{33, 1, 18, -0.18373932470686663},
	{12, 1, 19, 0.19466390027300617},
	{14, 1, 19, 0.07539300438651343},
	{30, 1, 19, -0.1552880720369528},
	{32, 1, 19, -0.15912292287034427},
	{11, 1, 20, -0.15078600877302686},
	{29, 1, 20, 0.19018826981554557},
	{10, 1, 21, -0.07539300438651343},
	{28, 1, 21, 0.15912292287034427},
	{9, 1, 22, -0.04352817137756817},
	{11, 1, 22, -0.16858388283618386},
	{27, 1, 22, 0.18373932470686663},
	{29, 1, 22, 0.08505477996612625},
	{10, 1, 23, -0.19947114020071635},
	{26, 1, 23, 0.2083408111017064},
	{28, 1, 23, 0.060142811686377584},
	{9, 1, 24, -0.23032943298089031},
	{25, 1, 24, 0.2329321080554292},
	{27, 1, 24, 0.034723468516951066},
	{24, 1, 25, 0.2329321080554292},
	{23, 1, 26, 0.2083408111017064},
	{22, 1, 27, 0.18373932470686663},
	{24, 1, 27, 0.034723468516951066},
	{21, 1, 28, 0.15912292287034427},
	{23, 1, 28, 0.060142811686377584},
	{20, 1, 29, 0.19018826981554557},
	{22, 1, 29, 0.08505477996612625},
	{19, 1, 30, -0.1552880720369528},
	{18, 1, 31, -0.08505477996612625},
	{17, 1, 32, -0.060142811686377584},
	{19, 1, 32, -0.15912292287034427},
	{16, 1, 33, -0.034723468516951066},
	{18, 1, 33, -0.18373932470686663},
	{17, 1, 34, -0.2083408111017064},
	{16, 1, 35, -0.2329321080554292},
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
	{26, 2, 16, 0.14731920032792215},
	{9, 2, 17, 0.16286750396763996},
	{27, 2, 17, 0.1964256004372295},
	{10, 2, 18, 0.21324361862292307},
	{28, 2, 18, 0.2250337956076888},
	{11, 2, 19, 0.23841361350444806},
	{29, 2, 19, 0.24057124674551034},
	{12, 2, 20, 0.24623252122982908},
	{30, 2, 20, 0.2455320005465369},
	{13, 2, 21, 0.23841361350444806},
	{31, 2, 21, 0.24057124674551034},
	{14, 2, 22, 0.21324361862292307},
	{32, 2, 22, 0.2250337956076888},
	{15, 2, 23, 0.16286750396763996},
	{33, 2, 23, 0.1964256004372295},
	{34, 2, 24, 0.14731920032792215},
	{16, 2, 26, 0.14731920032792215},
	{17, 2, 27, 0.1964256004372295},
	{18, 2, 28, 0.2250337956076888},
	{19, 2, 29, 0.24057124674551034},
	{20, 2, 30, 0.2455320005465369},
	{21, 2, 31, 0.24057124674551034},
	{22, 2, 32, 0.2250337956076888},
	{23, 2, 33, 0.1964256004372295},
	{24, 2, 34, 0.14731920032792215},
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
	{25, 3, 16, 0.2329321080554292},
	{27, 3, 16, -0.034723468516951066},
	{10, 3, 17, 0.19947114020071635},
	{26, 3, 17, 0.2083408111017064},
	{28, 3, 17, -0.060142811686377584},
	{9, 3, 18, -0.04352817137756817},
	{11, 3, 18, 0.16858388283618386},
	{27, 3, 18, 0.18373932470686663},
	{29, 3, 18, -0.08505477996612625},
	{10, 3, 19, -0.07539300438651343},
	{28, 3, 19, 0.15912292287034427},
	{13, 3, 20, -0.15078600877302686},
	{31, 3, 20, 0.19018826981554557},
	{12, 3, 21, 0.19466390027300617},
	{14, 3, 21, -0.07539300438651343},
	{30, 3, 21, -0.1552880720369528},
	{32, 3, 21, 0.15912292287034427},
	{13, 3, 22, 0.16858388283618386},
	{15, 3, 22, -0.04352817137756817},
	{31, 3, 22, -0.08505477996612625},
	{33, 3, 22, 0.18373932470686663},
	{14, 3, 23, 0.19947114020071635},
	{32, 3, 23, -0.060142811686377584},
	{34, 3, 23, 0.2083408111017064},
	{15, 3, 24, 0.23032943298089031},
	{33, 3, 24, -0.034723468516951066},
	{35, 3, 24, 0.2329321080554292},
	{16, 3, 25, 0.2329321080554292},
	{17, 3, 26, 0.2083408111017064},
	{16, 3, 27, -0.034723468516951066},
	{18, 3, 27, 0.18373932470686663},
	{17, 3, 28, -0.060142811686377584},
	{19, 3, 28, 0.15912292287034427},
	{18, 3, 29, -0.08505477996612625},
	{21, 3, 30, -0.1552880720369528},
	{20, 3, 31, 0.19018826981554557},
	{22, 3, 31, -0.08505477996612625},
	{21, 3, 32, 0.15912292287034427},
	{23, 3, 32, -0.060142811686377584},
	{22, 3, 33, 0.18373932470686663},
	{24, 3, 33, -0.034723468516951066},
	{23, 3, 34, 0.2083408111017064},
	{24, 3, 35, 0.2329321080554292},
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
	{31, 4, 9, 0.016943317729359322},
	{35, 4, 9, -0.2455320005465369},
	{2, 4, 10, 0.1846743909223718},
	{12, 4, 10, -0.18806319451591877},
	{30, 4, 10, 0.05357947514468781},
	{34, 4, 10, -0.19018826981554557},
	{3, 4, 11, -0.05839917008190185},
	{13, 4, 11, 0.14567312407894387},
	{15, 4, 11, 0.09403159725795938},
	{31, 4, 11, -0.06562118739530952},
	{33, 4, 11, -0.14175796661021042},
	{10, 4, 12, -0.18806319451591877},
	{28, 4, 12, 0.14175796661021042},
	{1, 4, 13, -0.05839917008190185},
	{9, 4, 13, -0.09403159725795938},
	{11, 4, 13, 0.14567312407894387},
	{27, 4, 13, 0.14175796661021042},
	{29, 4, 13, -0.06562118739530952},
	{26, 4, 14, 0.19018826981554557},
	{1, 4, 15, -0.22617901315954028},
	{11, 4, 15, 0.09403159725795938},
	{25, 4, 15, 0.2455320005465369},
	{29, 4, 15, -0.016943317729359322},
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
	{15, 4, 25, 0.2455320005465369},
	{33, 4, 25, -0.06264134767986153},
	{14, 4, 26, 0.19018826981554557},
	{32, 4, 26, -0.09704355853923692},
	{13, 4, 27, 0.14175796661021042},
	{31, 4, 27, -0.12103458254905508},
	{35, 4, 27, 0.06264134767986153},
	{12, 4, 28, 0.14175796661021042},
	{30, 4, 28, -0.19137247825134124},
	{34, 4, 28, 0.09704355853923692},
	{13, 4, 29, -0.06562118739530952},
	{15, 4, 29, -0.016943317729359322},
	{31, 4, 29, 0.14007031161436911},
	{33, 4, 29, 0.12103458254905508},
	{10, 4, 30, 0.05357947514468781},
	{28, 4, 30, -0.19137247825134124},
	{9, 4, 31, 0.016943317729359322},
	{11, 4, 31, -0.06562118739530952},
	{27, 4, 31, -0.12103458254905508},
	{29, 4, 31, 0.14007031161436911},
	{26, 4, 32, -0.09704355853923692},
	{11, 4, 33, -0.14175796661021042},
	{25, 4, 33, -0.06264134767986153},
	{29, 4, 33, 0.12103458254905508},
	{10, 4, 34, -0.19018826981554557},
	{28, 4, 34, 0.09704355853923692},
	{9, 4, 35, -0.2455320005465369},
	{27, 4, 35, 0.06264134767986153},
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
	{32, 5, 9, -0.044827805096236344},
	{34, 5, 9, -0.1552880720369528},
	{3, 5, 10, 0.1846743909223718},
	{13, 5, 10, 0.11516471649044516},
	{15, 5, 10, -0.1486770096793976},
	{31, 5, 10, -0.08300496597356405},
	{33, 5, 10, -0.17931122038494537},
	{2, 5, 11, 0.2335966803276074},
	{12, 5, 11, 0.059470803871759036},
	{14, 5, 11, -0.11516471649044516},
	{30, 5, 11, -0.1694331772935932},
	{32, 5, 11, -0.17361734258475534},
	{1, 5, 12, -0.14304816810266882},
	{11, 5, 12, 0.059470803871759036},
	{29, 5, 12, 0.21431790057875125},
	{10, 5, 13, 0.11516471649044516},
	{28, 5, 13, 0.17361734258475534},
	{1, 5, 14, -0.1846743909223718},
	{9, 5, 14, 0.1486770096793976},
	{11, 5, 14, -0.11516471649044516},
	{27, 5, 14, 0.17931122038494537},
	{29, 5, 14, 0.08300496597356405},
	{10, 5, 15, -0.1486770096793976},
	{26, 5, 15, 0.1552880720369528},
	{28, 5, 15, 0.044827805096236344},
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
	{34, 5, 25, 0.13288236518128288},
	{15, 5, 26, 0.1552880720369528},
	{33, 5, 26, 0.13866253405960652},
	{35, 5, 26, -0.13288236518128288},
	{14, 5, 27, 0.17931122038494537},
	{32, 5, 27, 0.11436693052261353},
	{34, 5, 27, -0.13866253405960652},
	{13, 5, 28, 0.17361734258475534},
	{15, 5, 28, 0.044827805096236344},
	{31, 5, 28, 0.07411824211898857},
	{33, 5, 28, -0.11436693052261353},
	{12, 5, 29, 0.21431790057875125},
	{14, 5, 29, 0.08300496597356405},
	{30, 5, 29, 0.036165998945368996},
	{32, 5, 29, -0.07411824211898857},
	{11, 5, 30, -0.1694331772935932},
	{29, 5, 30, 0.036165998945368996},
	{10, 5, 31, -0.08300496597356405},
	{28, 5, 31, 0.07411824211898857},
	{9, 5, 32, -0.044827805096236344},
	{11, 5, 32, -0.17361734258475534},
	{27, 5, 32, 0.11436693052261353},
	{29, 5, 32, -0.07411824211898857},
	{10, 5, 33, -0.17931122038494537},
	{26, 5, 33, 0.13866253405960652},
	{28, 5, 33, -0.11436693052261353},
	{9, 5, 34, -0.1552880720369528},
	{25, 5, 34, 0.13288236518128288},
	{27, 5, 34, -0.13866253405960652},
	{26, 5, 35, -0.13288236518128288},
	{0, 6, 6, 0.28209479177387814},
	{6, 6, 6, 0.18022375157286857},
	{20, 6, 6, 0.24179553580618127},
	{7, 6, 7, 0.09011187578643429},
	{21, 6, 7, 0.2207281154418226},
	{8, 6, 8, -0.18022375157286857},
	{22, 6, 8, 0.15607834722743988},
	{9, 6, 9, -0.21026104350168},
	{27, 6, 9, 0.12679217987703037},
	{28, 6, 10, 0.19018826981554557},
	{1, 6, 11, 0.20230065940342062},
	{11, 6, 11, 0.126156626101008},
	{29, 6, 11, 0.22731846124334895},
	{2, 6, 12, 0.24776669508347607},
	{12, 6, 12, 0.168208834801344},
	{30, 6, 12, 0.23961469724456466},
	{3, 6, 13, 0.20230065940342062},
	{13, 6, 13, 0.126156626101008},
	{31, 6, 13, 0.22731846124334895},
	{32, 6, 14, 0.19018826981554557},
	{15, 6, 15, -0.21026104350168},
	{33, 6, 15, 0.12679217987703037},
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
	{25, 6, 25, -0.24260889634809232},
	{26, 6, 26, -0.09704355853923692},
	{9, 6, 27, 0.12679217987703037},
	{27, 6, 27, 0.016173926423206156},
	{10, 6, 28, 0.19018826981554557},
	{28, 6, 28, 0.09704355853923692},
	{11, 6, 29, 0.22731846124334895},
	{29, 6, 29, 0.1455653378088554},
	{12, 6, 30, 0.23961469724456466},
	{30, 6, 30, 0.16173926423206153},
	{13, 6, 31, 0.22731846124334895},
	{31, 6, 31, 0.1455653378088554},
	{14, 6, 32, 0.19018826981554557},
	{32, 6, 32, 0.09704355853923692},
	{15, 6, 33, 0.12679217987703037},
	{33, 6, 33, 0.016173926423206156},
	{34, 6, 34, -0.09704355853923692},
	{35, 6, 35, -0.24260889634809232},
	{0, 7, 7, 0.28209479177387814},
	{6, 7, 7, 0.09011187578643429},
	{8, 7, 7, 0.15607834722743988},
	{20, 7, 7, -0.16119702387078752},
	{22, 7, 7, 0.18022375157286857},
	{7, 7, 8, 0.15607834722743988},
	{21, 7, 8, -0.06371871843402754},
	{23, 7, 8, 0.16858388283618386},
	{10, 7, 9, 0.1486770096793976},
	{26, 7, 9, 0.1552880720369528},
	{28, 7, 9, -0.044827805096236344},
	{1, 7, 10, 0.1846743909223718},
	{9, 7, 10, 0.1486770096793976},
	{11, 7, 10, 0.11516471649044516},
	{27, 7, 10, 0.17931122038494537},
	{29, 7, 10, -0.08300496597356405},
	{10, 7, 11, 0.11516471649044516},
	{28, 7, 11, 0.17361734258475534},
	{3, 7, 12, -0.14304816810266882},
	{13, 7, 12, 0.059470803871759036},
	{31, 7, 12, 0.21431790057875125},
	{2, 7, 13, 0.2335966803276074},
	{12, 7, 13, 0.059470803871759036},
	{14, 7, 13, 0.11516471649044516},
	{30, 7, 13, -0.1694331772935932},
	{32, 7, 13, 0.17361734258475534},
	{3, 7, 14, 0.1846743909223718},
	{13, 7, 14, 0.11516471649044516},
	{15, 7, 14, 0.1486770096793976},
	{31, 7, 14, -0.08300496597356405},
	{33, 7, 14, 0.17931122038494537},
	{14, 7, 15, 0.1486770096793976},
	{32, 7, 15, -0.044827805096236344},
	{34, 7, 15, 0.1552880720369528},
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
	{26, 7, 25, 0.13288236518128288},
	{9, 7, 26, 0.1552880720369528},
	{25, 7, 26, 0.13288236518128288},
	{27, 7, 26, 0.13866253405960652},
	{10, 7, 27, 0.17931122038494537},
	{26, 7, 27, 0.13866253405960652},
	{28, 7, 27, 0.11436693052261353},
	{9, 7, 28, -0.044827805096236344},
	{11, 7, 28, 0.17361734258475534},
	{27, 7, 28, 0.11436693052261353},
	{29, 7, 28, 0.07411824211898857},
	{10, 7, 29, -0.08300496597356405},
	{28, 7, 29, 0.07411824211898857},
	{13, 7, 30, -0.1694331772935932},
	{31, 7, 30, 0.036165998945368996},
	{12, 7, 31, 0.21431790057875125},
	{14, 7, 31, -0.08300496597356405},
	{30, 7, 31, 0.036165998945368996},
	{32, 7, 31, 0.07411824211898857},
	{13, 7, 32, 0.17361734258475534},
	{15, 7, 32, -0.044827805096236344},
	{31, 7, 32, 0.07411824211898857},
	{33, 7, 32, 0.11436693052261353},
	{14, 7, 33, 0.17931122038494537},
	{32, 7, 33, 0.11436693052261353},
	{34, 7, 33, 0.13866253405960652},
	{15, 7, 34, 0.1552880720369528},
	{33, 7, 34, 0.13866253405960652},
	{35, 7, 34, 0.13288236518128288},
	{34, 7, 35, 0.13288236518128288},
	{0, 8, 8, 0.28209479177387814},
	{6, 8, 8, -0.18022375157286857},
	{20, 8, 8, 0.04029925596769688},
	{24, 8, 8, 0.23841361350444806},
	{1, 8, 9, 0.22617901315954028},
	{11, 8, 9, -0.09403159725795938},
	{25, 8, 9, 0.2455320005465369},
	{29, 8, 9, 0.016943317729359322},
	{26, 8, 10, 0.19018826981554557},
	{1, 8, 11, 0.05839917008190185},
	{9, 8, 11, -0.09403159725795938},
	{11, 8, 11, -0.14567312407894387},
	{27, 8, 11, 0.14175796661021042},
	{29, 8, 11, 0.06562118739530952},
	{14, 8, 12, -0.18806319451591877},
	{32, 8, 12, 0.14175796661021042},
	{3, 8, 13, -0.05839917008190185},
	{13, 8, 13, 0.14567312407894387},
	{15, 8, 13, -0.09403159725795938},
	{31, 8, 13, -0.06562118739530952},
	{33, 8, 13, 0.14175796661021042},
	{2, 8, 14, 0.1846743909223718},
	{12, 8, 14, -0.18806319451591877},
	{30, 8, 14, 0.05357947514468781},
	{34, 8, 14, 0.19018826981554557},
	{3, 8, 15, 0.22617901315954028},
	{13, 8, 15, -0.09403159725795938},
	{31, 8, 15, 0.016943317729359322},
	{35, 8, 15, 0.2455320005465369},
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
	{9, 8, 25, 0.2455320005465369},
	{27, 8, 25, -0.06264134767986153},
	{10, 8, 26, 0.19018826981554557},
	{28, 8, 26, -0.09704355853923692},
	{11, 8, 27, 0.14175796661021042},
	{25, 8, 27, -0.06264134767986153},
	{29, 8, 27, -0.12103458254905508},
	{26, 8, 28, -0.09704355853923692},
	{9, 8, 29, 0.016943317729359322},
	{11, 8, 29, 0.06562118739530952},
	{27, 8, 29, -0.12103458254905508},
	{29, 8, 29, -0.14007031161436911},
	{14, 8, 30, 0.05357947514468781},
	{32, 8, 30, -0.19137247825134124},
	{13, 8, 31, -0.06562118739530952},
	{15, 8, 31, 0.016943317729359322},
	{31, 8, 31, 0.14007031161436911},
	{33, 8, 31, -0.12103458254905508},
	{12, 8, 32, 0.14175796661021042},
	{30, 8, 32, -0.19137247825134124},
	{34, 8, 32, -0.09704355853923692},
	{13, 8, 33, 0.14175796661021042},
	{31, 8, 33, -0.12103458254905508},
	{35, 8, 33, -0.06264134767986153},
	{14, 8, 34, 0.19018826981554557},
	{32, 8, 34, -0.09704355853923692},
	{15, 8, 35, 0.2455320005465369},
	{33, 8, 35, -0.06264134767986153},
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
	{31, 9, 16, 0.03583570893160449},
	{2, 9, 17, 0.16286750396763996},
	{12, 9, 17, -0.20355072686733566},
	{30, 9, 17, 0.09814013073014567},
	{3, 9, 18, -0.04352817137756817},
	{13, 9, 18, 0.13325523051897817},
	{31, 9, 18, -0.10158468630934461},
	{35, 9, 18, 0.09814013073014567},
	{14, 9, 19, -0.09932258459927991},
	{32, 9, 19, 0.12669836397082432},
	{34, 9, 19, 0.13166880217999308},
	{9, 9, 20, 0.07693494321105768},
	{27, 9, 20, -0.19628026146029134},
	{10, 9, 21, -0.09932258459927991},
	{26, 9, 21, -0.13166880217999308},
	{28, 9, 21, 0.12669836397082432},
	{1, 9, 22, -0.04352817137756817},
	{11, 9, 22, 0.13325523051897817},
	{25, 9, 22, -0.09814013073014567},
	{29, 9, 22, -0.10158468630934461},
	{1, 9, 24, -0.23032943298089031},
	{11, 9, 24, 0.11752006695060024},
	{29, 9, 24, -0.03583570893160449},
	{8, 9, 25, 0.2455320005465369},
	{22, 9, 25, -0.09814013073014567},
	{7, 9, 26, 0.1552880720369528},
	{21, 9, 26, -0.13166880217999308},
	{6, 9, 27, 0.12679217987703037},
	{20, 9, 27, -0.19628026146029134},
	{7, 9, 28, -0.044827805096236344},
	{21, 9, 28, 0.12669836397082432},
	{8, 9, 29, 0.016943317729359322},
	{22, 9, 29, -0.10158468630934461},
	{24, 9, 29, -0.03583570893160449},
	{17, 9, 30, 0.09814013073014567},
	{4, 9, 31, 0.016943317729359322},
	{16, 9, 31, 0.03583570893160449},
	{18, 9, 31, -0.10158468630934461},
	{5, 9, 32, -0.044827805096236344},
	{19, 9, 32, 0.12669836397082432},
	{5, 9, 34, -0.1552880720369528},
	{19, 9, 34, 0.13166880217999308},
	{4, 9, 35, -0.2455320005465369},
	{18, 9, 35, 0.09814013073014567},
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
	{32, 10, 16, -0.07741397910978243},
	{3, 10, 17, 0.19947114020071635},
	{13, 10, 17, 0.06785024228911189},
	{31, 10, 17, -0.1137936590904461},
	{35, 10, 17, -0.1499115259279181},
	{2, 10, 18, 0.21324361862292307},
	{12, 10, 18, -0.04441841017299272},
	{30, 10, 18, -0.17132745820333498},
	{34, 10, 18, -0.10135869117665945},
	{3, 10, 19, -0.07539300438651343},
	{13, 10, 19, 0.10257992428141023},
	{15, 10, 19, 0.09932258459927991},
	{31, 10, 19, 0.097749909977073},
	{33, 10, 19, -0.025339672794164863},
	{10, 10, 20, -0.17951486749246792},
	{28, 10, 20, -0.06542675382009712},
	{1, 10, 21, -0.07539300438651343},
	{9, 10, 21, -0.09932258459927991},
	{11, 10, 21, 0.10257992428141023},
	{27, 10, 21, 0.025339672794164863},
	{29, 10, 21, 0.097749909977073},
	{26, 10, 22, 0.10135869117665945},
	{1, 10, 23, -0.19947114020071635},
	{11, 10, 23, -0.06785024228911189},
	{25, 10, 23, 0.1499115259279181},
	{29, 10, 23, 0.1137936590904461},
	{10, 10, 24, -0.15171775404828514},
	{28, 10, 24, 0.07741397910978243},
	{23, 10, 25, 0.1499115259279181},
	{8, 10, 26, 0.19018826981554557},
	{22, 10, 26, 0.10135869117665945},
	{7, 10, 27, 0.17931122038494537},
	{21, 10, 27, 0.025339672794164863},
	{6, 10, 28, 0.19018826981554557},
	{20, 10, 28, -0.06542675382009712},
	{24, 10, 28, 0.07741397910978243},
	{7, 10, 29, -0.08300496597356405},
	{21, 10, 29, 0.097749909977073},
	{23, 10, 29, 0.1137936590904461},
	{4, 10, 30, 0.05357947514468781},
	{18, 10, 30, -0.17132745820333498},
	{5, 10, 31, -0.08300496597356405},
	{17, 10, 31, -0.1137936590904461},
	{19, 10, 31, 0.097749909977073},
	{16, 10, 32, -0.07741397910978243},
	{5, 10, 33, -0.17931122038494537},
	{19, 10, 33, -0.025339672794164863},
	{4, 10, 34, -0.19018826981554557},
	{18, 10, 34, -0.10135869117665945},
	{17, 10, 35, -0.1499115259279181},
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
	{33, 11, 16, 0.11992922074233449},
	{35, 11, 16, 0.13408494503421883},
	{14, 11, 17, 0.06785024228911189},
	{32, 11, 17, 0.12117204378875551},
	{34, 11, 17, -0.029982305185583622},
	{3, 11, 18, 0.16858388283618386},
	{13, 11, 18, 0.11468784191000728},
	{15, 11, 18, -0.13325523051897817},
	{31, 11, 18, 0.07518995256510773},
	{33, 11, 18, -0.1019902156116384},
	{2, 11, 19, 0.23841361350444806},
	{12, 11, 19, 0.09932258459927991},
	{14, 11, 19, -0.10257992428141023},
	{30, 11, 19, 0.009577496073872776},
	{32, 11, 19, -0.10468280611215539},
	{1, 11, 20, -0.15078600877302686},
	{11, 11, 20, 0.025644981070352558},
	{29, 11, 20, 0.08601992077982425},
	{10, 11, 21, 0.10257992428141023},
	{28, 11, 21, 0.10468280611215539},
	{1, 11, 22, -0.16858388283618386},
	{9, 11, 22, 0.13325523051897817},
	{11, 11, 22, -0.11468784191000728},
	{27, 11, 22, 0.1019902156116384},
	{29, 11, 22, -0.07518995256510773},
	{10, 11, 23, -0.06785024228911189},
	{26, 11, 23, 0.029982305185583622},
	{28, 11, 23, -0.12117204378875551},
	{9, 11, 24, 0.11752006695060024},
	{25, 11, 24, -0.13408494503421883},
	{27, 11, 24, -0.11992922074233449},
	{24, 11, 25, -0.13408494503421883},
	{23, 11, 26, 0.029982305185583622},
	{8, 11, 27, 0.14175796661021042},
	{22, 11, 27, 0.1019902156116384},
	{24, 11, 27, -0.11992922074233449},
	{7, 11, 28, 0.17361734258475534},
	{21, 11, 28, 0.10468280611215539},
	{23, 11, 28, -0.12117204378875551},
	{6, 11, 29, 0.22731846124334895},
	{8, 11, 29, 0.06562118739530952},
	{20, 11, 29, 0.08601992077982425},
	{22, 11, 29, -0.07518995256510773},
	{5, 11, 30, -0.1694331772935932},
	{19, 11, 30, 0.009577496073872776},
	{4, 11, 31, -0.06562118739530952},
	{18, 11, 31, 0.07518995256510773},
	{5, 11, 32, -0.17361734258475534},
	{17, 11, 32, 0.12117204378875551},
	{19, 11, 32, -0.10468280611215539},
	{4, 11, 33, -0.14175796661021042},
	{16, 11, 33, 0.11992922074233449},
	{18, 11, 33, -0.1019902156116384},
	{17, 11, 34, -0.029982305185583622},
	{16, 11, 35, 0.13408494503421883},
	{0, 12, 12, 0.28209479177387814},
	{6, 12, 12, 0.168208834801344},
	{20, 12, 12, 0.15386988642211535},
	{7, 12, 13, 0.059470803871759036},
	{21, 12, 13, 0.09932258459927991},
	{8, 12, 14, -0.18806319451591877},
	{22, 12, 14, -0.04441841017299272},
	{23, 12, 15, -0.20355072686733566},
	{26, 12, 16, -0.2077235036378666},
	{9, 12, 17, -0.20355072686733566},
	{27, 12, 17, -0.1038617518189333},
	{10, 12, 18, -0.04441841017299272},
	{28, 12, 18, 0.022664492358141868},
	{1, 12, 19, 0.19466390027300617},
	{11, 12, 19, 0.09932258459927991},
	{29, 12, 19, 0.1150894671240813},
	{2, 12, 20, 0.24623252122982908},
	{12, 12, 20, 0.15386988642211535},
	{30, 12, 20, 0.14837393116990472},
	{3, 12, 21, 0.19466390027300617},
	{13, 12, 21, 0.09932258459927991},
	{31, 12, 21, 0.1150894671240813},
	{14, 12, 22, -0.04441841017299272},
	{32, 12, 22, 0.022664492358141868},
	{15, 12, 23, -0.20355072686733566},
	{33, 12, 23, -0.1038617518189333},
	{34, 12, 24, -0.2077235036378666},
	{16, 12, 26, -0.2077235036378666},
	{17, 12, 27, -0.1038617518189333},
	{4, 12, 28, 0.14175796661021042},
	{18, 12, 28, 0.022664492358141868},
	{5, 12, 29, 0.21431790057875125},
	{19, 12, 29, 0.1150894671240813},
	{6, 12, 30, 0.23961469724456466},
	{20, 12, 30, 0.14837393116990472},
	{7, 12, 31, 0.21431790057875125},
	{21, 12, 31, 0.1150894671240813},
	{8, 12, 32, 0.14175796661021042},
	{22, 12, 32, 0.022664492358141868},
	{23, 12, 33, -0.1038617518189333},
	{24, 12, 34, -0.2077235036378666},
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
	{25, 13, 16, -0.13408494503421883},
	{27, 13, 16, 0.11992922074233449},
	{10, 13, 17, 0.06785024228911189},
	{26, 13, 17, 0.029982305185583622},
	{28, 13, 17, 0.12117204378875551},
	{1, 13, 18, 0.16858388283618386},
	{9, 13, 18, 0.13325523051897817},
	{11, 13, 18, 0.11468784191000728},
	{27, 13, 18, 0.1019902156116384},
	{29, 13, 18, 0.07518995256510773},
	{10, 13, 19, 0.10257992428141023},
	{28, 13, 19, 0.10468280611215539},
	{3, 13, 20, -0.15078600877302686},
	{13, 13, 20, 0.025644981070352558},
	{31, 13, 20, 0.08601992077982425},
	{2, 13, 21, 0.23841361350444806},
	{12, 13, 21, 0.09932258459927991},
	{14, 13, 21, 0.10257992428141023},
	{30, 13, 21, 0.009577496073872776},
	{32, 13, 21, 0.10468280611215539},
	{3, 13, 22, 0.16858388283618386},
	{13, 13, 22, 0.11468784191000728},
	{15, 13, 22, 0.13325523051897817},
	{31, 13, 22, 0.07518995256510773},
	{33, 13, 22, 0.1019902156116384},
	{14, 13, 23, 0.06785024228911189},
	{32, 13, 23, 0.12117204378875551},
	{34, 13, 23, 0.029982305185583622},
	{15, 13, 24, -0.11752006695060024},
	{33, 13, 24, 0.11992922074233449},
	{35, 13, 24, -0.13408494503421883},
	{16, 13, 25, -0.13408494503421883},
	{17, 13, 26, 0.029982305185583622},
	{4, 13, 27, 0.14175796661021042},
	{16, 13, 27, 0.11992922074233449},
	{18, 13, 27, 0.1019902156116384},
	{5, 13, 28, 0.17361734258475534},
	{17, 13, 28, 0.12117204378875551},
	{19, 13, 28, 0.10468280611215539},
	{4, 13, 29, -0.06562118739530952},
	{18, 13, 29, 0.07518995256510773},
	{7, 13, 30, -0.1694331772935932},
	{21, 13, 30, 0.009577496073872776},
	{6, 13, 31, 0.22731846124334895},
	{8, 13, 31, -0.06562118739530952},
	{20, 13, 31, 0.08601992077982425},
	{22, 13, 31, 0.07518995256510773},
	{7, 13, 32, 0.17361734258475534},
	{21, 13, 32, 0.10468280611215539},
	{23, 13, 32, 0.12117204378875551},
	{8, 13, 33, 0.14175796661021042},
	{22, 13, 33, 0.1019902156116384},
	{24, 13, 33, 0.11992922074233449},
	{23, 13, 34, 0.029982305185583622},
	{24, 13, 35, -0.13408494503421883},
	{0, 14, 14, 0.28209479177387814},
	{20, 14, 14, -0.17951486749246792},
	{24, 14, 14, 0.15171775404828514},
	{7, 14, 15, 0.1486770096793976},
	{21, 14, 15, -0.09932258459927991},
	{10, 14, 16, 0.15171775404828514},
	{28, 14, 16, -0.07741397910978243},
	{1, 14, 17, 0.19947114020071635},
	{11, 14, 17, 0.06785024228911189},
	{25, 14, 17, 0.1499115259279181},
	{29, 14, 17, -0.1137936590904461},
	{26, 14, 18, 0.10135869117665945},
	{1, 14, 19, 0.07539300438651343},
	{9, 14, 19, -0.09932258459927991},
	{11, 14, 19, -0.10257992428141023},
	{27, 14, 19, 0.025339672794164863},
	{29, 14, 19, -0.097749909977073},
	{14, 14, 20, -0.17951486749246792},
	{32, 14, 20, -0.06542675382009712},
	{3, 14, 21, -0.07539300438651343},
	{13, 14, 21, 0.10257992428141023},
	{15, 14, 21, -0.09932258459927991},
	{31, 14, 21, 0.097749909977073},
	{33, 14, 21, 0.025339672794164863},
	{2, 14, 22, 0.21324361862292307},
	{12, 14, 22, -0.04441841017299272},
	{30, 14, 22, -0.17132745820333498},
	{34, 14, 22, 0.10135869117665945},
	{3, 14, 23, 0.19947114020071635},
	{13, 14, 23, 0.06785024228911189},
	{31, 14, 23, -0.1137936590904461},
	{35, 14, 23, 0.1499115259279181},
	{14, 14, 24, 0.15171775404828514},
	{32, 14, 24, -0.07741397910978243},
	{17, 14, 25, 0.1499115259279181},
	{4, 14, 26, 0.19018826981554557},
	{18, 14, 26, 0.10135869117665945},
	{5, 14, 27, 0.17931122038494537},
	{19, 14, 27, 0.025339672794164863},
	{16, 14, 28, -0.07741397910978243},
	{5, 14, 29, 0.08300496597356405},
	{17, 14, 29, -0.1137936590904461},
	{19, 14, 29, -0.097749909977073},
	{8, 14, 30, 0.05357947514468781},
	{22, 14, 30, -0.17132745820333498},
	{7, 14, 31, -0.08300496597356405},
	{21, 14, 31, 0.097749909977073},
	{23, 14, 31, -0.1137936590904461},
	{6, 14, 32, 0.19018826981554557},
	{20, 14, 32, -0.06542675382009712},
	{24, 14, 32, -0.07741397910978243},
	{7, 14, 33, 0.17931122038494537},
	{21, 14, 33, 0.025339672794164863},
	{8, 14, 34, 0.19018826981554557},
	{22, 14, 34, 0.10135869117665945},
	{23, 14, 35, 0.1499115259279181},
	{0, 15, 15, 0.28209479177387814},
	{6, 15, 15, -0.21026104350168},
	{20, 15, 15, 0.07693494321105768},
	{1, 15, 16, 0.23032943298089031},
	{11, 15, 16, -0.11752006695060024},
	{29, 15, 16, 0.03583570893160449},
	{1, 15, 18, 0.04352817137756817},
	{11, 15, 18, -0.13325523051897817},
	{25, 15, 18, -0.09814013073014567},
	{29, 15, 18, 0.10158468630934461},
	{10, 15, 19, 0.09932258459927991},
	{26, 15, 19, -0.13166880217999308},
	{28, 15, 19, -0.12669836397082432},
	{15, 15, 20, 0.07693494321105768},
	{33, 15, 20, -0.19628026146029134},
	{14, 15, 21, -0.09932258459927991},
	{32, 15, 21, 0.12669836397082432},
	{34, 15, 21, -0.13166880217999308},
	{3, 15, 22, -0.04352817137756817},
	{13, 15, 22, 0.13325523051897817},
	{31, 15, 22, -0.10158468630934461},
	{35, 15, 22, -0.09814013073014567},
	{2, 15, 23, 0.16286750396763996},
	{12, 15, 23, -0.20355072686733566},
	{30, 15, 23, 0.09814013073014567},
	{3, 15, 24, 0.23032943298089031},
	{13, 15, 24, -0.11752006695060024},
	{31, 15, 24, 0.03583570893160449},
	{4, 15, 25, 0.2455320005465369},
	{18, 15, 25, -0.09814013073014567},
	{5, 15, 26, 0.1552880720369528},
	{19, 15, 26, -0.13166880217999308},
	{5, 15, 28, 0.044827805096236344},
	{19, 15, 28, -0.12669836397082432},
	{4, 15, 29, -0.016943317729359322},
	{16, 15, 29, 0.03583570893160449},
	{18, 15, 29, 0.10158468630934461},
	{23, 15, 30, 0.09814013073014567},
	{8, 15, 31, 0.016943317729359322},
	{22, 15, 31, -0.10158468630934461},
	{24, 15, 31, 0.03583570893160449},
	{7, 15, 32, -0.044827805096236344},
	{21, 15, 32, 0.12669836397082432},
	{6, 15, 33, 0.12679217987703037},
	{20, 15, 33, -0.19628026146029134},
	{7, 15, 34, 0.1552880720369528},
	{21, 15, 34, -0.13166880217999308},
	{8, 15, 35, 0.2455320005465369},
	{22, 15, 35, -0.09814013073014567},
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
	{3, 16, 25, 0.2329321080554292},
	{13, 16, 25, -0.13408494503421883},
	{31, 16, 25, 0.05315294607251315},
	{2, 16, 26, 0.14731920032792215},
	{12, 16, 26, -0.2077235036378666},
	{30, 16, 26, 0.13019759620332838},
	{3, 16, 27, -0.034723468516951066},
	{13, 16, 27, 0.11992922074233449},
	{31, 16, 27, -0.11885360062251987},
	{14, 16, 28, -0.07741397910978243},
	{32, 16, 28, 0.12837656111777973},
	{15, 16, 29, 0.03583570893160449},
	{33, 16, 29, -0.11885360062251987},
	{35, 16, 29, -0.05315294607251315},
	{26, 16, 30, 0.13019759620332838},
	{9, 16, 31, 0.03583570893160449},
	{25, 16, 31, 0.05315294607251315},
	{27, 16, 31, -0.11885360062251987},
	{10, 16, 32, -0.07741397910978243},
	{28, 16, 32, 0.12837656111777973},
	{1, 16, 33, -0.034723468516951066},
	{11, 16, 33, 0.11992922074233449},
	{29, 16, 33, -0.11885360062251987},
	{1, 16, 35, -0.2329321080554292},
	{11, 16, 35, 0.13408494503421883},
	{29, 16, 35, -0.05315294607251315},
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
	{14, 17, 25, 0.1499115259279181},
	{32, 17, 25, -0.0994400566505079},
	{3, 17, 26, 0.2083408111017064},
	{13, 17, 26, 0.029982305185583622},
	{31, 17, 26, -0.11885360062251987},
	{2, 17, 27, 0.1964256004372295},
	{12, 17, 27, -0.1038617518189333},
	{30, 17, 27, -0.13019759620332838},
	{3, 17, 28, -0.060142811686377584},
	{13, 17, 28, 0.12117204378875551},
	{31, 17, 28, 0.03431007915678406},
	{35, 17, 28, 0.0994400566505079},
	{14, 17, 29, -0.1137936590904461},
	{32, 17, 29, 0.03431007915678406},
	{34, 17, 29, 0.11885360062251987},
	{9, 17, 30, 0.09814013073014567},
	{27, 17, 30, -0.13019759620332838},
	{10, 17, 31, -0.1137936590904461},
	{26, 17, 31, -0.11885360062251987},
	{28, 17, 31, 0.03431007915678406},
	{1, 17, 32, -0.060142811686377584},
	{11, 17, 32, 0.12117204378875551},
	{25, 17, 32, -0.0994400566505079},
	{29, 17, 32, 0.03431007915678406},
	{1, 17, 34, -0.2083408111017064},
	{11, 17, 34, -0.029982305185583622},
	{29, 17, 34, 0.11885360062251987},
	{10, 17, 35, -0.1499115259279181},
	{28, 17, 35, 0.0994400566505079},
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
	{15, 18, 25, -0.09814013073014567},
	{33, 18, 25, 0.13019759620332838},
	{14, 18, 26, 0.10135869117665945},
	{32, 18, 26, 0.08404218696862147},
	{3, 18, 27, 0.18373932470686663},
	{13, 18, 27, 0.1019902156116384},
	{35, 18, 27, -0.13019759620332838},
	{2, 18, 28, 0.2250337956076888},
	{12, 18, 28, 0.022664492358141868},
	{30, 18, 28, -0.0994400566505079},
	{34, 18, 28, -0.08404218696862147},
	{3, 18, 29, -0.08505477996612625},
	{13, 18, 29, 0.07518995256510773},
	{15, 18, 29, 0.10158468630934461},
	{31, 18, 29, 0.09704355853923692},
	{10, 18, 30, -0.17132745820333498},
	{28, 18, 30, -0.0994400566505079},
	{1, 18, 31, -0.08505477996612625},
	{9, 18, 31, -0.10158468630934461},
	{11, 18, 31, 0.07518995256510773},
	{29, 18, 31, 0.09704355853923692},
	{26, 18, 32, 0.08404218696862147},
	{1, 18, 33, -0.18373932470686663},
	{11, 18, 33, -0.1019902156116384},
	{25, 18, 33, 0.13019759620332838},
	{10, 18, 34, -0.10135869117665945},
	{28, 18, 34, -0.08404218696862147},
	{9, 18, 35, 0.09814013073014567},
	{27, 18, 35, -0.13019759620332838},
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
	{34, 19, 25, -0.13019759620332838},
	{15, 19, 26, -0.13166880217999308},
	{35, 19, 26, 0.13019759620332838},
	{14, 19, 27, 0.025339672794164863},
	{32, 19, 27, 0.08404218696862147},
	{3, 19, 28, 0.15912292287034427},
	{13, 19, 28, 0.10468280611215539},
	{15, 19, 28, -0.12669836397082432},
	{31, 19, 28, 0.09077593691179131},
	{33, 19, 28, -0.08404218696862147},
	{2, 19, 29, 0.24057124674551034},
	{12, 19, 29, 0.1150894671240813},
	{14, 19, 29, -0.097749909977073},
	{30, 19, 29, 0.05315294607251315},
	{32, 19, 29, -0.09077593691179131},
	{1, 19, 30, -0.1552880720369528},
	{11, 19, 30, 0.009577496073872776},
	{29, 19, 30, 0.05315294607251315},
	{10, 19, 31, 0.097749909977073},
	{28, 19, 31, 0.09077593691179131},
	{1, 19, 32, -0.15912292287034427},
	{9, 19, 32, 0.12669836397082432},
	{11, 19, 32, -0.10468280611215539},
	{27, 19, 32, 0.08404218696862147},
	{29, 19, 32, -0.09077593691179131},
	{10, 19, 33, -0.025339672794164863},
	{28, 19, 33, -0.08404218696862147},
	{9, 19, 34, 0.13166880217999308},
	{25, 19, 34, -0.13019759620332838},
	{26, 19, 35, 0.13019759620332838},
	{0, 20, 20, 0.28209479177387814},
	{6, 20, 20, 0.16383977415715326},
	{20, 20, 20, 0.13696110769441036},
	{7, 20, 21, 0.0448693700612124},
	{21, 20, 21, 0.06848055384720518},
	{8, 20, 22, -0.19036461502711166},
	{22, 20, 22, -0.08369845470213967},
	{23, 20, 23, -0.15978795897681208},
	{24, 20, 24, 0.1065253059845414},
	{25, 20, 25, 0.13019759620332838},
	{26, 20, 26, -0.13019759620332838},
	{9, 20, 27, -0.19628026146029134},
	{27, 20, 27, -0.13019759620332838},
	{10, 20, 28, -0.06542675382009712},
	{28, 20, 28, -0.021699599367221396},
	{1, 20, 29, 0.19018826981554557},
	{11, 20, 29, 0.08601992077982425},
	{29, 20, 29, 0.08679839746888558},
	{2, 20, 30, 0.2455320005465369},
	{12, 20, 30, 0.14837393116990472},
	{30, 20, 30, 0.13019759620332838},
	{3, 20, 31, 0.19018826981554557},
	{13, 20, 31, 0.08601992077982425},
	{31, 20, 31, 0.08679839746888558},
	{14, 20, 32, -0.06542675382009712},
	{32, 20, 32, -0.021699599367221396},
	{15, 20, 33, -0.19628026146029134},
	{33, 20, 33, -0.13019759620332838},
	{34, 20, 34, -0.13019759620332838},
	{35, 20, 35, 0.13019759620332838},
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
	{26, 21, 25, -0.13019759620332838},
	{9, 21, 26, -0.13166880217999308},
	{25, 21, 26, -0.13019759620332838},
	{10, 21, 27, 0.025339672794164863},
	{28, 21, 27, 0.08404218696862147},
	{1, 21, 28, 0.15912292287034427},
	{9, 21, 28, 0.12669836397082432},
	{11, 21, 28, 0.10468280611215539},
	{27, 21, 28, 0.08404218696862147},
	{29, 21, 28, 0.09077593691179131},
	{10, 21, 29, 0.097749909977073},
	{28, 21, 29, 0.09077593691179131},
	{3, 21, 30, -0.1552880720369528},
	{13, 21, 30, 0.009577496073872776},
	{31, 21, 30, 0.05315294607251315},
	{2, 21, 31, 0.24057124674551034},
	{12, 21, 31, 0.1150894671240813},
	{14, 21, 31, 0.097749909977073},
	{30, 21, 31, 0.05315294607251315},
	{32, 21, 31, 0.09077593691179131},
	{3, 21, 32, 0.15912292287034427},
	{13, 21, 32, 0.10468280611215539},
	{15, 21, 32, 0.12669836397082432},
	{31, 21, 32, 0.09077593691179131},
	{33, 21, 32, 0.08404218696862147},
	{14, 21, 33, 0.025339672794164863},
	{32, 21, 33, 0.08404218696862147},
	{15, 21, 34, -0.13166880217999308},
	{35, 21, 34, -0.13019759620332838},
	{34, 21, 35, -0.13019759620332838},
	{0, 22, 22, 0.28209479177387814},
	{6, 22, 22, 0.0655359096628613},
	{20, 22, 22, -0.08369845470213967},
	{24, 22, 22, 0.1350454733836384},
	{7, 22, 23, 0.13272538654977692},
	{21, 22, 23, 0.04501515779454614},
	{8, 22, 24, -0.07508081669196244},
	{22, 22, 24, 0.1350454733836384},
	{9, 22, 25, -0.09814013073014567},
	{27, 22, 25, 0.13019759620332838},
	{10, 22, 26, 0.10135869117665945},
	{28, 22, 26, 0.08404218696862147},
	{1, 22, 27, 0.18373932470686663},
	{11, 22, 27, 0.1019902156116384},
	{25, 22, 27, 0.13019759620332838},
	{26, 22, 28, 0.08404218696862147},
	{1, 22, 29, 0.08505477996612625},
	{9, 22, 29, -0.10158468630934461},
	{11, 22, 29, -0.07518995256510773},
	{29, 22, 29, -0.09704355853923692},
	{14, 22, 30, -0.17132745820333498},
	{32, 22, 30, -0.0994400566505079},
	{3, 22, 31, -0.08505477996612625},
	{13, 22, 31, 0.07518995256510773},
	{15, 22, 31, -0.10158468630934461},
	{31, 22, 31, 0.09704355853923692},
	{2, 22, 32, 0.2250337956076888},
	{12, 22, 32, 0.022664492358141868},
	{30, 22, 32, -0.0994400566505079},
	{34, 22, 32, 0.08404218696862147},
	{3, 22, 33, 0.18373932470686663},
	{13, 22, 33, 0.1019902156116384},
	{35, 22, 33, 0.13019759620332838},
	{14, 22, 34, 0.10135869117665945},
	{32, 22, 34, 0.08404218696862147},
	{15, 22, 35, -0.09814013073014567},
	{33, 22, 35, 0.13019759620332838},
	{0, 23, 23, 0.28209479177387814},
	{6, 23, 23, -0.05734392095500364},
	{20, 23, 23, -0.15978795897681208},
	{7, 23, 24, 0.14046334619025075},
	{21, 23, 24, -0.11909891275269986},
	{10, 23, 25, 0.1499115259279181},
	{28, 23, 25, -0.0994400566505079},
	{1, 23, 26, 0.2083408111017064},
	{11, 23, 26, 0.029982305185583622},
	{29, 23, 26, -0.11885360062251987},
	{1, 23, 28, 0.060142811686377584},
	{11, 23, 28, -0.12117204378875551},
	{25, 23, 28, -0.0994400566505079},
	{29, 23, 28, -0.03431007915678406},
	{10, 23, 29, 0.1137936590904461},
	{26, 23, 29, -0.11885360062251987},
	{28, 23, 29, -0.03431007915678406},
	{15, 23, 30, 0.09814013073014567},
	{33, 23, 30, -0.13019759620332838},
	{14, 23, 31, -0.1137936590904461},
	{32, 23, 31, 0.03431007915678406},
	{34, 23, 31, -0.11885360062251987},
	{3, 23, 32, -0.060142811686377584},
	{13, 23, 32, 0.12117204378875551},
	{31, 23, 32, 0.03431007915678406},
	{35, 23, 32, -0.0994400566505079},
	{2, 23, 33, 0.1964256004372295},
	{12, 23, 33, -0.1038617518189333},
	{30, 23, 33, -0.13019759620332838},
	{3, 23, 34, 0.2083408111017064},
	{13, 23, 34, 0.029982305185583622},
	{31, 23, 34, -0.11885360062251987},
	{14, 23, 35, 0.1499115259279181},
	{32, 23, 35, -0.0994400566505079},
	{0, 24, 24, 0.28209479177387814},
	{6, 24, 24, -0.22937568382001455},
	{20, 24, 24, 0.1065253059845414},
	{1, 24, 25, 0.2329321080554292},
	{11, 24, 25, -0.13408494503421883},
	{29, 24, 25, 0.05315294607251315},
	{1, 24, 27, 0.034723468516951066},
	{11, 24, 27, -0.11992922074233449},
	{29, 24, 27, 0.11885360062251987},
	{10, 24, 28, 0.07741397910978243},
	{28, 24, 28, -0.12837656111777973},
	{9, 24, 29, -0.03583570893160449},
	{25, 24, 29, 0.05315294607251315},
	{27, 24, 29, 0.11885360062251987},
	{34, 24, 30, 0.13019759620332838},
	{15, 24, 31, 0.03583570893160449},
	{33, 24, 31, -0.11885360062251987},
	{35, 24, 31, 0.05315294607251315},
	{14, 24, 32, -0.07741397910978243},
	{32, 24, 32, 0.12837656111777973},
	{3, 24, 33, -0.034723468516951066},
	{13, 24, 33, 0.11992922074233449},
	{31, 24, 33, -0.11885360062251987},
	{2, 24, 34, 0.14731920032792215},
	{12, 24, 34, -0.2077235036378666},
	{30, 24, 34, 0.13019759620332838},
	{3, 24, 35, 0.2329321080554292},
	{13, 24, 35, -0.13408494503421883},
	{31, 24, 35, 0.05315294607251315},
	{0, 25, 25, 0.28209479177387814},
	{6, 25, 25, -0.24260889634809232},
	{20, 25, 25, 0.13019759620332838},
	{7, 25, 26, 0.13288236518128288},
	{21, 25, 26, -0.13019759620332838},
	{8, 25, 27, -0.06264134767986153},
	{22, 25, 27, 0.13019759620332838},
	{23, 25, 28, -0.0994400566505079},
	{24, 25, 29, 0.05315294607251315},
	{16, 25, 31, 0.05315294607251315},
	{17, 25, 32, -0.0994400566505079},
	{4, 25, 33, -0.06264134767986153},
	{18, 25, 33, 0.13019759620332838},
	{5, 25, 34, 0.13288236518128288},
	{19, 25, 34, -0.13019759620332838},
	{0, 26, 26, 0.28209479177387814},
	{6, 26, 26, -0.09704355853923692},
	{20, 26, 26, -0.13019759620332838},
	{7, 26, 27, 0.13866253405960652},
	{8, 26, 28, -0.09704355853923692},
	{22, 26, 28, 0.08404218696862147},
	{23, 26, 29, -0.11885360062251987},
	{16, 26, 30, 0.13019759620332838},
	{17, 26, 31, -0.11885360062251987},
	{4, 26, 32, -0.09704355853923692},
	{18, 26, 32, 0.08404218696862147},
	{5, 26, 33, 0.13866253405960652},
	{5, 26, 35, -0.13288236518128288},
	{19, 26, 35, 0.13019759620332838},
	{0, 27, 27, 0.28209479177387814},
	{6, 27, 27, 0.016173926423206156},
	{20, 27, 27, -0.13019759620332838},
	{7, 27, 28, 0.11436693052261353},
	{21, 27, 28, 0.08404218696862147},
	{8, 27, 29, -0.12103458254905508},
	{24, 27, 29, 0.11885360062251987},
	{17, 27, 30, -0.13019759620332838},
	{4, 27, 31, -0.12103458254905508},
	{16, 27, 31, -0.11885360062251987},
	{5, 27, 32, 0.11436693052261353},
	{19, 27, 32, 0.08404218696862147},
	{5, 27, 34, -0.13866253405960652},
	{4, 27, 35, 0.06264134767986153},
	{18, 27, 35, -0.13019759620332838},
	{0, 28, 28, 0.28209479177387814},
	{6, 28, 28, 0.09704355853923692},
	{20, 28, 28, -0.021699599367221396},
	{24, 28, 28, -0.12837656111777973},
	{7, 28, 29, 0.07411824211898857},
	{21, 28, 29, 0.09077593691179131},
	{23, 28, 29, -0.03431007915678406},
	{4, 28, 30, -0.19137247825134124},
	{18, 28, 30, -0.0994400566505079},
	{5, 28, 31, 0.07411824211898857},
	{17, 28, 31, 0.03431007915678406},
	{19, 28, 31, 0.09077593691179131},
	{16, 28, 32, 0.12837656111777973},
	{5, 28, 33, -0.11436693052261353},
	{19, 28, 33, -0.08404218696862147},
	{4, 28, 34, 0.09704355853923692},
	{18, 28, 34, -0.08404218696862147},
	{17, 28, 35, 0.0994400566505079},
	{0, 29, 29, 0.28209479177387814},
	{6, 29, 29, 0.1455653378088554},
	{8, 29, 29, -0.14007031161436911},
	{20, 29, 29, 0.08679839746888558},
	{22, 29, 29, -0.09704355853923692},
	{5, 29, 30, 0.036165998945368996},
	{19, 29, 30, 0.05315294607251315},
	{4, 29, 31, 0.14007031161436911},
	{18, 29, 31, 0.09704355853923692},
	{5, 29, 32, -0.07411824211898857},
	{17, 29, 32, 0.03431007915678406},
	{19, 29, 32, -0.09077593691179131},
	{4, 29, 33, 0.12103458254905508},
	{16, 29, 33, -0.11885360062251987},
	{17, 29, 34, 0.11885360062251987},
	{16, 29, 35, -0.05315294607251315},
	{0, 30, 30, 0.28209479177387814},
	{6, 30, 30, 0.16173926423206153},
	{20, 30, 30, 0.13019759620332838},
	{7, 30, 31, 0.036165998945368996},
	{21, 30, 31, 0.05315294607251315},
	{8, 30, 32, -0.19137247825134124},
	{22, 30, 32, -0.0994400566505079},
	{23, 30, 33, -0.13019759620332838},
	{24, 30, 34, 0.13019759620332838},
	{0, 31, 31, 0.28209479177387814},
	{6, 31, 31, 0.1455653378088554},
	{8, 31, 31, 0.14007031161436911},
	{20, 31, 31, 0.08679839746888558},
	{22, 31, 31, 0.09704355853923692},
	{7, 31, 32, 0.07411824211898857},
	{21, 31, 32, 0.09077593691179131},
	{23, 31, 32, 0.03431007915678406},
	{8, 31, 33, -0.12103458254905508},
	{24, 31, 33, -0.11885360062251987},
	{23, 31, 34, -0.11885360062251987},
	{24, 31, 35, 0.05315294607251315},
	{0, 32, 32, 0.28209479177387814},
	{6, 32, 32, 0.09704355853923692},
	{20, 32, 32, -0.021699599367221396},
	{24, 32, 32, 0.12837656111777973},
	{7, 32, 33, 0.11436693052261353},
	{21, 32, 33, 0.08404218696862147},
	{8, 32, 34, -0.09704355853923692},
	{22, 32, 34, 0.08404218696862147},
	{23, 32, 35, -0.0994400566505079},
	{0, 33, 33, 0.28209479177387814},
	{6, 33, 33, 0.016173926423206156},
	{20, 33, 33, -0.13019759620332838},
	{7, 33, 34, 0.13866253405960652},
	{8, 33, 35, -0.06264134767986153},
	{22, 33, 35, 0.13019759620332838},
	{0, 34, 34, 0.28209479177387814},
	{6, 34, 34, -0.09704355853923692},
	{20, 34, 34, -0.13019759620332838},
	{7, 34, 35, 0.13288236518128288},
	{21, 34, 35, -0.13019759620332838},
	{0, 35, 35, 0.28209479177387814},
	{6, 35, 35, -0.24260889634809232},
	{20, 35, 35, 0.13019759620332838},
}
