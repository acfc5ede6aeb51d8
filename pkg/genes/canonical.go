package genes

// canonical is the curated neural crest gene set: 95 genes across the eight
// developmental roles of the gene regulatory network, with the
// cross-reference IDs fetchers use to query each source.
//
// References:
//
//	Simoes-Costa & Bronner, Development 142:242-257 (2015)
//	Martik & Bronner, Nat Rev Mol Cell Biol 18:453-464 (2017)
//	Sauka-Spengler & Bronner-Fraser, Nat Rev Mol Cell Biol 9:557-568 (2008)
var canonical = []Gene{
	// Neural plate border specification.
	{Symbol: "DLX2", NCBI: "1746", UniProt: "Q07687", OMIM: "126255", Role: RoleBorderSpec},
	{Symbol: "DLX3", NCBI: "1747", UniProt: "O60479", OMIM: "600525", Role: RoleBorderSpec},
	{Symbol: "DLX5", NCBI: "1749", UniProt: "P56178", OMIM: "600028", Role: RoleBorderSpec},
	{Symbol: "DLX6", NCBI: "1750", UniProt: "P56182", OMIM: "600030", Role: RoleBorderSpec},
	{Symbol: "GBX2", NCBI: "2637", UniProt: "P40424", OMIM: "601135", Role: RoleBorderSpec},
	{Symbol: "MSX1", NCBI: "4487", UniProt: "P28360", OMIM: "142983", Role: RoleBorderSpec},
	{Symbol: "MSX2", NCBI: "4488", UniProt: "P35548", OMIM: "123101", Role: RoleBorderSpec},
	{Symbol: "PAX3", NCBI: "5077", UniProt: "P23760", OMIM: "606597", Role: RoleBorderSpec},
	{Symbol: "PAX6", NCBI: "5080", UniProt: "P26367", OMIM: "607108", Role: RoleBorderSpec},
	{Symbol: "PAX7", NCBI: "5081", UniProt: "P23759", OMIM: "167410", Role: RoleBorderSpec},
	{Symbol: "TFAP2A", NCBI: "7020", UniProt: "P05549", OMIM: "107580", Role: RoleBorderSpec},
	{Symbol: "TFAP2B", NCBI: "7021", UniProt: "Q92481", OMIM: "601601", Role: RoleBorderSpec},
	{Symbol: "ZIC1", NCBI: "7545", UniProt: "Q15915", OMIM: "600470", Role: RoleBorderSpec},

	// Neural crest specifiers.
	{Symbol: "ETS1", NCBI: "2113", UniProt: "P14921", OMIM: "164720", Role: RoleNCSpecifier},
	{Symbol: "FOXD3", NCBI: "27022", UniProt: "Q9UJU5", OMIM: "611539", Role: RoleNCSpecifier},
	{Symbol: "MYCN", NCBI: "4613", UniProt: "P04198", OMIM: "164840", Role: RoleNCSpecifier},
	{Symbol: "NR2F1", NCBI: "7025", UniProt: "P10589", OMIM: "132890", Role: RoleNCSpecifier},
	{Symbol: "NR2F2", NCBI: "7026", UniProt: "P24468", OMIM: "107773", Role: RoleNCSpecifier},
	{Symbol: "SNAI1", NCBI: "6615", UniProt: "O95863", OMIM: "604238", Role: RoleNCSpecifier},
	{Symbol: "SNAI2", NCBI: "6591", UniProt: "O43623", OMIM: "602150", Role: RoleNCSpecifier},
	{Symbol: "SOX5", NCBI: "6660", UniProt: "P35711", OMIM: "604975", Role: RoleNCSpecifier},
	{Symbol: "SOX8", NCBI: "30812", UniProt: "P57073", OMIM: "605923", Role: RoleNCSpecifier},
	{Symbol: "SOX9", NCBI: "6662", UniProt: "P48436", OMIM: "608160", Role: RoleNCSpecifier},
	{Symbol: "SOX10", NCBI: "6663", UniProt: "P56693", OMIM: "602229", Role: RoleNCSpecifier},
	{Symbol: "TWIST1", NCBI: "7291", UniProt: "Q15672", OMIM: "601622", Role: RoleNCSpecifier},
	{Symbol: "TWIST2", NCBI: "117581", UniProt: "Q8WVJ9", OMIM: "607556", Role: RoleNCSpecifier},

	// EMT and migration.
	{Symbol: "CDH2", NCBI: "1000", UniProt: "P19022", OMIM: "114020", Role: RoleEMTMigration},
	{Symbol: "CDH6", NCBI: "1004", UniProt: "P55285", OMIM: "603007", Role: RoleEMTMigration},
	{Symbol: "CDH11", NCBI: "1009", UniProt: "P55287", OMIM: "600023", Role: RoleEMTMigration},
	{Symbol: "CXCR4", NCBI: "7852", UniProt: "P61073", OMIM: "162643", Role: RoleEMTMigration},
	{Symbol: "FN1", NCBI: "2335", UniProt: "P02751", OMIM: "135600", Role: RoleEMTMigration},
	{Symbol: "ITGB1", NCBI: "3688", UniProt: "P05556", OMIM: "135630", Role: RoleEMTMigration},
	{Symbol: "MMP2", NCBI: "4313", UniProt: "P08253", OMIM: "120360", Role: RoleEMTMigration},
	{Symbol: "MMP9", NCBI: "4318", UniProt: "P14780", OMIM: "120361", Role: RoleEMTMigration},
	{Symbol: "NGFR", NCBI: "4804", UniProt: "P08138", OMIM: "162010", Role: RoleEMTMigration},
	{Symbol: "RAC1", NCBI: "5879", UniProt: "P63000", OMIM: "602048", Role: RoleEMTMigration},
	{Symbol: "RHOA", NCBI: "387", UniProt: "P61586", OMIM: "165390", Role: RoleEMTMigration},
	{Symbol: "ZEB2", NCBI: "9839", UniProt: "O60315", OMIM: "605802", Role: RoleEMTMigration},

	// Signaling pathways.
	{Symbol: "ADAM10", NCBI: "102", UniProt: "O14672", OMIM: "602192", Role: RoleSignaling},
	{Symbol: "ALDH1A2", NCBI: "8854", UniProt: "O94788", OMIM: "603687", Role: RoleSignaling},
	{Symbol: "AXIN2", NCBI: "8313", UniProt: "Q9Y2T1", OMIM: "604025", Role: RoleSignaling},
	{Symbol: "BMP2", NCBI: "650", UniProt: "P12643", OMIM: "112261", Role: RoleSignaling},
	{Symbol: "BMP4", NCBI: "652", UniProt: "P12644", OMIM: "112262", Role: RoleSignaling},
	{Symbol: "BMP7", NCBI: "655", UniProt: "P18075", OMIM: "112267", Role: RoleSignaling},
	{Symbol: "CTNNB1", NCBI: "1499", UniProt: "P35222", OMIM: "116806", Role: RoleSignaling},
	{Symbol: "DLL1", NCBI: "28514", UniProt: "O00548", OMIM: "606582", Role: RoleSignaling},
	{Symbol: "EDN1", NCBI: "1906", UniProt: "P05305", OMIM: "131240", Role: RoleSignaling},
	{Symbol: "EDN3", NCBI: "1908", UniProt: "P14138", OMIM: "131242", Role: RoleSignaling},
	{Symbol: "EDNRA", NCBI: "1909", UniProt: "P25101", OMIM: "131243", Role: RoleSignaling},
	{Symbol: "EDNRB", NCBI: "1910", UniProt: "P24530", OMIM: "131244", Role: RoleSignaling},
	{Symbol: "FGF8", NCBI: "2253", UniProt: "P55075", OMIM: "600483", Role: RoleSignaling},
	{Symbol: "FGFR1", NCBI: "2260", UniProt: "P11362", OMIM: "136350", Role: RoleSignaling},
	{Symbol: "FGFR2", NCBI: "2263", UniProt: "P21802", OMIM: "176943", Role: RoleSignaling},
	{Symbol: "FGFR3", NCBI: "2261", UniProt: "P22607", OMIM: "134934", Role: RoleSignaling},
	{Symbol: "JAG1", NCBI: "182", UniProt: "P78504", OMIM: "601920", Role: RoleSignaling},
	{Symbol: "LEF1", NCBI: "51176", UniProt: "Q9UJU2", OMIM: "153245", Role: RoleSignaling},
	{Symbol: "NOTCH1", NCBI: "4851", UniProt: "P46531", OMIM: "190198", Role: RoleSignaling},
	{Symbol: "NOTCH2", NCBI: "4853", UniProt: "Q04721", OMIM: "600275", Role: RoleSignaling},
	{Symbol: "RARA", NCBI: "5914", UniProt: "P10276", OMIM: "180240", Role: RoleSignaling},
	{Symbol: "SHH", NCBI: "6469", UniProt: "Q15465", OMIM: "600725", Role: RoleSignaling},
	{Symbol: "SMAD1", NCBI: "4086", UniProt: "Q15797", OMIM: "601595", Role: RoleSignaling},
	{Symbol: "TGFBR1", NCBI: "7046", UniProt: "P36897", OMIM: "190181", Role: RoleSignaling},
	{Symbol: "TGFBR2", NCBI: "7048", UniProt: "P37173", OMIM: "190182", Role: RoleSignaling},
	{Symbol: "WNT1", NCBI: "7471", UniProt: "P04628", OMIM: "164820", Role: RoleSignaling},
	{Symbol: "WNT3A", NCBI: "89780", UniProt: "P56704", OMIM: "606359", Role: RoleSignaling},

	// Craniofacial patterning and disease.
	{Symbol: "CHD7", NCBI: "55636", UniProt: "Q9P2D1", OMIM: "608892", Role: RoleCraniofacial},
	{Symbol: "ECE1", NCBI: "1889", UniProt: "P42892", OMIM: "600423", Role: RoleCraniofacial},
	{Symbol: "ERBB3", NCBI: "2065", UniProt: "P21860", OMIM: "190151", Role: RoleCraniofacial},
	{Symbol: "EVC", NCBI: "2121", UniProt: "P57679", OMIM: "604831", Role: RoleCraniofacial},
	{Symbol: "IRF6", NCBI: "3664", UniProt: "O14896", OMIM: "607199", Role: RoleCraniofacial},
	{Symbol: "NF1", NCBI: "4763", UniProt: "P21359", OMIM: "613113", Role: RoleCraniofacial},
	{Symbol: "RUNX2", NCBI: "860", UniProt: "Q13950", OMIM: "600211", Role: RoleCraniofacial},
	{Symbol: "SOX2", NCBI: "6657", UniProt: "P48431", OMIM: "184429", Role: RoleCraniofacial},
	{Symbol: "TBX1", NCBI: "6899", UniProt: "O43435", OMIM: "602054", Role: RoleCraniofacial},
	{Symbol: "TCOF1", NCBI: "6949", UniProt: "Q13428", OMIM: "606847", Role: RoleCraniofacial},

	// Melanocyte / pigmentation.
	{Symbol: "DCT", NCBI: "1638", UniProt: "P40126", OMIM: "191275", Role: RoleMelanocyte},
	{Symbol: "KIT", NCBI: "3815", UniProt: "P10721", OMIM: "164920", Role: RoleMelanocyte},
	{Symbol: "MITF", NCBI: "4286", UniProt: "O75030", OMIM: "156845", Role: RoleMelanocyte},
	{Symbol: "PMEL", NCBI: "6490", UniProt: "P40967", OMIM: "155550", Role: RoleMelanocyte},
	{Symbol: "TYR", NCBI: "7299", UniProt: "P14679", OMIM: "606933", Role: RoleMelanocyte},
	{Symbol: "TYRP1", NCBI: "7306", UniProt: "P17643", OMIM: "115501", Role: RoleMelanocyte},

	// Enteric nervous system.
	{Symbol: "GDNF", NCBI: "2668", UniProt: "P39905", OMIM: "600837", Role: RoleEnteric},
	{Symbol: "GFRA1", NCBI: "2674", UniProt: "P56159", OMIM: "601496", Role: RoleEnteric},
	{Symbol: "NRP1", NCBI: "8829", UniProt: "O14786", OMIM: "602069", Role: RoleEnteric},
	{Symbol: "PHOX2B", NCBI: "8929", UniProt: "Q99453", OMIM: "603851", Role: RoleEnteric},
	{Symbol: "RET", NCBI: "5979", UniProt: "P07949", OMIM: "164761", Role: RoleEnteric},
	{Symbol: "SEMA3A", NCBI: "10371", UniProt: "Q14563", OMIM: "603961", Role: RoleEnteric},

	// Cardiac neural crest.
	{Symbol: "GATA4", NCBI: "2626", UniProt: "P43694", OMIM: "600576", Role: RoleCardiac},
	{Symbol: "HAND1", NCBI: "9421", UniProt: "O96004", OMIM: "602406", Role: RoleCardiac},
	{Symbol: "HAND2", NCBI: "9464", UniProt: "P61296", OMIM: "602407", Role: RoleCardiac},
	{Symbol: "MEF2C", NCBI: "4208", UniProt: "Q06413", OMIM: "600662", Role: RoleCardiac},
	{Symbol: "NKX2-5", NCBI: "1482", UniProt: "P52952", OMIM: "600584", Role: RoleCardiac},
	{Symbol: "PLXNA2", NCBI: "5362", UniProt: "O75051", OMIM: "601054", Role: RoleCardiac},
	{Symbol: "SEMA3C", NCBI: "10512", UniProt: "Q99985", OMIM: "602645", Role: RoleCardiac},
	{Symbol: "TBX5", NCBI: "6910", UniProt: "Q99593", OMIM: "601620", Role: RoleCardiac},
}
