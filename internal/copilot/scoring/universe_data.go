package scoring

// universe lists the tracked tickers per sector key, in scan order.
var universe = []sectorTickers{
	{key: "crypto", tickers: []string{
		"BTC-USD", "ETH-USD", "BNB-USD", "SOL-USD", "XRP-USD", "ADA-USD", "AVAX-USD", "DOT-USD",
		"MATIC-USD", "LINK-USD", "UNI-USD", "ATOM-USD", "LTC-USD", "NEAR-USD", "APT-USD", "ICP-USD",
		"FIL-USD", "VET-USD", "ETC-USD", "THETA-USD", "HBAR-USD", "FLOW-USD", "MANA-USD", "SAND-USD",
		"AXS-USD", "ENJ-USD", "CHZ-USD", "DOGE-USD", "SHIB-USD", "CAKE-USD", "SUSHI-USD", "COMP-USD",
		"MKR-USD", "AAVE-USD", "CRV-USD", "YFI-USD", "BAL-USD", "REN-USD", "KNC-USD", "ZRX-USD",
		"BAT-USD", "OMG-USD", "LRC-USD", "STORJ-USD", "ANT-USD", "GRT-USD", "RLC-USD", "OCEAN-USD",
		"TRX-USD", "XLM-USD", "ALGO-USD", "FTM-USD", "EGLD-USD", "SUI-USD", "ARB-USD", "OP-USD",
		"IMX-USD", "INJ-USD", "TIA-USD", "SEI-USD", "WLD-USD", "PENDLE-USD", "JUP-USD", "PYTH-USD",
		"WIF-USD", "BONK-USD", "PEPE-USD", "FLOKI-USD", "MEME-USD", "BABYDOGE-USD", "SAFEMOON-USD",
		"BAND-USD", "KAVA-USD", "ZIL-USD", "ONT-USD", "VTHO-USD", "ZK-USD", "METIS-USD", "BOBA-USD",
		"DYDX-USD", "PERP-USD", "GMX-USD", "SNX-USD", "GALA-USD", "ILV-USD", "SLP-USD", "ALICE-USD",
		"TLM-USD", "REEF-USD", "DEGO-USD", "FET-USD", "AGIX-USD", "TRB-USD", "API3-USD", "UMA-USD",
		"DIA-USD", "NEST-USD", "REP-USD",
	}},
	{key: "us_large_cap", tickers: []string{
		"AAPL", "MSFT", "GOOGL", "NVDA", "META", "TSLA", "AMZN", "AMD", "NFLX", "AVGO", "ORCL", "ADBE",
		"CRM", "QCOM", "INTC", "CSCO", "NOW", "PANW", "SHOP", "SQ", "ROKU", "SPOT", "TWLO", "PATH",
		"DKNG", "UBER", "LYFT", "ZM", "DOCU", "FSLY", "NET", "OKTA", "ZS", "CRWD", "MDB", "DDOG", "SNOW",
		"PLTR", "AI", "FVRR", "PINS", "SNAP", "TTD", "APP", "HOOD", "COIN", "MSTR", "RIOT", "MARATHON",
		"HUT", "BITF", "TEAM", "WDAY", "SPLK", "ESTC", "FTNT", "CYBR", "QLYS", "PFPT", "FEYE", "SAIL",
		"RPD", "SMAR", "WIX", "FIVN", "BAND", "RING", "EGHT", "VEEV", "MRVL", "AMAT", "LRCX", "KLAC",
		"MCHP", "ADI", "TXN", "NXPI", "ON", "SWKS", "QRVO", "CRUS", "SLAB", "MXL", "ALGM", "ACMR",
		"AMBA", "LSCC", "SMTC", "TER", "ENTG", "UCTT", "FORM", "PLAB", "COHU", "AEIS", "ONTO", "UNH",
		"LLY", "JNJ", "ABBV", "MRK", "TMO", "ABT", "PFE", "DHR", "BMY", "AMGN", "GILD", "CVS", "CI",
		"HUM", "ISRG", "DXCM", "ALGN", "IDXX", "VRTX", "REGN", "BIIB", "ILMN", "INCY", "SGEN", "EXAS",
		"MDT", "BSX", "SYK", "EW", "BDX", "BAX", "ZBH", "HCA", "ANTM", "MOH", "CNC", "ELV", "LH", "DGX",
		"A", "PKI", "WAT", "BRKR", "VAR", "JPM", "BAC", "WFC", "GS", "MS", "C", "BLK", "SCHW", "AXP",
		"V", "MA", "PYPL", "SOFI", "MCO", "HLT", "QSR", "CMG", "DFS", "SYF", "ALLY", "LC", "GDOT",
		"OPRT", "UPST", "LMND", "ROOT", "SPNT", "USB", "PNC", "TFC", "CFG", "FITB", "HBAN", "RF", "KEY",
		"STI", "ZION", "CMA", "SIVB", "FRC", "WAL", "COLB", "PBCT", "FFIN", "CBOE", "NDAQ", "ICE", "CME",
		"MKTX", "SPGI", "FDS", "VRSK", "TRU", "WLTW", "AJG", "MMC", "AON", "BRO", "PGR", "ALL", "HD",
		"WMT", "TGT", "COST", "LOW", "NKE", "SBUX", "MCD", "YUM", "DPZ", "PZZA", "WING", "SHAK", "CAKE",
		"CHWY", "PETQ", "FRPT", "WOOF", "ZTS", "EL", "CL", "PG", "KO", "PEP", "KDP", "MNST", "FIZZ",
		"CELH", "XOM", "CVX", "COP", "EOG", "PXD", "MPC", "VLO", "PSX", "KMI", "EPD", "OKE", "WMB",
		"TRP", "ENB", "SU", "IMO", "CNQ", "AR", "FCX", "NEM", "GOLD", "AEM", "WPM", "FNV", "KL", "L",
		"MG", "FM", "HSE", "ABX", "GG", "KGC", "IAG", "CDE", "PAAS", "AG", "BA", "CAT", "DE", "GE",
		"HON", "MMM", "RTX", "LMT", "NOC", "GD", "TDG", "LHX", "TXT", "ITW", "EMR", "ETN", "PH", "DOV",
		"CMI", "PCAR", "OSK", "ALLE", "FAST", "GWW", "URI", "FTV", "ROK", "AME", "ZBRA", "SWK", "NEE",
		"DUK", "SO", "D", "EXC", "AEP", "XEL", "WEC", "ES", "PEG", "ED", "EIX", "SRE", "AWK", "CNP",
		"DTE", "FE", "LNT", "AMT", "CCI", "EQIX", "PLD", "PSA", "SPG", "O", "WELL", "AVB", "EQR", "MAA",
		"UDR", "ESS", "CPT", "AIV", "BRX", "KIM", "REG",
	}},
	{key: "us_mid_cap", tickers: []string{
		"TDY", "ENPH", "CZR", "LPLA", "PCTY", "CWST", "MMSI", "AMED", "HALO", "ITCI", "IONS", "ACAD",
		"GBT", "BPMC", "CCXI", "KURA", "MOR", "RCKT", "FATE", "EDIT", "NTLA", "CRSP", "BEAM", "SANA",
		"VECT", "BLUE", "KROS", "RGNX", "GLSI", "YMAB", "ALVR", "FUSN", "TARS", "CRBU", "CGEM", "SAVA",
		"TNGX", "VERV", "PRME", "BMEA", "CALT", "RXRX", "ORIC", "CGON", "AURA", "EWTX", "TERN", "BVS",
		"SOPH", "QURE", "MGTX", "RPTX", "RAPT", "BCAB", "STRO", "PASG", "GOSS", "MGNX", "KPTI", "BXRX",
		"FIXX", "CBAY", "ATRA", "OVID", "CTMX", "CDAK", "BTAI", "HOOK", "PRLD", "IMAB", "IVA", "CMRX",
		"BPTH", "OCUP", "TCRR", "XFOR", "EYEN", "ALRN", "SNOW", "PLTR", "DDOG", "NET", "ZS", "CRWD",
		"OKTA", "PANW", "FTNT", "CYBR", "QLYS", "PFPT", "SAIL", "RPD", "SMAR", "WIX", "FIVN", "TWLO",
		"BAND", "RING", "EGHT", "VEEV", "WDAY", "CRM", "NOW", "MDB", "ESTC", "SPLK", "TEAM", "SOFI",
		"UPST", "LMND", "ROOT", "SPNT", "ALLY", "LC", "GDOT", "OPRT", "CHWY", "PETQ", "FRPT", "WOOF",
		"ZTS", "EL", "CL", "PG", "KO", "PEP", "KDP", "MNST", "FIZZ", "CELH", "TDG", "LHX", "TXT", "ITW",
		"EMR", "ETN", "PH", "DOV", "CMI", "PCAR", "OSK", "ALLE", "FAST", "GWW", "URI", "FTV", "ROK",
		"AME", "ZBRA", "SWK", "DHR", "A", "PKI", "WAT", "BRKR", "VAR", "BAX", "BDX", "BSX", "MDT", "SYK",
		"EW", "ZBH", "HCA", "ANTM", "MOH", "EOG", "PXD", "MPC", "VLO", "PSX", "KMI", "EPD", "OKE", "WMB",
		"TRP", "ENB", "SU", "IMO", "CNQ", "AR", "FCX", "NEM", "GOLD", "AEM", "WPM", "FNV", "KL", "L",
		"MG", "FM", "HSE", "ABX", "GG", "KGC", "IAG", "CDE", "PAAS", "AG",
	}},
	{key: "us_small_cap", tickers: []string{
		"WKHS", "BLNK", "CHPT", "GOEV", "FSR", "NIO", "XPEV", "LI", "PSNY", "RIVN", "LCID", "NKLA", "QS",
		"VLDR", "LAZR", "HYLN", "CENN", "SOLO", "AYRO", "KNDI", "FFIE", "MULN", "GGR", "LEV", "VLCN",
		"CTNT", "PEV", "EVGO", "BEEM", "GSIT", "QUIK", "EMKR", "DSPG", "INSG", "AAOI", "OCC", "POET",
		"TGAN", "CRNT", "MRAM", "DAIO", "LPTH", "WKEY", "WATT", "CREX", "CLPS", "JG", "HGSH", "CTK",
		"UXIN", "BEDU", "CLEU", "EDU", "TAL", "GSX", "BZUN", "VIPS", "WUBA", "IQ", "HUYA", "YY", "DOYU",
		"TUYA", "ZLAB", "BNTX", "ALVO", "INO", "OCUP", "TCRR", "XFOR", "EYEN", "ALRN", "BXRX", "FIXX",
		"CBAY", "ATRA", "OVID", "CTMX", "CDAK", "BTAI", "HOOK", "PRLD", "IMAB", "IVA", "CMRX", "BPTH",
		"UPST", "LMND", "ROOT", "SPNT", "SOFI", "ALLY", "LC", "GDOT", "OPRT", "CHWY", "PETQ", "FRPT",
		"WOOF", "ZTS", "EL", "CL", "PG", "KO", "PEP", "KDP", "MNST", "FIZZ", "CELH",
	}},
	{key: "international", tickers: []string{
		"ASML.AS", "NOVO-B.CO", "AZN.L", "SHEL.L", "BP.L", "HSBA.L", "BARC.L", "VOD.L", "GSK.L", "DGE.L",
		"RIO.L", "BHP.L", "ABF.L", "ULVR.L", "REL.L", "NG.L", "LSEG.L", "EXPN.L", "IMB.L", "CTEC.L",
		"SSE.L", "AAL.L", "EZJ.L", "INF.L", "SGE.L", "PSON.L", "WPP.L", "PRU.L", "AV.L", "ADM.L",
		"GVC.L", "NMC.L", "PHNX.L", "ITV.L", "AUTO.L", "RMV.L", "SBRY.L", "MRW.L", "WTB.L", "SAP.DE",
		"000001.SS", "000002.SS", "600036.SS", "600000.SS", "600276.SS", "000858.SZ", "600519.SS",
		"000001.SZ", "600887.SS", "002142.SZ", "600104.SS", "002415.SZ", "600585.SS", "002594.SZ",
		"300750.SZ", "300760.SZ", "300782.SZ", "300896.SZ", "688981.SS", "688599.SS", "688036.SS",
		"688012.SS", "688126.SS", "688363.SS", "7203.T", "6758.T", "9984.T", "9432.T", "6861.T",
		"9983.T", "4063.T", "4568.T", "6098.T", "7974.T", "8035.T", "8306.T", "8316.T", "8411.T",
		"8766.T", "8801.T", "8802.T", "8830.T", "9001.T", "9005.T", "9007.T", "9008.T", "9009.T",
		"9101.T", "9104.T", "9107.T", "9201.T", "9202.T", "RY.TO", "TD.TO", "BNS.TO", "BMO.TO", "CM.TO",
		"CNQ.TO", "SU.TO", "IMO.TO", "ENB.TO", "TRP.TO", "SHOP.TO", "WEED.TO", "AC.TO", "GILD.TO",
		"ABX.TO", "AEM.TO", "WPM.TO", "FNV.TO", "KL.TO", "L.TO", "MG.TO", "FM.TO", "HSE.TO", "CP.TO",
		"CNR.TO", "CBA.AX", "WBC.AX", "ANZ.AX", "NAB.AX", "BHP.AX", "RIO.AX", "FMG.AX", "WES.AX",
		"WOW.AX", "COL.AX", "WPL.AX", "STO.AX", "ORG.AX", "WDS.AX", "TLS.AX", "TCL.AX", "QAN.AX",
		"FLT.AX", "CSL.AX", "RHC.AX", "COH.AX", "JBH.AX", "HVN.AX", "ITUB", "VALE", "PBR", "BBD", "ABEV",
		"SID", "ERJ", "GOL", "CCR", "UGP", "SBS", "CIG", "CBD", "BRFS", "JBSS", "MRFG", "RENT", "WEGE",
		"PETR4.SA", "VALE3.SA", "ITUB4.SA", "BBDC4.SA", "ABEV3.SA",
	}},
	{key: "etfs", tickers: []string{
		"SPY", "QQQ", "IWM", "VTI", "VXUS", "BND", "AGG", "VEA", "VWO", "VIG", "VUG", "VTV", "VO", "VB",
		"VV", "VOO", "VT", "BNDX", "LQD", "IVV", "ITOT", "IEFA", "IEMG", "EFA", "EEM", "ACWI", "ACWX",
		"VTEB", "MUB", "TFI", "PFF", "EMB", "VWOB", "PCY", "BWX", "IGOV", "SUB", "BIL", "XLF", "XLE",
		"XLU", "XLI", "XLK", "XLV", "XLY", "XLB", "XLP", "XLC", "XHB", "XME", "XOP", "XRT", "XSD", "XSW",
		"XTL", "XTN", "XAR", "XBI", "XES", "XHE", "XHS", "XIT", "XPH", "XRA", "XRE", "XSH", "XSS", "XTH",
		"VGT", "VHT", "VFH", "VDE", "VDC", "VCR", "VIS", "VAW", "VPU", "VNQ", "IYF", "IYE", "IYH", "IYJ",
		"IYK", "IYM", "IYR", "IYW", "IYZ", "IYC", "ARKK", "ARKG", "ARKQ", "ARKW", "ARKF", "ARKX", "BITO",
		"GBTC", "MSTR", "TQQQ", "SQQQ", "SPXL", "SPXS", "SOXL", "SOXS", "TECL", "TECS", "FNGU", "FNGD",
		"WEBL", "WEBS", "CWEB", "KWEB", "CHIQ", "YINN", "YANG", "TZA", "TNA", "UVXY", "VXX", "SVXY",
		"VIXY", "USO", "BNO", "UNG", "UGA", "ICLN", "PBW", "QCLN", "SMOG", "ERTH", "ESG", "SUSL", "ESGD",
		"ESGE", "ESGU", "ESGV", "ESGW", "ESGX", "ESGY", "ESGZ", "ESGA", "ESGB", "ESGC", "ESGF", "ESGG",
		"ESGH", "ESGI", "ESGJ", "ESGK", "ESGL", "ESGM", "ESGN", "ESGO", "ESGP", "ESGQ", "ESGR", "ESGS",
		"ESGT", "GLD", "SLV", "PALL", "PPLT", "CORN", "SOYB", "WEAT", "CANE", "DBA", "DBC", "GSG",
		"USCI", "COMT", "FTGC", "FTXN", "FTXO", "FTXG", "FTXH", "FTXD", "FTXR", "FTXL", "DJP",
	}},
	{key: "commodities_futures", tickers: []string{
		"GLD", "SLV", "PALL", "PPLT", "IAU", "SIVR", "USO", "BNO", "UNG", "UGA", "DJP", "DBC", "GSG",
		"USCI", "COMT", "FTGC", "FTXN", "FTXO", "FTXG", "FTXH", "FTXD", "FTXR", "FTXL", "CORN", "SOYB",
		"WEAT", "CANE", "DBA", "JJM", "JJN", "JJT", "JJU",
	}},
	{key: "currencies", tickers: []string{
		"FXE", "FXB", "FXF", "FXC", "FXY", "FXA", "FXS", "FXCH", "FXSG", "FXJP", "FXEU", "FXUK", "FXAU",
		"FXCA", "FXCN", "FXIN", "FXTW", "FXRU", "FXTH", "UUP", "UDN", "CYB", "BZF", "ICN", "CCX", "CEY",
		"CROC", "DRR", "EUFX",
	}},
	{key: "bonds", tickers: []string{
		"BND", "AGG", "BNDX", "LQD", "HYG", "JNK", "IEF", "TLT", "SHY", "TIP", "MUB", "TFI", "PFF",
		"EMB", "VWOB", "PCY", "BWX", "IGOV", "SUB", "BIL", "GOVT", "SPTL", "SPTS", "SPTI", "SPTM",
		"SPTN", "SPTO", "SPTP", "SPTQ", "SPTR", "SPTT", "SPTU", "SPTV", "SPTW", "SPTX", "SPTY", "SPTZ",
		"SPUA", "SPUB", "VCIT", "VCSH", "VCLT",
	}},
	{key: "reits", tickers: []string{
		"VNQ", "IYR", "XLRE", "SCHH", "RWR", "AMT", "CCI", "EQIX", "PLD", "PSA", "SPG", "O", "WELL",
		"AVB", "EQR", "MAA", "UDR", "ESS", "CPT", "AIV", "BRX", "KIM", "REG",
	}},
	{key: "options_etfs", tickers: []string{
		"QYLD", "RYLD", "XYLD", "JEPI", "DIVO", "SCHD", "VYM", "SPHD", "HDV", "DVY",
	}},
}
