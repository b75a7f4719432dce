package registry

import (
	"github.com/moznion/go-optional"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/types"
)

// Catalog construction helpers. Every built-in int parameter has a lower
// bound of 1; float parameters carry explicit bounds.

func intParam(name string, def int, desc string) types.ParamSpec {
	return types.ParamSpec{Name: name, Type: types.ParamTypeInt, Default: def, Min: optional.Some(1.0), Description: desc}
}

func floatParam(name string, def, min, max float64, desc string) types.ParamSpec {
	return types.ParamSpec{Name: name, Type: types.ParamTypeFloat, Default: def, Min: optional.Some(min), Max: optional.Some(max), Description: desc}
}

func column(pattern, desc string, role types.ColumnRole) types.OutputColumnSpec {
	return types.OutputColumnSpec{NamePattern: pattern, Description: desc, Role: role}
}

func pandasTA(fn string, paramMap, inputMap map[string]string) types.BackendBinding {
	return types.BackendBinding{Backend: "pandas_ta", Func: fn, ParamMap: paramMap, InputMap: inputMap}
}

func techanBinding(fn string, paramMap, inputMap map[string]string) types.BackendBinding {
	return types.BackendBinding{Backend: "techan", Func: fn, ParamMap: paramMap, InputMap: inputMap}
}

func ref(title string) []types.Reference {
	return []types.Reference{{Title: title}}
}

func formula(notation string, steps []string, notes string) optional.Option[types.FormulaSpec] {
	return optional.Some(types.FormulaSpec{Notation: notation, DerivationSteps: steps, Notes: notes})
}

// builtins returns the built-in indicator catalog. The catalog is pure data:
// "what an indicator is" lives here, "how the registry is built" lives in
// Register.
func builtins() []types.IndicatorDefinition {
	return []types.IndicatorDefinition{
		// ----- Momentum / Oscillators -----
		{
			Name:        "RSI",
			Group:       types.GroupMomentum,
			Description: "Relative Strength Index, momentum oscillator scaled 0–100.",
			Inputs:      []string{"close"},
			Params:      []types.ParamSpec{intParam("window", 14, "Averaging length")},
			Synonyms:    []string{"relative strength index"},
			SourceLabels: map[string]string{
				"pandas_ta": "rsi", "talib": "RSI", "tradingview": "RSI",
			},
			DefaultThresholds: map[string]float64{"overbought": 70.0, "oversold": 30.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^RSI_(?P<window>\d+)$`, "RSI value", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("rsi", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
				techanBinding("rsi", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords: []string{"oscillator", "momentum", "overbought", "oversold"},
				SynonymsByLang: map[string][]string{
					"en": {"RSI", "Relative Strength Index"},
					"de": {"Relative-Stärke-Index", "RSI"},
					"it": {"Indice di Forza Relativa", "RSI"},
				},
				RegexTemplates: []string{
					`\bRSI\s*\(\s*{WINDOW}\s*\)`,
					`\bRelative\s+Strength\s+Index\b\s*\(\s*{WINDOW}\s*\)`,
					`\bRSI\b\s*(?:<=|<|>=|>)\s*{THRESHOLD}`,
				},
				Examples: []string{"RSI(14) crosses above 30", "RSI(14) > 70 indicates overbought"},
			},
			Tags:       []string{"oscillator", "momentum", "bounded", "0-100"},
			References: ref("RSI"),
			Formula: formula(
				`RSI_t = 100 - \frac{100}{1 + RS_t},\quad RS_t=\frac{\text{RMA}(\text{gain}, n)}{\text{RMA}(\text{loss}, n)}`,
				[]string{
					"gain = max(ΔClose, 0); loss = max(-ΔClose, 0)",
					"avgGain = RMA(gain, n); avgLoss = RMA(loss, n)",
					"RS = avgGain / avgLoss",
					"RSI = 100 - 100 / (1 + RS)",
				},
				"Wilder's smoothing (RMA). Bounded [0,100].",
			),
		},
		{
			Name:         "MFI",
			Group:        types.GroupMomentum,
			Description:  "Money Flow Index; volume-weighted RSI-like oscillator (0–100).",
			Inputs:       []string{"high", "low", "close", "volume"},
			Params:       []types.ParamSpec{intParam("window", 14, "Window")},
			Synonyms:     []string{"money flow index"},
			SourceLabels: map[string]string{"pandas_ta": "mfi", "talib": "MFI", "tradingview": "MFI"},
			DefaultThresholds: map[string]float64{
				"overbought": 80.0, "oversold": 20.0,
			},
			OutputSchema: []types.OutputColumnSpec{
				column(`^MFI_(?P<window>\d+)$`, "MFI value", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("mfi", map[string]string{"window": "length"},
					map[string]string{"high": "high", "low": "low", "close": "close", "volume": "volume"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"money flow", "oscillator", "volume"},
				SynonymsByLang: map[string][]string{"en": {"MFI", "Money Flow Index"}},
				RegexTemplates: []string{
					`\bMFI\s*\(\s*{WINDOW}\s*\)`,
					`\bMFI\b\s*(?:<=|<|>=|>)\s*{THRESHOLD}`,
				},
			},
			Tags:       []string{"oscillator", "volume", "bounded", "0-100"},
			References: ref("MFI"),
			Formula: formula(
				`\text{TP}_t=\frac{H_t+L_t+C_t}{3},\ \text{MF}_t=\text{TP}_t\cdot V_t,\ \text{MFR}_t=\frac{\sum \text{MF}^+}{\sum \text{MF}^-},\ \text{MFI}=100-\frac{100}{1+\text{MFR}}`,
				[]string{
					"TP=(H+L+C)/3; MF=TP*Volume",
					"Positive MF: TP_t>TP_{t-1}; Negative otherwise",
					"MFR = sum_pos(MF, n)/sum_neg(MF, n)",
					"MFI = 100 - 100/(1+MFR)",
				},
				"Oscillator bounded [0,100]. Uses volume.",
			),
		},
		{
			Name:        "MACD",
			Group:       types.GroupMomentum,
			Description: "Moving Average Convergence Divergence; fast EMA minus slow EMA with signal line.",
			Inputs:      []string{"close"},
			Params: []types.ParamSpec{
				intParam("fast", 12, "Fast EMA length"),
				intParam("slow", 26, "Slow EMA length"),
				intParam("signal", 9, "Signal EMA length"),
			},
			Synonyms:          []string{"moving average convergence divergence"},
			SourceLabels:      map[string]string{"pandas_ta": "macd", "talib": "MACD", "tradingview": "MACD"},
			DefaultThresholds: map[string]float64{"zero_line": 0.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^MACD_(?P<fast>\d+)_(?P<slow>\d+)_(?P<signal>\d+)$`, "MACD line", types.ColumnRoleMain),
				column(`^MACDs_(?P<fast>\d+)_(?P<slow>\d+)_(?P<signal>\d+)$`, "Signal", types.ColumnRoleSignal),
				column(`^MACDh_(?P<fast>\d+)_(?P<slow>\d+)_(?P<signal>\d+)$`, "Histogram", types.ColumnRoleHist),
			},
			Bindings: []types.BackendBinding{
				pandasTA("macd", map[string]string{"fast": "fast", "slow": "slow", "signal": "signal"},
					map[string]string{"close": "close"}),
				techanBinding("macd", map[string]string{"fast": "fast", "slow": "slow", "signal": "signal"},
					map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"convergence", "divergence", "histogram", "zero line"},
				SynonymsByLang: map[string][]string{"en": {"MACD", "Moving Average Convergence Divergence"}},
				RegexTemplates: []string{
					`\bMACD\s*\(\s*{FAST}\s*,\s*{SLOW}\s*,\s*{SIGNAL}\s*\)`,
					`\bMACD(?:h)?\b\s*(?:<=|<|>=|>)\s*{THRESHOLD}`,
				},
			},
			Tags:       []string{"crossover", "momentum"},
			References: ref("MACD"),
			Formula: formula(
				`\text{MACD}_t=\text{EMA}_{f}(C_t)-\text{EMA}_{s}(C_t),\quad \text{Signal}_t=\text{EMA}_{sig}(\text{MACD}_t),\quad \text{Hist}_t=\text{MACD}_t-\text{Signal}_t`,
				[]string{
					"macd = EMA(close, fast) - EMA(close, slow)",
					"signal = EMA(macd, signal_len)",
					"hist = macd - signal",
				},
				"Zero-line at 0. Common default (12,26,9).",
			),
		},
		{
			Name:        "PPO",
			Group:       types.GroupMomentum,
			Description: "Percentage Price Oscillator; MACD-like oscillator in percent.",
			Inputs:      []string{"close"},
			Params: []types.ParamSpec{
				intParam("fast", 12, "Fast EMA"),
				intParam("slow", 26, "Slow EMA"),
				intParam("signal", 9, "Signal EMA"),
			},
			Synonyms:          []string{"percentage price oscillator"},
			SourceLabels:      map[string]string{"pandas_ta": "ppo", "talib": "PPO", "tradingview": "PPO"},
			DefaultThresholds: map[string]float64{"zero_line": 0.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^PPO_(?P<fast>\d+)_(?P<slow>\d+)_(?P<signal>\d+)$`, "PPO line", types.ColumnRoleMain),
				column(`^PPOs_(?P<fast>\d+)_(?P<slow>\d+)_(?P<signal>\d+)$`, "Signal", types.ColumnRoleSignal),
				column(`^PPOh_(?P<fast>\d+)_(?P<slow>\d+)_(?P<signal>\d+)$`, "Histogram", types.ColumnRoleHist),
			},
			Bindings: []types.BackendBinding{
				pandasTA("ppo", map[string]string{"fast": "fast", "slow": "slow", "signal": "signal"},
					map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"percentage", "oscillator", "zero line"},
				SynonymsByLang: map[string][]string{"en": {"PPO", "Percentage Price Oscillator"}},
				RegexTemplates: []string{
					`\bPPO\s*\(\s*{FAST}\s*,\s*{SLOW}\s*,\s*{SIGNAL}\s*\)`,
					`\bPPO(?:h)?\b\s*(?:<=|<|>=|>)\s*{THRESHOLD}`,
				},
			},
			Tags:       []string{"crossover", "momentum"},
			References: ref("PPO"),
			Formula: formula(
				`\text{PPO}_t=100\cdot\frac{\text{EMA}_{f}(C_t)-\text{EMA}_{s}(C_t)}{\text{EMA}_{s}(C_t)};\ \text{Signal}=\text{EMA}(\text{PPO},sig);\ \text{Hist}=\text{PPO}-\text{Signal}`,
				[]string{
					"ppo = 100 * (EMA(close, fast)-EMA(close, slow)) / EMA(close, slow)",
					"signal = EMA(ppo, signal_len); hist = ppo - signal",
				},
				"Percent version of MACD.",
			),
		},
		{
			Name:              "MOM",
			Group:             types.GroupMomentum,
			Description:       "Momentum; difference between current price and that n periods ago.",
			Inputs:            []string{"close"},
			Params:            []types.ParamSpec{intParam("window", 10, "Lookback")},
			Synonyms:          []string{"momentum"},
			SourceLabels:      map[string]string{"pandas_ta": "mom", "talib": "MOM", "tradingview": "MOM"},
			DefaultThresholds: map[string]float64{"zero_line": 0.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^MOM_(?P<window>\d+)$`, "Momentum value", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("mom", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"momentum", "rate"},
				SynonymsByLang: map[string][]string{"en": {"Momentum", "MOM"}},
				RegexTemplates: []string{`\bMOM\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"momentum"},
			References: ref("Momentum"),
			Formula: formula(
				`\text{MOM}_t = C_t - C_{t-n}`,
				[]string{"MOM = close_t - close_{t-n}"},
				"Zero-centered.",
			),
		},
		{
			Name:              "ROC",
			Group:             types.GroupMomentum,
			Description:       "Rate of Change; percent change over a window.",
			Inputs:            []string{"close"},
			Params:            []types.ParamSpec{intParam("window", 10, "Lookback")},
			Synonyms:          []string{"rate of change", "roc pct"},
			SourceLabels:      map[string]string{"pandas_ta": "roc", "talib": "ROC", "tradingview": "ROC"},
			DefaultThresholds: map[string]float64{"zero_line": 0.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^ROC_(?P<window>\d+)$`, "Rate of Change", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("roc", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"percentage", "change", "momentum"},
				SynonymsByLang: map[string][]string{"en": {"ROC", "Rate of Change"}},
				RegexTemplates: []string{`\bROC\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"momentum"},
			References: ref("ROC"),
			Formula: formula(
				`\text{ROC}_t = 100\cdot\frac{C_t - C_{t-n}}{C_{t-n}}`,
				[]string{"ROC = 100 * (close_t - close_{t-n}) / close_{t-n}"},
				"Percent form.",
			),
		},
		{
			Name:        "TSI",
			Group:       types.GroupMomentum,
			Description: "True Strength Index; double-smoothed momentum oscillator.",
			Inputs:      []string{"close"},
			Params: []types.ParamSpec{
				intParam("fast", 13, "Fast"),
				intParam("slow", 25, "Slow"),
			},
			Synonyms:          []string{"true strength index"},
			SourceLabels:      map[string]string{"pandas_ta": "tsi", "tradingview": "TSI"},
			DefaultThresholds: map[string]float64{"zero_line": 0.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^TSI_(?P<fast>\d+)_(?P<slow>\d+)$`, "TSI", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("tsi", map[string]string{"fast": "fast", "slow": "slow"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"oscillator", "double smoothed"},
				SynonymsByLang: map[string][]string{"en": {"TSI", "True Strength Index"}},
				RegexTemplates: []string{`\bTSI\s*\(\s*{FAST}\s*,\s*{SLOW}\s*\)`},
			},
			Tags:       []string{"momentum", "oscillator"},
			References: ref("TSI"),
			Formula: formula(
				`\text{pc}_t=C_t-C_{t-1};\ r=\text{EMA}_{f}(\text{EMA}_{s}(\text{pc}));\ a=\text{EMA}_{f}(\text{EMA}_{s}(|\text{pc}|));\ \text{TSI}=100\cdot r/a`,
				[]string{
					"pc = diff(close)",
					"r = EMA(EMA(pc, slow), fast)",
					"a = EMA(EMA(abs(pc), slow), fast)",
					"TSI = 100 * r / a",
				},
				"Zero-centered.",
			),
		},
		{
			Name:              "TRIX",
			Group:             types.GroupMomentum,
			Description:       "TRIX; rate of change of triple-smoothed EMA.",
			Inputs:            []string{"close"},
			Params:            []types.ParamSpec{intParam("window", 15, "Window")},
			Synonyms:          []string{"triple ema oscillator", "triple ema rate"},
			SourceLabels:      map[string]string{"pandas_ta": "trix", "talib": "TRIX", "tradingview": "TRIX"},
			DefaultThresholds: map[string]float64{"zero_line": 0.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^TRIX_(?P<window>\d+)$`, "TRIX", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("trix", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"triple ema", "momentum"},
				SynonymsByLang: map[string][]string{"en": {"TRIX"}},
				RegexTemplates: []string{`\bTRIX\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"momentum", "oscillator"},
			References: ref("TRIX"),
			Formula: formula(
				`E1=\text{EMA}_n(C),\ E2=\text{EMA}_n(E1),\ E3=\text{EMA}_n(E2);\ \text{TRIX}=100\cdot\frac{E3_t-E3_{t-1}}{E3_{t-1}}`,
				[]string{"E3 = EMA(EMA(EMA(close,n),n),n)", "TRIX = 100 * roc(E3,1)"},
				"Zero-centered.",
			),
		},
		{
			Name:        "CCI",
			Group:       types.GroupMomentum,
			Description: "Commodity Channel Index; deviation from moving average of typical price.",
			Inputs:      []string{"high", "low", "close"},
			Params: []types.ParamSpec{
				intParam("window", 20, "Window"),
				floatParam("c", 0.015, 0.001, 1.0, "Constant"),
			},
			Synonyms:          []string{"commodity channel index"},
			SourceLabels:      map[string]string{"pandas_ta": "cci", "talib": "CCI", "tradingview": "CCI"},
			DefaultThresholds: map[string]float64{"overbought": 100.0, "oversold": -100.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^CCI_(?P<window>\d+)$`, "CCI", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("cci", map[string]string{"window": "length", "c": "c"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
				techanBinding("cci", map[string]string{"window": "length"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"deviation", "mean", "channel"},
				SynonymsByLang: map[string][]string{"en": {"CCI", "Commodity Channel Index"}},
				RegexTemplates: []string{`\bCCI\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"momentum", "mean-reversion"},
			References: ref("CCI"),
			Formula: formula(
				`\text{TP}=\frac{H+L+C}{3};\ \text{CCI}=\frac{\text{TP}-\text{SMA}_n(\text{TP})}{c\cdot \text{MAD}_n(\text{TP})}`,
				[]string{
					"TP=(H+L+C)/3",
					"dev = |TP - SMA(TP,n)|; MAD = SMA(dev,n)",
					"CCI = (TP - SMA(TP,n)) / (c * MAD)",
				},
				"c default ~0.015 so ±100 notable.",
			),
		},
		{
			Name:              "CMO",
			Group:             types.GroupMomentum,
			Description:       "Chande Momentum Oscillator; scaled momentum oscillator.",
			Inputs:            []string{"close"},
			Params:            []types.ParamSpec{intParam("window", 14, "Window")},
			Synonyms:          []string{"chande momentum oscillator"},
			SourceLabels:      map[string]string{"pandas_ta": "cmo", "tradingview": "CMO"},
			DefaultThresholds: map[string]float64{"overbought": 50.0, "oversold": -50.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^CMO_(?P<window>\d+)$`, "CMO", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("cmo", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"oscillator", "momentum"},
				SynonymsByLang: map[string][]string{"en": {"CMO", "Chande Momentum Oscillator"}},
				RegexTemplates: []string{`\bCMO\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"momentum", "oscillator"},
			References: ref("CMO"),
			Formula: formula(
				`\text{CMO}=100\cdot\frac{\sum \text{gain}_n - \sum \text{loss}_n}{\sum \text{gain}_n + \sum \text{loss}_n}`,
				[]string{
					"gain = max(ΔC,0); loss = max(-ΔC,0)",
					"CMO = 100 * (sum(gain,n)-sum(loss,n)) / (sum(gain,n)+sum(loss,n))",
				},
				"Bounded [-100,100].",
			),
		},
		{
			Name:              "WilliamsR",
			Group:             types.GroupMomentum,
			Description:       "Williams %R; momentum oscillator scaled −100 to 0.",
			Inputs:            []string{"high", "low", "close"},
			Params:            []types.ParamSpec{intParam("window", 14, "Window")},
			Synonyms:          []string{"williams r", "%r", "williams percent r"},
			SourceLabels:      map[string]string{"pandas_ta": "willr", "talib": "WILLR", "tradingview": "W%R"},
			DefaultThresholds: map[string]float64{"overbought": -20.0, "oversold": -80.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^WILLR_(?P<window>\d+)$`, "Williams %R", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("willr", map[string]string{"window": "length"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"oscillator", "bounded"},
				SynonymsByLang: map[string][]string{"en": {"Williams %R", "W%R"}},
				RegexTemplates: []string{`\bW(?:illiams)?\s*%?R\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"momentum", "oscillator", "bounded"},
			References: ref("Williams %R"),
			Formula: formula(
				`\%R_t = -100\cdot\frac{HH_n - C_t}{HH_n - LL_n}`,
				[]string{"%R = -100 * (highest_high(n) - close) / (highest_high(n) - lowest_low(n))"},
				"Ranges [-100,0].",
			),
		},
		{
			Name:        "Stoch",
			Group:       types.GroupMomentum,
			Description: "Stochastic Oscillator (Full) with %K/%D and smoothing.",
			Inputs:      []string{"high", "low", "close"},
			Params: []types.ParamSpec{
				intParam("k", 14, "K length"),
				intParam("d", 3, "D length"),
				intParam("smooth_k", 3, "Smooth K"),
			},
			Synonyms:          []string{"stochastic", "stochastic oscillator", "stoch full"},
			SourceLabels:      map[string]string{"pandas_ta": "stoch", "talib": "STOCH", "tradingview": "Stoch"},
			DefaultThresholds: map[string]float64{"overbought": 80.0, "oversold": 20.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^STOCHk_(?P<k>\d+)_(?P<d>\d+)_(?P<smooth_k>\d+)$`, "%K", types.ColumnRoleMain),
				column(`^STOCHd_(?P<k>\d+)_(?P<d>\d+)_(?P<smooth_k>\d+)$`, "%D", types.ColumnRoleSignal),
			},
			Bindings: []types.BackendBinding{
				pandasTA("stoch", map[string]string{"k": "k", "d": "d", "smooth_k": "smooth_k"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
				techanBinding("stoch", map[string]string{"k": "k", "d": "d", "smooth_k": "smooth_k"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"stochastic", "%K", "%D", "oscillator"},
				SynonymsByLang: map[string][]string{"en": {"Stochastic Oscillator", "Stoch"}},
				RegexTemplates: []string{
					`\bStoch(?:astic)?\s*\(\s*\d+.*\)`,
					`\b%K\b|\b%D\b`,
					`\bStoch\b\s*(?:<=|<|>=|>)\s*{THRESHOLD}`,
				},
			},
			Tags:       []string{"oscillator", "momentum"},
			References: ref("Stochastic Oscillator"),
			Formula: formula(
				`\%K=100\cdot\frac{C-LL_n}{HH_n-LL_n},\quad \%D=\text{SMA}_d(\%K)`,
				[]string{
					"K = 100*(close - lowest_low(n)) / (highest_high(n)-lowest_low(n))",
					"D = SMA(K, d)",
				},
				"Full Stoch allows extra smoothing on %K.",
			),
		},
		{
			Name:        "StochRSI",
			Group:       types.GroupMomentum,
			Description: "Stochastic RSI; stochastic oscillator applied to RSI.",
			Inputs:      []string{"close"},
			Params: []types.ParamSpec{
				intParam("window", 14, "RSI window"),
				intParam("k", 14, "%K length"),
				intParam("d", 3, "%D length"),
			},
			Synonyms:          []string{"stoch rsi", "stochrsi"},
			SourceLabels:      map[string]string{"pandas_ta": "stochrsi", "tradingview": "Stoch RSI"},
			DefaultThresholds: map[string]float64{"overbought": 0.8, "oversold": 0.2},
			OutputSchema: []types.OutputColumnSpec{
				column(`^STOCHRSIk_(?P<window>\d+)_(?P<k>\d+)_(?P<d>\d+)$`, "%K of StochRSI", types.ColumnRoleMain),
				column(`^STOCHRSId_(?P<window>\d+)_(?P<k>\d+)_(?P<d>\d+)$`, "%D of StochRSI", types.ColumnRoleSignal),
			},
			Bindings: []types.BackendBinding{
				pandasTA("stochrsi", map[string]string{"window": "rsi_length", "k": "length", "d": "d"},
					map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"stochastic rsi", "oscillator"},
				SynonymsByLang: map[string][]string{"en": {"Stoch RSI", "Stochastic RSI"}},
				RegexTemplates: []string{`\bStoch(?:astic)?\s*RSI\b`},
			},
			Tags:       []string{"oscillator", "momentum", "bounded"},
			References: ref("Stochastic RSI"),
			Formula: formula(
				`\text{RSI}_t \text{ first};\ \%K_{RSI}= \frac{\text{RSI}_t-\min(\text{RSI})}{\max(\text{RSI})-\min(\text{RSI})},\ \%D=\text{SMA}_d(\%K_{RSI})`,
				[]string{
					"r = RSI(close, n)",
					"K = (r - min(r, k)) / (max(r, k) - min(r, k))",
					"D = SMA(K, d)",
				},
				"K,D in [0,1] in this normalized form; many platforms scale to [0,100].",
			),
		},
		{
			Name:              "Aroon",
			Group:             types.GroupMomentum,
			Description:       "Aroon Up/Down and Oscillator; time since highs/lows.",
			Inputs:            []string{"close"},
			Params:            []types.ParamSpec{intParam("window", 25, "Window")},
			Synonyms:          []string{"aroon oscillator"},
			SourceLabels:      map[string]string{"pandas_ta": "aroon", "tradingview": "Aroon"},
			DefaultThresholds: map[string]float64{"overbought": 80.0, "oversold": 20.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^AROONU_(?P<window>\d+)$`, "Aroon Up", types.ColumnRoleUpper),
				column(`^AROOND_(?P<window>\d+)$`, "Aroon Down", types.ColumnRoleLower),
				column(`^AROONOSC_(?P<window>\d+)$`, "Aroon Oscillator", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("aroon", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"time high", "time low", "up", "down"},
				SynonymsByLang: map[string][]string{"en": {"Aroon", "Aroon Oscillator"}},
				RegexTemplates: []string{`\bAroon\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"momentum", "trend-detection"},
			References: ref("Aroon"),
			Formula: formula(
				`\text{Up}=100\cdot\frac{n - \text{bars\_since\_HH}_n}{n},\ \text{Down}=100\cdot\frac{n - \text{bars\_since\_LL}_n}{n},\ \text{Osc}=\text{Up}-\text{Down}`,
				[]string{
					"Up = 100*(n - bars_since_high(n))/n",
					"Down = 100*(n - bars_since_low(n))/n",
					"Osc = Up - Down",
				},
				"Measures how recently highs/lows occurred.",
			),
		},
		{
			Name:              "DPO",
			Group:             types.GroupMomentum,
			Description:       "Detrended Price Oscillator; removes trend to highlight cycles.",
			Inputs:            []string{"close"},
			Params:            []types.ParamSpec{intParam("window", 20, "Window")},
			Synonyms:          []string{"detrended price oscillator"},
			SourceLabels:      map[string]string{"pandas_ta": "dpo", "tradingview": "DPO"},
			DefaultThresholds: map[string]float64{"zero_line": 0.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^DPO_(?P<window>\d+)$`, "DPO", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("dpo", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"cycle", "detrended"},
				SynonymsByLang: map[string][]string{"en": {"DPO"}},
				RegexTemplates: []string{`\bDPO\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"momentum", "cycle"},
			References: ref("DPO"),
			Formula: formula(
				`\text{DPO}_t = C_{t-k} - \text{SMA}_n(C_t),\quad k=\left\lfloor \frac{n}{2}+1\right\rfloor`,
				[]string{"k=floor(n/2+1); DPO = close_{t-k} - SMA(close,n)"},
				"Centers the MA to remove trend.",
			),
		},
		{
			Name:              "Vortex",
			Group:             types.GroupMomentum,
			Description:       "Vortex Indicator; positive and negative trend movement (+VI, −VI).",
			Inputs:            []string{"high", "low", "close"},
			Params:            []types.ParamSpec{intParam("window", 14, "Window")},
			Synonyms:          []string{"vi"},
			SourceLabels:      map[string]string{"pandas_ta": "vortex", "tradingview": "Vortex"},
			DefaultThresholds: map[string]float64{"cross_signal": 1.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^VTXP_(?P<window>\d+)$`, "+VI", types.ColumnRoleMain),
				column(`^VTXM_(?P<window>\d+)$`, "-VI", types.ColumnRoleSignal),
			},
			Bindings: []types.BackendBinding{
				pandasTA("vortex", map[string]string{"window": "length"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"vortex", "+vi", "-vi", "trend"},
				SynonymsByLang: map[string][]string{"en": {"Vortex", "+VI", "-VI"}},
				RegexTemplates: []string{`\bVortex\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"trend", "crossover"},
			References: ref("Vortex"),
			Formula: formula(
				`\text{VM}^+=\sum|H_t-L_{t-1}|,\ \text{VM}^-=\sum|L_t-H_{t-1}|,\ \text{TR}=\sum \text{TrueRange},\ +VI=\text{VM}^+/\text{TR},\ -VI=\text{VM}^-/\text{TR}`,
				[]string{
					"VM+ = sum(|H_t - L_{t-1}|, n); VM- = sum(|L_t - H_{t-1}|, n)",
					"TR = sum(true_range, n)",
					"+VI = VM+ / TR; -VI = VM- / TR",
				},
				"Crossovers indicate trend changes.",
			),
		},
		{
			Name:        "Coppock",
			Group:       types.GroupMomentum,
			Description: "Coppock Curve; long-term momentum indicator based on ROC and WMA.",
			Inputs:      []string{"close"},
			Params: []types.ParamSpec{
				intParam("wlong", 11, "Long ROC"),
				intParam("wshort", 14, "Short ROC"),
				intParam("wma", 10, "WMA length"),
			},
			Synonyms:          []string{"coppock curve"},
			SourceLabels:      map[string]string{"pandas_ta": "coppock", "tradingview": "Coppock"},
			DefaultThresholds: map[string]float64{"zero_line": 0.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^COPP(?:C)?_(?P<wlong>\d+)_(?P<wshort>\d+)_(?P<wma>\d+)$`, "Coppock", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("coppock", map[string]string{"wlong": "wlong", "wshort": "wshort", "wma": "wma"},
					map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"long-term", "momentum"},
				SynonymsByLang: map[string][]string{"en": {"Coppock Curve"}},
				RegexTemplates: []string{`\bCoppock\b`},
			},
			Tags:       []string{"momentum", "long-term"},
			References: ref("Coppock"),
			Formula: formula(
				`\text{Coppock}=\text{WMA}_{wma}\big(\text{ROC}_{wlong}(C)+\text{ROC}_{wshort}(C)\big)`,
				[]string{"Coppock = WMA( ROC(close,wlong) + ROC(close,wshort), wma )"},
				"Often monthly data.",
			),
		},

		// ----- Trend / Moving Averages -----
		{
			Name:         "SMA",
			Group:        types.GroupTrend,
			Description:  "Simple Moving Average over a fixed window.",
			Inputs:       []string{"close"},
			Params:       []types.ParamSpec{intParam("window", 20, "Window length")},
			Synonyms:     []string{"simple moving average", "moving average", "ma"},
			SourceLabels: map[string]string{"pandas_ta": "sma", "talib": "SMA", "tradingview": "SMA"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^SMA_(?P<window>\d+)$`, "SMA value", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("sma", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
				techanBinding("sma", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"moving average", "smoothing"},
				SynonymsByLang: map[string][]string{"en": {"SMA", "Simple Moving Average"}},
				RegexTemplates: []string{`\bSMA\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"smoothing", "trend"},
			References: ref("SMA"),
			Formula: formula(
				`\text{SMA}_t = \frac{1}{n}\sum_{i=0}^{n-1} C_{t-i}`,
				[]string{"SMA = mean(close over last n)"},
				"Equal weights.",
			),
		},
		{
			Name:         "EMA",
			Group:        types.GroupTrend,
			Description:  "Exponential Moving Average with higher weight on recent prices.",
			Inputs:       []string{"close"},
			Params:       []types.ParamSpec{intParam("window", 20, "Window length")},
			Synonyms:     []string{"exponential moving average"},
			SourceLabels: map[string]string{"pandas_ta": "ema", "talib": "EMA", "tradingview": "EMA"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^EMA_(?P<window>\d+)$`, "EMA value", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("ema", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
				techanBinding("ema", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"moving average", "smoothing", "exponential"},
				SynonymsByLang: map[string][]string{"en": {"EMA", "Exponential Moving Average"}},
				RegexTemplates: []string{`\bEMA\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"smoothing", "trend"},
			References: ref("EMA"),
			Formula: formula(
				`\alpha=\frac{2}{n+1};\ \text{EMA}_t=\alpha C_t + (1-\alpha)\text{EMA}_{t-1}`,
				[]string{"alpha = 2/(n+1); EMA_t = alpha*close + (1-alpha)*EMA_{t-1}"},
				"Recursive filter.",
			),
		},
		{
			Name:         "WMA",
			Group:        types.GroupTrend,
			Description:  "Weighted Moving Average; applies linearly increasing weights.",
			Inputs:       []string{"close"},
			Params:       []types.ParamSpec{intParam("window", 20, "Window")},
			Synonyms:     []string{"weighted moving average"},
			SourceLabels: map[string]string{"pandas_ta": "wma", "talib": "WMA", "tradingview": "WMA"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^WMA_(?P<window>\d+)$`, "WMA value", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("wma", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"weighted", "moving average"},
				SynonymsByLang: map[string][]string{"en": {"WMA", "Weighted Moving Average"}},
				RegexTemplates: []string{`\bWMA\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"smoothing", "trend"},
			References: ref("WMA"),
			Formula: formula(
				`\text{WMA}_t=\frac{\sum_{i=1}^{n} i\cdot C_{t-n+i}}{\sum_{i=1}^{n} i}`,
				[]string{"weights=1..n; WMA = sum(weights*close)/sum(weights)"},
				"Linear weights.",
			),
		},
		{
			Name:         "HMA",
			Group:        types.GroupTrend,
			Description:  "Hull Moving Average; reduces lag via WMA combinations.",
			Inputs:       []string{"close"},
			Params:       []types.ParamSpec{intParam("window", 20, "Window")},
			Synonyms:     []string{"hull moving average"},
			SourceLabels: map[string]string{"pandas_ta": "hma", "tradingview": "HMA"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^HMA_(?P<window>\d+)$`, "HMA value", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("hma", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"hull", "moving average", "low-lag"},
				SynonymsByLang: map[string][]string{"en": {"Hull Moving Average", "HMA"}},
				RegexTemplates: []string{`\bHMA\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"smoothing", "trend", "low-lag"},
			References: ref("HMA"),
			Formula: formula(
				`\text{HMA}_n = \text{WMA}_{\sqrt{n}}\!\big(2\cdot \text{WMA}_{n/2}(C) - \text{WMA}_{n}(C)\big)`,
				[]string{"hma = WMA( 2*WMA(close, n/2) - WMA(close,n), sqrt(n) )"},
				"Uses integer rounding for n/2 and sqrt(n).",
			),
		},
		{
			Name:         "RMA",
			Group:        types.GroupTrend,
			Description:  "Wilder's Moving Average (RMA); smooth variant used in RSI.",
			Inputs:       []string{"close"},
			Params:       []types.ParamSpec{intParam("window", 14, "Window")},
			Synonyms:     []string{"wilder", "rsi_ma"},
			SourceLabels: map[string]string{"pandas_ta": "rma", "tradingview": "RMA"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^RMA_(?P<window>\d+)$`, "RMA value", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("rma", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
				techanBinding("rma", map[string]string{"window": "length"}, map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"wilder", "moving average"},
				SynonymsByLang: map[string][]string{"en": {"RMA", "Wilder's Moving Average"}},
				RegexTemplates: []string{`\bRMA\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"smoothing", "trend"},
			References: ref("RMA"),
			Formula: formula(
				`\text{RMA}_t = \text{RMA}_{t-1} + \frac{C_t - \text{RMA}_{t-1}}{n}`,
				[]string{"RMA_t = RMA_{t-1} + (close - RMA_{t-1})/n"},
				"Equivalent to Wilder's smoothing.",
			),
		},
		{
			Name:        "KAMA",
			Group:       types.GroupTrend,
			Description: "Kaufman Adaptive Moving Average (KAMA); adapts to market noise.",
			Inputs:      []string{"close"},
			Params: []types.ParamSpec{
				intParam("window", 10, "Efficiency window"),
				intParam("fast", 2, "Fast EMA"),
				intParam("slow", 30, "Slow EMA"),
			},
			Synonyms:     []string{"kaufman adaptive moving average", "kaufman"},
			SourceLabels: map[string]string{"pandas_ta": "kama", "tradingview": "KAMA"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^KAMA_(?P<window>\d+)_(?P<fast>\d+)_(?P<slow>\d+)$`, "KAMA value", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("kama", map[string]string{"window": "length", "fast": "fast", "slow": "slow"},
					map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"adaptive", "noise", "moving average"},
				SynonymsByLang: map[string][]string{"en": {"KAMA", "Kaufman Adaptive Moving Average"}},
				RegexTemplates: []string{`\bKAMA\s*\(\s*{WINDOW}\s*,\s*{FAST}\s*,\s*{SLOW}\s*\)`},
			},
			Tags:       []string{"smoothing", "adaptive", "trend"},
			References: ref("KAMA"),
			Formula: formula(
				`\text{ER}=\frac{|C_t-C_{t-n}|}{\sum_{i=1}^{n}|C_{t-i}-C_{t-i-1}|},\ \alpha=(\text{ER}\cdot(\alpha_f-\alpha_s)+\alpha_s)^2,\ \text{KAMA}_t=\text{KAMA}_{t-1}+\alpha(C_t-\text{KAMA}_{t-1})`,
				[]string{
					"ER = |C_t - C_{t-n}| / sum(|ΔC|, n)",
					"alpha_f=2/(fast+1); alpha_s=2/(slow+1)",
					"alpha=(ER*(alpha_f-alpha_s)+alpha_s)^2",
					"KAMA_t=KAMA_{t-1}+alpha*(C_t-KAMA_{t-1})",
				},
				"Adaptive smoothing.",
			),
		},

		// ----- Volatility -----
		{
			Name:        "BBANDS",
			Group:       types.GroupVolatility,
			Description: "Bollinger Bands: middle (SMA) with upper/lower bands at ±k * stddev.",
			Inputs:      []string{"close"},
			Params: []types.ParamSpec{
				intParam("window", 20, "SMA window"),
				floatParam("stdev", 2.0, 0.5, 5.0, "StdDev mult"),
			},
			Synonyms:     []string{"bollinger bands", "bb"},
			SourceLabels: map[string]string{"pandas_ta": "bbands", "talib": "BBANDS", "tradingview": "BB"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^BBL_(?P<window>\d+)_(?P<stdev>\d+(?:\.\d+)?)$`, "Lower band", types.ColumnRoleLower),
				column(`^BBM_(?P<window>\d+)_(?P<stdev>\d+(?:\.\d+)?)$`, "Middle band", types.ColumnRoleMiddle),
				column(`^BBU_(?P<window>\d+)_(?P<stdev>\d+(?:\.\d+)?)$`, "Upper band", types.ColumnRoleUpper),
				column(`^BBB_(?P<window>\d+)_(?P<stdev>\d+(?:\.\d+)?)$`, "Bandwidth", types.ColumnRoleOther),
				column(`^BBP_(?P<window>\d+)_(?P<stdev>\d+(?:\.\d+)?)$`, "Percent B", types.ColumnRoleOther),
			},
			Bindings: []types.BackendBinding{
				pandasTA("bbands", map[string]string{"window": "length", "stdev": "std"},
					map[string]string{"close": "close"}),
				techanBinding("bbands", map[string]string{"window": "length", "stdev": "std"},
					map[string]string{"close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"volatility", "bands", "upper", "lower", "percent b"},
				SynonymsByLang: map[string][]string{"en": {"Bollinger Bands", "BB"}},
				RegexTemplates: []string{
					`\bBollinger\s+Bands\b`,
					`\bBB\s*\(\s*{WINDOW}\s*,\s*{STDEV}\s*\)`,
				},
			},
			Tags:       []string{"volatility", "envelope"},
			References: ref("Bollinger Bands"),
			Formula: formula(
				`M=\text{SMA}_n(C),\ U=M+k\sigma_n(C),\ L=M-k\sigma_n(C),\ \%B=\frac{C-L}{U-L},\ \text{BW}=\frac{U-L}{M}`,
				[]string{
					"M = SMA(close,n); SD = stdev(close,n)",
					"Upper = M + k*SD; Lower = M - k*SD",
					"%B = (close - Lower)/(Upper - Lower); BW = (Upper-Lower)/M",
				},
				"k commonly 2.",
			),
		},
		{
			Name:         "ATR",
			Group:        types.GroupVolatility,
			Description:  "Average True Range; absolute volatility measure.",
			Inputs:       []string{"high", "low", "close"},
			Params:       []types.ParamSpec{intParam("window", 14, "ATR window")},
			Synonyms:     []string{"average true range"},
			SourceLabels: map[string]string{"pandas_ta": "atr", "talib": "ATR", "tradingview": "ATR"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^ATRr?_(?P<window>\d+)$`, "ATR value", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("atr", map[string]string{"window": "length"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
				techanBinding("atr", map[string]string{"window": "length"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"volatility", "true range"},
				SynonymsByLang: map[string][]string{"en": {"ATR", "Average True Range"}},
				RegexTemplates: []string{`\bATR\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"volatility"},
			References: ref("ATR"),
			Formula: formula(
				`\text{TR}=\max(H-L, |H-C_{t-1}|, |L-C_{t-1}|),\ \text{ATR}=\text{RMA}_n(\text{TR})`,
				[]string{"TR = max(H-L, |H-prevC|, |L-prevC|)", "ATR = RMA(TR, n)"},
				"Wilder's smoothing.",
			),
		},
		{
			Name:        "KC",
			Group:       types.GroupVolatility,
			Description: "Keltner Channels; EMA-based middle with ATR-multiplied bands.",
			Inputs:      []string{"high", "low", "close"},
			Params: []types.ParamSpec{
				intParam("window", 20, "EMA length"),
				intParam("atr_window", 10, "ATR length"),
				floatParam("mult", 2.0, 0.5, 5.0, "ATR multiplier"),
			},
			Synonyms:     []string{"keltner channels", "keltner"},
			SourceLabels: map[string]string{"pandas_ta": "kc", "tradingview": "KC"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^KCL[ae]?_(?P<window>\d+)_(?P<mult>\d+(?:\.\d+)?)$`, "Lower band", types.ColumnRoleLower),
				column(`^KCM[ae]?_(?P<window>\d+)_(?P<mult>\d+(?:\.\d+)?)$`, "Middle (basis)", types.ColumnRoleMiddle),
				column(`^KCU[ae]?_(?P<window>\d+)_(?P<mult>\d+(?:\.\d+)?)$`, "Upper band", types.ColumnRoleUpper),
				column(`^KCB_(?P<window>\d+)_(?P<mult>\d+(?:\.\d+)?)$`, "Band width", types.ColumnRoleOther),
			},
			Bindings: []types.BackendBinding{
				pandasTA("kc", map[string]string{"window": "length", "atr_window": "length_atr", "mult": "scalar"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"volatility", "envelope", "atr"},
				SynonymsByLang: map[string][]string{"en": {"Keltner Channels", "KC"}},
				RegexTemplates: []string{`\bKeltner\s+Channels\b`},
			},
			Tags:       []string{"volatility", "envelope"},
			References: ref("Keltner Channels"),
			Formula: formula(
				`B=\text{EMA}_n(C),\ \text{ATR}_m,\ U=B+k\cdot \text{ATR}_m,\ L=B-k\cdot \text{ATR}_m`,
				[]string{"Basis = EMA(close,n); atr = ATR(m)", "Upper = Basis + k*atr; Lower = Basis - k*atr"},
				"EMA basis vs Bollinger's SMA.",
			),
		},
		{
			Name:         "Donchian",
			Group:        types.GroupVolatility,
			Description:  "Donchian Channels; highest high/lowest low over a window.",
			Inputs:       []string{"high", "low"},
			Params:       []types.ParamSpec{intParam("window", 20, "Window")},
			Synonyms:     []string{"donchian channels", "dc"},
			SourceLabels: map[string]string{"pandas_ta": "donchian", "tradingview": "Donchian"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^DCL_(?P<window>\d+)$`, "Lower channel", types.ColumnRoleLower),
				column(`^DCM_(?P<window>\d+)$`, "Middle channel", types.ColumnRoleMiddle),
				column(`^DCU_(?P<window>\d+)$`, "Upper channel", types.ColumnRoleUpper),
			},
			Bindings: []types.BackendBinding{
				pandasTA("donchian", map[string]string{"window": "lower_length"},
					map[string]string{"high": "high", "low": "low"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"channel", "breakout"},
				SynonymsByLang: map[string][]string{"en": {"Donchian Channels", "Donchian"}},
				RegexTemplates: []string{`\bDonchian\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"volatility", "breakout"},
			References: ref("Donchian Channels"),
			Formula: formula(
				`U=\max(H_{t-n+1..t}),\ L=\min(L_{t-n+1..t}),\ M=\frac{U+L}{2}`,
				[]string{"Upper = highest_high(n); Lower = lowest_low(n); Middle = (Upper+Lower)/2"},
				"Pure price channels.",
			),
		},
		{
			Name:        "Ichimoku",
			Group:       types.GroupVolatility,
			Description: "Ichimoku Cloud; Tenkan, Kijun, Senkou spans and Chikou.",
			Inputs:      []string{"high", "low", "close"},
			Params: []types.ParamSpec{
				intParam("tenkan", 9, "Conversion line"),
				intParam("kijun", 26, "Base line"),
				intParam("senkou", 52, "Span B"),
			},
			Synonyms:     []string{"ichimoku cloud", "ichimoku kinko hyo", "ichimoku kinko"},
			SourceLabels: map[string]string{"pandas_ta": "ichimoku", "tradingview": "Ichimoku"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^ITS_(?P<tenkan>\d+)$`, "Tenkan-sen", types.ColumnRoleMain),
				column(`^IKS_(?P<kijun>\d+)$`, "Kijun-sen", types.ColumnRoleSignal),
				column(`^ISA_(?P<tenkan>\d+)$`, "Senkou Span A", types.ColumnRoleUpper),
				column(`^ISB_(?P<senkou>\d+)$`, "Senkou Span B", types.ColumnRoleLower),
				column(`^ICS_(?P<kijun>\d+)$`, "Chikou Span", types.ColumnRoleOther),
			},
			Bindings: []types.BackendBinding{
				pandasTA("ichimoku", map[string]string{"tenkan": "tenkan", "kijun": "kijun", "senkou": "senkou"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"cloud", "span", "tenkan", "kijun", "senkou", "chikou"},
				SynonymsByLang: map[string][]string{"en": {"Ichimoku Cloud", "Ichimoku"}},
				RegexTemplates: []string{`\bIchimoku\b`},
			},
			Tags:       []string{"trend", "volatility", "support-resistance"},
			References: ref("Ichimoku"),
			Formula: formula(
				`\begin{aligned} &\text{Tenkan}=\frac{\max(H,9)+\min(L,9)}{2},\ \text{Kijun}=\frac{\max(H,26)+\min(L,26)}{2},\\ &\text{SenkouA}=\frac{\text{Tenkan}+\text{Kijun}}{2}\text{ (shift +26)},\ \text{SenkouB}=\frac{\max(H,52)+\min(L,52)}{2}\text{ (shift +26)},\\ &\text{Chikou}=C\text{ (shift −26)} \end{aligned}`,
				[]string{
					"Tenkan=(HH(9)+LL(9))/2; Kijun=(HH(26)+LL(26))/2",
					"SenkouA=(Tenkan+Kijun)/2 shifted +26",
					"SenkouB=(HH(52)+LL(52))/2 shifted +26",
					"Chikou=close shifted -26",
				},
				"Shifts depend on platform plotting.",
			),
		},
		{
			Name:        "Supertrend",
			Group:       types.GroupVolatility,
			Description: "Supertrend indicator using ATR; returns direction and lines.",
			Inputs:      []string{"high", "low", "close"},
			Params: []types.ParamSpec{
				intParam("atr_window", 7, "ATR window"),
				floatParam("mult", 3.0, 0.5, 10.0, "Multiplier"),
			},
			Synonyms:     []string{"super trend", "supertrend"},
			SourceLabels: map[string]string{"pandas_ta": "supertrend", "tradingview": "Supertrend"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^SUPERT_(?P<atr_window>\d+)_(?P<mult>\d+(?:\.\d+)?)$`, "Supertrend line", types.ColumnRoleMain),
				column(`^SUPERTd_(?P<atr_window>\d+)_(?P<mult>\d+(?:\.\d+)?)$`, "Direction (+1/-1)", types.ColumnRoleSignal),
				column(`^SUPERTl_(?P<atr_window>\d+)_(?P<mult>\d+(?:\.\d+)?)$`, "Long line", types.ColumnRoleUpper),
				column(`^SUPERTs_(?P<atr_window>\d+)_(?P<mult>\d+(?:\.\d+)?)$`, "Short line", types.ColumnRoleLower),
			},
			Bindings: []types.BackendBinding{
				pandasTA("supertrend", map[string]string{"atr_window": "length", "mult": "mult"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"atr", "trend", "direction"},
				SynonymsByLang: map[string][]string{"en": {"Supertrend"}},
				RegexTemplates: []string{`\bSupertrend\b`},
			},
			Tags:       []string{"trend", "volatility", "stop-trail"},
			References: ref("Supertrend"),
			Formula: formula(
				`\text{HL2}=(H+L)/2;\ \text{BasicUpper}=\text{HL2}+m\cdot \text{ATR},\ \text{BasicLower}=\text{HL2}-m\cdot \text{ATR};\ \text{lines filtered by direction and crossover rules}`,
				[]string{
					"hl2=(H+L)/2; atr=ATR(n)",
					"basic_upper=hl2 + m*atr; basic_lower=hl2 - m*atr",
					"final lines follow trailing rules; direction flips on close cross",
				},
				"Multiple equivalent rule-sets exist; visual parity matters.",
			),
		},
		{
			Name:        "PSAR",
			Group:       types.GroupVolatility,
			Description: "Parabolic SAR; trend-following stop and reverse.",
			Inputs:      []string{"high", "low"},
			Params: []types.ParamSpec{
				floatParam("af_start", 0.02, 0.001, 1.0, "Start AF"),
				floatParam("af_step", 0.02, 0.001, 1.0, "AF step"),
				floatParam("af_max", 0.2, 0.01, 1.0, "Max AF"),
			},
			Synonyms:     []string{"parabolic sar", "sar"},
			SourceLabels: map[string]string{"pandas_ta": "psar", "talib": "SAR", "tradingview": "SAR"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^PSAR[a-z]?_(?P<af_start>\d+(?:\.\d+)?)_(?P<af_max>\d+(?:\.\d+)?)$`, "PSAR", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("psar", map[string]string{"af_start": "af0", "af_step": "af", "af_max": "max_af"},
					map[string]string{"high": "high", "low": "low"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"stop and reverse", "trend"},
				SynonymsByLang: map[string][]string{"en": {"Parabolic SAR", "SAR"}},
				RegexTemplates: []string{`\bP(?:arabolic\s+)?SAR\b`},
			},
			Tags:       []string{"trend", "stop-trail"},
			References: ref("Parabolic SAR"),
			Formula: formula(
				`\text{PSAR}_{t+1}=\text{PSAR}_t + AF\cdot(EP - \text{PSAR}_t);\ AF\in[AF_0,AF_{\max}]\ \text{increments when new EP (extreme point) occurs; direction flips on penetration}`,
				[]string{
					"Initialize trend and EP (extreme point)",
					"PSAR_next = PSAR + AF*(EP - PSAR)",
					"Increase AF by step when new EP; cap at AF_max",
					"Flip direction when price crosses PSAR",
				},
				"Classic Wilder method.",
			),
		},

		// ----- Volume / Price-derived -----
		{
			Name:         "OBV",
			Group:        types.GroupVolume,
			Description:  "On-Balance Volume; cumulative volume flow signaled by price direction.",
			Inputs:       []string{"close", "volume"},
			Synonyms:     []string{"on balance volume"},
			SourceLabels: map[string]string{"pandas_ta": "obv", "talib": "OBV", "tradingview": "OBV"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^OBV$`, "On-Balance Volume", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("obv", map[string]string{}, map[string]string{"close": "close", "volume": "volume"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"volume", "accumulation", "distribution"},
				SynonymsByLang: map[string][]string{"en": {"OBV", "On-Balance Volume"}},
				RegexTemplates: []string{`\bOBV\b`},
			},
			Tags:       []string{"volume", "flow"},
			References: ref("OBV"),
			Formula: formula(
				`\text{OBV}_t=\text{OBV}_{t-1} + \begin{cases} V_t,& C_t>C_{t-1}\\ -V_t,& C_t<C_{t-1}\\ 0,& \text{otherwise}\end{cases}`,
				[]string{
					"if close>prev_close: OBV += volume",
					"elif close<prev_close: OBV -= volume",
					"else: OBV unchanged",
				},
				"Cumulative volume flow.",
			),
		},
		{
			Name:              "CMF",
			Group:             types.GroupVolume,
			Description:       "Chaikin Money Flow; money flow over a window.",
			Inputs:            []string{"high", "low", "close", "volume"},
			Params:            []types.ParamSpec{intParam("window", 20, "Window")},
			Synonyms:          []string{"chaikin money flow"},
			SourceLabels:      map[string]string{"pandas_ta": "cmf", "tradingview": "CMF"},
			DefaultThresholds: map[string]float64{"zero_line": 0.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^CMF_(?P<window>\d+)$`, "CMF", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("cmf", map[string]string{"window": "length"},
					map[string]string{"high": "high", "low": "low", "close": "close", "volume": "volume"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"accumulation", "distribution", "money flow"},
				SynonymsByLang: map[string][]string{"en": {"CMF", "Chaikin Money Flow"}},
				RegexTemplates: []string{`\bCMF\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"volume", "flow"},
			References: ref("CMF"),
			Formula: formula(
				`\text{MFM}=\frac{(C-L)-(H-C)}{H-L},\ \text{MFV}=\text{MFM}\cdot V,\ \text{CMF}=\frac{\sum \text{MFV}}{\sum V}`,
				[]string{
					"mfm = ((C-L)-(H-C))/(H-L)",
					"mfv = mfm * volume",
					"CMF = sum(mfv,n) / sum(volume,n)",
				},
				"Bounds approximate [-1,1] when H!=L.",
			),
		},
		{
			Name:         "ADL",
			Group:        types.GroupVolume,
			Description:  "Accumulation/Distribution Line; cumulative money flow line.",
			Inputs:       []string{"high", "low", "close", "volume"},
			Synonyms:     []string{"chaikin ad line", "accumulation distribution"},
			SourceLabels: map[string]string{"pandas_ta": "ad", "tradingview": "ADL"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^AD$|^ADL$`, "ADL", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("ad", map[string]string{},
					map[string]string{"high": "high", "low": "low", "close": "close", "volume": "volume"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"accumulation", "distribution", "line"},
				SynonymsByLang: map[string][]string{"en": {"ADL", "Accumulation/Distribution"}},
				RegexTemplates: []string{`\bADL\b`},
			},
			Tags:       []string{"volume", "flow"},
			References: ref("ADL"),
			Formula: formula(
				`\text{CLV}=\frac{(C-L)-(H-C)}{H-L},\ \text{ADL}_t=\text{ADL}_{t-1}+\text{CLV}_t\cdot V_t`,
				[]string{"CLV=((C-L)-(H-C))/(H-L)", "ADL += CLV*Volume"},
				"Cumulative; denominator guard when H=L.",
			),
		},
		{
			Name:         "NVI",
			Group:        types.GroupVolume,
			Description:  "Negative Volume Index; tracks days when volume declines.",
			Inputs:       []string{"close", "volume"},
			Synonyms:     []string{"negative volume index"},
			SourceLabels: map[string]string{"pandas_ta": "nvi", "tradingview": "NVI"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^NVI$`, "NVI", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("nvi", map[string]string{}, map[string]string{"close": "close", "volume": "volume"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"volume", "index", "negative"},
				SynonymsByLang: map[string][]string{"en": {"NVI", "Negative Volume Index"}},
				RegexTemplates: []string{`\bNVI\b`},
			},
			Tags:       []string{"volume", "index"},
			References: ref("NVI"),
			Formula: formula(
				`\text{If }V_t<V_{t-1}:\ \text{NVI}_t=\text{NVI}_{t-1}\left(1+\frac{C_t-C_{t-1}}{C_{t-1}}\right);\ \text{else NVI}_t=\text{NVI}_{t-1}`,
				[]string{"if vol_t < vol_{t-1}: NVI *= (1 + ret); else unchanged"},
				"Base can be set to 1000.",
			),
		},
		{
			Name:         "PVI",
			Group:        types.GroupVolume,
			Description:  "Positive Volume Index; tracks days when volume increases.",
			Inputs:       []string{"close", "volume"},
			Synonyms:     []string{"positive volume index"},
			SourceLabels: map[string]string{"pandas_ta": "pvi", "tradingview": "PVI"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^PVI$`, "PVI", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("pvi", map[string]string{}, map[string]string{"close": "close", "volume": "volume"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"volume", "index", "positive"},
				SynonymsByLang: map[string][]string{"en": {"PVI", "Positive Volume Index"}},
				RegexTemplates: []string{`\bPVI\b`},
			},
			Tags:       []string{"volume", "index"},
			References: ref("PVI"),
			Formula: formula(
				`\text{If }V_t>V_{t-1}:\ \text{PVI}_t=\text{PVI}_{t-1}\left(1+\frac{C_t-C_{t-1}}{C_{t-1}}\right);\ \text{else PVI}_t=\text{PVI}_{t-1}`,
				[]string{"if vol_t > vol_{t-1}: PVI *= (1 + ret); else unchanged"},
				"Base can be set to 1000.",
			),
		},
		{
			Name:         "VWAP",
			Group:        types.GroupPrice,
			Description:  "Volume Weighted Average Price; session-weighted average.",
			Inputs:       []string{"high", "low", "close", "volume"},
			Synonyms:     []string{"vwap"},
			SourceLabels: map[string]string{"pandas_ta": "vwap", "tradingview": "VWAP"},
			OutputSchema: []types.OutputColumnSpec{
				column(`^VWAP.*$`, "VWAP (session)", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("vwap", map[string]string{},
					map[string]string{"high": "high", "low": "low", "close": "close", "volume": "volume"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"volume weighted", "average price", "session"},
				SynonymsByLang: map[string][]string{"en": {"VWAP"}},
				RegexTemplates: []string{`\bVWAP\b`},
			},
			Tags:       []string{"price", "session"},
			References: ref("VWAP"),
			Formula: formula(
				`\text{TP}=\frac{H+L+C}{3};\ \text{VWAP}_t=\frac{\sum_{i=1}^{t} \text{TP}_i V_i}{\sum_{i=1}^{t} V_i}\ \text{(per session)}`,
				[]string{"tp=(H+L+C)/3; cum(tp*vol)/cum(vol) within session"},
				"Resets each session/day unless specified otherwise.",
			),
		},
		{
			Name:              "EOM",
			Group:             types.GroupPrice,
			Description:       "Ease of Movement; price change relative to volume.",
			Inputs:            []string{"high", "low", "volume"},
			Params:            []types.ParamSpec{intParam("window", 14, "Window")},
			Synonyms:          []string{"ease of movement"},
			SourceLabels:      map[string]string{"pandas_ta": "eom", "tradingview": "EOM"},
			DefaultThresholds: map[string]float64{"zero_line": 0.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^EOM_(?P<window>\d+)$`, "EOM", types.ColumnRoleMain),
			},
			Bindings: []types.BackendBinding{
				pandasTA("eom", map[string]string{"window": "length"},
					map[string]string{"high": "high", "low": "low", "volume": "volume"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"ease of movement", "volume", "price"},
				SynonymsByLang: map[string][]string{"en": {"EOM", "Ease of Movement"}},
				RegexTemplates: []string{`\bEOM\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"price", "volume"},
			References: ref("EOM"),
			Formula: formula(
				`\text{MidMove}=\frac{(H+L)/2-(H_{-1}+L_{-1})/2}{1};\ \text{BoxRatio}=\frac{V}{H-L};\ \text{EOM}=\frac{\text{MidMove}}{\text{BoxRatio}}`,
				[]string{
					"mid = ((H+L)/2 - (H_prev+L_prev)/2)",
					"box_ratio = volume / (H-L)",
					"EOM = mid / box_ratio; SMA(EOM,n) often used",
				},
				"Often smoothed.",
			),
		},
		{
			Name:              "ADX",
			Group:             types.GroupTrend,
			Description:       "Average Directional Index; trend strength with +DI / -DI.",
			Inputs:            []string{"high", "low", "close"},
			Params:            []types.ParamSpec{intParam("window", 14, "ADX length")},
			Synonyms:          []string{"average directional index", "dmi"},
			SourceLabels:      map[string]string{"pandas_ta": "adx", "talib": "ADX", "tradingview": "ADX"},
			DefaultThresholds: map[string]float64{"threshold": 25.0},
			OutputSchema: []types.OutputColumnSpec{
				column(`^ADX_(?P<window>\d+)$`, "ADX", types.ColumnRoleMain),
				column(`^(?:\+DI|DMP)_(?P<window>\d+)$`, "+DI", types.ColumnRoleUpper),
				column(`^(?:-DI|DMN)_(?P<window>\d+)$`, "-DI", types.ColumnRoleLower),
			},
			Bindings: []types.BackendBinding{
				pandasTA("adx", map[string]string{"window": "length"},
					map[string]string{"high": "high", "low": "low", "close": "close"}),
			},
			NLP: types.NLPHints{
				Keywords:       []string{"trend strength", "directional movement", "+DI", "-DI"},
				SynonymsByLang: map[string][]string{"en": {"ADX", "Average Directional Index", "DMI"}},
				RegexTemplates: []string{`\bADX\s*\(\s*{WINDOW}\s*\)`},
			},
			Tags:       []string{"trend", "strength"},
			References: ref("ADX"),
			Formula: formula(
				`\begin{aligned}&+DM=\max(H_t-H_{t-1},0),\ -DM=\max(L_{t-1}-L_t,0)\\ &\text{TR}=\max(H-L,|H-C_{t-1}|,|L-C_{t-1}|)\\ &+DI=100\cdot\frac{\text{RMA}(+DM,n)}{\text{ATR}_n},\ -DI=100\cdot\frac{\text{RMA}(-DM,n)}{\text{ATR}_n}\\ &DX=100\cdot\frac{|+DI-(-DI)|}{+DI+(-DI)},\ \text{ADX}=\text{RMA}(DX,n)\end{aligned}`,
				[]string{
					"+DM = max(H - prevH, 0) if > (prevL - L) else 0",
					"-DM = max(prevL - L, 0) if > (H - prevH) else 0",
					"TR = max(H-L, |H-prevC|, |L-prevC|); ATR = RMA(TR,n)",
					"+DI = 100 * RMA(+DM,n)/ATR; -DI = 100 * RMA(-DM,n)/ATR",
					"DX = 100 * abs(+DI - -DI)/(+DI + -DI); ADX = RMA(DX,n)",
				},
				"Classic Wilder formulation.",
			),
		},
	}
}
