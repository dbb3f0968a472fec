// Package analytics derives presentation-ready statistics from raw weather
// samples: descriptive and circular statistics, feels-like metrics, daily and
// hourly aggregation, trend fitting, pattern-risk heuristics, and advisory
// generation.
//
// Every exported computation is a pure function of its inputs. The package
// never returns errors: insufficient data yields documented neutral defaults,
// implausible inputs are clamped to the nearest physical bound, and zero
// denominators are guarded, so a missing channel degrades one field instead
// of aborting the whole report.
package analytics

import "strings"

// Engine runs the analytics pipeline with one set of tuning parameters.
// Engines are stateless and safe for concurrent use.
type Engine struct {
	cfg Config
}

// New returns an Engine using the given configuration. Zero horizons and
// unset pattern rules fall back to the defaults, so a partial Config is
// always safe to run.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.ForecastDays <= 0 {
		cfg.ForecastDays = def.ForecastDays
	}
	if cfg.HourlyHorizon <= 0 {
		cfg.HourlyHorizon = def.HourlyHorizon
	}
	if cfg.MinTrendPoints <= 0 {
		cfg.MinTrendPoints = def.MinTrendPoints
	}
	if cfg.WeakCorrelation <= 0 {
		cfg.WeakCorrelation = def.WeakCorrelation
	}
	cfg.HeatWave = ruleOrDefault(cfg.HeatWave, def.HeatWave)
	cfg.ColdSnap = ruleOrDefault(cfg.ColdSnap, def.ColdSnap)
	cfg.Drought = ruleOrDefault(cfg.Drought, def.Drought)
	cfg.Storm = ruleOrDefault(cfg.Storm, def.Storm)
	return &Engine{cfg: cfg}
}

// ruleOrDefault substitutes the default pattern rule when the given one has
// no tiers, and backfills a missing duration on a custom tier table.
func ruleOrDefault(rule, def PatternRule) PatternRule {
	if len(rule.Tiers) == 0 {
		return def
	}
	if rule.Pattern == "" {
		rule.Pattern = def.Pattern
	}
	if rule.RequiredDays <= 0 {
		rule.RequiredDays = def.RequiredDays
	}
	return rule
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

func normalizeCondition(condition string) string {
	return strings.ToLower(strings.TrimSpace(condition))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
