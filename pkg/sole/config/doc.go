// Package config provides configuration loading for sole coordinators.
//
// Config wraps a plain map with typed accessors, so settings can come from
// YAML or JSON files, environment-specific maps, or be built inline. The
// coordinator itself needs no configuration; everything here tunes the
// ambient behavior of a type registration (strict release, metrics,
// tracing, log level).
//
// # Loading
//
//	cfg, err := config.FromFile("sole.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dbType, err := sole.Define("database", allocDB, initDB,
//	    sole.WithConfig[*DB, DSN](cfg),
//	)
//
// A config file looks like:
//
//	strict_release: true
//	metrics: true
//	tracing: false
//	log_level: debug
//
// Those four keys are the whole vocabulary; the file loaders reject
// anything else. Configs built in code with New may carry extra keys.
package config
