package main

import (
	"github.com/mleone/archivist/internal/archive"
	"github.com/mleone/archivist/internal/config"
)

// newUpdater builds an Updater for dir from the config file plus flag
// overrides. An empty index or cfgPath means "use the config file / its
// defaults".
func newUpdater(dir, index, cfgPath string) (*archive.Updater, *config.Config, error) {
	var cfg *config.Config
	var err error
	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load(dir)
	}
	if err != nil {
		return nil, nil, err
	}

	if index != "" {
		cfg.Index = index
	}

	upd := &archive.Updater{
		Dir:       dir,
		Index:     cfg.Index,
		Heading:   cfg.Heading,
		Namer:     archive.NewNamer(cfg.Names),
		UseTitles: cfg.UseTitles,
	}
	return upd, cfg, nil
}
