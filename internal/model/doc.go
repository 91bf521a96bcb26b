// Package model defines the data structures used throughout iconsync.
//
// # Config
//
// The [Config] struct mirrors the iconsync.json project file:
//
//	type Config struct {
//	    SrcDir            string           // Root for relative module paths
//	    DefaultPlasmicDir string           // Directory new icons are placed under
//	    Code              CodeConfig       // Target language settings
//	    Projects          []*ProjectConfig // Tracked remote projects
//	}
//
// # ProjectConfig and IconConfig
//
// A [ProjectConfig] owns the ordered list of [IconConfig] records for one
// remote project. An icon's module path is fixed when the icon is first seen
// and is never recomputed afterwards.
//
// # SyncRun
//
// A [SyncRun] is the ledger entry written after every successful sync.
package model
