// Package core provides the icon sync logic for iconsync.
//
// Functions in this package return errors instead of printing, and receive
// every collaborator through a [SyncContext] so they can be exercised with
// fakes.
//
// # Sync
//
// A sync has two phases:
//
//  1. [SyncIcons] - fetches the icon bundles of all requested projects at
//     once and fails fast if any fetch fails
//  2. [SyncProjectIconAssets] - reconciles one project's bundles against its
//     tracked icons, writing new files without clobbering and overwriting
//     tracked ones in place
//
// The configuration is saved once, after every project was reconciled.
//
// # Configuration and Credentials
//
// [ConfigFile] locates, loads and atomically saves iconsync.json.
// [ResolveCredentials] picks API credentials from flags, environment or the
// auth file.
package core
