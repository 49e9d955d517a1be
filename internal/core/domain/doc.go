// Package domain contains the core business entities for listing
// composition: garment feature sets, analysis profiles, vision analysis
// results, and composed listings. Domain types have no dependencies on
// adapters or external services.
package domain
