// Package composers provides the per-category listing composers and the
// registry that maps analysis profiles to them. Each composer lives in
// its own subpackage and implements the driven.Composer interface.
package composers
