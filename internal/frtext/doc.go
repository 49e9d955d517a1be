// Package frtext provides the French text normalisation toolkit used by
// the listing composers: value cleaning, percentage parsing, rise and
// fit classification, composition and condition phrasing, hashtag
// assembly, and footer stripping.
//
// Every helper is total: malformed input never propagates an error to
// the caller. Each function documents its neutral fallback value and
// logs the offending input through the logger package.
package frtext
