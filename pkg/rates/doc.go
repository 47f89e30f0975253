// Package rates models daily par-yield rate curves: loading, tenor
// interpolation, and forward price computation for option cross sections.
package rates
