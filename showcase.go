// Package showcase loads the per-page content of a component showcase site.
// Each page of the site menu lazily loads a description scraped from the
// API documentation, the source snippets carved out of its template and
// declared source files, and pointers to related documentation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, sqlite/).
package showcase
