// Package newsdoc extracts the readable text of a news article (its title
// followed by ordered paragraphs) from an arbitrary HTML page using generic
// structural heuristics only. There are no site-specific extractors.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., sqlite/, http/, scrape/).
package newsdoc
