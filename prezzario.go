// Package prezzario ingests heterogeneous tabular price-list data (local
// files, remote URLs, open-data catalog entries) into a normalized record
// store and answers filtered, textual and semantic queries against it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., csv/, ckan/, sqlite/).
package prezzario
