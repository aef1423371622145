// Package handbook provides a terminal reference guide for the research
// program's income and expense workflow. A fixed catalog of sections is
// shown one at a time, and a free-text query can jump to the section it
// matches.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, viper/).
package handbook
