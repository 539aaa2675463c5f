// Package report renders search solutions as the plain-text travelog report.
//
// Each solution is written as:
//
//	INITIAL SEED: <seed>
//	<travelog, one entry per line>
//	<route summary>
//
//	------------------------------------------------------------
//
// Solutions appear in the order given, which for search results is the
// order they were found.
package report
