// Package loader reads the input files of a run and builds the shared
// route.Simulation.
//
// The catalog, the ROM's RNG table and the three lete tables are
// independent and are read concurrently. The route script is parsed once
// the catalog is available, since its lines reference formation sets.
// A script with a lete checkpoint needs the lete tables; asking for one
// without them fails with ErrMissingTables.
package loader
