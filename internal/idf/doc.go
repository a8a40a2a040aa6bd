// Package idf reads and writes tagged definition rows: comma separated records
// terminated by a semicolon whose first field is a case-insensitive type tag,
// with '!' starting a comment that runs to the end of the line.
//
//	Material,
//	  Generic Brick,   !- Name
//	  MediumRough,     !- Roughness
//	  0.1;             !- Thickness {m}
//
// The same format is used for the definition libraries the assembler reads
// materials, constructions, and schedules from, for design-day files, and for
// the exchange-format file handed to the simulation engine.
package idf
