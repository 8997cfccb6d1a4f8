// Package field classifies native SQL column types into the closed set of
// type categories the logical-delete engine knows how to write literals for.
//
// # Categories
//
//	field.Numeric  // integer, decimal and floating point families
//	field.String   // character and text families
//	field.Boolean  // boolean and bit families
//
// Anything else (dates, blobs, JSON, UUID, ...) is Unsupported:
//
//	field.Classify("BIGINT")       // Numeric
//	field.Classify("varchar(20)")  // String
//	field.Classify("bit(1)")       // Boolean
//	field.Classify("timestamp")    // Unsupported
//
// Classification ignores case, length/precision modifiers and the MySQL
// UNSIGNED/ZEROFILL attributes.
package field
