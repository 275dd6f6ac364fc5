// Package roadfile reads road-network description files.
//
// A file lists, in order and one item per line:
//
//	<location count>
//	<location name>            (repeated count times; ids are 0-based line order)
//	<road count>
//	<start> <end> <distance> <speed>   (repeated; one directed road each)
//	<trip count>
//	<start> <end> <D|T>        (repeated; D = shortest distance, T = shortest time)
//
// Blank lines and lines whose first non-space character is '#' are skipped
// anywhere in the file. Every record is checked as it is read: endpoints
// must name a declared location, distance and speed must be non-negative
// numbers (+Inf is accepted and means impassable), and the trip mode must be
// D or T.
//
// Errors are returned as *ParseError carrying the 1-based line number and
// wrapping one of ErrSyntax, ErrUnexpectedEOF or ErrInvalidRecord, so callers
// can use both errors.As and errors.Is.
package roadfile
