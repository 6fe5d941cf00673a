// Package xmap reads and writes Bionano XMAP alignment files.
//
// An XMAP file is tab separated text with interleaved metadata lines:
//
//	# Reference Maps From:	ref_r.cmap
//	# Query Maps From:	qry_q.cmap
//	#h XmapEntryID	QryContigID	RefContigID	...
//	#f int	int	int	...
//	# FILTER : Confidence                             :  ge : 10.0
//	1	141	1	528400.6	571697.5	10672	54237.5	+	6.65	4M2D2M	...
//
// Parser is a line state machine. Every data line is parsed with the field
// parsers of a schema.Registry and indexed into an index.Index and an
// index.GroupIndex before it is appended, so a record is never visible
// without its index entries. The format is tab exact: any malformed line
// aborts the parse.
//
// Writer emits the augmented form with every registry field, including the
// derived "_meta_" columns.
package xmap
