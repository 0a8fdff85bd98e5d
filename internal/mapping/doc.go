// Package mapping provides the field/column data model, the mapping set,
// the transformation rule catalog and the YAML workspace file.
//
// A mapping set associates business-object fields with physical-table
// columns. Sets are values: every operation returns a new Set and leaves
// the receiver untouched, so a caller can keep old sets for undo/redo and
// share them between goroutines.
//
// # Workspace file
//
// The workspace file carries everything one mapping session needs:
//
//	version: "1"
//	table: t_user
//	fields:
//	  - name: name
//	    code: name
//	    type: String
//	    required: true
//	columns:
//	  - name: p_name
//	    type: varchar(32)
//	    comment: user name
//	mappings:
//	  - boField: name
//	    tblField: p_name
//	    rule: Smart Map
//	    score: 0.967
//
// Rules are written by display name ("Direct Map", "Date Format", ...);
// compact spellings such as "DateFormat" or "date_format" are accepted
// on input.
package mapping
