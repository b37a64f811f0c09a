// Package mdrsort sorts a folder of spreadsheet exports into the MDR1..MDR4
// category folders and renders each sorted file as tab-delimited text.
//
// A run takes one snapshot of the folder and then, file by file:
//
//   - splits multi-sheet workbooks into "<stem>_<sheet>.xlsx" files,
//     retrying while the source is locked by another process
//   - strips apostrophes from file names
//   - classifies the first sheet by its marker cells (I13, A1, B1) and moves
//     the file into its category folder
//   - drops column A for MDR1 and MDR2, cleans columns E and F, writes
//     "<stem>.txt" and deletes the original
//
// Example:
//
//	report, err := mdrsort.Run("/data/inbox", mdrsort.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	fmt.Print(report.Summary())
package mdrsort
