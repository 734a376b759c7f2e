// Package dataset holds the sample matrix handed to the embedder together
// with the value kind of each column, and reads/writes it as CSV.
//
// Files ending in ".zst" are transparently zstd-compressed and files ending
// in ".lz4" are lz4 frames; anything else is plain CSV.
//
//	ds, err := dataset.Open("blobs.csv.zst")
//	...
//	w, err := dataset.Create("embedding.csv.lz4")
//	defer w.Close()
//	err = dataset.WriteCSV(w, res.Embedding)
package dataset
