// Package opticalmapping indexes, summarizes and filters Bionano XMAP
// optical-mapping alignments.
//
// An XMAP file holds one alignment of a query contig against a reference
// contig per line. This package parses it into typed records, indexes the
// records by column and by column pair, computes per (reference, query)
// statistics and evaluates "field:operator:value" filters over them.
//
// # Quick Start
//
// Local files:
//
//	ctx := context.Background()
//	store := blobstore.NewLocalStore("./data")
//	ds, _ := opticalmapping.Load(ctx, store, "sample.xmap")
//
// Object storage:
//
//	s3Store, _ := s3.NewStoreFromConfig(ctx, "my-bucket", "runs/42/")
//	ds, _ := opticalmapping.Load(ctx, s3Store, "sample.xmap.zst")
//
// Compressed inputs (gzip, zstd, lz4) are detected from their leading bytes.
//
// # Augment
//
// Augment annotates every record with the statistics of its group: matched
// lengths with and without gaps, the best confidence of the query across all
// references, the decoded HitEnum and Alignment counts.
//
//	aug, _ := ds.Augment(ctx)
//	_ = aug.Save(ctx, store, "sample.augmented.xmap")
//
// # Filter
//
// Filter keeps the records matching a conjunction of predicates and
// recomputes the statistics over the kept records:
//
//	out, _ := aug.FilterExprs(ctx, "Confidence:ge:10.0", "_meta_num_orientations:eq:1")
//
// The applied filters are written as "# FILTER :" header lines, and
// PriorFilters rebuilds them when the file is read back.
//
// # Sharded Inputs
//
// LoadShards parses several inputs concurrently and merges them in order:
//
//	ds, _ := opticalmapping.LoadShards(ctx, store, []string{"chr1.xmap", "chr2.xmap"},
//	    opticalmapping.WithConcurrency(4))
//
// # Configuration
//
// Options can also come from a TOML file:
//
//	cfg, _ := opticalmapping.LoadConfig("opticalmapping.toml")
//	opts, _ := cfg.Options(nil)
//	ds, _ := opticalmapping.Load(ctx, store, "sample.xmap", opts...)
package opticalmapping
