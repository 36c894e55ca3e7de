// Package chart implements the in-memory data model behind the generated
// benchmark graphs: typed column descriptors, an ordered plot description
// with a designated domain (x-axis) column, a schema-validated data table,
// and a domain-indexed plot with upsert semantics.
//
// The model performs no I/O. Callers build a PlotDescription once, feed
// rows or per-domain values into a DataTable or Plot, and serialize the
// result with ChartArray into the two-level array literal consumed by the
// chart renderer.
//
// The types are not safe for concurrent use. The intended lifecycle is a
// single producer mutating the table followed by a read-only serialization
// pass; concurrent producers need external synchronization.
package chart
