// Package bench ingests benchmark JSON reports and accumulates them into
// chart plots.
//
// A report file holds an array of runs, each with a context (executable,
// run date) and a list of per-benchmark measurements. The collector keys
// plots by benchmark name and upserts one point per run date, so reports
// that overlap in time merge instead of duplicating rows. Date and time
// parsing happens here; the chart core only ever sees parsed values.
package bench
