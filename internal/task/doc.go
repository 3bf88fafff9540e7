// Package task runs the batch processing of items. ItemProcessor lists every
// item, fans one unit of work per item out over a bounded WorkerPool and
// returns the items it managed to process once every unit has finished.
package task
